package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hornet.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestValidateConfig(t *testing.T) {
	orig := cfgFile
	defer func() { cfgFile = orig }()

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "valid",
			content: "service_name: api\nsample_rate: 10\n",
		},
		{
			name:    "non-numeric sample rate warns but passes",
			content: "sample_rate: \"ten\"\n",
		},
		{
			name:    "invalid sink type",
			content: "sink:\n  type: kafka\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "sink: [broken",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile = writeTempConfig(t, tt.content)
			err := validateConfig(validateCmd, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfigMissingFile(t *testing.T) {
	orig := cfgFile
	defer func() { cfgFile = orig }()

	cfgFile = filepath.Join(t.TempDir(), "absent.yaml")
	if err := validateConfig(validateCmd, nil); err == nil {
		t.Error("validateConfig succeeded on a missing file")
	}
}
