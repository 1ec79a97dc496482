// Hornet is an in-process tracing core for Go services.
//
// The hornet command is the library's companion tool for working with
// configuration files:
//
//	# Validate a configuration file
//	hornet validate --config hornet.yaml
//
//	# Emit a demo trace through the configured sink
//	hornet demo --config hornet.yaml
//
//	# Show version information
//	hornet version
//
// For complete documentation, see: https://github.com/mercator-hq/hornet
package main

func main() {
	Execute()
}
