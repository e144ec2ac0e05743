// Package main provides the entry point for the satlens CLI.
//
// satlens turns structured CP-SAT solver run records into readable
// summary reports.
//
// Usage:
//
//	satlens report <run-record.json>
//	satlens report --markdown run.yaml
//
// See --help for all available options.
package main

// main is the entry point for satlens.
func main() {
	Execute()
}
