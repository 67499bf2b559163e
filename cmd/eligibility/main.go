// Sheraa eligibility checker.
//
// Serves the eligibility wizard to AI hosts over MCP (stdio) and to web
// front ends over HTTP, and ships catalog maintenance commands.
//
// Usage:
//
//	eligibility serve    # Start MCP server (stdio transport)
//	eligibility http     # Start the REST API
//	eligibility check    # Validate the configured catalog
//	eligibility export   # Write the catalog as YAML or SQLite
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
