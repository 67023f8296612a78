// Command uafields classifies User-Agent strings into analytics fields.
//
// Usage:
//
//	# Run the HTTP service (configuration from the environment or .env)
//	uafields serve
//
//	# Classify user agents given as arguments or one per line on stdin
//	uafields classify "Mozilla/5.0 (Windows NT 10.0; Win64; x64) ... Chrome/91.0.4472.124 ..."
//	cat agents.txt | uafields classify --format text
//
//	# Print build information
//	uafields version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
