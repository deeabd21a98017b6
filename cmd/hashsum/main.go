// main.go - hashsum entry point

// Command hashsum prints "<path> <hex>" digests of files using the hashes
// registry.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
