// Command postboard is a terminal client for a JSONPlaceholder-style API:
// browse remote posts and users, and create local posts.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "postboard: %v\n", err)
		os.Exit(1)
	}
}
