// Package main toggles the secondary display between landscape and portrait.
package main

import (
	"log"
	"os"
)

// main is the entrypoint for the flipmon CLI.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		logFatal(err)
	}
}

// logFatal prints and exits for fatal failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}
