// Package main is the entry point for the completest CLI.
package main

import "completest.dev/pkg/completest/cmd"

func main() {
	cmd.Execute()
}
