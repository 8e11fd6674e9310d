// Package main is the entry point for the hygiene CLI.
package main

import "oaks.dev/pkg/hygiene/cmd"

func main() {
	cmd.Execute()
}
