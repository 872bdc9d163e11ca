// Package main is the entry point for the commitkind CLI.
package main

import "github.com/commitkind/commitkind/cmd"

func main() {
	cmd.Execute()
}
