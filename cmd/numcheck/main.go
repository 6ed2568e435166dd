package main

import "numcheck/cmd/cli"

func main() {
	cli.RunCLI()
}
