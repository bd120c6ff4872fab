package main

import "github.com/soli0222/tutor-cli/internal/cli"

func main() {
	cli.Execute()
}
