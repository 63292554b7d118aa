package main

import "github.com/mcoot/protocols-go/internal/cli"

func main() {
	cli.Execute()
}
