package main

import "github.com/mcoot/qrhunt/internal/cli"

func main() {
	cli.Execute()
}
