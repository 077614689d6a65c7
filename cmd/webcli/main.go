package main

import (
	"github.com/voidbrain/webcli/cmd/cli"
)

func main() {
	cli.Execute()
}
