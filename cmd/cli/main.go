package main

import (
	"github.com/mcoot/snakegame-go/internal/cli"
)

func main() {
	cli.Execute()
}
