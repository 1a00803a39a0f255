package main

import (
	"github.com/wallcycle/wallcycle/internal/cli"
)

func main() {
	cli.Execute()
}
