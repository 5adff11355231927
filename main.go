package main

import (
	"github.com/robalobadob/wordle/apps/solver/internal/cli"
)

func main() {
	cli.Execute()
}
