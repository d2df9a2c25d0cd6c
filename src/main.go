package main

import (
	"github.com/pipctl/pipctl/src/cmd"
)

func main() {
	cmd.Execute()
}
