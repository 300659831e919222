package main

import (
	"github.com/Shaptic/sep-39/cmd/sepcli/cmd"
)

func main() {
	cmd.Execute()
}
