package main

import (
	"fmt"
	"os"

	"chatsearch/cmd/searchctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
