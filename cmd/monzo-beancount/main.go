package main

import (
	"os"

	"github.com/quarryforge/monzo-beancount/cmd/monzo-beancount/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
