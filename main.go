package main

import (
	"os"

	"github.com/spboyer/mockapi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
