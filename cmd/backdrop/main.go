package main

import (
	"os"

	"github.com/named-data/backdrop/cmd"
)

func main() {
	if err := cmd.CmdBackdrop.Execute(); err != nil {
		os.Exit(1)
	}
}
