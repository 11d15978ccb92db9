package main

import (
	"os"

	"github.com/talentrag/talentrag-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
