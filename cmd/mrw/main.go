package main

import (
	"os"

	"github.com/msto63/mRW/cmd/mrw/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
