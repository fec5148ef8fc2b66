package main

import (
	"os"

	"github.com/hasansino/gitsync/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
