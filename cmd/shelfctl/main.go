package main

import (
	"os"

	"github.com/snnyvrz/shelfshare/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
