package main

import (
	"os"

	"filegrip/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
