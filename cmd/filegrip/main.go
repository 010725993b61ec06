// Command filegrip is the installable entry point of the file browser.
package main

import (
	"os"

	"filegrip/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
