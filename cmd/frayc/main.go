package main

import (
	"os"

	"fray/cli"
)

func main() {
	os.Exit(cli.Execute())
}
