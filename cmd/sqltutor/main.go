package main

import (
	"os"

	"github.com/snake14v/SQL-LEARNX/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
