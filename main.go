// File: main.go
package main

import (
	"os"

	"github.com/jawwad-masteee/handlix/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
