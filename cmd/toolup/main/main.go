package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/toolup-cli/toolup/cmd/toolup"
)

func main() {
	rootCmd := toolup.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}
