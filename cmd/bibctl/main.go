package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bibapi/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "bibctl",
	Short:         "Fetch and sort bibliographic records from the ILS",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func execute() error {
	rootCmd.AddCommand(newFetchCmd())
	return rootCmd.Execute()
}

func main() {
	config.LoadEnvFiles()
	if err := execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
