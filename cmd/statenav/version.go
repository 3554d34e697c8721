package main

import (
	"fmt"

	"github.com/aretw0/statenav"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of statenav",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("statenav version %s\n", statenav.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
