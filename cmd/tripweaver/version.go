package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tripweaver/tripweaver"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tripweaver",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tripweaver version %s\n", strings.TrimSpace(tripweaver.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
