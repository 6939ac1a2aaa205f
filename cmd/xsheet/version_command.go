package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the exporter release version.
const Version = "2.0.1"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the xsheet version",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "xsheet %s\n", Version)
		},
	}
}
