package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var typesFlags struct {
	clientConfig
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List registered parameter types",
	Long:  `List the registered parameter types with their capabilities and operator configuration.`,
	RunE:  runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)

	addClientFlags(typesCmd, &typesFlags.clientConfig)
}

func runTypes(cmd *cobra.Command, args []string) error {
	c, err := typesFlags.newFormClient()
	if err != nil {
		return err
	}

	resp, err := c.ListTypes()
	if err != nil {
		return err
	}

	fmt.Printf("%-14s  %-28s  %s\n", "ID", "DISPLAY NAME", "CAPABILITIES")
	for _, t := range resp.Types {
		fmt.Printf("%-14s  %-28s  %s\n", t.ID, t.DisplayName, strings.Join(t.Capabilities, ","))
		for k, v := range t.Config {
			fmt.Printf("  %s = %v\n", k, v)
		}
	}

	return nil
}
