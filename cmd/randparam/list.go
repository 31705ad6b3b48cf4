package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var listFlags struct {
	clientConfig
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all parameter definitions with bound value counts",
	Long:  `List all parameter definitions with their types, creation times, and bound value counts.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	addClientFlags(listCmd, &listFlags.clientConfig)
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := listFlags.newAdminClient()
	if err != nil {
		return err
	}

	resp, err := c.ListParams()
	if err != nil {
		return err
	}

	if len(resp.Params) == 0 {
		fmt.Println("No parameters defined.")
		return nil
	}

	fmt.Printf("%-20s  %-14s  %-19s  %s\n", "NAME", "TYPE", "CREATED", "VALUES")
	for _, p := range resp.Params {
		createdAt, _ := time.Parse(time.RFC3339, p.CreatedAt)
		createdStr := createdAt.Format("2006-01-02 15:04:05")
		fmt.Printf("%-20s  %-14s  %-19s  %d\n", p.Name, p.Type, createdStr, p.ValueCount)
	}

	return nil
}
