package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteFlags struct {
	clientConfig
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a parameter definition",
	Long:  `Delete a parameter definition and all its bound values.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	addClientFlags(deleteCmd, &deleteFlags.clientConfig)
}

func runDelete(cmd *cobra.Command, args []string) error {
	c, err := deleteFlags.newAdminClient()
	if err != nil {
		return err
	}

	name := args[0]
	if err := c.DeleteParam(name); err != nil {
		return err
	}

	result := struct {
		Name    string `json:"name"`
		Deleted bool   `json:"deleted"`
	}{
		Name:    name,
		Deleted: true,
	}

	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
