package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgeci/randparam/internal/api"
)

var bindFlags struct {
	clientConfig
	runID string
	value string
}

var bindCmd = &cobra.Command{
	Use:   "bind <name>",
	Short: "Bind a parameter value for a build run",
	Long: `Bind a parameter value for a build run. Without --value a fresh
random default is generated; without --run-id the server assigns one.`,
	Args: cobra.ExactArgs(1),
	RunE: runBind,
}

func init() {
	rootCmd.AddCommand(bindCmd)

	addClientFlags(bindCmd, &bindFlags.clientConfig)
	bindCmd.Flags().StringVar(&bindFlags.runID, "run-id", "", "build run identifier")
	bindCmd.Flags().StringVar(&bindFlags.value, "value", "", "user-supplied value (omit to generate)")
}

func runBind(cmd *cobra.Command, args []string) error {
	c, err := bindFlags.newFormClient()
	if err != nil {
		return err
	}

	req := api.BindValueRequest{RunID: bindFlags.runID}
	if cmd.Flags().Changed("value") {
		req.Value = &bindFlags.value
	}

	resp, err := c.BindValue(args[0], req)
	if err != nil {
		return err
	}

	fmt.Printf("Parameter: %s\n", resp.Name)
	fmt.Printf("Run:       %s\n", resp.RunID)
	fmt.Printf("Value:     %s\n", resp.Value)
	fmt.Printf("Generated: %t\n", resp.Generated)

	return nil
}
