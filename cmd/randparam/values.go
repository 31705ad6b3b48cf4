package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var valuesFlags struct {
	clientConfig
}

var valuesCmd = &cobra.Command{
	Use:   "values <name>",
	Short: "List values bound for a parameter",
	Long:  `List the values bound for a parameter, one per build run.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValues,
}

func init() {
	rootCmd.AddCommand(valuesCmd)

	addClientFlags(valuesCmd, &valuesFlags.clientConfig)
}

func runValues(cmd *cobra.Command, args []string) error {
	c, err := valuesFlags.newAdminClient()
	if err != nil {
		return err
	}

	resp, err := c.ListValues(args[0])
	if err != nil {
		return err
	}

	if len(resp.Values) == 0 {
		fmt.Println("No values bound.")
		return nil
	}

	fmt.Printf("%-36s  %-16s  %-9s  %s\n", "RUN", "VALUE", "GENERATED", "BOUND")
	for _, v := range resp.Values {
		boundAt, _ := time.Parse(time.RFC3339, v.BoundAt)
		boundStr := boundAt.Format("2006-01-02 15:04:05")
		fmt.Printf("%-36s  %-16s  %-9t  %s\n", v.RunID, v.Value, v.Generated, boundStr)
	}

	return nil
}
