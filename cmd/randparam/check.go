package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgeci/randparam/internal/api"
)

var checkFlags struct {
	clientConfig
	paramType string
	failedMsg string
}

var checkCmd = &cobra.Command{
	Use:   "check <value>",
	Short: "Validate a value against a parameter type's pattern",
	Long:  `Validate a candidate value the way the server-side form callback does.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	addClientFlags(checkCmd, &checkFlags.clientConfig)
	checkCmd.Flags().StringVar(&checkFlags.paramType, "type", "randomstring", "parameter type")
	checkCmd.Flags().StringVar(&checkFlags.failedMsg, "failed-validation-message", "", "custom message for validation failures")
}

func runCheck(cmd *cobra.Command, args []string) error {
	c, err := checkFlags.newFormClient()
	if err != nil {
		return err
	}

	resp, err := c.Validate(checkFlags.paramType, api.ValidateRequest{
		FailedValidationMessage: checkFlags.failedMsg,
		Value:                   args[0],
	})
	if err != nil {
		return err
	}

	if resp.OK {
		fmt.Println("ok")
		return nil
	}
	return fmt.Errorf("%s", resp.Message)
}
