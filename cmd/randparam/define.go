package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgeci/randparam/internal/api"
)

var defineFlags struct {
	clientConfig
	paramType   string
	description string
	failedMsg   string
}

var defineCmd = &cobra.Command{
	Use:   "define <name>",
	Short: "Define a new build parameter",
	Long:  `Define a new build parameter with the given name.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDefine,
}

func init() {
	rootCmd.AddCommand(defineCmd)

	addClientFlags(defineCmd, &defineFlags.clientConfig)
	defineCmd.Flags().StringVar(&defineFlags.paramType, "type", "randomstring", "parameter type")
	defineCmd.Flags().StringVar(&defineFlags.description, "description", "", "optional description")
	defineCmd.Flags().StringVar(&defineFlags.failedMsg, "failed-validation-message", "", "message shown when a user-entered value fails validation")
}

func runDefine(cmd *cobra.Command, args []string) error {
	c, err := defineFlags.newAdminClient()
	if err != nil {
		return err
	}

	info, err := c.DefineParam(api.CreateParamRequest{
		Name:                    args[0],
		Type:                    defineFlags.paramType,
		Description:             defineFlags.description,
		FailedValidationMessage: defineFlags.failedMsg,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Parameter: %s\n", info.Name)
	fmt.Printf("Type:      %s\n", info.Type)
	if info.Description != nil {
		fmt.Printf("Description: %s\n", *info.Description)
	}
	if info.FailedValidationMessage != nil {
		fmt.Printf("Failed validation message: %s\n", *info.FailedValidationMessage)
	}

	return nil
}
