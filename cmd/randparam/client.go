package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forgeci/randparam/internal/client"
)

type clientConfig struct {
	apiKey  string
	apiURL  string
	formURL string
}

func addClientFlags(cmd *cobra.Command, cfg *clientConfig) {
	cmd.Flags().StringVar(&cfg.apiKey, "api-key", os.Getenv("RANDPARAM_API_KEY"), "API key for admin API authentication")
	cmd.Flags().StringVar(&cfg.apiURL, "api-url", os.Getenv("RANDPARAM_API_URL"), "admin API URL")
	cmd.Flags().StringVar(&cfg.formURL, "form-url", os.Getenv("RANDPARAM_FORM_URL"), "form listener URL")
}

func (cfg *clientConfig) newAdminClient() (*client.Client, error) {
	if cfg.apiURL == "" {
		return nil, fmt.Errorf("API URL required (use --api-url flag or RANDPARAM_API_URL env var)")
	}
	if cfg.apiKey == "" {
		return nil, fmt.Errorf("API key required (use --api-key flag or RANDPARAM_API_KEY env var)")
	}
	return client.NewClient(cfg.apiURL, cfg.formURL, cfg.apiKey), nil
}

func (cfg *clientConfig) newFormClient() (*client.Client, error) {
	if cfg.formURL == "" {
		return nil, fmt.Errorf("form listener URL required (use --form-url flag or RANDPARAM_FORM_URL env var)")
	}
	return client.NewClient(cfg.apiURL, cfg.formURL, cfg.apiKey), nil
}
