package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/forgeci/randparam/internal/auth"
	"github.com/forgeci/randparam/internal/db"
	"github.com/forgeci/randparam/internal/logging"
	"github.com/forgeci/randparam/internal/paramtypes"
	"github.com/forgeci/randparam/internal/paramtypes/core/randomstring"
	"github.com/forgeci/randparam/internal/server"
)

var serverFlags struct {
	formPort int
	apiPort  int
	dbPath   string
	pattern  string
	tlsCert  string
	tlsKey   string
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the form listener and admin API",
	Long: `Start the randparam server.

The form listener (unauthenticated) serves the host CI server: parameter
type descriptors, help pages, the server-side validation callback, and
value binding for build runs. The admin API (API key authenticated)
manages parameter definitions.

On first start an API key is created and printed once.`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().IntVar(&serverFlags.formPort, "form-port", getEnvInt("RANDPARAM_FORM_PORT", 8080), "form listener port")
	serverCmd.Flags().IntVar(&serverFlags.apiPort, "api-port", getEnvInt("RANDPARAM_API_PORT", 8081), "admin API port")
	serverCmd.Flags().StringVar(&serverFlags.dbPath, "db", getEnv("RANDPARAM_DB", "randparam.db"), "database path")
	serverCmd.Flags().StringVar(&serverFlags.pattern, "pattern", "", "validation pattern for the randomstring type (stored as operator config)")
	serverCmd.Flags().StringVar(&serverFlags.tlsCert, "tls-cert", "", "path to TLS certificate file")
	serverCmd.Flags().StringVar(&serverFlags.tlsKey, "tls-key", "", "path to TLS key file")
}

func runServer(cmd *cobra.Command, args []string) error {
	database, err := db.Open(serverFlags.dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer database.Close()

	count, err := db.CountAPIKeys(database)
	if err != nil {
		return fmt.Errorf("count API keys: %w", err)
	}
	if count == 0 {
		displayKey, prefix, hash, err := auth.GenerateAPIKey()
		if err != nil {
			return fmt.Errorf("generate API key: %w", err)
		}
		if _, err := db.CreateAPIKey(database, prefix, hash); err != nil {
			return fmt.Errorf("create API key: %w", err)
		}
		fmt.Println("=============================================================")
		fmt.Println("API KEY CREATED (save this, it will not be shown again):")
		fmt.Println(displayKey)
		fmt.Println("=============================================================")
	}

	if serverFlags.pattern != "" {
		if err := db.SetTypeConfig(database, "randomstring", randomstring.Config{Pattern: serverFlags.pattern}); err != nil {
			return fmt.Errorf("store pattern config: %w", err)
		}
		logger.Info("validation pattern configured", logging.Pattern(serverFlags.pattern))
	}

	registry := paramtypes.NewRegistry(logger.Named("paramtypes"))
	if err := registry.Register(randomstring.New()); err != nil {
		return fmt.Errorf("register parameter type: %w", err)
	}

	store := paramtypes.NewSQLiteStore(database)
	initCtx := paramtypes.InitContext{
		Logger: logger.Named("paramtypes"),
		Store:  store,
		Config: store,
	}
	if err := registry.Init(initCtx); err != nil {
		return fmt.Errorf("init parameter types: %w", err)
	}

	formSrv := &server.FormServer{
		Store:    store,
		Registry: registry,
		Logger:   logger.Named("forms"),
	}
	apiSrv := &server.APIServer{
		DB:       database,
		Registry: registry,
		Logger:   logger.Named("api"),
	}

	formCfg := server.DefaultServerConfig(fmt.Sprintf(":%d", serverFlags.formPort), formSrv.Handler(), logger.Named("forms"))
	formCfg.TLSCertFile = serverFlags.tlsCert
	formCfg.TLSKeyFile = serverFlags.tlsKey
	formManaged := server.NewManagedServer("form listener", formCfg)

	apiCfg := server.DefaultServerConfig(fmt.Sprintf(":%d", serverFlags.apiPort), apiSrv.Handler(), logger.Named("api"))
	apiCfg.TLSCertFile = serverFlags.tlsCert
	apiCfg.TLSKeyFile = serverFlags.tlsKey
	apiManaged := server.NewManagedServer("admin API", apiCfg)

	formManaged.Start()
	apiManaged.Start()

	if err := formManaged.WaitForStartup(500 * time.Millisecond); err != nil {
		return err
	}
	if err := apiManaged.WaitForStartup(500 * time.Millisecond); err != nil {
		return err
	}

	logger.Info("server started",
		logging.Component("server"),
		zap.Int("form_port", serverFlags.formPort),
		zap.Int("api_port", serverFlags.apiPort))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down", logging.Component("server"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	formManaged.Shutdown(ctx)
	apiManaged.Shutdown(ctx)

	return nil
}
