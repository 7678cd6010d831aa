package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/serviceflow/serviceflow-api/internal/config"
)

var version = "dev"

// @title						ServiceFlow API
// @version					0.1.0
// @description				Multi-tenant booking and CRM backend.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the access token.
// @securityDefinitions.apikey	APIKeyAuth
// @in							header
// @name						X-API-KEY
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "serviceflow",
	Short:         "ServiceFlow API - bookings, services and subscribers for your projects",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	// version needs no configuration
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("serviceflow version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createSuperuserCmd)
}
