package main

import (
	"errors"

	"github.com/samber/do"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/serviceflow/serviceflow-api/internal/bootstrap"
	"github.com/serviceflow/serviceflow-api/internal/modules/repo"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
)

var (
	superuserName     string
	superuserEmail    string
	superuserPassword string
)

var createSuperuserCmd = &cobra.Command{
	Use:   "create-superuser",
	Short: "Create the bootstrap superuser if it does not exist",
	Long: `Create a superuser account. Flags override the bootstrap section of the
configuration (BOOTSTRAP_SUPERUSEREMAIL, BOOTSTRAP_SUPERUSERPASSWORD).
An existing account with the same email is left unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if superuserName != "" {
			cfg.Bootstrap.SuperuserName = superuserName
		}
		if superuserEmail != "" {
			cfg.Bootstrap.SuperuserEmail = superuserEmail
		}
		if superuserPassword != "" {
			cfg.Bootstrap.SuperuserPassword = superuserPassword
		}
		if cfg.Bootstrap.SuperuserEmail == "" || cfg.Bootstrap.SuperuserPassword == "" {
			return errors.New("email and password are required")
		}

		inj := bootstrap.BuildContainer(cfg)
		defer bootstrap.Close(inj, cfg)

		return bootstrap.EnsureSuperuserExists(cmd.Context(),
			do.MustInvoke[repo.UserRepo](inj),
			do.MustInvoke[service.CredentialService](inj),
			cfg,
			do.MustInvoke[*zap.Logger](inj),
		)
	},
}

func init() {
	createSuperuserCmd.Flags().StringVar(&superuserName, "name", "", "display name")
	createSuperuserCmd.Flags().StringVar(&superuserEmail, "email", "", "login email")
	createSuperuserCmd.Flags().StringVar(&superuserPassword, "password", "", "password")
}
