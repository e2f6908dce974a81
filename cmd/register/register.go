// Package register handles account registration
package register

import (
	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the register command
var Cmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user",
	Long:  `Register a new user with the credentials given by --user and --password.`,
	Args:  cobra.NoArgs,
	RunE:  registerFunc,
}

func registerFunc(cmd *cobra.Command, args []string) error {
	return common.RunWithLedger(cmd, true, func(c *container.Container) error {
		user, password, err := common.Credentials(c.GetConfig())
		if err != nil {
			return err
		}
		if err := c.GetLedger().Register(user, password); err != nil {
			return err
		}
		c.GetLogger().Info("User registered", logging.F(logging.FieldUsername, user))
		common.Fprint(cmd, "Registration successful.\n")
		return nil
	})
}
