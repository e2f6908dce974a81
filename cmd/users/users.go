// Package users lists registered usernames
package users

import (
	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/internal/container"

	"github.com/spf13/cobra"
)

// Cmd represents the users command
var Cmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	Long:  `List every registered username in registration order.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.RunWithLedger(cmd, false, func(c *container.Container) error {
			for _, name := range c.GetLedger().ListUsernames() {
				common.Fprint(cmd, name+"\n")
			}
			return nil
		})
	},
}
