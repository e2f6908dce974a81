// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"errors"
	"fmt"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/logging"

	"github.com/spf13/cobra"
)

// ErrMissingCredentials is returned when a command needs a user but none was given.
var ErrMissingCredentials = errors.New("missing credentials: pass --user/--password or set FINTRACK_USER/FINTRACK_PASSWORD")

// Open loads configuration and builds the container.
func Open(ctx context.Context) (*container.Container, error) {
	cfg, err := config.Load(root.SharedFlags.ConfigFile)
	if err != nil {
		return nil, err
	}
	return container.NewContainer(ctx, cfg)
}

// Credentials resolves the username and password from the flags, falling
// back to the configured session defaults.
func Credentials(cfg *config.Config) (string, string, error) {
	user := root.SharedFlags.User
	password := root.SharedFlags.Password
	if user == "" {
		user = cfg.Session.User
	}
	if password == "" {
		password = cfg.Session.Password
	}
	if user == "" {
		return "", "", ErrMissingCredentials
	}
	return user, password, nil
}

// RunWithLedger opens the container, runs fn and, when persist is set and fn
// succeeded, saves the ledger.
func RunWithLedger(cmd *cobra.Command, persist bool, fn func(c *container.Container) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := Open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := c.Close(); cerr != nil {
			c.GetLogger().WithError(cerr).Warn("Failed to close container")
		}
	}()

	if err := fn(c); err != nil {
		return err
	}
	if persist {
		return c.Persist(ctx)
	}
	return nil
}

// RunWithSession is RunWithLedger after logging in with the resolved credentials.
func RunWithSession(cmd *cobra.Command, persist bool, fn func(c *container.Container) error) error {
	return RunWithLedger(cmd, persist, func(c *container.Container) error {
		user, password, err := Credentials(c.GetConfig())
		if err != nil {
			return err
		}
		if err := c.GetLedger().Login(user, password); err != nil {
			c.GetLogger().Warn("Login failed", logging.F(logging.FieldUsername, user))
			return err
		}
		c.GetLogger().Debug("Logged in", logging.F(logging.FieldUsername, user))
		defer c.GetLedger().Logout()
		return fn(c)
	})
}

// ResolveMonth returns month, or the current month when empty. A malformed
// month is passed through, it simply matches nothing.
func ResolveMonth(month string, logger logging.Logger) string {
	if month == "" {
		return dateutils.CurrentMonth()
	}
	if !dateutils.IsMonthKey(month) && logger != nil {
		logger.Warn("Month is not in YYYY-MM form and will match nothing", logging.F(logging.FieldMonth, month))
	}
	return month
}

// Fprint writes s to the command's output.
func Fprint(cmd *cobra.Command, s string) {
	fmt.Fprint(cmd.OutOrStdout(), s)
}
