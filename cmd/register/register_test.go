package register_test

import (
	"testing"

	"fjacquet/fintrack/cmd/register"

	"github.com/stretchr/testify/assert"
)

func TestRegisterCommand_Metadata(t *testing.T) {
	assert.Equal(t, "register", register.Cmd.Use)
	assert.Equal(t, "Register a new user", register.Cmd.Short)
	assert.Contains(t, register.Cmd.Long, "--user")
	assert.NotNil(t, register.Cmd.RunE)
	assert.Error(t, register.Cmd.Args(register.Cmd, []string{"extra"}))
}
