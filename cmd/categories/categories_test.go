package categories_test

import (
	"testing"

	"fjacquet/fintrack/cmd/categories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categories", categories.Cmd.Use)
	assert.NotEmpty(t, categories.Cmd.Short)
	assert.NotNil(t, categories.Cmd.RunE)

	monthFlag := categories.Cmd.Flags().Lookup("month")
	require.NotNil(t, monthFlag)
	assert.Equal(t, "m", monthFlag.Shorthand)
	assert.Empty(t, monthFlag.DefValue)
	assert.Contains(t, monthFlag.Usage, "YYYY-MM")
}
