package summary_test

import (
	"testing"

	"fjacquet/fintrack/cmd/summary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryCommand_Metadata(t *testing.T) {
	assert.Equal(t, "summary", summary.Cmd.Use)
	assert.NotEmpty(t, summary.Cmd.Short)
	assert.NotNil(t, summary.Cmd.RunE)

	monthFlag := summary.Cmd.Flags().Lookup("month")
	require.NotNil(t, monthFlag)
	assert.Equal(t, "m", monthFlag.Shorthand)
	assert.Empty(t, monthFlag.DefValue)
	assert.Contains(t, monthFlag.Usage, "YYYY-MM")
}
