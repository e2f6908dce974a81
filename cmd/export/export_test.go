package export_test

import (
	"testing"

	"fjacquet/fintrack/cmd/export"
	"fjacquet/fintrack/cmd/importcsv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportCommand_Flags(t *testing.T) {
	assert.Equal(t, "export", export.Cmd.Use)
	outputFlag := export.Cmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.Contains(t, outputFlag.Usage, "stdout")

	assert.Equal(t, "import", importcsv.Cmd.Use)
	inputFlag := importcsv.Cmd.Flags().Lookup("input")
	require.NotNil(t, inputFlag)
	assert.Equal(t, "i", inputFlag.Shorthand)
	assert.Contains(t, importcsv.Cmd.Long, "Nothing is saved")
}
