package importcsv_test

import (
	"testing"

	"fjacquet/fintrack/cmd/importcsv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "import", importcsv.Cmd.Use)
	assert.Equal(t, "Import transactions from CSV", importcsv.Cmd.Short)
	assert.Contains(t, importcsv.Cmd.Long, "Date, Amount, Category, Description, Kind")
	assert.Contains(t, importcsv.Cmd.Long, "Nothing is saved if any row is invalid")
	assert.NotNil(t, importcsv.Cmd.RunE)
	assert.Error(t, importcsv.Cmd.Args(importcsv.Cmd, []string{"file.csv"}))
}

func TestImportCommand_InputFlag(t *testing.T) {
	flag := importcsv.Cmd.Flags().Lookup("input")
	require.NotNil(t, flag)
	assert.Equal(t, "i", flag.Shorthand)
	assert.Empty(t, flag.DefValue)
	assert.Contains(t, flag.Usage, "CSV")
	assert.Equal(t, []string{"true"}, flag.Annotations["cobra_annotation_bash_completion_one_required_flag"])
}

func TestImportCommand_MissingInputFails(t *testing.T) {
	err := importcsv.Cmd.ValidateRequiredFlags()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"input"`)
}
