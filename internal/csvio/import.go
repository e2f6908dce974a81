package csvio

import (
	"fmt"

	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/ledger"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
)

// RowError reports the CSV data row (1-based, header excluded) that failed.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ImportRows records every row on the ledger's logged-in account, in order.
// It stops at the first bad row and returns how many were recorded before it.
// Imported entries get fresh IDs. Recognized dates are rewritten as
// YYYY-MM-DD; others are kept as given.
func ImportRows(l *ledger.Ledger, rows []Row) (int, error) {
	if _, ok := l.CurrentUser(); !ok {
		return 0, &ledger.SessionError{Operation: "import"}
	}

	imported := 0
	for i, row := range rows {
		amount, err := models.ParseAmount(row.Amount)
		if err != nil {
			return imported, &RowError{Line: i + 1, Err: err}
		}
		date, derr := dateutils.Normalize(row.Date)
		if derr != nil {
			log.Warn("Keeping unrecognized date", logging.F(logging.FieldRow, i+1), logging.F(logging.FieldDate, row.Date))
		}
		if _, err := l.RecordTransaction(date, amount, row.Category, row.Description, models.ParseKind(row.Kind)); err != nil {
			return imported, &RowError{Line: i + 1, Err: err}
		}
		imported++
	}

	log.Debug("Imported CSV rows", logging.F(logging.FieldCount, imported))
	return imported, nil
}
