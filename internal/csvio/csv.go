// Package csvio reads and writes a user's transaction history as CSV.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.Discard()

// DefaultDelimiter is used when a zero delimiter is passed.
const DefaultDelimiter = ','

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger.WithField(logging.FieldComponent, logging.ComponentCSV)
}

// Row is the CSV shape of one transaction.
type Row struct {
	ID          string `csv:"ID"`
	Date        string `csv:"Date"`
	Amount      string `csv:"Amount"`
	Category    string `csv:"Category"`
	Description string `csv:"Description"`
	Kind        string `csv:"Kind"`
}

// RowFromTransaction converts a transaction to its CSV row.
func RowFromTransaction(t models.Transaction) Row {
	return Row{
		ID:          t.ID(),
		Date:        t.Date(),
		Amount:      models.FormatAmountExact(t.Amount()),
		Category:    t.Category(),
		Description: t.Description(),
		Kind:        t.Kind().String(),
	}
}

func effective(delimiter rune) rune {
	if delimiter == 0 {
		return DefaultDelimiter
	}
	return delimiter
}

// WriteTransactions writes txs, with a header line, to w.
func WriteTransactions(w io.Writer, txs []models.Transaction, delimiter rune) error {
	rows := make([]Row, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, RowFromTransaction(t))
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = effective(delimiter)

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteTransactionsFile writes txs to path, creating parent directories.
func WriteTransactionsFile(path string, txs []models.Transaction, delimiter rune) error {
	log.Info("Writing transactions to CSV file",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, len(txs)),
		logging.F(logging.FieldDelimiter, string(effective(delimiter))))

	if err := fileutils.EnsureParentDir(path, models.PermissionDirectory); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionExportFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}

	if err := WriteTransactions(file, txs, delimiter); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing CSV file: %w", err)
	}

	log.Info("Successfully wrote transactions to CSV file", logging.F(logging.FieldFile, path))
	return nil
}

// ReadTransactions parses CSV rows from r. The first line must be a header;
// columns are matched by name.
func ReadTransactions(r io.Reader, delimiter rune) ([]Row, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = effective(delimiter)
	csvReader.TrimLeadingSpace = true

	var rows []Row
	if err := gocsv.UnmarshalCSV(csvReader, &rows); err != nil {
		if err == gocsv.ErrEmptyCSVFile {
			return []Row{}, nil
		}
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	return rows, nil
}

// ReadTransactionsFile parses the CSV file at path.
func ReadTransactionsFile(path string, delimiter rune) ([]Row, error) {
	log.Info("Reading CSV file", logging.F(logging.FieldFile, path))

	file, err := os.Open(path)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows, err := ReadTransactions(file, delimiter)
	if err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, err
	}

	log.Info("Successfully read CSV data", logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}
