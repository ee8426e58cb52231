// Package statement turns a decoded bank statement spreadsheet into
// transaction candidates and filters out rows already present in the ledger.
// Decoding the upload (CSV, xlsx, ...) into rows of cells is the caller's
// job; this package only sees plain rows.
package statement

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/categorize"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// Header tokens required in a statement export, matched against trimmed,
// lowercased cells.
const (
	colDate       = "date"
	colNarration  = "narration"
	colWithdrawal = "withdrawal amt."
	colDeposit    = "deposit amt."
)

var (
	// ErrEmptyDocument is returned for an upload with no rows at all.
	ErrEmptyDocument = errors.New("statement has no rows")

	// ErrHeaderNotFound is returned when no row carries both a date and a
	// narration column. Bank exports prepend a variable number of title rows,
	// so the header is searched from the top rather than assumed at row 0.
	ErrHeaderNotFound = errors.New("no header row with date and narration columns found")

	// ErrMissingColumns is returned when the header row was found but lacks
	// one of the four required columns.
	ErrMissingColumns = errors.New("header row is missing required columns")
)

// amountCleaner strips currency symbols and thousands separators, keeping
// only digits, the decimal point and a sign.
var amountCleaner = regexp.MustCompile(`[^0-9.\-]`)

// Parse locates the transaction header row and converts the data rows below
// it into transaction candidates, in source order. Document-level problems
// (empty upload, missing header or columns) fail loudly; individual
// malformed rows are dropped silently, since the human review step that
// follows surfaces the parsed count as an integrity check.
func Parse(rows [][]string, table categorize.Table) ([]domain.Transaction, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDocument
	}

	headerIdx, columns, err := findHeader(rows)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, required := range []string{colDate, colNarration, colWithdrawal, colDeposit} {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	txns := make([]domain.Transaction, 0, len(rows)-headerIdx-1)
	for _, row := range rows[headerIdx+1:] {
		if txn, ok := parseRow(row, columns, table); ok {
			txns = append(txns, txn)
		}
	}
	return txns, nil
}

// findHeader scans from the top for the first row containing both a date and
// a narration cell, and returns its index plus a column-name → cell-index map.
func findHeader(rows [][]string) (int, map[string]int, error) {
	for i, row := range rows {
		columns := make(map[string]int, len(row))
		for j, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name == "" {
				continue
			}
			if _, exists := columns[name]; !exists {
				columns[name] = j
			}
		}
		if _, hasDate := columns[colDate]; !hasDate {
			continue
		}
		if _, hasNarration := columns[colNarration]; !hasNarration {
			continue
		}
		return i, columns, nil
	}
	return 0, nil, ErrHeaderNotFound
}

func parseRow(row []string, columns map[string]int, table categorize.Table) (domain.Transaction, bool) {
	if isBlankRow(row) {
		return domain.Transaction{}, false
	}
	// Statement footers and section separators start with an asterisk.
	if strings.HasPrefix(strings.TrimSpace(row[0]), "*") {
		return domain.Transaction{}, false
	}

	dateCell := strings.TrimSpace(cellAt(row, columns[colDate]))
	description := strings.TrimSpace(cellAt(row, columns[colNarration]))
	if dateCell == "" || description == "" {
		return domain.Transaction{}, false
	}

	parsed, ok := dates.ParseDate(dateCell)
	if !ok {
		return domain.Transaction{}, false
	}

	withdrawal := parseAmountCell(cellAt(row, columns[colWithdrawal]))
	deposit := parseAmountCell(cellAt(row, columns[colDeposit]))

	// Deposit wins when both are present; a row with neither records no cash
	// movement and is skipped.
	var amount decimal.Decimal
	switch {
	case deposit.IsPositive():
		amount = deposit
	case withdrawal.IsPositive():
		amount = withdrawal.Neg()
	default:
		return domain.Transaction{}, false
	}

	txn := domain.Transaction{
		Date:        dates.FormatDate(parsed),
		Description: description,
		Category:    categorize.Categorize(description, table),
	}
	txn.SetAmount(amount)
	return txn, true
}

// parseAmountCell extracts a decimal from a numeric cell, tolerating currency
// symbols, commas and surrounding noise. Blank or unparseable cells are zero.
func parseAmountCell(cell string) decimal.Decimal {
	cleaned := amountCleaner.ReplaceAllString(cell, "")
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return value
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
