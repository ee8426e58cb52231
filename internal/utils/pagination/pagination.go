package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateFormat = "2006-01-02"

// EncodeCursor creates a base64 encoded token from a transaction date and row
// ID. Ledger pages are ordered by (transaction_date DESC, id DESC), so the
// pair uniquely positions the next page even when many rows share a date.
func EncodeCursor(txnDate time.Time, id int64) string {
	tokenStr := fmt.Sprintf("%s|%d", txnDate.Format(dateFormat), id)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses the base64 encoded token back into a transaction date
// and row ID.
func DecodeCursor(token string) (time.Time, int64, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	tokenStr := string(decodedBytes)
	parts := strings.SplitN(tokenStr, "|", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (split)")
	}

	txnDate, err := time.ParseInLocation(dateFormat, parts[0], time.UTC)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}

	return txnDate, id, nil
}
