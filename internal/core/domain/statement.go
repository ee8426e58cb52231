package domain

// StagedStatement is the outcome of parsing and deduplicating an uploaded
// statement. Transactions holds only the candidates not already present in
// the ledger, in source row order, awaiting human review before commit.
type StagedStatement struct {
	StatementID    string        `json:"statementID"`
	Transactions   []Transaction `json:"transactions"`
	ParsedCount    int           `json:"parsedCount"`
	DuplicateCount int           `json:"duplicateCount"`
}

// CommitResult reports what happened when staged candidates were written to
// the ledger. DuplicateCount covers candidates that became duplicates between
// staging and commit; zero saved records is a valid outcome, not a failure.
type CommitResult struct {
	Saved          []Transaction `json:"saved"`
	DuplicateCount int           `json:"duplicateCount"`
}
