package cases

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("case not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrInvalidInput     = errors.New("invalid input")
)

// ImportError is the single error type callers of ImportCase see. It carries
// the case number and the causing error, reachable through Unwrap.
type ImportError struct {
	CaseNumber string
	Err        error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import case %s: %v", e.CaseNumber, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
