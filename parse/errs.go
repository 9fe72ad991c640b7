package parse

import (
	"errors"
	"fmt"
)

var (
	errInternal = errors.New("internal parse error")

	ErrParse          = errors.New("parse error")
	ErrUnmatchedClose = fmt.Errorf("%w: unmatched close", ErrParse)
	ErrLabelMismatch  = fmt.Errorf("%w: label mismatch", ErrParse)
	ErrIncomplete     = fmt.Errorf("%w: incomplete document", ErrParse)
)

// UnmatchedCloseErr reports a close delimiter with no still-open open
// below it.
type UnmatchedCloseErr struct {
	Label string
	Off   int
}

func (e *UnmatchedCloseErr) Unwrap() error {
	return ErrUnmatchedClose
}

func (e *UnmatchedCloseErr) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("%s: ')' at offset %d", ErrUnmatchedClose.Error(), e.Off)
	}
	return fmt.Sprintf("%s: %q at offset %d", ErrUnmatchedClose.Error(), ")"+e.Label, e.Off)
}

// LabelMismatchErr reports a close whose label differs from the label
// of the innermost open.  Expected is the open's label, Found the
// close's.
type LabelMismatchErr struct {
	Expected, Found string
	Off             int
}

func (e *LabelMismatchErr) Unwrap() error {
	return ErrLabelMismatch
}

func (e *LabelMismatchErr) Error() string {
	return fmt.Sprintf("%s: expected %q, found %q at offset %d",
		ErrLabelMismatch.Error(), e.Expected, e.Found, e.Off)
}

// IncompleteErr reports opens left unmatched when input ends.
type IncompleteErr struct {
	Opens int
}

func (e *IncompleteErr) Unwrap() error {
	return ErrIncomplete
}

func (e *IncompleteErr) Error() string {
	return fmt.Sprintf("%s: %d unmatched open(s)", ErrIncomplete.Error(), e.Opens)
}
