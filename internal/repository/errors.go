package repository

import (
	"errors"
	"fmt"
)

// FailureKind classifies a storage failure independently of the storage engine.
type FailureKind int

const (
	// FailureOther is any failure the adapter could not classify.
	FailureOther FailureKind = iota
	// FailureNotFound means no row matched (zero rows returned or affected).
	FailureNotFound
	// FailureForeignKey means a write referenced a row that does not exist.
	// Failure.Reference names which reference ("author", "article", "topic").
	FailureForeignKey
	// FailureUniqueViolation means a write collided with an existing key.
	FailureUniqueViolation
	// FailureInvalidText means a parameter could not be coerced to the column type.
	FailureInvalidText
	// FailureUnavailable means the store could not be reached or refused work.
	FailureUnavailable
)

// String returns the kind name used in logs and metric labels.
func (k FailureKind) String() string {
	switch k {
	case FailureNotFound:
		return "not_found"
	case FailureForeignKey:
		return "foreign_key"
	case FailureUniqueViolation:
		return "unique_violation"
	case FailureInvalidText:
		return "invalid_text"
	case FailureUnavailable:
		return "unavailable"
	default:
		return "other"
	}
}

// Failure is the typed error storage adapters return.
// The usecase layer inspects Kind and Reference instead of engine-specific codes.
type Failure struct {
	Kind      FailureKind
	Reference string // which reference was violated, for FailureForeignKey
	Op        string // adapter operation, e.g. "CommentRepo.Create"
	Err       error  // underlying driver error, may be nil
}

// Error returns the operation, kind and underlying cause.
func (f *Failure) Error() string {
	msg := f.Op + ": " + f.Kind.String()
	if f.Reference != "" {
		msg += " (" + f.Reference + ")"
	}
	if f.Err != nil {
		msg += ": " + f.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying driver error.
func (f *Failure) Unwrap() error {
	return f.Err
}

// NotFound returns a FailureNotFound Failure for the given operation.
func NotFound(op string) error {
	return &Failure{Kind: FailureNotFound, Op: op}
}

// AsFailure extracts a Failure from err's chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// Wrap annotates err with the operation name unless it already carries a Failure.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsFailure(err); ok {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
