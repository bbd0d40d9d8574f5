package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacters is returned when the input contains a letter.
	ErrInvalidCharacters = errors.New("treeweight: input contains alphabetic characters")

	// ErrMalformedNumber is returned when a field is not a base-10 integer.
	ErrMalformedNumber = errors.New("treeweight: malformed number")

	// ErrNoRoot is returned when no record declares parent id -1.
	ErrNoRoot = errors.New("treeweight: no root declared")

	// ErrDuplicateID is returned when a node id is declared twice.
	ErrDuplicateID = errors.New("treeweight: duplicate node id")

	// ErrMultipleRoots is returned when more than one record declares parent id -1.
	ErrMultipleRoots = errors.New("treeweight: multiple roots declared")

	// ErrSelfParent is returned when a node names itself as its parent.
	ErrSelfParent = errors.New("treeweight: node is its own parent")
)

// Kind classifies a ParseError.
type Kind int

const (
	InvalidCharacters Kind = iota + 1
	MalformedNumber
	NoRoot
	DuplicateID
	MultipleRoots
	SelfParent
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case InvalidCharacters:
		return "InvalidCharacters"
	case MalformedNumber:
		return "MalformedNumber"
	case NoRoot:
		return "NoRoot"
	case DuplicateID:
		return "DuplicateID"
	case MultipleRoots:
		return "MultipleRoots"
	case SelfParent:
		return "SelfParent"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case InvalidCharacters:
		return ErrInvalidCharacters
	case MalformedNumber:
		return ErrMalformedNumber
	case NoRoot:
		return ErrNoRoot
	case DuplicateID:
		return ErrDuplicateID
	case MultipleRoots:
		return ErrMultipleRoots
	case SelfParent:
		return ErrSelfParent
	default:
		return nil
	}
}

// ParseError describes why an input was rejected. Line, Column and Field are
// 1-based and zero when they do not apply.
type ParseError struct {
	Kind   Kind
	Line   int
	Column int
	Field  int
	Text   string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Kind.sentinel().Error()
	switch {
	case e.Line > 0 && e.Column > 0:
		msg = fmt.Sprintf("%s at line %d, column %d", msg, e.Line, e.Column)
	case e.Line > 0 && e.Field > 0:
		msg = fmt.Sprintf("%s at line %d, field %d", msg, e.Line, e.Field)
	case e.Line > 0:
		msg = fmt.Sprintf("%s at line %d", msg, e.Line)
	}
	if e.Text != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Text)
	}
	return msg
}

// Unwrap returns the sentinel for the error's kind so errors.Is matches it.
func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

// AsParseError extracts a *ParseError from err's chain.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
