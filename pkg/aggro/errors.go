package aggro

import (
	"github.com/pkg/errors"
)

var (
	// ErrMissingOperand reports a required operand that was not supplied at construction.
	ErrMissingOperand = errors.New("missing operand")
	// ErrInvalidOperandType reports an operand whose value is outside its declared type.
	ErrInvalidOperandType = errors.New("invalid operand type")
	// ErrIndexOutOfRange reports an indexed pipeline access outside the valid range.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnknownField reports an unrecognised field on a closed-shape node.
	ErrUnknownField = errors.New("unknown field")
)

// missingOperand wraps ErrMissingOperand with the name of the omitted operand.
func missingOperand(name string) error {
	return errors.Wrap(ErrMissingOperand, name)
}

// invalidOperand wraps ErrInvalidOperandType with the operand name and the offending value.
func invalidOperand(name string, value any) error {
	return errors.Wrapf(ErrInvalidOperandType, "%s: %v", name, value)
}

// indexOutOfRange wraps ErrIndexOutOfRange with the requested index and the valid length.
func indexOutOfRange(index, length int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", index, length)
}
