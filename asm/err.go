package asm

import (
	"errors"

	"github.com/ezrec/hackasm/translate"
)

var f = translate.From

var (
	// Parser errors
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrLabelSyntax        = errors.New(f("label syntax"))
	ErrCompMissing        = errors.New(f("comp missing"))
	ErrTargetMissing      = errors.New(f("target missing"))
	ErrTargetInvalid      = errors.New(f("target invalid"))

	// Decoder errors
	ErrWordInvalid = errors.New(f("word invalid"))
)

// ErrSymbolDuplicate is returned when an already bound symbol is bound again.
type ErrSymbolDuplicate string

func (err ErrSymbolDuplicate) Error() string {
	return f("symbol %v duplicated", string(err))
}

// ErrAddressRange is returned for an address outside of 0..ADDRESS_MAX.
type ErrAddressRange string

func (err ErrAddressRange) Error() string {
	return f("address %v out of range", string(err))
}

func (err ErrAddressRange) Is(target error) (ok bool) {
	_, ok = target.(ErrAddressRange)
	return
}

// ErrMnemonic is returned when a compute field is not in its lookup table.
type ErrMnemonic struct {
	Field    string // "comp", "dest" or "jump"
	Mnemonic string
}

func (err ErrMnemonic) Error() string {
	return f("%v mnemonic '%v' unknown", err.Field, err.Mnemonic)
}

func (err ErrMnemonic) Is(target error) (ok bool) {
	_, ok = target.(ErrMnemonic)
	return
}

// ErrParseExpression is returned when a $(...) target does not evaluate
// to an integer.
type ErrParseExpression struct {
	Expr string
	Err  error
}

func (err ErrParseExpression) Error() string {
	if err.Err == nil {
		return f("$(%v) is not a valid expression", err.Expr)
	}
	return f("$(%v) is not a valid expression: %v", err.Expr, err.Err)
}

func (err ErrParseExpression) Unwrap() error {
	return err.Err
}

func (err ErrParseExpression) Is(target error) (ok bool) {
	_, ok = target.(ErrParseExpression)
	return
}

// ErrSyntax locates an error at a source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
