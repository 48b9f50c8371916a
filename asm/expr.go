package asm

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// isIdentifier checks that a symbol can be referenced from an expression.
func isIdentifier(name string) bool {
	for n, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9' && n > 0:
		default:
			return false
		}
	}
	return len(name) > 0
}

// Evaluate computes the address of a $(...) expression. Every bound symbol
// that is a valid identifier is visible to the expression as an int.
func Evaluate(expr string, symbols *SymbolTable) (address int, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for name, value := range symbols.All() {
		if !isIdentifier(name) {
			continue
		}
		pred[name] = starlark.MakeInt(value)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression{Expr: expr, Err: err}
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression{Expr: expr}
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > ADDRESS_MAX {
		err = ErrAddressRange(st_int.String())
		return
	}

	address = int(st_int64)
	return
}

// expression returns the text between the $( ) delimiters of a target.
func (inst Instruction) expression() string {
	return inst.Target[len(EXPRESSION_OPEN) : len(inst.Target)-len(EXPRESSION_CLOSE)]
}

