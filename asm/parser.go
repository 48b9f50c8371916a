package asm

import (
	"strconv"
	"strings"
)

// Hack assembly syntax tokens.
const (
	COMMENT          = "//"
	ADDRESS_PREFIX   = "@"
	LABEL_OPEN       = "("
	LABEL_CLOSE      = ")"
	DEST_SEPARATOR   = "="
	JUMP_SEPARATOR   = ";"
	EXPRESSION_OPEN  = "$("
	EXPRESSION_CLOSE = ")"
)

// isSymbol checks for a legal symbol: letters, digits, '_', '.', '$'
// and ':', not starting with a digit.
func isSymbol(name string) bool {
	if len(name) == 0 {
		return false
	}

	for n, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c == '_', c == '.', c == '$', c == ':':
		case c >= '0' && c <= '9':
			if n == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// isDecimal checks for a non-empty string of decimal digits.
func isDecimal(text string) bool {
	if len(text) == 0 {
		return false
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// StripLine removes the trailing comment and surrounding white space.
func StripLine(line string) string {
	line, _, _ = strings.Cut(line, COMMENT)
	return strings.TrimSpace(line)
}

// ParseLine classifies one line of source text. Blank and comment-only
// lines return ok == false and no error.
func ParseLine(line string) (inst Instruction, ok bool, err error) {
	line = StripLine(line)
	if len(line) == 0 {
		return
	}

	ok = true

	switch {
	case strings.HasPrefix(line, ADDRESS_PREFIX):
		inst, err = parseAddress(line[len(ADDRESS_PREFIX):])
	case strings.HasPrefix(line, LABEL_OPEN):
		inst, err = parseLabel(line[len(LABEL_OPEN):])
	default:
		inst, err = parseCompute(line)
	}

	return
}

// parseAddress classifies the target of an address-load.
func parseAddress(target string) (inst Instruction, err error) {
	switch {
	case len(target) == 0:
		err = ErrTargetMissing
	case isDecimal(target):
		var address int
		address, err = strconv.Atoi(target)
		if err != nil {
			err = ErrAddressRange(target)
			return
		}
		inst = MakeLiteral(address)
	case isSymbol(target):
		inst = MakeSymbol(target)
	case strings.HasPrefix(target, EXPRESSION_OPEN) && strings.HasSuffix(target, EXPRESSION_CLOSE):
		expr := target[len(EXPRESSION_OPEN) : len(target)-len(EXPRESSION_CLOSE)]
		if len(strings.TrimSpace(expr)) == 0 {
			err = ErrTargetMissing
			return
		}
		inst = Instruction{Kind: KIND_ADDRESS, Target: target, TargetKind: TARGET_EXPRESSION}
	default:
		err = ErrTargetInvalid
	}

	return
}

// parseLabel classifies the remainder of a label definition.
func parseLabel(rest string) (inst Instruction, err error) {
	name, trailer, found := strings.Cut(rest, LABEL_CLOSE)
	if !found || len(trailer) != 0 || !isSymbol(name) {
		err = ErrLabelSyntax
		return
	}

	inst = MakeLabel(name)
	return
}

// parseCompute splits a compute instruction into dest=comp;jump.
func parseCompute(line string) (inst Instruction, err error) {
	dest := MNEMONIC_NULL
	jump := MNEMONIC_NULL
	comp := line

	if before, after, found := strings.Cut(comp, DEST_SEPARATOR); found {
		dest = strings.TrimSpace(before)
		comp = after
		if len(dest) == 0 || strings.Contains(dest, JUMP_SEPARATOR) {
			err = ErrInstructionInvalid
			return
		}
	}

	if before, after, found := strings.Cut(comp, JUMP_SEPARATOR); found {
		comp = before
		jump = strings.TrimSpace(after)
		if len(jump) == 0 {
			err = ErrInstructionInvalid
			return
		}
	}

	comp = strings.TrimSpace(comp)
	if len(comp) == 0 {
		err = ErrCompMissing
		return
	}

	if strings.ContainsAny(comp+jump, DEST_SEPARATOR+JUMP_SEPARATOR) {
		err = ErrInstructionInvalid
		return
	}

	inst = MakeCompute(dest, comp, jump)
	return
}
