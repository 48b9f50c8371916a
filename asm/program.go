package asm

import (
	"bufio"
	"io"
	"iter"
)

// Program is the result of a successful assembly.
type Program struct {
	Opcodes []Opcode
}

// Debug returns the opcode at an instruction address, or nil.
func (prog *Program) Debug(ip int) (op *Opcode) {
	if ip < 0 || ip >= len(prog.Opcodes) {
		return
	}

	op = &prog.Opcodes[ip]
	return
}

// Words returns an iterator over the instruction addresses and words.
func (prog *Program) Words() iter.Seq2[int, Word] {
	return func(yield func(ip int, word Word) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Ip, op.Word) {
				return
			}
		}
	}
}

// Binary returns the program as raw machine words.
func (prog *Program) Binary() (bins []uint16) {
	for _, word := range prog.Words() {
		bins = append(bins, uint16(word))
	}

	return
}

// WriteTo writes the program in .hack text form, one word per line.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	writer := bufio.NewWriter(w)
	for _, word := range prog.Words() {
		var count int
		count, err = writer.WriteString(word.String() + "\n")
		n += int64(count)
		if err != nil {
			return
		}
	}

	err = writer.Flush()
	return
}

// Disassemble decodes a .hack text source into a Program. Each opcode's
// Instruction is the decoded form of its word.
func Disassemble(src io.Reader) (prog *Program, err error) {
	prog = &Program{}

	lines := bufio.NewScanner(src)
	lineno := 0
	for lines.Scan() {
		lineno++
		text := lines.Text()
		line := StripLine(text)
		if len(line) == 0 {
			continue
		}

		var word Word
		var inst Instruction
		word, err = ParseWord(line)
		if err == nil {
			inst, err = Decode(word)
		}
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
			return
		}

		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo:      lineno,
			Ip:          len(prog.Opcodes),
			Line:        text,
			Instruction: inst,
			Word:        word,
		})
	}

	err = lines.Err()
	if err != nil {
		prog = nil
	}

	return
}
