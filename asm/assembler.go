// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"iter"
	"log"
	"slices"

	hackio "github.com/ezrec/hackasm/io"
)

// Opcode is a real instruction with its source location and encoding.
type Opcode struct {
	LineNo      int    // Source line number.
	Ip          int    // Instruction address.
	Line        string // Raw source text.
	Instruction        // Classified, and after pass 2 resolved, instruction.
	Word        Word   // Encoded instruction, valid after pass 2.
}

// Assembler is a two pass assembler for the Hack machine.
type Assembler struct {
	Verbose bool         // If set, verbosely logs the assembler actions.
	Symbols *SymbolTable // Symbols bound by the most recent run.
	Opcode  []Opcode     // Instructions retained by pass 1.

	predefine map[string]int // Predefines
}

// Predefine binds a symbol at the start of every run.
func (asm *Assembler) Predefine(name string, address int) {
	if asm.predefine == nil {
		asm.predefine = map[string]int{name: address}
	} else {
		asm.predefine[name] = address
	}
}

// reset prepares the assembler for a new run.
func (asm *Assembler) reset() (err error) {
	asm.Opcode = asm.Opcode[:0]
	asm.Symbols = NewSymbolTable()

	for name, address := range asm.predefine {
		err = asm.Symbols.Define(name, address)
		if err != nil {
			return
		}
	}

	return
}

// pass1 binds every label to the address of the next real instruction and
// retains the real instructions for pass 2.
func (asm *Assembler) pass1(lines iter.Seq2[int, string]) (err error) {
	for lineno, text := range lines {
		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		var inst Instruction
		var ok bool
		inst, ok, err = ParseLine(text)
		if err != nil {
			return &ErrSyntax{LineNo: lineno, Line: text, Err: err}
		}
		if !ok {
			continue
		}

		ip := len(asm.Opcode)

		if inst.Kind == KIND_LABEL {
			err = asm.Symbols.Define(inst.Name, ip)
			if err != nil {
				return &ErrSyntax{LineNo: lineno, Line: text, Err: err}
			}
			if asm.Verbose {
				log.Printf("label %v = %v\n", inst.Name, ip)
			}
			continue
		}

		asm.Opcode = append(asm.Opcode, Opcode{
			LineNo:      lineno,
			Ip:          ip,
			Line:        text,
			Instruction: inst,
		})
	}

	return
}

// resolve determines the address of an address-load target.
func (asm *Assembler) resolve(inst *Instruction) (err error) {
	switch inst.TargetKind {
	case TARGET_SYMBOL:
		_, bound := asm.Symbols.Lookup(inst.Target)
		inst.Address, err = asm.Symbols.Resolve(inst.Target)
		if err == nil && !bound && asm.Verbose {
			log.Printf("variable %v = %v\n", inst.Target, inst.Address)
		}
	case TARGET_EXPRESSION:
		inst.Address, err = Evaluate(inst.expression(), asm.Symbols)
	}

	return
}

// pass2 resolves and encodes the retained instructions.
func (asm *Assembler) pass2() (err error) {
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if op.Kind == KIND_ADDRESS {
			err = asm.resolve(&op.Instruction)
			if err != nil {
				return &ErrSyntax{LineNo: op.LineNo, Line: op.Line, Err: err}
			}
		}

		op.Word, err = Encode(op.Instruction)
		if err != nil {
			return &ErrSyntax{LineNo: op.LineNo, Line: op.Line, Err: err}
		}
	}

	return
}

// assemble runs both passes over a source.
func (asm *Assembler) assemble(src hackio.Source) (prog *Program, err error) {
	err = asm.reset()
	if err != nil {
		return
	}

	err = asm.pass1(src.Lines())
	if err != nil {
		return
	}

	err = src.Err()
	if err != nil {
		return
	}

	err = asm.pass2()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	return asm.assemble(hackio.NewSource(input))
}

// Run assembles src and emits every word to sink. Both src and sink are
// closed before Run returns; sink is committed only if the whole program
// was assembled and emitted.
func (asm *Assembler) Run(src hackio.Source, sink hackio.Sink) (err error) {
	defer func() {
		close_err := sink.Close()
		if err == nil {
			err = close_err
		}
	}()

	defer func() {
		close_err := src.Close()
		if err == nil {
			err = close_err
		}
	}()

	prog, err := asm.assemble(src)
	if err != nil {
		return
	}

	for _, word := range prog.Words() {
		err = sink.Emit(word.String())
		if err != nil {
			return
		}
	}

	err = sink.Commit()

	return
}
