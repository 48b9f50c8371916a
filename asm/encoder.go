package asm

import (
	"fmt"
	"strconv"
)

const (
	ADDRESS_MAX = 0x7fff // Largest 15-bit address.

	opCompute   = Word(0b111 << 13)
	opMask      = Word(0b111 << 13)
	compShift   = 6
	destShift   = 3
	jumpShift   = 0
	compMask    = 0x7f
	destMask    = 0x7
	jumpMask    = 0x7
	addressMask = Word(ADDRESS_MAX)
)

// Word is a single encoded Hack instruction.
type Word uint16

// String returns the 16 character binary form, most significant bit first.
func (word Word) String() string {
	return fmt.Sprintf("%016b", uint16(word))
}

// IsCompute returns true if the word is a compute instruction.
func (word Word) IsCompute() bool {
	return word&0x8000 != 0
}

// ParseWord parses the 16 character binary form of a word.
func ParseWord(text string) (word Word, err error) {
	if len(text) != 16 {
		err = ErrWordInvalid
		return
	}
	value, err := strconv.ParseUint(text, 2, 16)
	if err != nil {
		err = ErrWordInvalid
		return
	}
	word = Word(value)
	return
}

// Encode converts a resolved address-load or compute instruction into its
// machine word. Label definitions have no encoding and cause a panic.
func Encode(inst Instruction) (word Word, err error) {
	switch inst.Kind {
	case KIND_ADDRESS:
		if inst.Address < 0 || inst.Address > ADDRESS_MAX {
			err = ErrAddressRange(strconv.Itoa(inst.Address))
			return
		}
		word = Word(inst.Address)
	case KIND_COMPUTE:
		comp, ok := compCode(inst.Comp)
		if !ok {
			err = ErrMnemonic{Field: "comp", Mnemonic: inst.Comp}
			return
		}
		dest, ok := destCode(inst.Dest)
		if !ok {
			err = ErrMnemonic{Field: "dest", Mnemonic: inst.Dest}
			return
		}
		jump, ok := jumpCode(inst.Jump)
		if !ok {
			err = ErrMnemonic{Field: "jump", Mnemonic: inst.Jump}
			return
		}
		word = opCompute | Word(comp<<compShift) | Word(dest<<destShift) | Word(jump<<jumpShift)
	default:
		panic(fmt.Sprintf("asm: cannot encode %v instruction %v", inst.Kind, inst))
	}

	return
}

// Decode converts a machine word back into an instruction. Address words
// decode to literal address-loads.
func Decode(word Word) (inst Instruction, err error) {
	if !word.IsCompute() {
		inst = MakeLiteral(int(word & addressMask))
		return
	}

	if word&opMask != opCompute {
		err = ErrWordInvalid
		return
	}

	comp, ok := compName(uint16(word>>compShift) & compMask)
	if !ok {
		err = ErrWordInvalid
		return
	}

	inst = MakeCompute(
		destTable[(word>>destShift)&destMask],
		comp,
		jumpTable[(word>>jumpShift)&jumpMask],
	)

	return
}
