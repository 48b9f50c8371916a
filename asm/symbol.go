package asm

import (
	"iter"
	"strconv"

	"github.com/ezrec/hackasm/internal"
)

// VARIABLE_BASE is the data address of the first allocated variable.
const VARIABLE_BASE = 16

// Predefined architectural symbols, in the order they are listed.
var predefined = [...]struct {
	name    string
	address int
}{
	{"R0", 0}, {"R1", 1}, {"R2", 2}, {"R3", 3},
	{"R4", 4}, {"R5", 5}, {"R6", 6}, {"R7", 7},
	{"R8", 8}, {"R9", 9}, {"R10", 10}, {"R11", 11},
	{"R12", 12}, {"R13", 13}, {"R14", 14}, {"R15", 15},
	{"SP", 0},
	{"LCL", 1},
	{"ARG", 2},
	{"THIS", 3},
	{"THAT", 4},
	{"SCREEN", 0x4000},
	{"KBD", 0x6000},
}

// Predefined returns the address of an architectural symbol.
func Predefined(name string) (address int, ok bool) {
	for _, sym := range predefined {
		if sym.name == name {
			return sym.address, true
		}
	}
	return
}

// PredefinedSymbols returns an iterator over the architectural symbols.
func PredefinedSymbols() iter.Seq2[string, int] {
	return func(yield func(name string, address int) bool) {
		for _, sym := range predefined {
			if !yield(sym.name, sym.address) {
				return
			}
		}
	}
}

// SymbolTable maps symbol names to addresses. Architectural symbols are
// always present; user symbols are bound once and never change. The zero
// value is an empty table ready to use.
type SymbolTable struct {
	symbol    map[string]int // User bound symbols.
	variables int            // Count of allocated variables.
}

// NewSymbolTable creates a symbol table holding only the architectural symbols.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbol: make(map[string]int, 16),
	}
}

// Lookup returns the address bound to name.
func (st *SymbolTable) Lookup(name string) (address int, ok bool) {
	address, ok = Predefined(name)
	if ok {
		return
	}

	address, ok = st.symbol[name]
	return
}

// Define binds name to address.
func (st *SymbolTable) Define(name string, address int) (err error) {
	if address < 0 || address > ADDRESS_MAX {
		err = ErrAddressRange(strconv.Itoa(address))
		return
	}

	_, ok := st.Lookup(name)
	if ok {
		err = ErrSymbolDuplicate(name)
		return
	}

	if st.symbol == nil {
		st.symbol = make(map[string]int, 16)
	}
	st.symbol[name] = address

	return
}

// Allocate binds name to the next free variable address.
func (st *SymbolTable) Allocate(name string) (address int, err error) {
	address = VARIABLE_BASE + st.variables
	err = st.Define(name, address)
	if err != nil {
		return
	}

	st.variables++

	return
}

// Resolve returns the address bound to name, allocating a variable
// address if name is not yet bound.
func (st *SymbolTable) Resolve(name string) (address int, err error) {
	address, ok := st.Lookup(name)
	if ok {
		return
	}

	return st.Allocate(name)
}

// Len returns the number of user bound symbols.
func (st *SymbolTable) Len() int {
	return len(st.symbol)
}

// Variables returns the number of allocated variables.
func (st *SymbolTable) Variables() int {
	return st.variables
}

// User returns an iterator over the user bound symbols, ordered by name.
func (st *SymbolTable) User() iter.Seq2[string, int] {
	return internal.IterSeq2Sorted(st.symbol)
}

// All returns an iterator over the architectural symbols followed by the
// user bound symbols.
func (st *SymbolTable) All() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(PredefinedSymbols(), st.User())
}
