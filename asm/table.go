package asm

// mnemonic binds an assembly mnemonic to its bit field.
type mnemonic struct {
	name string
	code uint16
}

// compTable holds the 7-bit a+c1..c6 field of every computation. The
// a bit (0x40) selects M in place of A as the second operand.
var compTable = [...]mnemonic{
	{"0", 0b0101010},
	{"1", 0b0111111},
	{"-1", 0b0111010},
	{"D", 0b0001100},
	{"A", 0b0110000},
	{"!D", 0b0001101},
	{"!A", 0b0110001},
	{"-D", 0b0001111},
	{"-A", 0b0110011},
	{"D+1", 0b0011111},
	{"A+1", 0b0110111},
	{"D-1", 0b0001110},
	{"A-1", 0b0110010},
	{"D+A", 0b0000010},
	{"D-A", 0b0010011},
	{"A-D", 0b0000111},
	{"D&A", 0b0000000},
	{"D|A", 0b0010101},
	{"M", 0b1110000},
	{"!M", 0b1110001},
	{"-M", 0b1110011},
	{"M+1", 0b1110111},
	{"M-1", 0b1110010},
	{"D+M", 0b1000010},
	{"D-M", 0b1010011},
	{"M-D", 0b1000111},
	{"D&M", 0b1000000},
	{"D|M", 0b1010101},
}

// destTable is indexed by the 3-bit d1 d2 d3 (A D M) field.
var destTable = [...]string{
	MNEMONIC_NULL,
	"M",
	"D",
	"MD",
	"A",
	"AM",
	"AD",
	"AMD",
}

// jumpTable is indexed by the 3-bit j1 j2 j3 (<0 =0 >0) field.
var jumpTable = [...]string{
	MNEMONIC_NULL,
	"JGT",
	"JEQ",
	"JGE",
	"JLT",
	"JNE",
	"JLE",
	"JMP",
}

func compCode(name string) (code uint16, ok bool) {
	for _, entry := range compTable {
		if entry.name == name {
			return entry.code, true
		}
	}
	return
}

func compName(code uint16) (name string, ok bool) {
	for _, entry := range compTable {
		if entry.code == code {
			return entry.name, true
		}
	}
	return
}

func indexOf(table []string, name string) (code uint16, ok bool) {
	for n, entry := range table {
		if entry == name {
			return uint16(n), true
		}
	}
	return
}

func destCode(name string) (uint16, bool) {
	return indexOf(destTable[:], name)
}

func jumpCode(name string) (uint16, bool) {
	return indexOf(jumpTable[:], name)
}
