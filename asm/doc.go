// Package asm implements a two pass assembler for the Hack 16-bit machine.
//
// Pass one classifies every source line and binds each (LABEL) to the
// address of the next real instruction. Pass two resolves every
// address-load against the completed symbol table, allocating data
// addresses for variables from 16 upwards on first use, and encodes one
// 16-bit word per instruction.
//
// The source syntax is the Hack assembly language:
//
//	@value           // address-load: literal, symbol, or $(expression)
//	(LABEL)          // label definition
//	dest=comp;jump   // compute, dest= and ;jump are optional
//
// A Decode function inverts the encoding for disassembly.
package asm
