// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"io"
	"log"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/hackasm/asm"
	hackio "github.com/ezrec/hackasm/io"
	"github.com/ezrec/hackasm/translate"
)

var f = translate.From

// ErrDefine is returned for a malformed --define option.
type ErrDefine string

func (err ErrDefine) Error() string {
	return f("define '%v' is not NAME=ADDRESS", string(err))
}

var (
	output  string
	verbose bool
	symbols bool
	defines []string
)

var rootCmd = &cobra.Command{
	Use:   "hackasm [flags] source.asm",
	Short: "Hack machine assembler",
	Long: `Hackasm translates a Hack assembly program into the .hack text format,
one 16 character binary word per instruction.

Labels are collected in a first pass, so jumps may refer forward. Symbols
that are neither labels nor predefined are allocated data addresses from
16 upwards in order of first use.

Output is only written if the whole program assembles.
`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return assemble(args[0])
	},
}

var disasmCmd = &cobra.Command{
	Use:           "disasm source.hack",
	Short:         "Print the instructions of a .hack file",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return disassemble(args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Output file, '-' for stdout (default source with .hack extension)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	rootCmd.Flags().BoolVarP(&symbols, "symbols", "s", false, "Dump the user symbol table to stderr")
	rootCmd.Flags().StringArrayVarP(&defines, "define", "D", nil, "Predefine a symbol as NAME=ADDRESS")

	rootCmd.AddCommand(disasmCmd)
}

// parseDefine splits a NAME=ADDRESS predefine.
func parseDefine(def string) (name string, address int, err error) {
	name, value, ok := strings.Cut(def, "=")
	if !ok || len(name) == 0 {
		err = ErrDefine(def)
		return
	}

	addr, err := strconv.ParseUint(value, 0, 15)
	if err != nil {
		err = ErrDefine(def)
		return
	}

	address = int(addr)
	return
}

// outputPath returns the .hack file written for a source.
func outputPath(source string) string {
	if len(output) != 0 {
		return output
	}
	if source == "-" {
		return "-"
	}
	return strings.TrimSuffix(source, filepath.Ext(source)) + ".hack"
}

func assemble(source string) (err error) {
	if verbose {
		log.Printf("locale %v", translate.Tag())
	}

	assembler := &asm.Assembler{Verbose: verbose}
	for _, def := range defines {
		name, address, err := parseDefine(def)
		if err != nil {
			return err
		}
		assembler.Predefine(name, address)
	}

	var src hackio.Source
	if source == "-" {
		src = hackio.NewSource(os.Stdin)
	} else {
		src, err = hackio.OpenSource(source)
		if err != nil {
			return
		}
	}
	atexit.Register(func() { src.Close() })

	target := outputPath(source)
	var sink hackio.Sink
	if target == "-" {
		sink = hackio.NewSink(os.Stdout)
	} else {
		sink, err = hackio.CreateSink(target)
		if err != nil {
			return
		}
	}
	atexit.Register(func() { sink.Close() })

	err = assembler.Run(src, sink)
	if err != nil {
		return
	}

	if symbols {
		pp.Fprintln(os.Stderr, maps.Collect(assembler.Symbols.User()))
	}

	if target != "-" {
		log.Print(f("%v: wrote %v", source, target))
	}

	return
}

func disassemble(source string, w io.Writer) (err error) {
	src, err := os.Open(source)
	if err != nil {
		return
	}
	defer src.Close()

	prog, err := asm.Disassemble(src)
	if err != nil {
		return
	}

	for _, op := range prog.Opcodes {
		_, err = translate.Fprintf(w, "%v\n", op.Instruction)
		if err != nil {
			return
		}
	}

	return
}

func main() {
	log.SetFlags(0)

	err := rootCmd.Execute()
	if err != nil {
		atexit.Fatalf("%v: %v", filepath.Base(os.Args[0]), err)
	}

	atexit.Exit(0)
}
