/*
Msoi starts an interactive MSO formula session: it reads formulas one at a
time, compiles each against a fixed base alphabet, and reports whether
compilation succeeded.

Usage:

	msoi [flags]

The flags are:

	-v, --version
		Give the current version of msologic and then exit.

	-t, --tree
		Compile formulas against the tree semantics instead of the default
		word semantics.

	-a, --alphabet SYMBOLS
		Base alphabet symbols for word mode (default "ab"). Ignored in tree
		mode.

	-r, --arity SYMBOL=N,...
		Base alphabet symbol arities for tree mode, e.g. "a=2,l=0".

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading input even if launched in a tty
		with stdin and stdout.

Once a session has started, each line is parsed as an MSO formula (spec
§4.4 grammar) and compiled. Type "QUIT" to exit.
*/
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dekarrin/msologic"
	"github.com/dekarrin/msologic/internal/input"
	"github.com/dekarrin/msologic/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitSessionError indicates an unsuccessful program execution due to a
	// problem reading input during the session.
	ExitSessionError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the reader or the base alphabet.
	ExitInitError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	flagTree    = pflag.BoolP("tree", "t", false, "Compile formulas against the tree semantics")
	flagAlpha   = pflag.StringP("alphabet", "a", "ab", "Base alphabet symbols (word mode)")
	flagArity   = pflag.StringP("arity", "r", "", "Base alphabet symbol arities, e.g. a=2,l=0 (tree mode)")
	forceDirect = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
)

type commandReader interface {
	ReadCommand() (string, error)
	Close() error
}

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	mode := msologic.ModeWord
	if *flagTree {
		mode = msologic.ModeTree
	}
	base, err := parseBaseAlphabet(mode, *flagAlpha, *flagArity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	reader, err := newReader(*forceDirect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer reader.Close()

	if err := runUntilQuit(reader, base, mode); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitSessionError
		return
	}
}

func newReader(direct bool) (commandReader, error) {
	if direct {
		return input.NewDirectReader(os.Stdin), nil
	}
	return input.NewInteractiveReader()
}

func runUntilQuit(reader commandReader, base msologic.BaseAlphabet, mode msologic.Mode) error {
	for {
		line, err := reader.ReadCommand()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if strings.EqualFold(strings.TrimSpace(line), "QUIT") {
			return nil
		}

		a, err := msologic.Compile(line, base, mode)
		if err != nil {
			log.Printf("compile failed for %q: %s", line, err.Error())
			fmt.Printf("error: %s\n", err.Error())
			continue
		}
		log.Printf("compiled %q (build %s)", line, a.BuildID)
		fmt.Printf("ok (build %s)\n", a.BuildID)
	}
}

func parseBaseAlphabet(mode msologic.Mode, symbols, arity string) (msologic.BaseAlphabet, error) {
	if mode == msologic.ModeWord {
		return msologic.NewWordAlphabet([]byte(symbols)...), nil
	}
	if arity == "" {
		return msologic.BaseAlphabet{}, fmt.Errorf("tree mode requires --arity")
	}
	table := map[byte]int{}
	for _, pair := range strings.Split(arity, ",") {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || len(parts[0]) != 1 {
			return msologic.BaseAlphabet{}, fmt.Errorf("malformed --arity entry %q", pair)
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return msologic.BaseAlphabet{}, fmt.Errorf("malformed --arity entry %q: %w", pair, err)
		}
		table[parts[0][0]] = n
	}
	return msologic.NewTreeAlphabet(table), nil
}
