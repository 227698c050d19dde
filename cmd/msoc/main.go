/*
Msoc compiles a Monadic Second-Order logic formula into a finite automaton
and, optionally, runs it against an encoded input or prints its transition
table.

Usage:

	msoc [flags] FORMULA

The flags are:

	-v, --version
		Give the current version of msologic and then exit.

	-t, --tree
		Compile against the tree semantics instead of the default word
		semantics.

	-a, --alphabet SYMBOLS
		Base alphabet symbols for word mode (default "ab"). Ignored in tree
		mode.

	-r, --arity SYMBOL=N,...
		Base alphabet symbol arities for tree mode, e.g. "a=2,l=0".

	-i, --input TEXT
		Run the compiled automaton against TEXT: a plain symbol string in
		word mode, or a nested "sym(child,child,...)" expression in tree
		mode. Mutually exclusive with --decode-in.

	--decode-in FILE
		Run the compiled automaton against the binary-encoded input
		previously written by --encode-out (possibly by another msoc
		invocation). Mutually exclusive with --input.

	--encode-out FILE
		Write the input given via --input to FILE in msoc's binary wire
		form, for later replay with --decode-in, instead of running it
		immediately.

	-d, --describe
		Print the compiled automaton's transition table instead of (or in
		addition to, with --input/--decode-in) running it.

Exit status is nonzero if compilation, parsing of the input, or evaluation
fails.
*/
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dekarrin/msologic"
	"github.com/dekarrin/msologic/internal/codec"
	"github.com/dekarrin/msologic/internal/mso/alphabet"
	"github.com/dekarrin/msologic/internal/mso/treeauto"
	"github.com/dekarrin/msologic/internal/present"
	"github.com/dekarrin/msologic/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitCompileError indicates a formula failed to parse or compile.
	ExitCompileError

	// ExitInputError indicates the input given via --input or --decode-in
	// could not be read, parsed, encoded, or evaluated. A rejected input is
	// not an error: it prints "accepts: false" and exits with ExitSuccess.
	ExitInputError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	flagTree    = pflag.BoolP("tree", "t", false, "Compile against the tree semantics")
	flagAlpha   = pflag.StringP("alphabet", "a", "ab", "Base alphabet symbols (word mode)")
	flagArity   = pflag.StringP("arity", "r", "", "Base alphabet symbol arities, e.g. a=2,l=0 (tree mode)")
	flagInput   = pflag.StringP("input", "i", "", "Encoded input to run the compiled automaton against")
	flagDescr   = pflag.BoolP("describe", "d", false, "Print the compiled automaton's transition table")
	flagDecode  = pflag.String("decode-in", "", "Read the input to run against from a binary wire-form file written by --encode-out")
	flagEncode  = pflag.String("encode-out", "", "Write --input's binary wire form to this file instead of running it")
)

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

	if pflag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "ERROR: missing FORMULA argument")
		returnCode = ExitCompileError
		return
	}
	formula := strings.Join(pflag.Args(), " ")

	mode := msologic.ModeWord
	if *flagTree {
		mode = msologic.ModeTree
	}

	base, err := parseBaseAlphabet(mode, *flagAlpha, *flagArity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitCompileError
		return
	}

	log.Printf("compiling formula %q (mode=%v, ceiling=%d)", formula, mode, msologic.DefaultResourceCeiling)
	a, err := msologic.Compile(formula, base, mode)
	if err != nil {
		log.Printf("compile failed: %s", err.Error())
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitCompileError
		return
	}
	log.Printf("compile finished (build %s, states=%d)", a.BuildID, stateCount(a))
	fmt.Printf("compiled OK (build %s)\n", a.BuildID)

	if *flagDescr {
		if mode == msologic.ModeWord {
			fmt.Print(present.StringTransitionTable(a.Word))
		} else {
			fmt.Print(present.TreeTransitionTable(a.Tree))
		}
	}

	var input interface{}
	switch {
	case *flagInput != "" && *flagDecode != "":
		fmt.Fprintln(os.Stderr, "ERROR: --input and --decode-in are mutually exclusive")
		returnCode = ExitInputError
		return
	case *flagEncode != "":
		if *flagInput == "" {
			fmt.Fprintln(os.Stderr, "ERROR: --encode-out requires --input")
			returnCode = ExitInputError
			return
		}
		if err := encodeInputToFile(mode, *flagInput, *flagEncode); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInputError
			return
		}
		fmt.Printf("wrote encoded input to %s\n", *flagEncode)
		return
	case *flagInput != "":
		input, err = parseInput(mode, *flagInput)
	case *flagDecode != "":
		input, err = decodeInputFromFile(mode, *flagDecode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInputError
		return
	}

	if input != nil {
		accepted, err := msologic.Run(a, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInputError
			return
		}
		fmt.Printf("accepts: %t\n", accepted)
	}
}

func stateCount(a *msologic.Automaton) int {
	if a.Mode == msologic.ModeWord {
		return a.Word.States.Len()
	}
	return a.Tree.States.Len()
}

func encodeInputToFile(mode msologic.Mode, text, path string) error {
	input, err := parseInput(mode, text)
	if err != nil {
		return err
	}
	var data []byte
	if mode == msologic.ModeWord {
		data = codec.EncodeWord(input.(msologic.EncodedWord))
	} else {
		data = codec.EncodeTree(input.(*msologic.EncodedTree))
	}
	return os.WriteFile(path, data, 0o644)
}

func decodeInputFromFile(mode msologic.Mode, path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if mode == msologic.ModeWord {
		return codec.DecodeWord(data)
	}
	return codec.DecodeTree(data)
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

// parseInput parses a plain symbol string (word mode) or a nested
// "sym(child,...)" expression (tree mode) into the zero-track encoded shape
// a fully-quantified compiled formula's automaton accepts.
func parseInput(mode msologic.Mode, text string) (interface{}, error) {
	if mode == msologic.ModeWord {
		word := make(msologic.EncodedWord, len(text))
		for i := 0; i < len(text); i++ {
			word[i] = alphabet.Letter{Symbol: text[i]}
		}
		return word, nil
	}
	tree, rest, err := parseTreeInput(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rest) != "" {
		return nil, fmt.Errorf("unexpected trailing input: %q", rest)
	}
	return tree, nil
}

func parseTreeInput(s string) (*msologic.EncodedTree, string, error) {
	if s == "" {
		return nil, "", fmt.Errorf("expected a tree node, got end of input")
	}
	sym := s[0]
	rest := s[1:]
	node := &treeauto.EncodedTree{Letter: alphabet.Letter{Symbol: sym}}
	if rest == "" || rest[0] != '(' {
		return node, rest, nil
	}
	rest = rest[1:] // consume '('
	for {
		rest = strings.TrimLeft(rest, " ")
		if rest == "" {
			return nil, "", fmt.Errorf("unterminated child list after %q", string(sym))
		}
		if rest[0] == ')' {
			return node, rest[1:], nil
		}
		child, next, err := parseTreeInput(rest)
		if err != nil {
			return nil, "", err
		}
		node.Children = append(node.Children, child)
		rest = strings.TrimLeft(next, " ")
		if strings.HasPrefix(rest, ",") {
			rest = rest[1:]
		}
	}
}
