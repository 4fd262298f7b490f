// Command automata is a CLI front end over the engine's six §6 operations:
// compile a regex to a DFA, run it against text, enumerate all matches,
// run the approximate matcher, and simulate a pre-built PDA. Flag parsing
// follows alterx's goflags pattern, one flagset per subcommand; logging
// goes through gologger the same way, and is the only place a core error
// (ParseError, InvalidState, ResourceLimit, UnsupportedConstruct) becomes a
// human-facing string.
package main

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"

	automata "github.com/kntjspr/automata"
	"github.com/kntjspr/automata/approx"
	"github.com/kntjspr/automata/dfa"
	"github.com/kntjspr/automata/internal/jsonenc"
	"github.com/kntjspr/automata/nfa"
	"github.com/kntjspr/automata/pda"
	"github.com/kntjspr/automata/syntax"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	sub, rest := os.Args[1], os.Args[2:]
	switch sub {
	case "compile":
		runCompile(rest)
	case "match":
		runMatch(rest)
	case "find":
		runFind(rest)
	case "approx":
		runApprox(rest)
	case "pda":
		runPDA(rest)
	case "cfg":
		runCFG(rest)
	case "-h", "--help", "help":
		usage()
	default:
		gologger.Fatal().Msgf("unknown subcommand %q", sub)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: automata <compile|match|find|approx|pda|cfg> [flags]")
}

// exitCode maps a core error to a distinct process exit code, so scripted
// callers can distinguish failure classes without parsing stderr.
func exitCode(err error) int {
	switch err.(type) {
	case *syntax.ParseError:
		return 3
	case *nfa.UnsupportedConstructError:
		return 4
	case *nfa.InvalidStateError:
		return 5
	case *dfa.ResourceLimitError, *pda.ResourceLimitError:
		return 6
	default:
		return 1
	}
}

func fail(err error) {
	gologger.Error().Msgf("%v", err)
	os.Exit(exitCode(err))
}

func newFlagSet(name, description string) *goflags.FlagSet {
	fs := goflags.NewFlagSet()
	fs.SetDescription(description)
	return fs
}

func runCompile(args []string) {
	var pattern string
	fs := newFlagSet("compile", "Compile a regular expression to a minimized DFA and print its JSON envelope.")
	fs.StringVarP(&pattern, "pattern", "p", "", "regular expression to compile")
	parseOrFatal(fs, args)
	if pattern == "" {
		gologger.Fatal().Msg("-pattern is required")
	}

	d, err := automata.CompileRegex(pattern)
	if err != nil {
		fail(err)
	}
	data, err := jsonenc.MarshalDFA(d)
	if err != nil {
		fail(err)
	}
	fmt.Println(string(data))
}

func runMatch(args []string) {
	var pattern, text string
	fs := newFlagSet("match", "Report whether text fully matches pattern.")
	fs.StringVarP(&pattern, "pattern", "p", "", "regular expression")
	fs.StringVarP(&text, "text", "t", "", "text to test")
	parseOrFatal(fs, args)

	d, err := automata.CompileRegex(pattern)
	if err != nil {
		fail(err)
	}
	if d.Accepts(text) {
		fmt.Println("match")
	} else {
		fmt.Println("no match")
		os.Exit(1)
	}
}

func runFind(args []string) {
	var pattern, text string
	fs := newFlagSet("find", "Report every leftmost-longest match of pattern in text.")
	fs.StringVarP(&pattern, "pattern", "p", "", "regular expression")
	fs.StringVarP(&text, "text", "t", "", "text to scan")
	parseOrFatal(fs, args)

	d, err := automata.CompileRegex(pattern)
	if err != nil {
		fail(err)
	}
	for _, m := range d.FindAll(text) {
		fmt.Printf("%d:%d\t%s\n", m.Start, m.End, text[m.Start:m.End])
	}
}

func runApprox(args []string) {
	var pattern, text string
	var maxK int
	var dnaMode bool
	fs := newFlagSet("approx", "Scan text for occurrences of pattern within maxK edits.")
	fs.StringVarP(&pattern, "pattern", "p", "", "pattern to search for")
	fs.StringVarP(&text, "text", "t", "", "text to scan")
	fs.IntVarP(&maxK, "max-k", "k", 0, "maximum edit distance")
	fs.BoolVarP(&dnaMode, "dna", "d", false, "restrict to the DNA alphabet and scan both strands")
	parseOrFatal(fs, args)

	var m *approx.Matcher
	var err error
	if dnaMode {
		m, err = approx.CompileDNA(pattern, maxK, approx.EditAll)
	} else {
		m, err = approx.Compile(pattern, maxK, approx.EditAll)
	}
	if err != nil {
		fail(err)
	}

	if dnaMode {
		for _, sm := range m.FindBothStrands(text) {
			fmt.Printf("%d:%d\t%s\tdist=%d\t%s\n", sm.Start, sm.End, text[sm.Start:sm.End], sm.Distance, sm.Strand)
		}
		return
	}
	for _, match := range m.Find(text) {
		fmt.Printf("%d:%d\t%s\tdist=%d\n", match.Start, match.End, text[match.Start:match.End], match.Distance)
	}
}

func runPDA(args []string) {
	var name, input string
	fs := newFlagSet("pda", "Run a pre-built PDA (parens|anbn|palindrome|rnastemloop) against input.")
	fs.StringVarP(&name, "name", "n", "", "which pre-built PDA to run")
	fs.StringVarP(&input, "input", "i", "", "input string")
	parseOrFatal(fs, args)

	var p *pda.PDA
	switch name {
	case "parens":
		p = pda.BalancedParens()
	case "anbn":
		p = pda.AnBn()
	case "palindrome":
		p = pda.Palindrome()
	case "rnastemloop":
		p = pda.RNAStemLoop(3)
	default:
		gologger.Fatal().Msgf("unknown PDA %q", name)
	}

	ok, err := p.AcceptsFinal(input, pda.DefaultBounds())
	if err != nil {
		fail(err)
	}
	if ok {
		fmt.Println("accept")
	} else {
		fmt.Println("reject")
		os.Exit(1)
	}
}

func runCFG(args []string) {
	gologger.Info().Msg("cfg subcommand accepts grammars programmatically via the pda.CFG type; no textual grammar syntax is defined by this engine")
	os.Exit(2)
}

func parseOrFatal(fs *goflags.FlagSet, args []string) {
	os.Args = append([]string{"automata"}, args...)
	if err := fs.Parse(); err != nil {
		gologger.Fatal().Msgf("could not parse flags: %v", err)
	}
}
