package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"

	"github.com/quasilyte/lgrep"
)

// Following the grep tool convention.
const (
	exitMatched    = 0
	exitNotMatched = 1
	exitError      = 2
)

func main() {
	exitCode, err := mainNoExit()
	if err != nil {
		log.Printf("error: %v", err)
		os.Exit(exitError)
	}
	os.Exit(exitCode)
}

func mainNoExit() (int, error) {
	log.SetFlags(0)

	envCfg, err := loadEnvConfig()
	if err != nil {
		return exitError, fmt.Errorf("load env config: %v", err)
	}

	var args arguments
	parseFlags(&args, envCfg)

	p := &program{
		args: args,
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"validate flags", p.validateFlags},
		{"start profiling", p.startProfiling},
		{"compile pattern", p.compilePattern},
		{"open input", p.openInput},
		{"execute search", p.executeSearch},
		{"print summary", p.printSummary},
		{"finish profiling", p.finishProfiling},
	}

	for _, step := range steps {
		if args.verbose {
			log.Printf("debug: starting %q step", step.name)
		}
		if err := step.fn(); err != nil {
			return exitError, fmt.Errorf("%s: %v", step.name, err)
		}
	}

	if p.numMatches == 0 {
		return exitNotMatched, nil
	}
	return exitMatched, nil
}

type arguments struct {
	showLineNumbers bool
	countOnly       bool
	caseIgnore      bool
	matchOnly       bool

	verbose bool
	limit   uint64

	noColor         bool
	lineNumberColor string
	matchColor      string

	cpuProfile string
	memProfile string

	pattern  string
	filename string
}

func parseFlags(args *arguments, env envConfig) {
	flag.Usage = func() {
		const usage = `Usage: lgrep [flags...] pattern [file]
Where:
  flags are command-line arguments that are listed in -help (see below)
  pattern is a regexp that describes what is being matched
  file is an optional input file; stdin is read when it's omitted
Examples:
  # Find ERROR lines in a log file, with line numbers.
  lgrep -n ERROR app.log
  # Count the lines that mention a user id, case-insensitively.
  cat audit.log | lgrep -c -i 'user=\d+'
  # Print only the matched fragments, one per line.
  lgrep -o '[a-z]+@[a-z.]+' contacts.txt

The output colors can be configured with "-color-<name>" flags.
Use -no-color to disable the output coloring.

Exit status:
  0 if something is matched
  1 if nothing is matched
  2 if error occurred

Supported command-line flags:
`
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}

	flag.BoolVar(&args.verbose, "v", false,
		`verbose mode: turn on additional debug logging`)
	flag.Uint64Var(&args.limit, "limit", env.Limit,
		`stop after this many matched lines, 0 for unlimited, can also set via $LGREP_LIMIT`)
	flag.StringVar(&args.memProfile, "memprofile", "",
		`write memory profile to the specified file`)
	flag.StringVar(&args.cpuProfile, "cpuprofile", "",
		`write CPU profile to the specified file`)

	flag.BoolVar(&args.showLineNumbers, "n", false,
		`prefix every output line with its 1-based line number`)
	flag.BoolVar(&args.countOnly, "c", false,
		`count mode that discards all match data, but prints the total matched lines count`)
	flag.BoolVar(&args.caseIgnore, "i", false,
		`case-insensitive matching`)
	flag.BoolVar(&args.matchOnly, "o", false,
		`print only the matched fragments, one per line`)

	flag.BoolVar(&args.noColor, "no-color", env.NoColor,
		`disable colored output, can also set via $LGREP_NO_COLOR`)
	flag.StringVar(&args.lineNumberColor, "color-line", env.ColorLine,
		`line number text color, can also override via $LGREP_COLOR_LINE`)
	flag.StringVar(&args.matchColor, "color-match", env.ColorMatch,
		`matched text color, can also override via $LGREP_COLOR_MATCH`)

	flag.Parse()

	argv := flag.Args()
	if len(argv) != 0 {
		args.pattern = argv[0]
	}
	if len(argv) >= 2 {
		args.filename = argv[1]
	}

	if args.verbose {
		log.Printf("debug: pattern: %s", args.pattern)
		log.Printf("debug: filename: %s", args.filename)
	}
}

type program struct {
	args arguments

	searcher *lgrep.Searcher
	format   lgrep.OutputFormat

	input  io.ReadCloser
	stdout io.Writer
	output *bufio.Writer

	numMatches uint64

	cpuProfile bytes.Buffer
}

func (p *program) validateFlags() error {
	if p.args.pattern == "" {
		return fmt.Errorf("pattern can't be empty")
	}

	if _, err := colorizeText("", p.args.lineNumberColor); err != nil {
		return fmt.Errorf("color-line: %v", err)
	}
	if _, err := colorizeText("", p.args.matchColor); err != nil {
		return fmt.Errorf("color-match: %v", err)
	}

	if p.args.limit == 0 {
		p.args.limit = math.MaxUint64
	}

	return nil
}

func (p *program) startProfiling() error {
	if p.args.cpuProfile == "" {
		return nil
	}

	if err := pprof.StartCPUProfile(&p.cpuProfile); err != nil {
		return fmt.Errorf("could not start CPU profile: %v", err)
	}

	return nil
}

func (p *program) compilePattern() error {
	opts := lgrep.Options{
		ShowLineNumber: p.args.showLineNumbers,
		CountOnly:      p.args.countOnly,
		CaseIgnore:     p.args.caseIgnore,
		MatchOnly:      p.args.matchOnly,
	}
	searcher, err := lgrep.NewSearcher(p.args.pattern, opts)
	if err != nil {
		return err
	}

	p.searcher = searcher
	p.format = searcher.OutputFormat()

	if p.args.verbose {
		log.Printf("debug: output format: %v", p.format)
	}

	return nil
}

func (p *program) openInput() error {
	if p.args.filename == "" {
		p.input = io.NopCloser(os.Stdin)
		return nil
	}
	f, err := os.Open(p.args.filename)
	if err != nil {
		return err
	}
	p.input = f
	return nil
}

func (p *program) executeSearch() error {
	defer p.input.Close()

	if p.stdout == nil {
		p.stdout = os.Stdout
	}
	p.output = bufio.NewWriter(p.stdout)
	// Matches printed before a failure stay committed: flush the buffered
	// lines even when the scan or a write errors out mid-stream.
	defer p.output.Flush()

	scan := p.searcher.Search(lgrep.NewReaderSource(p.input))
	for scan.Next() {
		p.numMatches++
		if err := p.printResult(scan.Result()); err != nil {
			return err
		}
		if p.numMatches >= p.args.limit {
			if p.args.verbose {
				log.Printf("debug: results limited to %d matched lines", p.args.limit)
			}
			break
		}
	}
	if err := scan.Err(); err != nil {
		return err
	}

	if err := p.output.Flush(); err != nil {
		return &lgrep.WriteError{Err: err}
	}
	return nil
}

func (p *program) printResult(result *lgrep.SearchResult) error {
	if p.colorsEnabled() {
		s, err := p.renderColored(result)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(p.output, s); err != nil {
			return &lgrep.WriteError{Err: err}
		}
		return nil
	}
	return result.Format(p.output, p.format)
}

// Only the whole-line formats get colored output: count mode prints nothing
// per line and -o fragments are meant for piping into other tools.
func (p *program) colorsEnabled() bool {
	if p.args.noColor {
		return false
	}
	return p.format == lgrep.FormatFullLine || p.format == lgrep.FormatLineNumbered
}

func (p *program) renderColored(result *lgrep.SearchResult) (string, error) {
	line, err := colorizeSpans(result.Line, result.Spans, p.args.matchColor)
	if err != nil {
		return "", err
	}
	if p.format == lgrep.FormatLineNumbered {
		lineNumber, err := colorizeText(strconv.Itoa(result.LineNumber), p.args.lineNumberColor)
		if err != nil {
			return "", err
		}
		return lineNumber + ": " + line, nil
	}
	return line, nil
}

func (p *program) printSummary() error {
	if p.format == lgrep.FormatCountOnly {
		fmt.Println(p.numMatches)
		return nil
	}
	log.Printf("found %d matching lines", p.numMatches)
	return nil
}

func (p *program) finishProfiling() error {
	if p.args.cpuProfile != "" {
		pprof.StopCPUProfile()
		err := os.WriteFile(p.args.cpuProfile, p.cpuProfile.Bytes(), 0o600)
		if err != nil {
			return fmt.Errorf("write CPU profile: %v", err)
		}
	}

	if p.args.memProfile != "" {
		f, err := os.Create(p.args.memProfile)
		if err != nil {
			return fmt.Errorf("create mem profile: %v", err)
		}
		defer f.Close()
		runtime.GC() // get up-to-date statistics
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("write mem profile: %v", err)
		}
	}

	return nil
}
