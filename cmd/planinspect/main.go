package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/memplan"
	"github.com/wippyai/memplan/arena"
	"github.com/wippyai/memplan/errors"
	"github.com/wippyai/memplan/offline"
	"github.com/wippyai/memplan/report"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))
)

type options struct {
	planFile    string
	index       string
	encode      string
	outFile     string
	arenaSize   uint64
	strict      bool
	bigEndian   bool
	verbose     bool
	dump        bool
	interactive bool
}

func main() {
	var opts options
	flag.StringVar(&opts.planFile, "plan", "", "Path to serialized offline memory plan")
	flag.StringVar(&opts.index, "index", "", "Resolve a single buffer index")
	flag.StringVar(&opts.encode, "encode", "", "Offsets to serialize (comma-separated)")
	flag.StringVar(&opts.outFile, "out", "", "Output file for -encode")
	flag.Uint64Var(&opts.arenaSize, "arena", 0, "Check every offset against an arena of this many bytes")
	flag.BoolVar(&opts.strict, "strict", false, "Reject plans with a partial trailing entry")
	flag.BoolVar(&opts.bigEndian, "be", false, "Plan entries are big endian")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose logging")
	flag.BoolVar(&opts.dump, "dump", false, "Dump decoded entries")
	flag.BoolVar(&opts.interactive, "i", false, "Interactive mode with TUI")
	flag.Parse()

	if opts.planFile == "" && opts.encode == "" {
		fmt.Fprintln(os.Stderr, "Usage: planinspect -plan <plan.bin> [-index N] [-strict] [-be] [-arena SIZE] [-dump]")
		fmt.Fprintln(os.Stderr, "       planinspect -plan <plan.bin> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       planinspect -encode 0,64,192 -out <plan.bin> [-be]")
		os.Exit(1)
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck
	offline.SetLogger(logger.Named("offline"))

	if err := run(opts, logger, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func run(opts options, logger *zap.Logger, out io.Writer) error {
	var order interface {
		binary.ByteOrder
		binary.AppendByteOrder
	} = binary.LittleEndian
	if opts.bigEndian {
		order = binary.BigEndian
	}

	if opts.arenaSize > math.MaxUint32 {
		return errors.InvalidInput(errors.PhaseArena, fmt.Sprintf("arena size %d exceeds %d bytes", opts.arenaSize, uint64(math.MaxUint32)))
	}

	if opts.encode != "" {
		return encodePlan(opts.encode, opts.outFile, order)
	}

	data, err := os.ReadFile(opts.planFile)
	if err != nil {
		return errors.Load("read plan", err)
	}

	p, err := offline.NewWithConfig(data, &offline.Config{ByteOrder: order, Strict: opts.strict})
	if err != nil {
		return err
	}

	if opts.interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.InvalidInput(errors.PhaseLoad, "interactive mode requires a terminal")
		}
		return runInteractive(opts.planFile, p)
	}

	styled := isTerminal(out)
	r := report.Zap(logger)

	if opts.index != "" {
		idx, err := strconv.Atoi(opts.index)
		if err != nil {
			return errors.InvalidInput(errors.PhaseLookup, fmt.Sprintf("invalid index %q", opts.index))
		}
		off, err := p.OffsetForBuffer(r, idx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d\n", off)
		return nil
	}

	printPlan(out, opts.planFile, p, styled)

	if opts.dump {
		spew.Fdump(out, collectEntries(p))
	}

	if opts.arenaSize > 0 {
		failures, err := checkArena(p, uint32(opts.arenaSize), r)
		if err != nil {
			return err
		}
		if failures > 0 {
			return errors.New(errors.PhaseArena, errors.KindOutOfBounds).
				Value(failures).
				Detail("%d of %d buffers fall outside a %d byte arena", failures, p.BufferCount(), opts.arenaSize).
				Build()
		}
		fmt.Fprintf(out, "\nAll %d offsets fit an arena of %d bytes\n", p.BufferCount(), opts.arenaSize)
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type entry struct {
	Index  int
	Offset int
}

func collectEntries(p *offline.Planner) []entry {
	entries := make([]entry, 0, p.BufferCount())
	for i, off := range p.All() {
		entries = append(entries, entry{Index: i, Offset: off})
	}
	return entries
}

func printPlan(w io.Writer, name string, p *offline.Planner, styled bool) {
	header := "Offline memory plan"
	if styled {
		header = headerStyle.Render(header)
	}
	fmt.Fprintf(w, "%s %s\n", header, name)
	fmt.Fprintf(w, "Plan bytes: %d\n", len(p.Bytes()))
	if rem := len(p.Bytes()) % offline.EntrySize; rem != 0 {
		fmt.Fprintf(w, "Ignored trailing bytes: %d\n", rem)
	}
	fmt.Fprintf(w, "Buffers: %d\n", p.BufferCount())
	fmt.Fprintf(w, "Maximum memory size: %d\n", p.MaximumMemorySize())

	if p.BufferCount() == 0 {
		return
	}
	fmt.Fprintf(w, "\nOffsets:\n")
	for i, off := range p.All() {
		val := strconv.Itoa(off)
		if styled {
			val = offsetStyle.Render(val)
		}
		fmt.Fprintf(w, "  [%d] %s\n", i, val)
	}
}

// checkArena resolves every buffer through an arena of size bytes and
// returns how many fell outside it. No arena memory is reserved.
func checkArena(p memplan.MemoryPlanner, size uint32, r memplan.ErrorReporter) (int, error) {
	a, err := arena.New(p, arena.Extent(size), 0, size)
	if err != nil {
		return 0, err
	}
	failures := 0
	for i := 0; i < p.BufferCount(); i++ {
		if _, err := a.Address(r, i); err != nil {
			failures++
		}
	}
	return failures, nil
}

func parseOffsets(s string) ([]int32, error) {
	var offsets []int32
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseInt(field, 0, 32)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidInput, err, fmt.Sprintf("offset %q", field))
		}
		offsets = append(offsets, int32(v))
	}
	return offsets, nil
}

func encodePlan(list, outFile string, order binary.AppendByteOrder) error {
	if outFile == "" {
		return errors.InvalidInput(errors.PhaseEncode, "-encode requires -out")
	}
	offsets, err := parseOffsets(list)
	if err != nil {
		return err
	}
	data := offline.AppendEntries(nil, order, offsets...)
	if err := os.WriteFile(outFile, data, 0o644); err != nil {
		return errors.Wrap(errors.PhaseEncode, errors.KindInvalidInput, err, "write plan")
	}
	return nil
}
