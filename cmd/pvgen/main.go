package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/xpulp-testgen/driver"
	"github.com/wippyai/xpulp-testgen/testgen"
)

func main() {
	defaults := driver.DefaultConfig()

	var (
		outDir      = flag.String("out", ".", "Directory for generated .S files")
		only        = flag.String("only", "", "Mnemonics or families to generate (comma-separated, default all)")
		seed        = flag.Uint64("seed", defaults.Seed, "Random seed")
		maxNops     = flag.Int("nops", defaults.MaxNops, "Deepest bypass bubble")
		arith       = flag.Int("arith", defaults.ArithCount, "Random arithmetic tests per variant")
		srcDest     = flag.Int("srcdest", defaults.SrcDestCount, "Random rd==rs1 tests per variant")
		bypass      = flag.Int("bypass", defaults.BypassPer, "Bypass tests per macro and bubble depth")
		zero        = flag.Int("zero", defaults.ZeroPer, "Zero-register tests per macro")
		list        = flag.Bool("list", false, "List variants and exit")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync() //nolint:errcheck
		testgen.SetLogger(l)
		driver.SetLogger(l)
	}

	cfg := driver.Config{
		Seed:         *seed,
		MaxNops:      *maxNops,
		ArithCount:   *arith,
		SrcDestCount: *srcDest,
		BypassPer:    *bypass,
		ZeroPer:      *zero,
	}

	variants, err := driver.Select(splitList(*only))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		printVariants(os.Stdout, variants, term.IsTerminal(int(os.Stdout.Fd())))
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(cfg, variants); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, *outDir, variants); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg driver.Config, outDir string, variants []driver.Variant) error {
	d, err := driver.New(cfg)
	if err != nil {
		return err
	}

	paths, err := d.WriteAll(outDir, variants)
	for _, p := range paths {
		fmt.Println(p)
	}
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	fmt.Printf("\n%d files written to %s\n", len(paths), outDir)
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func printVariants(w io.Writer, variants []driver.Variant, color bool) {
	name := lipgloss.NewStyle().Width(18)
	kind := lipgloss.NewStyle().Width(10)
	if color {
		name = name.Foreground(lipgloss.Color("#98FB98"))
		kind = kind.Foreground(lipgloss.Color("#87CEEB"))
	}

	for _, v := range variants {
		mode := "vector"
		if v.Broadcast {
			mode = "scalar"
		}
		fmt.Fprintf(w, "%s%s%-8s %-7s %s\n",
			name.Render(v.Mnemonic),
			kind.Render(v.Kind.String()),
			v.Width,
			mode,
			testgen.FileName(v.Mnemonic),
		)
	}
}
