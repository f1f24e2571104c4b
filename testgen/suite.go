package testgen

import (
	"fmt"
	"io"
	"strings"
)

// Category identifies one group of generated tests.
type Category int

const (
	CategoryArith Category = iota
	CategorySrcDest
	CategoryBypassSrc
	CategoryBypassDest
	CategoryZeroSrc
	CategoryZeroDest

	numCategories
)

var categoryNames = [numCategories]string{
	"arith", "src-dest", "bypass-src", "bypass-dest", "zero-src", "zero-dest",
}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Categories returns every category in render order.
func Categories() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Suite accumulates rendered test lines for one instruction variant.
// Lines are only ever appended.
type Suite struct {
	mnemonic string
	lines    [numCategories][]string
}

// NewSuite creates an empty suite for mnemonic.
func NewSuite(mnemonic string) *Suite {
	return &Suite{mnemonic: mnemonic}
}

// Mnemonic returns the instruction the suite tests.
func (s *Suite) Mnemonic() string {
	return s.mnemonic
}

func (s *Suite) add(c Category, line string) {
	s.lines[c] = append(s.lines[c], line)
}

// Lines returns a copy of the lines of category c.
func (s *Suite) Lines(c Category) []string {
	if c < 0 || c >= numCategories {
		return nil
	}
	out := make([]string, len(s.lines[c]))
	copy(out, s.lines[c])
	return out
}

// Len returns the total number of test lines.
func (s *Suite) Len() int {
	n := 0
	for _, l := range s.lines {
		n += len(l)
	}
	return n
}

// FileName returns the assembly file name for mnemonic: pv.avg.sc.h -> pv_avg_sc_h.S.
func FileName(mnemonic string) string {
	return strings.ReplaceAll(mnemonic, ".", "_") + ".S"
}

var sections = []struct {
	title      string
	categories []Category
}{
	{"Arithmetic tests", []Category{CategoryArith}},
	{"Source/Destination tests", []Category{CategorySrcDest}},
	{"Bypassing tests", []Category{CategoryBypassSrc, CategoryBypassDest}},
	{"Test x0 as source and destination", []Category{CategoryZeroSrc, CategoryZeroDest}},
}

// WriteTo renders the suite as a riscv-tests assembly source.
func (s *Suite) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	b.WriteString("# See LICENSE for license details.\n\n")
	b.WriteString("#*****************************************************************************\n")
	fmt.Fprintf(&b, "# %s\n", FileName(s.mnemonic))
	b.WriteString("#-----------------------------------------------------------------------------\n")
	b.WriteString("#\n")
	fmt.Fprintf(&b, "# Test %s instruction.\n", s.mnemonic)
	b.WriteString("#\n\n")
	b.WriteString("#include \"riscv_test.h\"\n")
	b.WriteString("#include \"test_macros.h\"\n\n")
	b.WriteString("RVTEST_RV32U\n")
	b.WriteString("RVTEST_CODE_BEGIN\n")

	for _, sec := range sections {
		n := 0
		for _, c := range sec.categories {
			n += len(s.lines[c])
		}
		if n == 0 {
			continue
		}

		b.WriteString("\n  #-------------------------------------------------------------\n")
		fmt.Fprintf(&b, "  # %s\n", sec.title)
		b.WriteString("  #-------------------------------------------------------------\n")
		for _, c := range sec.categories {
			if len(s.lines[c]) == 0 {
				continue
			}
			b.WriteByte('\n')
			for _, line := range s.lines[c] {
				b.WriteString("  ")
				b.WriteString(line)
				b.WriteByte('\n')
			}
		}
	}

	b.WriteString("\n  TEST_PASSFAIL\n\n")
	b.WriteString("RVTEST_CODE_END\n\n")
	b.WriteString("  .data\n")
	b.WriteString("RVTEST_DATA_BEGIN\n\n")
	b.WriteString("  TEST_DATA\n\n")
	b.WriteString("RVTEST_DATA_END\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Render returns the assembly source as a string.
func (s *Suite) Render() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}
