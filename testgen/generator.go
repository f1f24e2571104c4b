package testgen

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/wippyai/xpulp-testgen/errors"
	"github.com/wippyai/xpulp-testgen/macro"
	"github.com/wippyai/xpulp-testgen/model"
)

// Sizes used by callers that want the usual suite shape. Config fields are
// taken literally; only FirstTestNum has a zero-value default.
const (
	DefaultMaxNops      = 2
	DefaultFirstTestNum = 2
	DefaultArithCount   = 20
	DefaultSrcDestCount = 5
)

// Config configures a Generator.
type Config struct {
	// Operation computes the expected result. A nil Operation makes every
	// generating call fail with errors.ErrNotImplemented.
	Operation model.Operation

	// Rand supplies random operands. Nil seeds a PCG source from Seed.
	Rand *rand.Rand

	// Src1 and Src2 restrict the random operand ranges.
	// Nil uses Int32 for src1 and the kind's full range for src2.
	Src1 *Domain
	Src2 *Domain

	Formats  Formats
	Mnemonic string
	Seed     uint64

	// MaxNops is the deepest bypass bubble. 0 still emits depth 0.
	MaxNops int

	// FirstTestNum is the number of the first test. 0 means DefaultFirstTestNum.
	FirstTestNum int

	// ArithCount and SrcDestCount are the GenAllTests sizes.
	ArithCount   int
	SrcDestCount int

	Kind Kind
}

// Generator produces the test categories of one instruction variant.
// It owns its suite, test counter and random source; it is not safe for
// concurrent use.
type Generator struct {
	op      model.Operation
	rng     *rand.Rand
	suite   *Suite
	macros  MacroSet
	src1    Domain
	src2    Domain
	spec    OperandSpec
	cfg     Config
	testnum int
}

// New validates cfg and creates a generator.
func New(cfg Config) (*Generator, error) {
	if cfg.Mnemonic == "" {
		return nil, errors.InvalidInput(errors.PhaseConfig, "mnemonic is required")
	}
	if cfg.MaxNops < 0 || cfg.ArithCount < 0 || cfg.SrcDestCount < 0 || cfg.FirstTestNum < 0 {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path(cfg.Mnemonic).
			Detail("nops, test counts and first test number must not be negative").
			Build()
	}
	if cfg.FirstTestNum == 0 {
		cfg.FirstTestNum = DefaultFirstTestNum
	}

	spec := cfg.Kind.Spec()

	src1 := Int32
	if cfg.Src1 != nil {
		src1 = *cfg.Src1
	}
	if err := validateDomain("src1", src1, RegisterBounds); err != nil {
		return nil, err
	}

	src2 := spec.Domain
	if cfg.Src2 != nil {
		src2 = *cfg.Src2
	}
	if err := validateDomain(spec.Param, src2, cfg.Kind.Bounds()); err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}

	return &Generator{
		op:      cfg.Operation,
		rng:     rng,
		suite:   NewSuite(cfg.Mnemonic),
		macros:  MacroSetFor(cfg.Kind, cfg.Formats),
		src1:    src1,
		src2:    src2,
		spec:    spec,
		cfg:     cfg,
		testnum: cfg.FirstTestNum,
	}, nil
}

// Suite returns the accumulated tests.
func (g *Generator) Suite() *Suite {
	return g.suite
}

// TestNum returns the number the next test will get.
func (g *Generator) TestNum() int {
	return g.testnum
}

// Macros returns the macro signatures in use.
func (g *Generator) Macros() MacroSet {
	return g.macros
}

// Expected evaluates the operation on a single operand pair.
func (g *Generator) Expected(src1, src2 int64) (uint32, error) {
	if g.op == nil {
		return 0, errors.NotImplemented(g.cfg.Mnemonic)
	}
	return g.op(uint32(src1), uint32(src2))
}

// AddArithTest adds one directed test.
func (g *Generator) AddArithTest(src1, src2 int64) error {
	if err := g.ready(); err != nil {
		return err
	}
	if !g.cfg.Kind.Bounds().Contains(src2) {
		return errors.InvalidDomain(g.spec.Param, src2, src2, "not representable in "+g.cfg.Kind.String())
	}
	if !RegisterBounds.Contains(src1) {
		return errors.InvalidDomain("src1", src1, src1, "not representable in 32 bits")
	}
	return g.emitResult(CategoryArith, g.macros.Arith, src1, src2, nil)
}

// GenArithTests adds n random tests.
func (g *Generator) GenArithTests(n int) error {
	return g.genRandom(CategoryArith, g.macros.Arith, n)
}

// GenSrcDestTests adds n random tests where rd is also rs1.
func (g *Generator) GenSrcDestTests(n int) error {
	return g.genRandom(CategorySrcDest, g.macros.SrcDest, n)
}

// GenBypassTests adds perDepth random tests for every bubble depth
// 0..MaxNops, first delaying the sources, then the result.
//
// Register forms have two sources, so every depth d is emitted once per
// split (d-k bubbles before rs1, k before rs2) through both SRC12 and
// SRC21 orderings.
func (g *Generator) GenBypassTests(perDepth int) error {
	if err := g.ready(); err != nil {
		return err
	}
	bypass := []struct {
		cat   Category
		tmpl  macro.Template
		split bool
	}{
		{CategoryBypassSrc, g.macros.BypassSrc, g.cfg.Kind == Register},
		{CategoryBypassSrc, g.macros.BypassSrc21, g.cfg.Kind == Register},
		{CategoryBypassDest, g.macros.BypassDest, false},
	}
	for _, b := range bypass {
		if b.tmpl.Name() == "" {
			continue
		}
		start := g.testnum
		for i := 0; i < perDepth; i++ {
			for nops := 0; nops <= g.cfg.MaxNops; nops++ {
				last := 0
				if b.split {
					last = nops
				}
				for nops2 := 0; nops2 <= last; nops2++ {
					extra := macro.Args{"nops": nops - nops2, "nops2": nops2}
					if err := g.emitResult(b.cat, b.tmpl, g.draw(g.src1), g.draw(g.src2), extra); err != nil {
						return err
					}
				}
			}
		}
		g.logGenerated(b.cat, g.testnum-start)
	}
	return nil
}

// GenZeroRegTests adds per random tests reading x0 as rs1 and per tests
// writing x0 as rd.
func (g *Generator) GenZeroRegTests(per int) error {
	if err := g.ready(); err != nil {
		return err
	}

	start := g.testnum
	for i := 0; i < per; i++ {
		// rs1 is x0, so the expected value uses zero regardless of the drawn src1
		if err := g.emitResult(CategoryZeroSrc, g.macros.ZeroSrc, 0, g.draw(g.src2), nil); err != nil {
			return err
		}
	}
	g.logGenerated(CategoryZeroSrc, g.testnum-start)

	start = g.testnum
	for i := 0; i < per; i++ {
		if err := g.emitResult(CategoryZeroDest, g.macros.ZeroDest, g.draw(g.src1), g.draw(g.src2), nil); err != nil {
			return err
		}
	}
	g.logGenerated(CategoryZeroDest, g.testnum-start)
	return nil
}

// GenAllTests runs every category: ArithCount arithmetic tests,
// SrcDestCount source/destination tests, then bypass and zero-register tests.
func (g *Generator) GenAllTests(bypassPerDepth, zeroPer int) error {
	if err := g.GenArithTests(g.cfg.ArithCount); err != nil {
		return err
	}
	if err := g.GenSrcDestTests(g.cfg.SrcDestCount); err != nil {
		return err
	}
	if err := g.GenBypassTests(bypassPerDepth); err != nil {
		return err
	}
	return g.GenZeroRegTests(zeroPer)
}

func (g *Generator) ready() error {
	if g.op == nil {
		return errors.NotImplemented(g.cfg.Mnemonic)
	}
	return nil
}

func (g *Generator) genRandom(cat Category, tmpl macro.Template, n int) error {
	if err := g.ready(); err != nil {
		return err
	}
	start := g.testnum
	for i := 0; i < n; i++ {
		if err := g.emitResult(cat, tmpl, g.draw(g.src1), g.draw(g.src2), nil); err != nil {
			return err
		}
	}
	g.logGenerated(cat, g.testnum-start)
	return nil
}

func (g *Generator) emitResult(cat Category, tmpl macro.Template, src1, src2 int64, extra macro.Args) error {
	res, err := g.op(uint32(src1), uint32(src2))
	if err != nil {
		return err
	}

	args := macro.Args{
		"testnum": g.testnum,
		"op":      g.cfg.Mnemonic,
		"res":     res,
		"src1":    uint32(src1),
	}
	if g.cfg.Kind.Immediate() {
		args[g.spec.Param] = src2
	} else {
		args[g.spec.Param] = uint32(src2)
	}
	for k, v := range extra {
		args[k] = v
	}

	line, err := tmpl.Fill(args)
	if err != nil {
		return err
	}
	g.suite.add(cat, line)
	g.testnum++
	return nil
}

func (g *Generator) draw(d Domain) int64 {
	return d.Min + g.rng.Int64N(d.Size())
}

func (g *Generator) logGenerated(cat Category, n int) {
	Logger().Debug("generated tests",
		zap.String("mnemonic", g.cfg.Mnemonic),
		zap.Stringer("category", cat),
		zap.Int("count", n),
		zap.Int("next_testnum", g.testnum),
	)
}
