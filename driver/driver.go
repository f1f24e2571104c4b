// Package driver turns catalog variants into complete test suites and files.
//
// Each variant gets its own generator whose random source is seeded from the
// driver seed and the mnemonic, so the output of one variant does not depend
// on which other variants were generated or in what order.
package driver

import (
	"hash/fnv"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wippyai/xpulp-testgen/errors"
	"github.com/wippyai/xpulp-testgen/model"
	"github.com/wippyai/xpulp-testgen/testgen"
)

// Config holds generation sizes shared by all variants. Sizes are used as
// given, so a zero count generates nothing; start from DefaultConfig.
type Config struct {
	Seed uint64

	// MaxNops is the deepest bypass bubble.
	MaxNops int

	ArithCount   int
	SrcDestCount int

	// BypassPer is the number of tests per bypass macro and bubble depth.
	BypassPer int

	// ZeroPer is the number of tests per zero-register macro.
	ZeroPer int
}

// DefaultConfig mirrors the sizes the pv.* suites are normally built with.
func DefaultConfig() Config {
	return Config{
		Seed:         1,
		MaxNops:      testgen.DefaultMaxNops,
		ArithCount:   testgen.DefaultArithCount,
		SrcDestCount: testgen.DefaultSrcDestCount,
		BypassPer:    15,
		ZeroPer:      2,
	}
}

// Driver generates suites for catalog variants.
type Driver struct {
	cfg Config
}

// New creates a driver. Negative sizes are rejected.
func New(cfg Config) (*Driver, error) {
	if cfg.MaxNops < 0 || cfg.ArithCount < 0 || cfg.SrcDestCount < 0 || cfg.BypassPer < 0 || cfg.ZeroPer < 0 {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Value(cfg).
			Detail("test counts must not be negative").
			Build()
	}
	return &Driver{cfg: cfg}, nil
}

// Config returns the driver configuration.
func (d *Driver) Config() Config {
	return d.cfg
}

// SeedFor returns the generator seed used for mnemonic.
func (d *Driver) SeedFor(mnemonic string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(mnemonic))
	return d.cfg.Seed ^ h.Sum64()
}

// Generator creates a fresh generator for v.
func (d *Driver) Generator(v Variant) (*testgen.Generator, error) {
	op, err := model.Bind(v.Model, v.Width, v.Broadcast)
	if err != nil {
		return nil, err
	}
	src1, src2 := v.Src1, v.Src2
	return testgen.New(testgen.Config{
		Mnemonic:     v.Mnemonic,
		Kind:         v.Kind,
		Operation:    op,
		Src1:         &src1,
		Src2:         &src2,
		Seed:         d.SeedFor(v.Mnemonic),
		MaxNops:      d.cfg.MaxNops,
		ArithCount:   d.cfg.ArithCount,
		SrcDestCount: d.cfg.SrcDestCount,
	})
}

// Generate builds the full suite for v: directed vectors first, then every
// random category.
func (d *Driver) Generate(v Variant) (*testgen.Suite, error) {
	g, err := d.Generator(v)
	if err != nil {
		return nil, err
	}
	for _, vec := range v.Directed {
		if err := g.AddArithTest(vec.Src1, vec.Src2); err != nil {
			return nil, err
		}
	}
	if err := g.GenAllTests(d.cfg.BypassPer, d.cfg.ZeroPer); err != nil {
		return nil, err
	}

	Logger().Debug("suite generated",
		zap.String("mnemonic", v.Mnemonic),
		zap.Int("tests", g.Suite().Len()),
	)
	return g.Suite(), nil
}

// WriteAll generates every variant and writes it into dir, returning the
// written paths in order.
func (d *Driver) WriteAll(dir string, variants []Variant) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Write(dir, err)
	}

	paths := make([]string, 0, len(variants))
	for _, v := range variants {
		suite, err := d.Generate(v)
		if err != nil {
			return paths, err
		}

		path := filepath.Join(dir, testgen.FileName(v.Mnemonic))
		f, err := os.Create(path)
		if err != nil {
			return paths, errors.Write(path, err)
		}
		if _, err := suite.WriteTo(f); err != nil {
			f.Close()
			return paths, errors.Write(path, err)
		}
		if err := f.Close(); err != nil {
			return paths, errors.Write(path, err)
		}

		Logger().Info("wrote test file",
			zap.String("path", path),
			zap.String("mnemonic", v.Mnemonic),
			zap.Int("tests", suite.Len()),
		)
		paths = append(paths, path)
	}
	return paths, nil
}
