package driver

import (
	"sort"
	"strings"

	"github.com/wippyai/xpulp-testgen/errors"
	"github.com/wippyai/xpulp-testgen/lane"
	"github.com/wippyai/xpulp-testgen/model"
	"github.com/wippyai/xpulp-testgen/testgen"
)

// Vector is one directed operand pair.
type Vector struct {
	Src1 int64
	Src2 int64
}

// Variant is one concrete instruction encoding, e.g. pv.avg.sci.b.
type Variant struct {
	Mnemonic  string
	Model     model.Model
	Src1      testgen.Domain
	Src2      testgen.Domain
	Directed  []Vector
	Width     lane.Width
	Kind      testgen.Kind
	Broadcast bool
}

// Family returns the model name, e.g. "pv.avg".
func (v Variant) Family() string {
	return v.Model.Name
}

type family struct {
	model       model.Model
	src         testgen.Domain
	immKind     testgen.Kind
	directed    []Vector
	directedImm []Vector
}

var families = []family{
	{
		model:   model.Avg,
		src:     testgen.Int32,
		immKind: testgen.SImm6,
		directed: []Vector{
			{0x7f7e7d7c, 0x7b7a7978},
			{-0x7f7e7d7c, -0x7b7a7978},
			{0x00112233, 0x77665544},
		},
		directedImm: []Vector{
			{0x7f7e7d7c, 0x1f},
			{-0x7f7e7d7c, -0x20},
			{0x00112233, 0x10},
		},
	},
	{
		model:   model.Avgu,
		src:     testgen.Uint32,
		immKind: testgen.UImm6,
		directed: []Vector{
			{0x7f7e7d7c, 0x7b7a7978},
			{0x00112233, 0x77665544},
		},
		directedImm: []Vector{
			{0x7f7e7d7c, 0x1f},
			{0x00112233, 0x10},
		},
	},
	{
		model:   model.CmpGT,
		src:     testgen.Int32,
		immKind: testgen.SImm6,
		directed: []Vector{
			{0x01234567, 0x01234567},
			{0x01234567, 0x00234067},
			{0x01234567, 0x01204560},
			{0x01234567, 0x45670123},
			{0x01234567, 0x23016745},
		},
		directedImm: []Vector{
			{0x01234567, 0x00},
			{0x01234567, 0x12},
			{0x01234567, 0x01},
		},
	},
	{
		model:   model.Max,
		src:     testgen.Int32,
		immKind: testgen.SImm6,
		directed: []Vector{
			{0x7f7e7d7c, 0x7b7a7978},
			{-0x7f7e7d7c, -0x7b7a7978},
			{0x00112233, 0x77665544},
		},
		directedImm: []Vector{
			{0x7f7e7d7c, 0x1f},
			{-0x7f7e7d7c, -0x20},
			{0x00112233, 0x10},
		},
	},
}

var catalog = buildCatalog()

func buildCatalog() []Variant {
	var out []Variant
	for _, f := range families {
		for _, w := range []lane.Width{lane.Half, lane.Byte} {
			out = append(out,
				Variant{
					Mnemonic: f.model.Name + "." + w.Suffix(),
					Model:    f.model,
					Width:    w,
					Kind:     testgen.Register,
					Src1:     f.src,
					Src2:     f.src,
					Directed: f.directed,
				},
				Variant{
					Mnemonic:  f.model.Name + ".sc." + w.Suffix(),
					Model:     f.model,
					Width:     w,
					Broadcast: true,
					Kind:      testgen.Register,
					Src1:      f.src,
					Src2:      f.src,
					Directed:  f.directed,
				},
				Variant{
					Mnemonic:  f.model.Name + ".sci." + w.Suffix(),
					Model:     f.model,
					Width:     w,
					Broadcast: true,
					Kind:      f.immKind,
					Src1:      f.src,
					Src2:      f.immKind.Spec().Domain,
					Directed:  f.directedImm,
				},
			)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Mnemonic < out[j].Mnemonic })
	return out
}

// Catalog returns every supported variant sorted by mnemonic.
func Catalog() []Variant {
	out := make([]Variant, len(catalog))
	copy(out, catalog)
	return out
}

// Families returns the distinct family names in the catalog.
func Families() []string {
	out := make([]string, 0, len(families))
	for _, f := range families {
		out = append(out, f.model.Name)
	}
	sort.Strings(out)
	return out
}

// Lookup finds a variant by mnemonic.
func Lookup(mnemonic string) (Variant, error) {
	for _, v := range catalog {
		if v.Mnemonic == mnemonic {
			return v, nil
		}
	}
	return Variant{}, errors.NotFound(errors.PhaseConfig, "variant", mnemonic)
}

// Select resolves each name to a variant (exact mnemonic) or to every
// variant of a family ("pv.avg"). An empty list selects the whole catalog.
func Select(names []string) ([]Variant, error) {
	if len(names) == 0 {
		return Catalog(), nil
	}

	seen := make(map[string]bool)
	var out []Variant
	add := func(v Variant) {
		if !seen[v.Mnemonic] {
			seen[v.Mnemonic] = true
			out = append(out, v)
		}
	}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if v, err := Lookup(name); err == nil {
			add(v)
			continue
		}
		matched := false
		for _, v := range catalog {
			if v.Family() == name {
				add(v)
				matched = true
			}
		}
		if !matched {
			return nil, errors.NotFound(errors.PhaseConfig, "variant or family", name)
		}
	}
	return out, nil
}
