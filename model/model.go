// Package model holds the reference semantics of the pv.* packed-SIMD instructions.
//
// Every instruction family is a Model: a per-element operation plus the
// sign conventions of its operands and result. Apply evaluates one
// instruction on two 32-bit register values:
//
//	res, err := model.Avg.Apply(0x7f7e7d7c, 0x7b7a7978, lane.Half, false)
//
// With broadcast set, only the low element of src2 is used and replicated
// across all lanes (the .sc and .sci forms).
package model

import (
	"sort"

	"github.com/wippyai/xpulp-testgen/errors"
	"github.com/wippyai/xpulp-testgen/lane"
)

// LaneFunc computes one result element from two decoded elements of width w.
// The result may exceed w bits; it is truncated when packed.
type LaneFunc func(a, b int64, w lane.Width) int64

// Model describes one instruction family.
type Model struct {
	Lane         LaneFunc
	Name         string
	Src1Signed   bool
	Src2Signed   bool
	ResultSigned bool
}

// Apply evaluates the instruction on src1 and src2 at element width w.
func (m Model) Apply(src1, src2 uint32, w lane.Width, broadcast bool) (uint32, error) {
	if m.Lane == nil {
		return 0, errors.NotImplemented(m.Name)
	}

	a, err := lane.Split(src1, w, m.Src1Signed)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseModel, errors.KindConfiguration, err, m.Name)
	}

	var b []int64
	if broadcast {
		b, err = lane.Broadcast(src2, w, m.Src2Signed)
	} else {
		b, err = lane.Split(src2, w, m.Src2Signed)
	}
	if err != nil {
		return 0, errors.Wrap(errors.PhaseModel, errors.KindConfiguration, err, m.Name)
	}

	res := make([]int64, len(a))
	for i := range a {
		res[i] = m.Lane(a[i], b[i], w)
	}

	return lane.Join(res, w)
}

// Interpret reads a packed result as a signed or unsigned 32-bit integer.
func (m Model) Interpret(res uint32) int64 {
	if m.ResultSigned {
		return int64(int32(res))
	}
	return int64(res)
}

// Operation is a model bound to a width and operand mode.
type Operation func(src1, src2 uint32) (uint32, error)

// Bind fixes the width and broadcast mode of m. The width is validated
// eagerly so misconfiguration surfaces before any test is generated.
func Bind(m Model, w lane.Width, broadcast bool) (Operation, error) {
	if err := w.Validate(); err != nil {
		return nil, errors.Wrap(errors.PhaseModel, errors.KindConfiguration, err, m.Name)
	}
	if m.Lane == nil {
		return nil, errors.NotImplemented(m.Name)
	}
	return func(src1, src2 uint32) (uint32, error) {
		return m.Apply(src1, src2, w, broadcast)
	}, nil
}

var registry = map[string]Model{}

func register(m Model) Model {
	registry[m.Name] = m
	return m
}

// Lookup returns the family registered under name, e.g. "pv.avg".
func Lookup(name string) (Model, error) {
	m, ok := registry[name]
	if !ok {
		return Model{}, errors.NotFound(errors.PhaseModel, "model", name)
	}
	return m, nil
}

// All returns every registered family sorted by name.
func All() []Model {
	out := make([]Model, 0, len(registry))
	for _, m := range registry {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
