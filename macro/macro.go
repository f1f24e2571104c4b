// Package macro renders one test-case line as an assembly macro invocation.
//
// A Template is a macro name plus its positional parameters. Fill looks each
// parameter up by name and substitutes it using the parameter's Format:
//
//	tmpl := macro.New("TEST_RR_OP",
//		macro.P("testnum", macro.Decimal),
//		macro.P("op", macro.Text),
//		macro.P("res", macro.Hex(8)),
//		macro.P("src1", macro.Hex(8)),
//		macro.P("src2", macro.Hex(8)),
//	)
//	line, err := tmpl.Fill(macro.Args{"testnum": 2, "op": "pv.avg.h", ...})
//	// TEST_RR_OP(2, pv.avg.h, 0x7d7c7b7a, 0x7f7e7d7c, 0x7b7a7978)
//
// Parameter order must match the macro library's signature exactly.
package macro

import (
	"strings"

	"github.com/wippyai/xpulp-testgen/errors"
)

// Args carries the values of one test case keyed by parameter name.
// Values not declared by the template are ignored.
type Args map[string]any

// Param is one positional macro argument.
type Param struct {
	Format Format
	Name   string
}

// P is shorthand for Param{Name: name, Format: f}.
func P(name string, f Format) Param {
	return Param{Name: name, Format: f}
}

// Template is an immutable macro signature.
type Template struct {
	name   string
	params []Param
}

// New creates a template. A nil Format falls back to Text.
func New(name string, params ...Param) Template {
	ps := make([]Param, len(params))
	for i, p := range params {
		if p.Format == nil {
			p.Format = Text
		}
		ps[i] = p
	}
	return Template{name: name, params: ps}
}

// Name returns the macro name.
func (t Template) Name() string {
	return t.name
}

// Params returns a copy of the parameter list in call order.
func (t Template) Params() []Param {
	out := make([]Param, len(t.params))
	copy(out, t.params)
	return out
}

// Fill renders NAME(a0, a1, ..., aN). Every declared parameter must be present.
func (t Template) Fill(args Args) (string, error) {
	var b strings.Builder
	b.WriteString(t.name)
	b.WriteByte('(')
	for i, p := range t.params {
		v, ok := args[p.Name]
		if !ok {
			return "", errors.TemplateArgument(t.name, p.Name)
		}
		s, err := p.Format(v)
		if err != nil {
			return "", errors.New(errors.PhaseTemplate, errors.KindTemplateArgument).
				Path(t.name, p.Name).
				Value(v).
				Cause(err).
				Detail("format parameter").
				Build()
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s)
	}
	b.WriteByte(')')
	return b.String(), nil
}

// Replace returns a copy whose name has old replaced by repl, e.g. turning
// TEST_IMM_OP into TEST_UIMM5_OP. Parameters are shared unchanged.
func (t Template) Replace(old, repl string) (Template, error) {
	if old == "" || !strings.Contains(t.name, old) {
		return Template{}, errors.New(errors.PhaseTemplate, errors.KindTemplateArgument).
			Path(t.name).
			Value(old).
			Detail("%q not found in macro name", old).
			Build()
	}
	return Template{name: strings.Replace(t.name, old, repl, 1), params: t.params}, nil
}

// Without returns a copy with the named parameters removed.
func (t Template) Without(names ...string) Template {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	ps := make([]Param, 0, len(t.params))
	for _, p := range t.params {
		if !drop[p.Name] {
			ps = append(ps, p)
		}
	}
	return Template{name: t.name, params: ps}
}
