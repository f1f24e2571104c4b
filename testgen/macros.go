package testgen

import "github.com/wippyai/xpulp-testgen/macro"

// Formats overrides the rendering of individual fields. Nil fields use the
// defaults: 0x%08x for register values and the kind's width for immediates.
type Formats struct {
	Res  macro.Format
	Src1 macro.Format
	Src2 macro.Format
}

// MacroSet holds the test_macros.h signatures used for one operand kind.
type MacroSet struct {
	Arith     macro.Template
	SrcDest   macro.Template
	BypassSrc macro.Template
	// BypassSrc21 issues rs2 before rs1. Register forms only; the zero
	// Template otherwise.
	BypassSrc21 macro.Template
	BypassDest  macro.Template
	ZeroSrc     macro.Template
	ZeroDest    macro.Template
}

// MacroSetFor builds the signatures for k, e.g. TEST_RR_OP or TEST_SIMM6_ZERODEST.
func MacroSetFor(k Kind, f Formats) MacroSet {
	spec := k.Spec()

	res := f.Res
	if res == nil {
		res = macro.Hex(8)
	}
	src1 := f.Src1
	if src1 == nil {
		src1 = macro.Hex(8)
	}
	src2 := f.Src2
	if src2 == nil {
		src2 = spec.Format
	}

	var (
		testnum = macro.P("testnum", macro.Decimal)
		nops    = macro.P("nops", macro.Decimal)
		op      = macro.P("op", macro.Text)
		r       = macro.P("res", res)
		s1      = macro.P("src1", src1)
		s2      = macro.P(spec.Param, src2)
	)
	name := func(suffix string) string {
		return "TEST_" + spec.Tag + "_" + suffix
	}

	bypassDest := macro.New(name("DEST_BYPASS"), testnum, nops, op, r, s1, s2)
	set := MacroSet{
		BypassDest: bypassDest,
		Arith:      macro.New(name("OP"), bypassDest.Without("nops").Params()...),
		SrcDest:    macro.New(name("SRC1_EQ_DEST"), bypassDest.Without("nops").Params()...),
		ZeroSrc:    macro.New(name("ZEROSRC1"), testnum, op, r, s2),
		ZeroDest:   macro.New(name("ZERODEST"), testnum, op, s1, s2),
	}

	if k == Register {
		// both sources are delayed independently; nops2 delays rs2
		params := []macro.Param{testnum, nops, macro.P("nops2", macro.Decimal), op, r, s1, s2}
		set.BypassSrc = macro.New(name("SRC12_BYPASS"), params...)
		set.BypassSrc21 = macro.New(name("SRC21_BYPASS"), params...)
	} else {
		set.BypassSrc = macro.New(name("SRC1_BYPASS"), testnum, nops, op, r, s1, s2)
	}
	return set
}
