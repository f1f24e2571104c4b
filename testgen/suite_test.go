package testgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/xpulp-testgen/lane"
	"github.com/wippyai/xpulp-testgen/macro"
	"github.com/wippyai/xpulp-testgen/model"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "pv_avg_sc_h.S", FileName("pv.avg.sc.h"))
	assert.Equal(t, "pv_cmpgt_sci_b.S", FileName("pv.cmpgt.sci.b"))
}

func TestMacroSetNames(t *testing.T) {
	tests := []struct {
		kind Kind
		want []string
	}{
		{Register, []string{"TEST_RR_OP", "TEST_RR_SRC1_EQ_DEST", "TEST_RR_SRC12_BYPASS", "TEST_RR_DEST_BYPASS", "TEST_RR_ZEROSRC1", "TEST_RR_ZERODEST"}},
		{Imm12, []string{"TEST_IMM_OP", "TEST_IMM_SRC1_EQ_DEST", "TEST_IMM_SRC1_BYPASS", "TEST_IMM_DEST_BYPASS", "TEST_IMM_ZEROSRC1", "TEST_IMM_ZERODEST"}},
		{UImm5, []string{"TEST_UIMM5_OP", "TEST_UIMM5_SRC1_EQ_DEST", "TEST_UIMM5_SRC1_BYPASS", "TEST_UIMM5_DEST_BYPASS", "TEST_UIMM5_ZEROSRC1", "TEST_UIMM5_ZERODEST"}},
		{UImm6, []string{"TEST_UIMM6_OP", "TEST_UIMM6_SRC1_EQ_DEST", "TEST_UIMM6_SRC1_BYPASS", "TEST_UIMM6_DEST_BYPASS", "TEST_UIMM6_ZEROSRC1", "TEST_UIMM6_ZERODEST"}},
		{SImm6, []string{"TEST_SIMM6_OP", "TEST_SIMM6_SRC1_EQ_DEST", "TEST_SIMM6_SRC1_BYPASS", "TEST_SIMM6_DEST_BYPASS", "TEST_SIMM6_ZEROSRC1", "TEST_SIMM6_ZERODEST"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			set := MacroSetFor(tt.kind, Formats{})
			got := []string{
				set.Arith.Name(), set.SrcDest.Name(), set.BypassSrc.Name(),
				set.BypassDest.Name(), set.ZeroSrc.Name(), set.ZeroDest.Name(),
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMacroSetMatchesGenericRename(t *testing.T) {
	generic := MacroSetFor(Imm12, Formats{})
	for _, kind := range []Kind{UImm5, UImm6, SImm6} {
		renamed, err := generic.Arith.Replace("IMM", kind.Spec().Tag)
		require.NoError(t, err)
		assert.Equal(t, MacroSetFor(kind, Formats{}).Arith.Name(), renamed.Name())
	}
}

func paramNames(tmpl macro.Template) []string {
	var out []string
	for _, p := range tmpl.Params() {
		out = append(out, p.Name)
	}
	return out
}

func TestMacroSetSignatures(t *testing.T) {
	rr := MacroSetFor(Register, Formats{})
	assert.Equal(t, []string{"testnum", "op", "res", "src1", "src2"}, paramNames(rr.Arith))
	assert.Equal(t, []string{"testnum", "nops", "nops2", "op", "res", "src1", "src2"}, paramNames(rr.BypassSrc))
	assert.Equal(t, "TEST_RR_SRC21_BYPASS", rr.BypassSrc21.Name())
	assert.Equal(t, paramNames(rr.BypassSrc), paramNames(rr.BypassSrc21))
	assert.Equal(t, []string{"testnum", "nops", "op", "res", "src1", "src2"}, paramNames(rr.BypassDest))
	assert.Equal(t, []string{"testnum", "op", "res", "src2"}, paramNames(rr.ZeroSrc))
	assert.Equal(t, []string{"testnum", "op", "src1", "src2"}, paramNames(rr.ZeroDest))

	imm := MacroSetFor(SImm6, Formats{})
	assert.Equal(t, []string{"testnum", "op", "res", "src1", "imm1"}, paramNames(imm.SrcDest))
	assert.Equal(t, []string{"testnum", "nops", "op", "res", "src1", "imm1"}, paramNames(imm.BypassSrc))
	assert.Empty(t, imm.BypassSrc21.Name(), "immediate forms have a single source register")
	assert.Equal(t, []string{"testnum", "op", "res", "imm1"}, paramNames(imm.ZeroSrc))
}

func TestCustomFormats(t *testing.T) {
	op, err := model.Bind(model.Avgu, lane.Byte, true)
	require.NoError(t, err)

	g, err := New(Config{
		Mnemonic:  "pv.avgu.sci.b",
		Kind:      UImm6,
		Operation: op,
		Formats:   Formats{Src2: macro.Decimal, Res: macro.Hex(4)},
	})
	require.NoError(t, err)
	require.NoError(t, g.AddArithTest(0x00112233, 0x10))

	assert.Equal(t, []string{"TEST_UIMM6_OP(2, pv.avgu.sci.b, 0x8101921, 0x00112233, 16)"},
		g.Suite().Lines(CategoryArith))
}

func TestRender(t *testing.T) {
	op, err := model.Bind(model.CmpGT, lane.Half, false)
	require.NoError(t, err)

	g, err := New(Config{Mnemonic: "pv.cmpgt.h", Operation: op, Seed: 1})
	require.NoError(t, err)
	require.NoError(t, g.AddArithTest(0x01234567, 0x01234567))
	require.NoError(t, g.GenBypassTests(1))

	out := g.Suite().Render()
	for _, want := range []string{
		"# pv_cmpgt_h.S",
		"# Test pv.cmpgt.h instruction.",
		"#include \"riscv_test.h\"",
		"#include \"test_macros.h\"",
		"RVTEST_RV32U\nRVTEST_CODE_BEGIN\n",
		"  # Arithmetic tests",
		"  TEST_RR_OP(2, pv.cmpgt.h, 0x00000000, 0x01234567, 0x01234567)\n",
		"  # Bypassing tests",
		"  TEST_PASSFAIL\n",
		"RVTEST_CODE_END",
		"RVTEST_DATA_BEGIN",
		"  TEST_DATA",
		"RVTEST_DATA_END\n",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Source/Destination tests", "empty sections are omitted")
	assert.Less(t, strings.Index(out, "TEST_RR_SRC12_BYPASS"), strings.Index(out, "TEST_RR_DEST_BYPASS"))

	var b strings.Builder
	n, err := g.Suite().WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, int64(len(out)), n)
	assert.Equal(t, out, b.String())
}

func TestCategoryString(t *testing.T) {
	var names []string
	for _, c := range Categories() {
		names = append(names, c.String())
	}
	assert.Equal(t, []string{"arith", "src-dest", "bypass-src", "bypass-dest", "zero-src", "zero-dest"}, names)
	assert.Equal(t, "category(42)", Category(42).String())
	assert.Nil(t, NewSuite("x").Lines(Category(-1)))
}
