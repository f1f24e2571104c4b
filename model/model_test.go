package model

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/xpulp-testgen/errors"
	"github.com/wippyai/xpulp-testgen/lane"
)

func s32(v int32) uint32 { return uint32(v) }

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		model     Model
		src1      uint32
		src2      uint32
		w         lane.Width
		broadcast bool
		want      uint32
	}{
		{"avg.h no overflow in sum", Avg, 0x7f7e7d7c, 0x7b7a7978, lane.Half, false, 0x7d7c7b7a},
		{"avg.sc.b uses low byte of src2", Avg, 0x00112233, 0x77665544, lane.Byte, true, 0x222a333b},
		{"avg.h negative", Avg, s32(-0x7f7e7d7c), s32(-0x7b7a7978), lane.Half, false, 0x82838486},
		{"avg.b floors", Avg, 0x000000fd, 0x000000fe, lane.Byte, false, 0x000000fd},
		{"avg.w", Avg, 0xffffffff, 0x00000000, lane.Word, false, 0xffffffff},
		{"avg.w max", Avg, 0x7fffffff, 0x7fffffff, lane.Word, false, 0x7fffffff},
		{"avgu.h carry", Avgu, 0x0000ffff, 0x00000001, lane.Half, false, 0x00008000},
		{"avgu.b saturated inputs", Avgu, 0xffffffff, 0xffffffff, lane.Byte, false, 0xffffffff},
		{"avg.h signed carry", Avg, 0x0000ffff, 0x00000001, lane.Half, false, 0x00000000},
		{"avgu.sc.h", Avgu, 0x7f7e7d7c, 0x7b7a7978, lane.Half, true, 0x7c7b7b7a},
		{"cmpgt.h equal", CmpGT, 0x01234567, 0x01234567, lane.Half, false, 0x00000000},
		{"cmpgt.h both greater", CmpGT, 0x01234567, 0x00234067, lane.Half, false, 0xffffffff},
		{"cmpgt.h low greater", CmpGT, 0x01234567, 0x45670123, lane.Half, false, 0x0000ffff},
		{"cmpgt.b alternate", CmpGT, 0x01234567, 0x23016745, lane.Byte, false, 0x00ff00ff},
		{"cmpgt.b signed", CmpGT, 0x7f80, 0x807f, lane.Byte, false, 0x0000ff00},
		{"cmpgt.sci.b negative imm", CmpGT, 0x01234567, s32(-32), lane.Byte, true, 0xffffffff},
		{"max.h", Max, 0x7f7e7d7c, 0x7b7a7978, lane.Half, false, 0x7f7e7d7c},
		{"max.h negative", Max, s32(-0x7f7e7d7c), s32(-0x7b7a7978), lane.Half, false, 0x84858688},
		{"max.b opposite signs", Max, 0x9c64fb05, 0x649c05fb, lane.Byte, false, 0x64640505},
		{"max.sci.h", Max, s32(-0x7f7e7d7c), s32(-0x20), lane.Half, true, 0xffe0ffe0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.model.Apply(tt.src1, tt.src2, tt.w, tt.broadcast)
			require.NoError(t, err)
			assert.Equalf(t, tt.want, got, "got %#08x want %#08x", got, tt.want)
		})
	}
}

func TestAvgFloorsEveryBytePair(t *testing.T) {
	for a := int64(-128); a <= 127; a++ {
		for b := int64(-128); b <= 127; b++ {
			res, err := Avg.Apply(uint32(a)&0xff, uint32(b)&0xff, lane.Byte, false)
			require.NoError(t, err)

			lanes, err := lane.Split(res, lane.Byte, true)
			require.NoError(t, err)

			want := int64(math.Floor(float64(a+b) / 2))
			if lanes[0] != want {
				t.Fatalf("avg(%d, %d) = %d, want %d", a, b, lanes[0], want)
			}
		}
	}
}

func TestAvgNegativeTie(t *testing.T) {
	res, err := Avg.Apply(0x000000fd, 0x000000fe, lane.Byte, false)
	require.NoError(t, err)

	lanes, err := lane.Split(res, lane.Byte, true)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), lanes[0])
}

func TestCmpGTPacksAllOnes(t *testing.T) {
	for _, w := range []lane.Width{lane.Byte, lane.Half, lane.Word} {
		// lane 0 true, remaining lanes equal
		res, err := CmpGT.Apply(1, 0, w, false)
		require.NoError(t, err)
		assert.Equal(t, uint32(w.Mask()), res, "width %d", w)

		res, err = CmpGT.Apply(0, 1, w, false)
		require.NoError(t, err)
		assert.Zero(t, res)
	}

	res, err := CmpGT.Apply(0x01234567, 0x00234067, lane.Half, false)
	require.NoError(t, err)
	assert.Equal(t, int64(0xffffffff), CmpGT.Interpret(res))
}

func TestMaxIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for range 200 {
		v := rng.Uint32()
		for _, w := range []lane.Width{lane.Byte, lane.Half, lane.Word} {
			res, err := Max.Apply(v, v, w, false)
			require.NoError(t, err)
			require.Equal(t, v, res)
		}
	}
}

func TestBroadcastIgnoresHighBits(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for _, m := range All() {
		for _, w := range []lane.Width{lane.Byte, lane.Half} {
			for range 100 {
				src1, src2 := rng.Uint32(), rng.Uint32()
				full, err := m.Apply(src1, src2, w, true)
				require.NoError(t, err)
				low, err := m.Apply(src1, src2&uint32(w.Mask()), w, true)
				require.NoError(t, err)
				require.Equalf(t, low, full, "%s width %d src2 %#x", m.Name, w, src2)
			}
		}
	}
}

func TestInterpret(t *testing.T) {
	assert.Equal(t, int64(-1), Avg.Interpret(0xffffffff))
	assert.Equal(t, int64(-1), Max.Interpret(0xffffffff))
	assert.Equal(t, int64(0xffffffff), Avgu.Interpret(0xffffffff))
	assert.Equal(t, int64(0xffffffff), CmpGT.Interpret(0xffffffff))
}

func TestBadWidth(t *testing.T) {
	_, err := Avg.Apply(0, 0, 12, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrConfiguration)

	_, err = Bind(Max, 0, false)
	assert.ErrorIs(t, err, errors.ErrConfiguration)
}

func TestBind(t *testing.T) {
	op, err := Bind(Avg, lane.Byte, true)
	require.NoError(t, err)

	res, err := op(0x00112233, 0x77665544)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x222a333b), res)

	_, err = Bind(Model{Name: "pv.nop"}, lane.Byte, false)
	assert.ErrorIs(t, err, errors.ErrNotImplemented)
}

func TestRegistry(t *testing.T) {
	names := make([]string, 0)
	for _, m := range All() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"pv.avg", "pv.avgu", "pv.cmpgt", "pv.max"}, names)

	m, err := Lookup("pv.cmpgt")
	require.NoError(t, err)
	assert.False(t, m.ResultSigned)

	_, err = Lookup("pv.mac")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}
