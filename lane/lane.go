// Package lane splits 32-bit words into packed SIMD elements and joins them back.
//
// Lanes are ordered least significant first: lane 0 occupies bits [0, w).
// Split sign- or zero-extends each element into an int64; Join truncates
// each element back to w bits, so out-of-range lane values wrap rather
// than saturate.
package lane

import (
	"fmt"

	"github.com/wippyai/xpulp-testgen/errors"
)

// WordBits is the register width all lane operations work on.
const WordBits = 32

// Width is the element size in bits.
type Width uint

const (
	Byte Width = 8
	Half Width = 16
	Word Width = 32
)

// Validate reports a configuration error unless w is non-zero and divides 32.
func (w Width) Validate() error {
	if w == 0 || w > WordBits || WordBits%w != 0 {
		return errors.Configuration(errors.PhaseCodec,
			fmt.Sprintf("lane width %d does not divide %d", uint(w), WordBits), uint(w))
	}
	return nil
}

// Lanes returns the number of elements per word.
func (w Width) Lanes() int {
	return WordBits / int(w)
}

// Mask returns the low-w-bit mask.
func (w Width) Mask() uint64 {
	return (uint64(1) << w) - 1
}

// Suffix returns the mnemonic suffix for the width: "b", "h" or "w".
func (w Width) Suffix() string {
	switch w {
	case Byte:
		return "b"
	case Half:
		return "h"
	case Word:
		return "w"
	}
	return fmt.Sprintf("e%d", uint(w))
}

func (w Width) String() string {
	return fmt.Sprintf("%d-bit", uint(w))
}

// ParseWidth maps a mnemonic suffix back to a Width.
func ParseWidth(suffix string) (Width, error) {
	switch suffix {
	case "b":
		return Byte, nil
	case "h":
		return Half, nil
	case "w":
		return Word, nil
	}
	return 0, errors.InvalidInput(errors.PhaseCodec, fmt.Sprintf("unknown width suffix %q", suffix))
}

// Split decomposes v into 32/w elements.
func Split(v uint32, w Width, signed bool) ([]int64, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	n := w.Lanes()
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = extend(uint64(v)>>(uint(i)*uint(w)), w, signed)
	}
	return out, nil
}

// Broadcast replicates the low w bits of v across every lane.
func Broadcast(v uint32, w Width, signed bool) ([]int64, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	elem := extend(uint64(v), w, signed)
	out := make([]int64, w.Lanes())
	for i := range out {
		out[i] = elem
	}
	return out, nil
}

// Join packs lanes back into a word, keeping only the low w bits of each.
func Join(lanes []int64, w Width) (uint32, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}
	if len(lanes) != w.Lanes() {
		return 0, errors.New(errors.PhaseCodec, errors.KindConfiguration).
			Detail("%d lanes do not fill a word of %s elements", len(lanes), w).
			Value(len(lanes)).
			Build()
	}
	var word uint64
	for i, l := range lanes {
		word |= (uint64(l) & w.Mask()) << (uint(i) * uint(w))
	}
	return uint32(word), nil
}

func extend(bits uint64, w Width, signed bool) int64 {
	bits &= w.Mask()
	if signed && bits&(uint64(1)<<(w-1)) != 0 {
		return int64(bits) - int64(uint64(1)<<w)
	}
	return int64(bits)
}
