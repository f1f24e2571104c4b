package model

import "github.com/wippyai/xpulp-testgen/lane"

// Avg is pv.avg: signed average rounded toward negative infinity.
var Avg = register(Model{
	Name:         "pv.avg",
	Src1Signed:   true,
	Src2Signed:   true,
	ResultSigned: true,
	Lane:         avg,
})

// Avgu is pv.avgu: unsigned average rounded down.
var Avgu = register(Model{
	Name: "pv.avgu",
	Lane: avg,
})

// CmpGT is pv.cmpgt: signed greater-than, all-ones element when true.
var CmpGT = register(Model{
	Name:       "pv.cmpgt",
	Src1Signed: true,
	Src2Signed: true,
	Lane:       cmpgt,
})

// Max is pv.max: signed maximum.
var Max = register(Model{
	Name:         "pv.max",
	Src1Signed:   true,
	Src2Signed:   true,
	ResultSigned: true,
	Lane:         maxLane,
})

// The sum of two w-bit elements needs w+1 bits; int64 holds it for w <= 32.
// An arithmetic shift floors, so (-3 + -2) >> 1 == -3.
func avg(a, b int64, _ lane.Width) int64 {
	return (a + b) >> 1
}

func cmpgt(a, b int64, w lane.Width) int64 {
	if a > b {
		return int64(w.Mask())
	}
	return 0
}

func maxLane(a, b int64, _ lane.Width) int64 {
	return max(a, b)
}
