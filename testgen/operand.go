package testgen

import (
	"fmt"

	"github.com/wippyai/xpulp-testgen/errors"
	"github.com/wippyai/xpulp-testgen/macro"
)

// Kind selects the shape of the second operand.
type Kind uint8

const (
	Register Kind = iota // rs2
	Imm12                // generic 12-bit unsigned immediate
	UImm5
	UImm6
	SImm6
)

// Domain is an inclusive operand range.
type Domain struct {
	Min int64
	Max int64
}

// Size returns the number of values in d.
func (d Domain) Size() int64 {
	return d.Max - d.Min + 1
}

// Contains reports whether v lies in d.
func (d Domain) Contains(v int64) bool {
	return v >= d.Min && v <= d.Max
}

func (d Domain) String() string {
	return fmt.Sprintf("[%d, %d]", d.Min, d.Max)
}

// Predefined register domains.
var (
	Int32  = Domain{Min: -0x80000000, Max: 0x7fffffff}
	Uint32 = Domain{Min: 0, Max: 0xffffffff}
)

// RegisterBounds is every value that has a 32-bit two's-complement or
// unsigned representation.
var RegisterBounds = Domain{Min: -0x80000000, Max: 0xffffffff}

// OperandSpec describes the encoding limits of a second-operand kind.
type OperandSpec struct {
	// Tag is the macro-name infix, e.g. "RR" or "UIMM5".
	Tag string
	// Param is the macro parameter that carries the operand.
	Param  string
	Domain Domain
	Format macro.Format
	Bits   uint
	Signed bool
}

// Spec returns the encoding limits and rendering of k.
func (k Kind) Spec() OperandSpec {
	switch k {
	case Imm12:
		return OperandSpec{Tag: "IMM", Param: "imm1", Bits: 12, Domain: Domain{0, 0xfff}, Format: macro.Hex(3)}
	case UImm5:
		return OperandSpec{Tag: "UIMM5", Param: "imm1", Bits: 5, Domain: Domain{0, 0x1f}, Format: macro.Hex(2)}
	case UImm6:
		return OperandSpec{Tag: "UIMM6", Param: "imm1", Bits: 6, Domain: Domain{0, 0x3f}, Format: macro.Hex(2)}
	case SImm6:
		return OperandSpec{Tag: "SIMM6", Param: "imm1", Bits: 6, Signed: true, Domain: Domain{-0x20, 0x1f}, Format: macro.Hex(2)}
	}
	return OperandSpec{Tag: "RR", Param: "src2", Bits: 32, Signed: true, Domain: Int32, Format: macro.Hex(8)}
}

// Immediate reports whether k is an immediate form.
func (k Kind) Immediate() bool {
	return k != Register
}

func (k Kind) String() string {
	switch k {
	case Register:
		return "register"
	case Imm12:
		return "imm12"
	case UImm5:
		return "uimm5"
	case UImm6:
		return "uimm6"
	case SImm6:
		return "simm6"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Bounds returns the widest domain the kind can encode.
func (k Kind) Bounds() Domain {
	if k == Register {
		return RegisterBounds
	}
	return k.Spec().Domain
}

func validateDomain(name string, d Domain, bounds Domain) error {
	if d.Min > d.Max {
		return errors.InvalidDomain(name, d.Min, d.Max, "min exceeds max")
	}
	if !bounds.Contains(d.Min) || !bounds.Contains(d.Max) {
		return errors.InvalidDomain(name, d.Min, d.Max, "not representable in "+bounds.String())
	}
	return nil
}
