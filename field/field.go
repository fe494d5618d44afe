// Package field implements the prime field F consumed by the MiMC-Sponge
// permutation and the Merkle Sum Tree: a 256-bit element of a fixed modulus,
// represented as four little-endian 64-bit limbs.
//
// This repository targets the alt_bn128 (BN254) scalar field rather than the
// Pallas base field — see SPEC_FULL.md §F-3.1 for why. The two moduli are
// mutually exclusive build-time choices; switching requires changing Modulus
// and the MiMC round-constant table together, never one without the other.
//
// There is no generic prime-field library in this repository's source corpus
// with this modulus (see SPEC_FULL.md §F-6.1), so F is built directly on
// math/big rather than a third-party crate port. Every arithmetic operation
// funnels through big.Int and is immediately reduced back to canonical limb
// form; callers outside this package never see a math/big value.
package field

import (
	"fmt"
	"math/big"
)

// Modulus is the alt_bn128 (BN254) scalar field prime.
var Modulus = mustDecimal("21888242871839275222246405745257275088548364400416034343698204186575808495617")

func mustDecimal(s string) *big.Int {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("field: invalid embedded modulus literal")
	}
	return x
}

// F is an element of the field mod Modulus, held as four little-endian
// 64-bit limbs (limbs[0] is least significant). The zero value is the
// additive identity.
type F struct {
	limbs [4]uint64
}

// ErrInvalidDecimal is returned by FromDecimalString when s is not a valid
// non-negative decimal numeral.
type ErrInvalidDecimal struct {
	Input string
}

func (e *ErrInvalidDecimal) Error() string {
	return fmt.Sprintf("field: %q is not a valid non-negative decimal numeral", e.Input)
}

// Zero returns the additive identity.
func Zero() F {
	return F{}
}

// IsZero reports whether f is the additive identity.
func (f F) IsZero() bool {
	return f.limbs == [4]uint64{}
}

// Equal reports componentwise equality of the canonical representatives.
func (f F) Equal(o F) bool {
	return f.limbs == o.limbs
}

// AddAssign sets f to f + o mod Modulus.
func (f *F) AddAssign(o F) {
	sum := new(big.Int).Add(f.toBig(), o.toBig())
	*f = fromBig(sum)
}

// Pow returns f raised to the small non-negative exponent e, mod Modulus.
// MiMC only ever calls this with e == 5.
func (f F) Pow(e uint64) F {
	r := new(big.Int).Exp(f.toBig(), new(big.Int).SetUint64(e), Modulus)
	return fromBig(r)
}

// FromDecimalString parses a non-negative decimal numeral into its canonical
// residue mod Modulus. It fails if s contains anything but ASCII digits
// (in particular, a leading '-' is rejected, not reduced).
func FromDecimalString(s string) (F, error) {
	if s == "" {
		return F{}, &ErrInvalidDecimal{Input: s}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return F{}, &ErrInvalidDecimal{Input: s}
		}
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return F{}, &ErrInvalidDecimal{Input: s}
	}
	return fromBig(x), nil
}

// FromUint128 embeds an unsigned 128-bit integer, given as (hi, lo) 64-bit
// halves with hi most significant, into the field.
func FromUint128(hi, lo uint64) F {
	x := new(big.Int).Lsh(new(big.Int).SetUint64(hi), 64)
	x.Or(x, new(big.Int).SetUint64(lo))
	return fromBig(x)
}

// FromInt32 lifts a signed 32-bit integer into the field by explicit modular
// reduction (SPEC_FULL.md §F-4.1): negative values wrap to p+v rather than
// being rejected, so build_parent never needs to reject a negative node
// value.
func FromInt32(v int32) F {
	if v >= 0 {
		return fromBig(big.NewInt(int64(v)))
	}
	x := new(big.Int).Add(Modulus, big.NewInt(int64(v)))
	return fromBig(x)
}

// Limbs returns the little-endian 4x64-bit limb representation.
func (f F) Limbs() [4]uint64 {
	return f.limbs
}

// String renders the element in decimal, matching how the source's derived
// Display implementation prints the underlying integer.
func (f F) String() string {
	return f.toBig().String()
}

// GoString renders the little-endian limb form, for debug printing.
func (f F) GoString() string {
	return fmt.Sprintf("F(%#016x, %#016x, %#016x, %#016x)", f.limbs[0], f.limbs[1], f.limbs[2], f.limbs[3])
}

func (f F) toBig() *big.Int {
	x := new(big.Int)
	for i := 3; i >= 0; i-- {
		x.Lsh(x, 64)
		x.Or(x, new(big.Int).SetUint64(f.limbs[i]))
	}
	return x
}

func fromBig(x *big.Int) F {
	m := new(big.Int).Mod(x, Modulus)
	var limbs [4]uint64
	word := new(big.Int)
	mask := new(big.Int).SetUint64(^uint64(0))
	rest := new(big.Int).Set(m)
	for i := 0; i < 4; i++ {
		word.And(rest, mask)
		limbs[i] = word.Uint64()
		rest.Rsh(rest, 64)
	}
	return F{limbs: limbs}
}
