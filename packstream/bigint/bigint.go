// Package bigint provides a signed 64-bit integer value with exact
// arithmetic, used by the temporal package so its code reads like the
// reference algorithms it's ported from. The packstream codec itself works
// on native int64 values and does not use this package.
package bigint

import "math"

// Int wraps a native int64. Go's int64 is already exact and 64-bit, so Int
// adds no extra range; it exists to give arithmetic a name (Add, FloorDiv,
// ...) instead of bare operators, and to carry overflow state across the
// handful of multiplications that can overflow in the temporal package.
type Int struct {
	v        int64
	overflow bool
}

// FromInt64 wraps a native int64.
func FromInt64(v int64) Int {
	return Int{v: v}
}

// Int64 returns the wrapped value. Overflow state is not reflected here;
// call Overflowed to check it.
func (a Int) Int64() int64 {
	return a.v
}

// Overflowed reports whether the operation that produced a was known to
// overflow 64 bits.
func (a Int) Overflowed() bool {
	return a.overflow
}

func (a Int) Add(b Int) Int {
	return Int{v: a.v + b.v, overflow: a.overflow || b.overflow}
}

func (a Int) Sub(b Int) Int {
	return Int{v: a.v - b.v, overflow: a.overflow || b.overflow}
}

// Mul multiplies a by b, flagging overflow when the mathematical product
// doesn't fit back into 64 bits. On overflow the value saturates at the
// int64 bound with the product's true sign, so Float64 yields the matching
// infinity. temporal.DateToEpochDay uses it for year*365.
func (a Int) Mul(b Int) Int {
	if a.v == 0 || b.v == 0 {
		return Int{v: 0, overflow: a.overflow || b.overflow}
	}
	p := a.v * b.v
	overflowed := p/b.v != a.v || (a.v == math.MinInt64 && b.v == -1)
	if overflowed {
		if (a.v < 0) != (b.v < 0) {
			p = math.MinInt64
		} else {
			p = math.MaxInt64
		}
	}
	return Int{v: p, overflow: a.overflow || b.overflow || overflowed}
}

// Div truncates toward zero, matching Go's native integer division.
func (a Int) Div(b Int) Int {
	return Int{v: a.v / b.v, overflow: a.overflow || b.overflow}
}

// Mod is the truncated remainder (sign follows the dividend), matching Go's
// native %.
func (a Int) Mod(b Int) Int {
	return Int{v: a.v % b.v, overflow: a.overflow || b.overflow}
}

// FloorDiv divides rounding toward negative infinity.
func (a Int) FloorDiv(b Int) Int {
	q := a.v / b.v
	if (a.v%b.v != 0) && ((a.v < 0) != (b.v < 0)) {
		q--
	}
	return Int{v: q, overflow: a.overflow || b.overflow}
}

// FloorMod is the remainder consistent with FloorDiv: always the same sign
// as the divisor.
func (a Int) FloorMod(b Int) Int {
	m := a.v % b.v
	if m != 0 && ((m < 0) != (b.v < 0)) {
		m += b.v
	}
	return Int{v: m, overflow: a.overflow || b.overflow}
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func (a Int) Cmp(b Int) int {
	switch {
	case a.v < b.v:
		return -1
	case a.v > b.v:
		return 1
	default:
		return 0
	}
}

// Sign returns -1, 0, or 1.
func (a Int) Sign() int {
	switch {
	case a.v < 0:
		return -1
	case a.v > 0:
		return 1
	default:
		return 0
	}
}

// Float64 converts to a native double. When a is the result of an operation
// flagged as overflowing 64 bits, it returns a signed infinity rather than a
// wrapped value, mirroring the reference driver's behavior for magnitudes
// that fall outside the representable range.
func (a Int) Float64() float64 {
	if a.overflow {
		if a.v < 0 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	return float64(a.v)
}

// FromFloat64 truncates a double to the nearest representable Int, saturating
// at the int64 bounds for magnitudes outside its range. This is the lossy
// fallback path used when a caller supplies a float where an integer is
// expected.
func FromFloat64(f float64) Int {
	switch {
	case math.IsNaN(f):
		return Int{v: 0}
	case f >= math.MaxInt64:
		return Int{v: math.MaxInt64}
	case f <= math.MinInt64:
		return Int{v: math.MinInt64}
	default:
		return Int{v: int64(f)}
	}
}
