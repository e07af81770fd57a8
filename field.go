package primeshamir

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

// DefaultModulus is the Mersenne prime 2^61 - 1.
const DefaultModulus uint64 = 1<<61 - 1

var (
	// ErrInvalidModulus is returned by NewField when the modulus is not an odd
	// prime.
	ErrInvalidModulus = errors.New("modulus must be an odd prime")
	// ErrNotInvertible is matched by every *DomainError.
	ErrNotInvertible = errors.New("inverse does not exist")
)

// DomainError reports that A has no multiplicative inverse modulo M.
type DomainError struct {
	A, M uint64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("inverse of %d mod %d does not exist", e.A, e.M)
}

// Is reports whether target is ErrNotInvertible.
func (e *DomainError) Is(target error) bool {
	return target == ErrNotInvertible
}

// Field is the prime field GF(p). The zero value is GF(DefaultModulus). A
// Field is immutable and safe to copy and share between goroutines.
type Field struct {
	p uint64
}

// NewField returns GF(p). p must be an odd prime.
func NewField(p uint64) (Field, error) {
	if p < 3 || p%2 == 0 {
		return Field{}, fmt.Errorf("%w: %d", ErrInvalidModulus, p)
	}
	// ProbablyPrime is exact for inputs below 2^64
	if !new(big.Int).SetUint64(p).ProbablyPrime(0) {
		return Field{}, fmt.Errorf("%w: %d", ErrInvalidModulus, p)
	}

	return Field{p: p}, nil
}

// Modulus returns p.
func (f Field) Modulus() uint64 {
	if f.p == 0 {
		return DefaultModulus
	}
	return f.p
}

// Reduce maps a into [0, p).
func (f Field) Reduce(a uint64) uint64 {
	return a % f.Modulus()
}

func (f Field) Add(a, b uint64) uint64 {
	return addMod(a%f.Modulus(), b%f.Modulus(), f.Modulus())
}

func (f Field) Sub(a, b uint64) uint64 {
	p := f.Modulus()
	a, b = a%p, b%p
	if a >= b {
		return a - b
	}
	return a + (p - b)
}

func (f Field) Neg(a uint64) uint64 {
	return f.Sub(0, a)
}

func (f Field) Mul(a, b uint64) uint64 {
	return mulMod(a, b, f.Modulus())
}

func (f Field) Pow(a, e uint64) uint64 {
	return ModPow(a, e, f.Modulus())
}

// Inv returns the multiplicative inverse of a, or a *DomainError if a is zero
// in the field.
func (f Field) Inv(a uint64) (uint64, error) {
	return ModInverse(a, f.Modulus())
}

// ModPow returns base^exp mod m by square-and-multiply. ModPow(x, y, 1) is 0.
// It panics if m is zero.
func ModPow(base, exp, m uint64) uint64 {
	if m == 1 {
		return 0
	}

	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}

	return result
}

// ModInverse returns the b in [0, m) with a*b = 1 mod m using the extended
// Euclidean algorithm. It returns a *DomainError if gcd(a, m) != 1.
func ModInverse(a, m uint64) (uint64, error) {
	if m < 2 {
		return 0, &DomainError{A: a, M: m}
	}

	if a%m == 0 {
		return 0, &DomainError{A: a, M: m}
	}
	a %= m

	// Bezout coefficients of a are kept reduced mod m, so no signed
	// arithmetic is needed.
	t, newT := uint64(0), uint64(1)
	r, newR := m, a
	for newR != 0 {
		q := r / newR
		t, newT = newT, subMod(t, mulMod(q, newT, m), m)
		r, newR = newR, r-q*newR
	}

	if r != 1 {
		return 0, &DomainError{A: a, M: m}
	}

	return t, nil
}

// mulMod returns a*b mod m using a 128-bit intermediate product.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// addMod expects a, b < m.
func addMod(a, b, m uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	return bits.Rem64(carry, sum, m)
}

// subMod expects a, b < m.
func subMod(a, b, m uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + (m - b)
}
