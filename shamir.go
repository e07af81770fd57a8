package primeshamir

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidThreshold is returned when the threshold is below 1 or
	// exceeds the share count.
	ErrInvalidThreshold = errors.New("threshold must be between 1 and the share count")
	// ErrInvalidShareCount is returned when the share count is below 1 or
	// not below the field modulus.
	ErrInvalidShareCount = errors.New("share count must be at least 1 and less than the modulus")
	// ErrSecretOutOfRange is returned when a secret is not an element of the
	// field.
	ErrSecretOutOfRange = errors.New("secret must be less than the modulus")
	// ErrNoShares is returned when combining an empty share set.
	ErrNoShares = errors.New("no shares")
)

var defaultRandSrc = rand.Reader

// Dealer is a Shamir secret sharing dealer over a prime field. A zero-value
// Dealer is ready to use with default settings: the field GF(DefaultModulus)
// and crypto/rand.Reader as random source.
//
// A Dealer is never modified by its methods and may be used from several
// goroutines at once as long as Rand is safe for concurrent use, which is the
// caller's responsibility when Rand is set.
type Dealer struct {
	F    Field     // the prime field to use
	Rand io.Reader // random source for polynomial coefficients
}

// Default is a zero-value Dealer ready to use with default settings.
var Default = new(Dealer)

// Split splits secret into n shares such that any threshold of them recover
// it. Shares are evaluated at x = 1..n. threshold must be in [1, n], n must be
// less than the modulus and secret must be an element of the field.
func (d *Dealer) Split(threshold, n int, secret uint64) ([]Share, error) {
	rows, err := split(d.F, d.random(), threshold, n, []uint64{secret})
	if err != nil {
		return nil, err
	}

	shares := make([]Share, len(rows))
	for i, row := range rows {
		shares[i] = Share{X: row[0], Y: row[1]}
	}

	return shares, nil
}

// Combine recovers the secret from shares by Lagrange interpolation at x = 0.
// The number of shares is taken as the threshold: fewer shares than were
// required at split time, or shares from different splits, give a wrong
// value without an error. Shares must have distinct x-coordinates; a
// collision yields an error matching ErrNotInvertible.
func (d *Dealer) Combine(shares []Share) (uint64, error) {
	if len(shares) == 0 {
		return 0, ErrNoShares
	}

	xvals := make([]uint64, len(shares))
	yvals := make([]uint64, len(shares))
	for i, s := range shares {
		xvals[i], yvals[i] = s.X, s.Y
	}

	return interpolateAtZero(d.F, xvals, yvals)
}

// Split a secret using the default dealer.
func Split(threshold, n int, secret uint64) ([]Share, error) {
	return Default.Split(threshold, n, secret)
}

// Combine shares using the default dealer.
func Combine(shares []Share) (uint64, error) {
	return Default.Combine(shares)
}

func (d *Dealer) random() io.Reader {
	if d.Rand == nil {
		return defaultRandSrc
	}
	return d.Rand
}

// split shares every word of secret with its own polynomial. Row i of the
// result is [x_i, p_0(x_i), p_1(x_i), ...].
func split(f Field, random io.Reader, threshold, n int, secret []uint64) ([][]uint64, error) {
	if len(secret) == 0 {
		return nil, ErrInvalidSecret
	}
	if threshold < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreshold, threshold)
	}
	if n < 1 || uint64(n) >= f.Modulus() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidShareCount, n)
	}
	if threshold > n {
		return nil, fmt.Errorf("%w: threshold %d > n %d", ErrInvalidThreshold, threshold, n)
	}
	for i, s := range secret {
		if s >= f.Modulus() {
			return nil, fmt.Errorf("%w: word %d", ErrSecretOutOfRange, i)
		}
	}

	shares := make([][]uint64, n)
	for i := range shares {
		shares[i] = make([]uint64, len(secret)+1)
		shares[i][0] = uint64(i + 1)
	}

	polynomial := make([]uint64, threshold)
	for w := range secret {
		polynomial[0] = secret[w]
		err := randElements(f, random, polynomial[1:])
		if err != nil {
			return nil, fmt.Errorf("failed to draw coefficients: %w", err)
		}

		for i := range shares {
			shares[i][w+1] = evalPoly(f, polynomial, shares[i][0])
		}
	}
	clear(polynomial)

	return shares, nil
}

// combine is the inverse of split. All rows must have the same length.
func combine(f Field, shares [][]uint64) ([]uint64, error) {
	if len(shares) == 0 {
		return nil, ErrNoShares
	}

	secretLen := len(shares[0]) - 1
	for _, share := range shares {
		if len(share) != secretLen+1 || secretLen < 1 {
			return nil, ErrInconsistentShares
		}
	}

	xvals := make([]uint64, len(shares))
	yvals := make([]uint64, len(shares))
	secret := make([]uint64, secretLen)

	for r := range shares {
		xvals[r] = shares[r][0]
	}

	for c := 1; c <= secretLen; c++ {
		for r := range shares {
			yvals[r] = shares[r][c]
		}

		s, err := interpolateAtZero(f, xvals, yvals)
		if err != nil {
			return nil, err
		}
		secret[c-1] = s
	}

	return secret, nil
}
