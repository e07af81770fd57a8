package primeshamir

import "fmt"

// evalPoly returns coeff[0] + coeff[1]*x + ... + coeff[k-1]*x^(k-1) in f.
func evalPoly(f Field, coeff []uint64, x uint64) uint64 {
	var p, r uint64 = 1, 0
	for i := 0; i < len(coeff); i++ {
		r = f.Add(r, f.Mul(p, coeff[i]))
		p = f.Mul(p, x)
	}

	return r
}

// interpolateAtZero evaluates at x = 0 the unique polynomial of degree
// < len(xvals) through the points (xvals[i], yvals[i]). xvals must be
// pairwise distinct in f; a collision is reported as a *DomainError.
func interpolateAtZero(f Field, xvals, yvals []uint64) (uint64, error) {
	var secret uint64
	for i := range xvals {
		xi := f.Reduce(xvals[i])

		num, den := uint64(1), uint64(1)
		for j := range xvals {
			if j == i {
				continue
			}
			xj := f.Reduce(xvals[j])
			num = f.Mul(num, f.Neg(xj))
			den = f.Mul(den, f.Sub(xi, xj))
		}

		inv, err := f.Inv(den)
		if err != nil {
			return 0, fmt.Errorf("share %d (x=%d): %w", i, xi, err)
		}

		basis := f.Mul(num, inv)
		secret = f.Add(secret, f.Mul(f.Reduce(yvals[i]), basis))
	}

	return secret, nil
}
