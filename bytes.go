package primeshamir

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrInvalidSecret is returned for an empty byte secret or one whose
	// length is not a multiple of the dealer's chunk size.
	ErrInvalidSecret = errors.New("invalid secret")
	// ErrInconsistentShares is returned when byte shares have differing or
	// malformed lengths, or combine to a value that cannot be a chunk.
	ErrInconsistentShares = errors.New("inconsistent shares")
)

const wordSize = 8

// ChunkSize returns the number of secret bytes packed into one field element
// by SplitBytes. It is 0 for moduli below 257.
func (d *Dealer) ChunkSize() int {
	return (bits.Len64(d.F.Modulus()) - 1) / 8
}

// SplitBytes splits a byte secret into n shares such that any threshold of
// them recover it. The secret is cut into ChunkSize() byte chunks, each
// shared with an independent polynomial at the same x-coordinates, so its
// length must be a multiple of ChunkSize(). Every share is 8 bytes of x
// followed by 8 bytes per chunk, all big-endian.
func (d *Dealer) SplitBytes(threshold, n int, secret []byte) ([][]byte, error) {
	cs := d.ChunkSize()
	if cs == 0 {
		return nil, fmt.Errorf("%w: %d is too small to carry bytes", ErrInvalidModulus, d.F.Modulus())
	}
	if len(secret) == 0 || len(secret)%cs != 0 {
		return nil, fmt.Errorf("%w: length must be a positive multiple of %d bytes", ErrInvalidSecret, cs)
	}

	words := make([]uint64, len(secret)/cs)
	for i := range words {
		words[i] = decodeChunk(secret[i*cs : (i+1)*cs])
	}

	rows, err := split(d.F, d.random(), threshold, n, words)
	clear(words)
	if err != nil {
		return nil, err
	}

	byteShares := make([][]byte, len(rows))
	for i, row := range rows {
		byteShares[i] = make([]byte, len(row)*wordSize)
		for j, w := range row {
			binary.BigEndian.PutUint64(byteShares[i][j*wordSize:], w)
		}
	}

	return byteShares, nil
}

// CombineBytes recovers a secret split with SplitBytes. As with Combine, the
// number of shares is taken as the threshold.
func (d *Dealer) CombineBytes(shares [][]byte) ([]byte, error) {
	if len(shares) == 0 {
		return nil, ErrNoShares
	}

	cs := d.ChunkSize()
	if cs == 0 {
		return nil, fmt.Errorf("%w: %d is too small to carry bytes", ErrInvalidModulus, d.F.Modulus())
	}

	rows := make([][]uint64, len(shares))
	for i, share := range shares {
		if len(share)%wordSize != 0 || len(share) != len(shares[0]) {
			return nil, fmt.Errorf("%w: share %d has length %d", ErrInconsistentShares, i, len(share))
		}

		rows[i] = make([]uint64, len(share)/wordSize)
		for j := range rows[i] {
			rows[i][j] = binary.BigEndian.Uint64(share[j*wordSize:])
		}
	}

	words, err := combine(d.F, rows)
	if err != nil {
		return nil, err
	}

	secret := make([]byte, len(words)*cs)
	for i, w := range words {
		if bits.Len64(w) > cs*8 {
			return nil, fmt.Errorf("%w: chunk %d out of range", ErrInconsistentShares, i)
		}
		encodeChunk(secret[i*cs:(i+1)*cs], w)
	}

	return secret, nil
}

// SplitBytes splits a byte secret using the default dealer.
func SplitBytes(threshold, n int, secret []byte) ([][]byte, error) {
	return Default.SplitBytes(threshold, n, secret)
}

// CombineBytes combines byte shares using the default dealer.
func CombineBytes(shares [][]byte) ([]byte, error) {
	return Default.CombineBytes(shares)
}

func decodeChunk(b []byte) uint64 {
	var w uint64
	for _, c := range b {
		w = w<<8 | uint64(c)
	}
	return w
}

func encodeChunk(b []byte, w uint64) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte(w)
		w >>= 8
	}
}
