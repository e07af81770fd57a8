package primeshamir

import (
	"encoding/binary"
	"io"
	"math/bits"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// randElement draws a uniformly random element of f from random by rejection
// sampling.
func randElement(f Field, random io.Reader) (uint64, error) {
	p := f.Modulus()
	mask := uint64(1)<<bits.Len64(p-1) - 1

	for {
		var v uint64
		err := binary.Read(random, binary.BigEndian, &v)
		if err != nil {
			return 0, err
		}

		v &= mask
		if v < p {
			return v, nil
		}
	}
}

// randElements fills v with uniformly random elements of f.
func randElements(f Field, random io.Reader, v []uint64) error {
	for i := range v {
		e, err := randElement(f, random)
		if err != nil {
			return err
		}
		v[i] = e
	}

	return nil
}

type seededReader struct {
	c *chacha20.Cipher
}

// NewSeededReader returns a deterministic byte stream derived from seed: the
// ChaCha20 keystream keyed with BLAKE2b-256(seed). Equal seeds give equal
// streams, so the output is exactly as secret as the seed. The returned
// reader is not safe for concurrent use.
func NewSeededReader(seed []byte) io.Reader {
	key := blake2b.Sum256(seed)
	var nonce [chacha20.NonceSize]byte

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// key and nonce sizes are fixed above
		panic(err)
	}

	return &seededReader{c: c}
}

func (r *seededReader) Read(p []byte) (int, error) {
	clear(p)
	r.c.XORKeyStream(p, p)
	return len(p), nil
}
