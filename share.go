package primeshamir

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ShareSize is the length of a binary encoded Share.
const ShareSize = 16

// ErrMalformedShare is returned when decoding a Share fails.
var ErrMalformedShare = errors.New("malformed share")

// Share is a point (X, Y) on the sharing polynomial. X is never 0.
type Share struct {
	X uint64 `json:"x"`
	Y uint64 `json:"y"`
}

// String returns the text form "x:y".
func (s Share) String() string {
	return strconv.FormatUint(s.X, 10) + ":" + strconv.FormatUint(s.Y, 10)
}

// ParseShare parses the "x:y" form produced by Share.String. Surrounding
// whitespace is ignored.
func ParseShare(text string) (Share, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(text), ":")
	if !ok {
		return Share{}, fmt.Errorf("%w: %q: missing ':'", ErrMalformedShare, text)
	}

	x, err := strconv.ParseUint(xs, 10, 64)
	if err != nil {
		return Share{}, fmt.Errorf("%w: x: %w", ErrMalformedShare, err)
	}

	y, err := strconv.ParseUint(ys, 10, 64)
	if err != nil {
		return Share{}, fmt.Errorf("%w: y: %w", ErrMalformedShare, err)
	}

	return Share{X: x, Y: y}, nil
}

// MarshalBinary encodes s as X and Y in big-endian order.
func (s Share) MarshalBinary() ([]byte, error) {
	b := make([]byte, ShareSize)
	binary.BigEndian.PutUint64(b[:8], s.X)
	binary.BigEndian.PutUint64(b[8:], s.Y)
	return b, nil
}

func (s *Share) UnmarshalBinary(data []byte) error {
	if len(data) != ShareSize {
		return fmt.Errorf("%w: want %d bytes, got %d", ErrMalformedShare, ShareSize, len(data))
	}

	s.X = binary.BigEndian.Uint64(data[:8])
	s.Y = binary.BigEndian.Uint64(data[8:])
	return nil
}

// ParseShares parses each string with ParseShare.
func ParseShares(texts []string) ([]Share, error) {
	shares := make([]Share, len(texts))
	for i, t := range texts {
		s, err := ParseShare(t)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", i, err)
		}
		shares[i] = s
	}

	return shares, nil
}
