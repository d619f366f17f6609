// Package random provides unbiased random integers drawn from a
// cryptographically secure entropy stream.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"sync"
)

const (
	batchSize = 256
	drawSize  = 4

	// MaxBound is the largest bound accepted by Uniform.
	MaxBound = 1 << 32
)

var ErrInvalidBound = errors.New("random bound must be in [1, 2^32]")

// Source returns uniform integers in [0, n).
type Source interface {
	Uniform(n int) (int, error)
}

// CryptoSource implements Source with masked rejection sampling over a
// buffered entropy reader. It is not safe for concurrent use; wrap it with
// Locked or give each goroutine its own instance.
type CryptoSource struct {
	reader io.Reader
	buf    [batchSize]byte
	pos    int
}

// NewCryptoSource creates a CryptoSource backed by crypto/rand.
func NewCryptoSource() *CryptoSource {
	return NewReaderSource(rand.Reader)
}

// NewReaderSource creates a CryptoSource backed by r. Tests use it to feed
// fixed entropy.
func NewReaderSource(r io.Reader) *CryptoSource {
	return &CryptoSource{reader: r, pos: batchSize}
}

// Uniform returns an integer in [0, n) without modulo bias. Each draw
// consumes four fresh bytes, keeps the low ceil(log2(n)) bits and rejects
// values >= n.
func (s *CryptoSource) Uniform(n int) (int, error) {
	if n <= 0 || uint64(n) > MaxBound {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidBound, n)
	}

	mask := uint32(1)<<bits.Len32(uint32(n-1)) - 1
	for {
		v, err := s.next()
		if err != nil {
			return 0, err
		}
		if v &= mask; uint64(v) < uint64(n) {
			return int(v), nil
		}
	}
}

func (s *CryptoSource) next() (uint32, error) {
	if s.pos+drawSize > len(s.buf) {
		if _, err := io.ReadFull(s.reader, s.buf[:]); err != nil {
			return 0, fmt.Errorf("reading entropy: %w", err)
		}
		s.pos = 0
	}
	v := binary.BigEndian.Uint32(s.buf[s.pos:])
	s.pos += drawSize
	return v, nil
}

var _ Source = (*CryptoSource)(nil)

// Locked serialises access to src so it can be shared between goroutines.
func Locked(src Source) Source {
	return &lockedSource{src: src}
}

type lockedSource struct {
	mu  sync.Mutex
	src Source
}

func (l *lockedSource) Uniform(n int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Uniform(n)
}
