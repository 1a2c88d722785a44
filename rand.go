package randomatic

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand/v2"
	"unicode/utf8"

	pool "github.com/libp2p/go-buffer-pool"
)

// Source yields uniformly distributed samples in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// cryptoSource draws 53 bits from crypto/rand per sample.
type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte

	// Since go1.24 crypto/rand never returns an error.
	_, _ = crand.Read(buf[:])
	return float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
}

// pseudoSource is the fallback when no secure source is available.
type pseudoSource struct{}

func (pseudoSource) Float64() float64 {
	return rand.Float64()
}

var defaultSource, cryptoActive = probeSource()

func probeSource() (Source, bool) {
	var probe [8]byte
	if _, err := io.ReadFull(crand.Reader, probe[:]); err != nil {
		return pseudoSource{}, false
	}
	return cryptoSource{}, true
}

// IsCrypto reports whether the package-level generator draws from a
// cryptographically secure source. The answer is fixed at init.
func IsCrypto() bool {
	return cryptoActive
}

// sample draws length characters from mask with replacement. The UTF-8
// output is assembled in a pooled scratch buffer sized for the widest rune
// in mask.
func sample(src Source, mask []rune, length int) string {
	width := 1
	for _, r := range mask {
		width = max(width, utf8.RuneLen(r))
	}

	buf := pool.Get(length * width)
	defer pool.Put(buf)

	out := buf[:0]
	n := float64(len(mask))
	for range length {
		idx := int(src.Float64() * n)
		if idx >= len(mask) {
			idx = len(mask) - 1
		}
		out = utf8.AppendRune(out, mask[idx])
	}
	return string(out)
}
