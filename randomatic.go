package randomatic

import (
	"fmt"
	"math"
)

// MaxLength is the longest output a single request may ask for.
const MaxLength = math.MaxInt32

// Generator produces random strings from normalized requests. It holds no
// mutable state and is safe for concurrent use if its Source is.
type Generator struct {
	source Source
	crypto bool
	legacy bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the random source. Generators built this way report
// IsCrypto as false; use WithSecureSource for a cryptographically secure src.
func WithSource(src Source) Option {
	return func(g *Generator) {
		g.source = src
		g.crypto = false
	}
}

// WithSecureSource replaces the random source with one the caller vouches
// is cryptographically secure, so IsCrypto reports true.
func WithSecureSource(src Source) Option {
	return func(g *Generator) {
		g.source = src
		g.crypto = true
	}
}

// WithLegacyMask makes custom-alphabet requests build their mask the
// historical way: identifiers inside the chars select classes, and the
// chars are then appended a second time.
func WithLegacyMask() Option {
	return func(g *Generator) {
		g.legacy = true
	}
}

// NewGenerator returns a Generator backed by the package default source
// unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{source: defaultSource, crypto: cryptoActive}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// IsCrypto reports whether g samples from a cryptographically secure source.
func (g *Generator) IsCrypto() bool {
	return g.crypto
}

// Mask validates req and returns the alphabet its output is sampled from.
func (g *Generator) Mask(req Request) (string, error) {
	if !req.Custom && !validPattern(req.Pattern) {
		return "", fmt.Errorf("%w: allowed patterns are %s, got %q",
			ErrInvalidPattern, allowedIdentifiers(), req.Pattern)
	}
	return buildMask(req, g.legacy), nil
}

// Generate returns a random string for req. Non-positive lengths yield an
// empty string.
func (g *Generator) Generate(req Request) (string, error) {
	mask, err := g.Mask(req)
	if err != nil {
		return "", err
	}
	if req.Length <= 0 {
		return "", nil
	}
	if req.Length > MaxLength {
		return "", fmt.Errorf("%w: %d exceeds %d", ErrLengthTooLarge, req.Length, MaxLength)
	}
	if mask == "" {
		return "", fmt.Errorf("%w: pattern %q selects no characters", ErrEmptyMask, req.Pattern)
	}
	return sample(g.source, []rune(mask), req.Length), nil
}

var std = NewGenerator()

// Generate accepts the loosely-typed call forms understood by Parse:
//
//	Generate("aA0")                     // 3 chars: lower, upper, digit classes
//	Generate(12)                        // 12 chars from every class
//	Generate("aA0", 10)                 // 10 chars from lower, upper, digits
//	Generate("", Options{Chars: "xyz"}) // 3 chars from "xyz"
//	Generate("a?", 5, Options{Chars: "-_"})
func Generate(pattern any, rest ...any) (string, error) {
	req, err := Parse(pattern, rest...)
	if err != nil {
		return "", err
	}
	return std.Generate(req)
}

// MustGenerate is like Generate but panics on error.
func MustGenerate(pattern any, rest ...any) string {
	s, err := Generate(pattern, rest...)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns length characters drawn from the classes in pattern.
func String(pattern string, length int) (string, error) {
	return std.Generate(WithLength(pattern, length))
}
