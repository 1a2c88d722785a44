package randomatic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

// Number is any numeric type accepted as an output length.
type Number interface {
	constraints.Integer | constraints.Float
}

// Shape identifies which call form produced a Request.
type Shape int

const (
	// ShapePattern derives the length from the pattern itself.
	ShapePattern Shape = iota
	// ShapeLength samples Length characters from every class.
	ShapeLength
	// ShapePatternLength pairs a pattern with an explicit length.
	ShapePatternLength
	// ShapeCustom samples only from a caller-supplied alphabet.
	ShapeCustom
	// ShapeOptions pairs a pattern and length with extra custom characters.
	ShapeOptions
)

func (s Shape) String() string {
	switch s {
	case ShapePattern:
		return "pattern"
	case ShapeLength:
		return "length"
	case ShapePatternLength:
		return "pattern+length"
	case ShapeCustom:
		return "custom"
	case ShapeOptions:
		return "pattern+length+options"
	default:
		return "shape(" + strconv.Itoa(int(s)) + ")"
	}
}

// Options carries the optional custom alphabet.
type Options struct {
	// Chars are the custom characters. In ShapeOptions they are the
	// contribution of the '?' class.
	Chars string
}

// Request is the canonical, normalized form of a generation call.
type Request struct {
	Shape   Shape
	Pattern string
	Length  int
	Chars   string

	// Custom is set only for ShapeCustom. Custom requests skip pattern
	// validation.
	Custom bool
}

// FromPattern uses each identifier in pattern as a class selector and
// produces as many characters as the pattern is long.
func FromPattern(pattern string) Request {
	return Request{Shape: ShapePattern, Pattern: pattern, Length: utf8.RuneCountInString(pattern)}
}

// FromLength samples n characters from the "all" class.
func FromLength[N Number](n N) Request {
	return Request{Shape: ShapeLength, Pattern: string(All), Length: countdown(n)}
}

// WithLength samples n characters from the classes named in pattern.
func WithLength[N Number](pattern string, n N) Request {
	return Request{Shape: ShapePatternLength, Pattern: pattern, Length: countdown(n)}
}

// WithChars samples as many characters as chars holds, from chars only.
func WithChars(chars string) Request {
	return Request{Shape: ShapeCustom, Pattern: chars, Length: utf8.RuneCountInString(chars), Chars: chars, Custom: true}
}

// WithOptions samples n characters from the classes named in pattern, with
// opts.Chars standing in for the custom class.
func WithOptions[N Number](pattern string, n N, opts Options) Request {
	return Request{Shape: ShapeOptions, Pattern: pattern, Length: countdown(n), Chars: opts.Chars}
}

// countdown returns how many times "n-- > 0" holds, so positive fractions
// round up and anything non-positive yields zero.
func countdown[N Number](n N) int {
	f := float64(n)
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= math.MaxInt {
		return math.MaxInt
	}
	return int(math.Ceil(f))
}

// Parse normalizes a loosely-typed call into a Request. pattern may be a
// string or any Go number. rest holds at most a length (number or numeric
// string) or config value, followed by an options value. Config and
// options values are Options, *Options or a map[string]any with a "chars"
// key.
func Parse(pattern any, rest ...any) (Request, error) {
	if len(rest) > 2 {
		return Request{}, fmt.Errorf("%w: got %d", ErrTooManyArguments, len(rest)+1)
	}

	patternStr, isString := pattern.(string)
	patternNum, isNumber := toFloat(pattern)
	if !isString && !isNumber {
		return Request{}, fmt.Errorf("%w: got %T", ErrInvalidPatternType, pattern)
	}

	if len(rest) == 0 {
		if isString {
			return FromPattern(patternStr), nil
		}
		return FromLength(patternNum), nil
	}

	if !isString {
		patternStr = string(All)
	}

	if chars, ok, err := configChars(rest[0]); err != nil {
		return Request{}, err
	} else if ok {
		return WithChars(chars), nil
	}

	length, ok := toLength(rest[0])
	if !ok {
		return Request{}, fmt.Errorf("%w: got %#v", ErrInvalidLengthType, rest[0])
	}

	if len(rest) < 2 || rest[1] == nil {
		return WithLength(patternStr, length), nil
	}

	chars, _, err := configChars(rest[1])
	if err != nil {
		return Request{}, err
	}
	return WithOptions(patternStr, length, Options{Chars: chars}), nil
}

// configChars extracts the chars property from a config value. ok reports
// whether v is a config carrying chars.
func configChars(v any) (chars string, ok bool, err error) {
	switch c := v.(type) {
	case Options:
		return c.Chars, true, nil
	case *Options:
		if c == nil {
			return "", false, nil
		}
		return c.Chars, true, nil
	case map[string]any:
		raw, found := c["chars"]
		if !found || raw == nil {
			return "", false, nil
		}
		s, isString := raw.(string)
		if !isString {
			return "", false, fmt.Errorf("%w: got %T", ErrInvalidCharsType, raw)
		}
		return s, true, nil
	}
	return "", false, nil
}

func toLength(v any) (float64, bool) {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return toFloat(v)
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
