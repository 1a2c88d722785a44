package randomatic

import "errors"

var (
	// ErrInvalidPatternType is returned when a pattern is neither a string nor a number.
	ErrInvalidPatternType = errors.New("randomatic expects pattern to be a string or a number")

	// ErrInvalidLengthType is returned when the resolved length is not a number.
	ErrInvalidLengthType = errors.New("randomatic expects length to be a number")

	// ErrInvalidCharsType is returned when options.chars is present but not a string.
	ErrInvalidCharsType = errors.New("randomatic expects options.chars to be a string")

	// ErrInvalidPattern is returned when a pattern holds an unknown class identifier.
	ErrInvalidPattern = errors.New("randomatic pattern is not a valid pattern")

	// ErrLengthTooLarge is returned when the requested length exceeds MaxLength.
	ErrLengthTooLarge = errors.New("randomatic length is too large")

	// ErrTooManyArguments is returned when Parse receives more than a
	// length or config value and an options value.
	ErrTooManyArguments = errors.New("randomatic expects at most a pattern, a length and options")

	// ErrEmptyMask is returned when a positive length is requested but the
	// pattern and options select no characters at all.
	ErrEmptyMask = errors.New("randomatic mask is empty")
)
