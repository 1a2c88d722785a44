package randomatic

// Class is a named character set selected by a single-character identifier
// in a pattern.
type Class struct {
	Name       string
	Identifier byte

	// Letters is empty for the custom class; its characters are supplied
	// by the caller at generation time.
	Letters string
}

// Class identifiers.
const (
	Custom  byte = '?'
	Lower   byte = 'a'
	Upper   byte = 'A'
	Digit   byte = '0'
	Special byte = '!'
	All     byte = '*'
)

var classes = buildClasses()

func buildClasses() []Class {
	table := []Class{
		{Name: "custom", Identifier: Custom},
		{Name: "lower", Identifier: Lower, Letters: "abcdefghijklmnopqrstuvwxyz"},
		{Name: "upper", Identifier: Upper, Letters: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{Name: "number", Identifier: Digit, Letters: "0123456789"},
		{Name: "special", Identifier: Special, Letters: "~!@#$%^&()_+-={}[];',."},
	}

	all := joinField(table, func(c Class) (string, bool) {
		return c.Letters, c.Letters != ""
	}, "", "")

	return append(table, Class{Name: "all", Identifier: All, Letters: all})
}

// Classes returns a copy of the pattern table in lookup order.
func Classes() []Class {
	out := make([]Class, len(classes))
	copy(out, classes)
	return out
}

// allowedIdentifiers renders the identifier list used in pattern errors,
// e.g. "?, a, A, 0, ! and *".
func allowedIdentifiers() string {
	return joinField(classes, func(c Class) (string, bool) {
		return string(c.Identifier), true
	}, ", ", " and ")
}
