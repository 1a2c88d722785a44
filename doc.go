// Package randomatic generates random strings from a compact pattern of
// character-class identifiers.
//
// Each identifier in a pattern selects a class:
//
//	?  custom characters supplied through Options.Chars
//	a  lowercase letters
//	A  uppercase letters
//	0  digits
//	!  special characters ~!@#$%^&()_+-={}[];',.
//	*  every class above except custom
//
// The selected classes are concatenated into a mask, and the output is
// sampled from the mask with replacement. Characters that occur more than
// once in a mask are proportionally more likely.
//
// # Usage
//
//	s, err := randomatic.Generate("aA0", 16)  // 16 alphanumerics
//	id := randomatic.MustGenerate(8)          // 8 chars from every class
//	pin := randomatic.MustGenerate("0000")    // 4 digits
//
// Typed callers can skip the dynamic form entirely:
//
//	g := randomatic.NewGenerator()
//	s, err := g.Generate(randomatic.WithOptions("a?", 10, randomatic.Options{Chars: "-_"}))
//
// The default source is crypto/rand. IsCrypto reports whether it is active;
// when it is not, math/rand/v2 is used instead.
package randomatic
