package randomatic

import (
	"strings"

	"github.com/samber/lo"
)

// validPattern reports whether every character of pattern is a class
// identifier.
func validPattern(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		if !lo.ContainsBy(classes, func(c Class) bool { return c.Identifier == pattern[i] }) {
			return false
		}
	}
	return true
}

// buildMask expands a request into the alphabet to sample from. Classes
// contribute in table order, so the mask for a given request is stable.
//
// Custom requests sample from their chars alone unless legacy is set, in
// which case the chars are also scanned for identifiers and then appended
// once more, matching the historical distribution.
func buildMask(req Request, legacy bool) string {
	if req.Custom && !legacy {
		return req.Chars
	}

	var mask strings.Builder
	for _, c := range classes {
		if strings.IndexByte(req.Pattern, c.Identifier) < 0 {
			continue
		}
		if c.Identifier == Custom {
			mask.WriteString(req.Chars)
			continue
		}
		mask.WriteString(c.Letters)
	}

	if req.Custom {
		mask.WriteString(req.Pattern)
	}
	return mask.String()
}
