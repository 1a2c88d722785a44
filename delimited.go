package randomatic

import (
	"strings"

	"github.com/samber/lo"
)

// joinField joins the values that field retains from items. When last is
// non-empty it separates the final pair instead of delim ("A, B and C").
func joinField[T any](items []T, field func(T) (string, bool), delim, last string) string {
	values := lo.FilterMap(items, func(item T, _ int) (string, bool) {
		return field(item)
	})

	if last == "" || len(values) < 2 {
		return strings.Join(values, delim)
	}

	n := len(values) - 1
	return strings.Join(values[:n], delim) + last + values[n]
}
