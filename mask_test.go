package randomatic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPattern(t *testing.T) {
	assert.True(t, validPattern(""))
	assert.True(t, validPattern("aA0!?*"))
	assert.True(t, validPattern("aaaa"))
	assert.False(t, validPattern("q"))
	assert.False(t, validPattern("aAb"))
	assert.False(t, validPattern("é"))
}

func TestBuildMask(t *testing.T) {
	tests := []struct {
		name   string
		req    Request
		legacy bool
		want   string
	}{
		{
			name: "table order regardless of pattern order",
			req:  WithLength("0a", 1),
			want: "abcdefghijklmnopqrstuvwxyz0123456789",
		},
		{
			name: "repeated identifiers contribute once",
			req:  WithLength("000", 1),
			want: "0123456789",
		},
		{
			name: "custom class takes options chars",
			req:  WithOptions("?0", 1, Options{Chars: "xy"}),
			want: "xy0123456789",
		},
		{
			name: "custom class without chars",
			req:  WithLength("?", 1),
			want: "",
		},
		{
			name: "chars without custom identifier are ignored",
			req:  WithOptions("0", 1, Options{Chars: "xy"}),
			want: "0123456789",
		},
		{
			name: "custom alphabet",
			req:  WithChars("a0z"),
			want: "a0z",
		},
		{
			name:   "legacy custom alphabet",
			req:    WithChars("xyz"),
			legacy: true,
			want:   "xyz",
		},
		{
			name:   "legacy custom alphabet expands identifiers",
			req:    WithChars("?0"),
			legacy: true,
			want:   "?00123456789?0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildMask(tt.req, tt.legacy))
		})
	}
}
