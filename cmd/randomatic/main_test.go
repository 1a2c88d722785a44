package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/FGasper/randomatic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out
	cmd.ErrWriter = &errOut

	err := cmd.Run(context.Background(), append([]string{"randomatic"}, args...))
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestRunPatternAndLength(t *testing.T) {
	out, _, err := runCLI(t, "--count", "5", "0", "8")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 5)
	for _, l := range got {
		assert.Regexp(t, `^[0-9]{8}$`, l)
	}
}

func TestRunLengthShorthand(t *testing.T) {
	out, _, err := runCLI(t, "12")
	require.NoError(t, err)
	assert.Len(t, lines(out)[0], 12)
}

func TestRunCustomChars(t *testing.T) {
	out, _, err := runCLI(t, "--chars", "xyz")
	require.NoError(t, err)
	assert.Regexp(t, `^[xyz]{3}$`, lines(out)[0])

	out, _, err = runCLI(t, "-c", "ab", "?", "6")
	require.NoError(t, err)
	assert.Regexp(t, `^[ab]{6}$`, lines(out)[0])

	out, _, err = runCLI(t, "-c", "ab", "10")
	require.NoError(t, err)
	assert.Regexp(t, `^[ab]{10}$`, lines(out)[0])
}

func TestRunInvalidPattern(t *testing.T) {
	_, _, err := runCLI(t, "q", "5")
	assert.ErrorIs(t, err, randomatic.ErrInvalidPattern)
}

func TestRunInvalidLength(t *testing.T) {
	_, _, err := runCLI(t, "a", "lots")
	assert.ErrorIs(t, err, randomatic.ErrInvalidLengthType)
}

func TestRunRequiresArguments(t *testing.T) {
	_, _, err := runCLI(t)
	assert.Error(t, err)

	_, _, err = runCLI(t, "a", "1", "2")
	assert.Error(t, err)
}

func TestRunCRLF(t *testing.T) {
	out, _, err := runCLI(t, "--crlf", "-n", "2", "a", "4")
	require.NoError(t, err)
	assert.Regexp(t, `^[a-z]{4}\r\n[a-z]{4}\r\n$`, out)
}

func TestRunStats(t *testing.T) {
	out, _, err := runCLI(t, "--stats", "--no-color", "-n", "10", "-c", "x", "?", "100")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 12)
	assert.Contains(t, got[10], "'x'")
	assert.Contains(t, got[10], "1,000")
	assert.Equal(t, "1,000 characters, 1 distinct", got[11])
}

func TestRunVerboseLogs(t *testing.T) {
	_, errOut, err := runCLI(t, "-v", "--no-color", "a", "3")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Resolved request.")
}

func TestListClasses(t *testing.T) {
	out, _, err := runCLI(t, "classes")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 7)
	assert.True(t, strings.HasPrefix(got[0], "?"))
	assert.True(t, strings.HasPrefix(got[5], "*"))
	assert.Regexp(t, `^crypto: (true|false)$`, got[6])
}

func TestRequestFromArgs(t *testing.T) {
	req, err := requestFromArgs([]string{"aA"}, "", false)
	require.NoError(t, err)
	assert.Equal(t, randomatic.ShapePattern, req.Shape)

	req, err = requestFromArgs([]string{"aA"}, "-", true)
	require.NoError(t, err)
	assert.Equal(t, randomatic.ShapeOptions, req.Shape)
	assert.Equal(t, 2, req.Length)

	req, err = requestFromArgs([]string{"7"}, "", false)
	require.NoError(t, err)
	assert.Equal(t, randomatic.ShapeLength, req.Shape)
	assert.Equal(t, 7, req.Length)
}
