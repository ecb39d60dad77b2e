package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(r, "Prompt", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetChoice(t *testing.T) {
	var out bytes.Buffer

	// empty input selects the default
	r := bufio.NewReader(strings.NewReader("\n"))
	got, err := GetChoice(r, "Pick", []string{"a", "b"}, "b", &out)
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	// invalid input re-prompts until a valid option arrives
	r = bufio.NewReader(strings.NewReader("x\na\n"))
	got, err = GetChoice(r, "Pick", []string{"a", "b"}, "b", &out)
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}
