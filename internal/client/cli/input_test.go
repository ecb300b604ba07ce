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
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))

	text, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("no newline"))

	text, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", text)
}

func TestGetTextWithDefault(t *testing.T) {
	var out bytes.Buffer

	reader := bufio.NewReader(strings.NewReader("\n"))
	text, err := GetTextWithDefault(reader, "Title", "old title", &out)
	require.NoError(t, err)
	assert.Equal(t, "old title", text)

	reader = bufio.NewReader(strings.NewReader("new title\n"))
	text, err = GetTextWithDefault(reader, "Title", "old title", &out)
	require.NoError(t, err)
	assert.Equal(t, "new title", text)
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("first line\nsecond line\n\nignored\n"))

	text, err := GetMultiline(reader, "Write your post content", &out)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", text)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)
	assert.Contains(t, out.String(), "Enter password")
}
