package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert"
)

func TestLine(t *testing.T) {
	var out bytes.Buffer
	r := New(strings.NewReader("Alice\n"), &out)

	got, err := r.Line("Enter Name: ")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", got)
	assert.Equal(t, "Enter Name: ", out.String())
}

func TestLineWithoutTrailingNewline(t *testing.T) {
	var out bytes.Buffer
	r := New(strings.NewReader("Alice"), &out)

	got, err := r.Line("Enter Name: ")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", got)
}

func TestLineCRLF(t *testing.T) {
	var out bytes.Buffer
	r := New(strings.NewReader("Alice\r\n"), &out)

	got, err := r.Line("Enter Name: ")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", got)
}

func TestLineEOF(t *testing.T) {
	var out bytes.Buffer
	r := New(strings.NewReader(""), &out)

	_, err := r.Line("Enter Name: ")
	assert.Error(t, err)
}

func TestInt(t *testing.T) {
	var out bytes.Buffer
	r := New(strings.NewReader("42\n"), &out)

	got, err := r.Int("Enter Roll No: ")
	assert.NoError(t, err)
	assert.Equal(t, 42, got)
}

// Non-numeric input is rejected and the prompt repeats until a valid
// integer arrives.
func TestIntRepromptsOnBadInput(t *testing.T) {
	var out bytes.Buffer
	r := New(strings.NewReader("abc\n 7 \n"), &out)

	got, err := r.Int("Enter Roll No: ")
	assert.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Contains(t, out.String(), "Please enter a number.")
	// Label printed twice: once for the rejected attempt, once more.
	assert.Equal(t, 2, strings.Count(out.String(), "Enter Roll No: "))
}

func TestIntEOF(t *testing.T) {
	var out bytes.Buffer
	r := New(strings.NewReader("abc\n"), &out)

	// One bad attempt, then the stream runs out.
	_, err := r.Int("Enter Roll No: ")
	assert.Error(t, err)
}
