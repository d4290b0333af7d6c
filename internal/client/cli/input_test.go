package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("  hello world \nnext\n"))
	var out bytes.Buffer

	got, err := GetSimpleText(sc, "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Equal(t, "Name?\n> ", out.String())

	got, err = GetSimpleText(sc, "Again?", &out)
	require.NoError(t, err)
	require.Equal(t, "next", got)
}

func TestGetSimpleTextEOF(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader(""))
	_, err := GetSimpleText(sc, "Name?", io.Discard)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_NotTerminal(t *testing.T) {
	old := isTerminal
	defer func() { isTerminal = old }()
	isTerminal = func(int) bool { return false }

	sc := bufio.NewScanner(strings.NewReader("s3cret\n"))
	pw, err := GetPassword(sc, io.Discard)
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), pw)
}

func TestGetPassword_Terminal(t *testing.T) {
	oldTerm, oldRead := isTerminal, readPassword
	defer func() { isTerminal, readPassword = oldTerm, oldRead }()
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("hidden"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(bufio.NewScanner(strings.NewReader("")), &out)
	require.NoError(t, err)
	require.Equal(t, []byte("hidden"), pw)
	require.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	oldTerm, oldRead := isTerminal, readPassword
	defer func() { isTerminal, readPassword = oldTerm, oldRead }()
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }

	_, err := GetPassword(bufio.NewScanner(strings.NewReader("")), io.Discard)
	require.EqualError(t, err, "boom")
}
