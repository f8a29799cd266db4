package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, exampleOptions))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	password, ok := strings.CutPrefix(lines[0], "Generated Secure Password: ")
	require.True(t, ok, lines[0])
	assert.Len(t, password, 20)
	assert.False(t, strings.ContainsAny(password, "lI1O0"))

	assert.Equal(t, "Password Entropy: 129.51 bits", lines[1])
}

func TestRun_InvalidOptions(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, crypto.GeneratorOptions{Length: 2, Uppercase: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, crypto.ErrInvalidLength))
	assert.Empty(t, buf.String())
}
