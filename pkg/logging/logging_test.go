package logging

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetPrefix("")

	dest := filepath.Join(t.TempDir(), "blockterm.log")

	closer, err := Init(dest, "TEST: ")
	require.NoError(t, err)

	log.Println("hello")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(b), "TEST: ")
	assert.Contains(t, string(b), "hello")
}

func TestInitDiscard(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetPrefix("")

	closer, err := Init("", "TEST: ")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

func TestInitBadPath(t *testing.T) {
	defer log.SetPrefix("")

	_, err := Init(filepath.Join(t.TempDir(), "missing", "dir", "log"), "")
	assert.Error(t, err)
}
