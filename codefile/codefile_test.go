package codefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsTernaryChips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "code.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 0, 0xff}, 0o644)) // 0xff == int8(-1)

	chips, err := Load(path, 3)

	require.NoError(t, err)
	assert.Equal(t, []int8{1, 0, -1}, chips)
}

func TestToCpx16ScalesByCSCALE(t *testing.T) {
	code := ToCpx16([]int8{1, 0, -1})

	assert.Equal(t, int16(10), code[0].I)
	assert.Equal(t, int16(0), code[1].I)
	assert.Equal(t, int16(-10), code[2].I)
}

func TestLoadRejectsOutOfRangeChip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "code.bin")
	require.NoError(t, os.WriteFile(path, []byte{5}, 0o644))

	_, err := Load(path, 1)

	assert.Error(t, err)
}

func TestLoadRejectsShortFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "code.bin")
	require.NoError(t, os.WriteFile(path, []byte{1}, 0o644))

	_, err := Load(path, 2)

	assert.Error(t, err)
}
