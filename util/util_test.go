package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBacktrace(t *testing.T) {
	ex := Backtrace(12)
	assert.NotNil(t, ex)
	assert.True(t, len(ex) > 0)
	assert.True(t, len(ex) < 12)
	assert.Contains(t, ex[0], "TestBacktrace")
}

func TestFileExists(t *testing.T) {
	ok, err := FileExists(os.Args[0])
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExists("/no/such/path/fibheap")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryUsage(t *testing.T) {
	assert.Contains(t, MemoryUsage(), "MB")
}
