package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "hello", normalizeText("hello", "N/A"))
	assert.Equal(t, "hello", normalizeText("  hello  ", "N/A"))
	assert.Equal(t, "N/A", normalizeText("", "N/A"))
	assert.Equal(t, "N/A", normalizeText("   ", "N/A"))
	assert.Equal(t, "-", normalizeText("\t\n", "-"))
}
