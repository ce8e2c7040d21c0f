package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "cli")
	require.NoError(t, generate(dir))

	for _, name := range []string{"3c.md", "3c_deals_profit.md", "3c_bots_start-deal.md", "3c_sign.md"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "3c_sign.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "without the \"?\" separator")
	assert.NotContains(t, string(data), "Auto generated by spf13/cobra")
}
