package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harborline/clear-to-ship/internal/common"
	"github.com/harborline/clear-to-ship/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadOverlay(t *testing.T) {
	t.Run("valid overlay merges after built-ins", func(t *testing.T) {
		path := writeOverlay(t, `
countries:
  Kenya:
    - document: Fumigation Certificate
      mandatory: "Yes"
      responsibility: Shipper
      mode: Sea
      notes: Required for wooden packaging.
`)

		overlay, err := LoadOverlay(path)
		require.NoError(t, err)

		store, err := NewStoreWithOverlay(overlay)
		require.NoError(t, err)

		reqs, err := store.CountrySpecific("Kenya")
		require.NoError(t, err)
		require.Len(t, reqs, 3) // PVoC + IDF + overlay

		added := reqs[2]
		assert.Equal(t, "Fumigation Certificate", added.Document)
		assert.Equal(t, model.MandatoryYes, added.Mandatory)
		assert.Equal(t, model.ModeSea, added.Mode)
		// unset filters default to the wildcard
		assert.Equal(t, model.CommodityAny, added.Commodity)
		assert.Equal(t, model.IncotermAny, added.Incoterm)
	})

	t.Run("defaults applied", func(t *testing.T) {
		path := writeOverlay(t, `
countries:
  Ghana:
    - document: Insurance Addendum
`)

		overlay, err := LoadOverlay(path)
		require.NoError(t, err)

		store, err := NewStoreWithOverlay(overlay)
		require.NoError(t, err)

		reqs, err := store.CountrySpecific("Ghana")
		require.NoError(t, err)
		added := reqs[len(reqs)-1]
		assert.Equal(t, model.MandatoryConditional, added.Mandatory)
		assert.Equal(t, model.ResponsibilityShipper, added.Responsibility)
	})

	t.Run("bad enum fails loudly", func(t *testing.T) {
		path := writeOverlay(t, `
countries:
  Kenya:
    - document: Mystery Doc
      mode: Zeppelin
`)

		_, err := LoadOverlay(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown transport mode")
	})

	t.Run("missing document name fails", func(t *testing.T) {
		path := writeOverlay(t, `
countries:
  Kenya:
    - mandatory: "Yes"
`)

		_, err := LoadOverlay(path)
		require.Error(t, err)
	})

	t.Run("unknown country rejected at store construction", func(t *testing.T) {
		path := writeOverlay(t, `
countries:
  Atlantis:
    - document: Trident Permit
`)

		overlay, err := LoadOverlay(path)
		require.NoError(t, err)

		_, err = NewStoreWithOverlay(overlay)
		require.ErrorIs(t, err, common.ErrUnknownCountry)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadOverlay(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}
