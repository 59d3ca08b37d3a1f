package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chiavi/internal/fsio"
)

func TestCompare(t *testing.T) {
	base := Catalog{
		"actions": map[string]any{"save": "Save", "cancel": "Cancel"},
		"title":   "Dashboard",
	}
	other := Catalog{
		"actions": map[string]any{"save": "Salva"},
		"legacy":  "Vecchio",
	}

	cov := Compare(Common, base, other)

	assert.Equal(t, Common, cov.Namespace)
	assert.Equal(t, []string{"actions.cancel", "title"}, cov.Missing)
	assert.Equal(t, []string{"legacy"}, cov.Stale)
}

func TestCompare_InSync(t *testing.T) {
	base := Catalog{"a": "A"}
	other := Catalog{"a": "different translation"}

	cov := Compare(Common, base, other)

	assert.Empty(t, cov.Missing)
	assert.Empty(t, cov.Stale)
}

func TestLocales(t *testing.T) {
	mem := fsio.NewMem()
	require.NoError(t, mem.WriteFile("en/common.json", []byte("{}")))
	require.NoError(t, mem.WriteFile("it/common.json", []byte("{}")))
	require.NoError(t, mem.WriteFile("pt-BR/common.json", []byte("{}")))
	require.NoError(t, mem.WriteFile("_drafts/common.json", []byte("{}")))

	locales, err := Locales(mem, "en")
	require.NoError(t, err)

	assert.Equal(t, []string{"it", "pt-BR"}, locales)
}
