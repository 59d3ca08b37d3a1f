package validate

import (
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chiavi/internal/catalog"
	"chiavi/internal/log"
)

func testLogger() *log.Logger {
	return log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

func testCatalogs() map[catalog.Namespace]catalog.Catalog {
	return map[catalog.Namespace]catalog.Catalog{
		catalog.Common: {
			"actions": map[string]any{"save": "Save", "cancel": "Cancel"},
		},
		catalog.Finance: {
			"goals": map[string]any{"title": "Goals"},
		},
	}
}

func newValidator(fsys fstest.MapFS) *Validator {
	return &Validator{
		Source:           fsys,
		Catalogs:         testCatalogs(),
		DefaultNamespace: "common",
		Log:              testLogger(),
	}
}

func TestValidator_AllValid(t *testing.T) {
	fsys := fstest.MapFS{
		"App.tsx": &fstest.MapFile{Data: []byte(
			"t('actions.save')\nt('finance:goals.title')\nt('finance.goals.title')\n",
		)},
	}
	res, err := newValidator(fsys).Run()
	require.NoError(t, err)

	assert.True(t, res.OK())
	assert.Equal(t, 1, res.FilesScanned)
	assert.Equal(t, 3, res.Valid)
}

func TestValidator_MissingKey(t *testing.T) {
	fsys := fstest.MapFS{
		"App.tsx": &fstest.MapFile{Data: []byte("t('actions.delete')\n")},
	}
	res, err := newValidator(fsys).Run()
	require.NoError(t, err)

	require.Len(t, res.Missing, 1)
	f := res.Missing[0]
	assert.Equal(t, "App.tsx", f.File)
	assert.Equal(t, 1, f.Line)
	assert.Equal(t, "common:actions.delete", f.FullKey())
	assert.Equal(t, "Key not found in common.json", f.Reason)
	assert.False(t, res.OK())
}

func TestValidator_UnknownNamespace(t *testing.T) {
	fsys := fstest.MapFS{
		"App.tsx": &fstest.MapFile{Data: []byte("t('unknown_ns:x')\n")},
	}
	res, err := newValidator(fsys).Run()
	require.NoError(t, err)

	require.Len(t, res.Missing, 1)
	assert.Equal(t, `Namespace "unknown_ns" does not exist`, res.Missing[0].Reason)
}

func TestValidator_UseTranslationDefault(t *testing.T) {
	fsys := fstest.MapFS{
		"Goals.tsx": &fstest.MapFile{Data: []byte(
			"const { t } = useTranslation('finance');\nt('goals.title')\n",
		)},
	}
	res, err := newValidator(fsys).Run()
	require.NoError(t, err)

	assert.True(t, res.OK())
	assert.Equal(t, 1, res.Valid)
}

func TestValidator_KeyPropForms(t *testing.T) {
	fsys := fstest.MapFS{
		"Table.tsx": &fstest.MapFile{Data: []byte(
			"<Dialog titleKey=\"finance:goals.title\" />\n" +
				"<Dialog labelKey=\"actions.missing\" />\n" +
				"{ accessorKey: 'amount.cents' }\n",
		)},
	}
	res, err := newValidator(fsys).Run()
	require.NoError(t, err)

	assert.Equal(t, 1, res.Valid)
	require.Len(t, res.Missing, 1)
	assert.Equal(t, "common:actions.missing", res.Missing[0].FullKey())
}

func TestValidator_NonSourceFilesIgnored(t *testing.T) {
	fsys := fstest.MapFS{
		"README.md":                 &fstest.MapFile{Data: []byte("t('not.a.key')")},
		"node_modules/dep/index.js": &fstest.MapFile{Data: []byte("t('not.a.key')")},
		"src/ok.ts":                 &fstest.MapFile{Data: []byte("t('actions.save')")},
	}
	res, err := newValidator(fsys).Run()
	require.NoError(t, err)

	assert.Equal(t, 1, res.FilesScanned)
	assert.True(t, res.OK())
}

func TestValidator_IntermediateNotObject(t *testing.T) {
	v := newValidator(fstest.MapFS{
		"App.tsx": &fstest.MapFile{Data: []byte("t('actions.save.deeper')\n")},
	})
	res, err := v.Run()
	require.NoError(t, err)

	// "actions.save" is a string leaf, so the deeper path cannot resolve.
	require.Len(t, res.Missing, 1)
	assert.Equal(t, "Key not found in common.json", res.Missing[0].Reason)
}
