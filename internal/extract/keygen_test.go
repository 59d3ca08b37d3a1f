package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chiavi/internal/catalog"
)

func TestGenerateKey(t *testing.T) {
	key := GenerateKey("Save changes", "features/goals/Goals.tsx", 12, KindJSXText)

	assert.True(t, strings.HasPrefix(key, "auto.features.goals.Goals.save_changes_12_"), key)
	suffix := key[strings.LastIndex(key, "_")+1:]
	assert.Len(t, suffix, 6)

	// deterministic for identical inputs
	assert.Equal(t, key, GenerateKey("Save changes", "features/goals/Goals.tsx", 12, KindJSXText))
	// any input change moves the hash
	assert.NotEqual(t, key, GenerateKey("Save changes", "features/goals/Goals.tsx", 13, KindJSXText))
	assert.NotEqual(t, key, GenerateKey("Save changes", "features/goals/Goals.tsx", 12, KindJSXAttr))
}

func TestGenerateKey_Sanitization(t *testing.T) {
	key := GenerateKey("Ciao, mondo! Come va oggi?", "pages/[id]/détail.view.tsx", 3, KindJSXText)

	// snippet keeps the first four words, stripped to alphanumerics
	assert.Contains(t, key, "ciao_mondo_come_va_3_")
	// path segments lose non-alphanumerics and the extension
	assert.True(t, strings.HasPrefix(key, "auto.pages.id.d_tail_view."), key)
}

func TestGenerateKey_EmptySnippet(t *testing.T) {
	key := GenerateKey("¡¡¡", "App.tsx", 1, KindJSXText)
	assert.True(t, strings.HasPrefix(key, "auto.App.text_1_"), key)
}

func TestAssign(t *testing.T) {
	cat := catalog.Catalog{}

	key, existing := Assign(cat, "auto.App.hello_1_abc123", "Hello")
	assert.False(t, existing)
	assert.Equal(t, "auto.App.hello_1_abc123", key)

	// same key, same text: idempotent
	key, existing = Assign(cat, "auto.App.hello_1_abc123", "Hello")
	assert.True(t, existing)
	assert.Equal(t, "auto.App.hello_1_abc123", key)

	// same key, different text: bumped to the next free suffix
	key, existing = Assign(cat, "auto.App.hello_1_abc123", "Hello there")
	assert.False(t, existing)
	assert.Equal(t, "auto.App.hello_1_abc123_2", key)

	key, existing = Assign(cat, "auto.App.hello_1_abc123", "Hello again")
	assert.False(t, existing)
	assert.Equal(t, "auto.App.hello_1_abc123_3", key)
}

func TestAssign_NestedObjectOccupant(t *testing.T) {
	cat := catalog.Catalog{}
	cat.Set("auto.App.section_1_abc123.child", "nested")

	key, existing := Assign(cat, "auto.App.section_1_abc123", "Section")
	assert.False(t, existing)
	assert.Equal(t, "auto.App.section_1_abc123_2", key)

	val, ok := cat.Get("auto.App.section_1_abc123_2")
	require.True(t, ok)
	assert.Equal(t, "Section", val)
	// the nested subtree is untouched
	assert.True(t, cat.Has("auto.App.section_1_abc123.child"))
}
