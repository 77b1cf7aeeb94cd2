package wizard

import (
	"testing"

	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id uint, textTr, textEn string) models.CatalogEntry {
	return models.CatalogEntry{ID: id, Scope: "valve", TextTr: textTr, TextEn: textEn}
}

func TestSelectActionSnapshotsText(t *testing.T) {
	c := New(newFakeService(), "tr", "technician")

	e := entry(5, "Gövde temizlendi.", "Body cleaned.")
	require.True(t, c.SelectAction(e))

	require.Len(t, c.Draft().Actions, 1)
	a := c.Draft().Actions[0]
	assert.Equal(t, uint(5), a.LibraryID)
	assert.Equal(t, "Gövde temizlendi.", a.SnapshotTextTr)
	assert.Equal(t, "Body cleaned.", a.SnapshotTextEn)
	assert.Equal(t, 0, a.OrderIndex)
}

func TestSnapshotImmuneToLaterCatalogEdits(t *testing.T) {
	c := New(newFakeService(), "tr", "technician")

	e := entry(5, "Gövde temizlendi.", "Body cleaned.")
	require.True(t, c.SelectAction(e))

	// The library entry is edited after selection; the draft keeps the copy
	// it took at selection time.
	e.TextEn = "Body cleaned and repainted."
	assert.Equal(t, "Body cleaned.", c.Draft().Actions[0].SnapshotTextEn)
}

func TestSelectActionRejectsDuplicate(t *testing.T) {
	c := New(newFakeService(), "tr", "technician")

	e := entry(5, "a", "b")
	require.True(t, c.SelectAction(e))
	assert.False(t, c.SelectAction(e))
	assert.Len(t, c.Draft().Actions, 1)

	// Duplicate detection keys on the library reference, not the text.
	changed := entry(5, "different", "text")
	assert.False(t, c.SelectAction(changed))
}

func TestOrderIndexAssignedSequentially(t *testing.T) {
	c := New(newFakeService(), "tr", "technician")

	for i := uint(1); i <= 4; i++ {
		require.True(t, c.SelectAction(entry(i, "t", "t")))
	}
	for i, a := range c.Draft().Actions {
		assert.Equal(t, i, a.OrderIndex)
	}
}

func TestDeselectRecompactsOrderIndexes(t *testing.T) {
	c := New(newFakeService(), "tr", "technician")

	first := entry(1, "one", "one")
	second := entry(2, "two", "two")
	third := entry(3, "three", "three")
	require.True(t, c.SelectAction(first))
	require.True(t, c.SelectAction(second))
	require.True(t, c.SelectAction(third))

	c.DeselectAction(second)

	actions := c.Draft().Actions
	require.Len(t, actions, 2)
	assert.Equal(t, uint(1), actions[0].LibraryID)
	assert.Equal(t, uint(3), actions[1].LibraryID)
	assert.Equal(t, 0, actions[0].OrderIndex)
	assert.Equal(t, 1, actions[1].OrderIndex)

	// Deselecting something not on the draft changes nothing.
	c.DeselectAction(entry(99, "", ""))
	assert.Len(t, c.Draft().Actions, 2)
}

func TestDeselectThenReselectAllowed(t *testing.T) {
	c := New(newFakeService(), "tr", "technician")

	e := entry(7, "a", "b")
	require.True(t, c.SelectAction(e))
	c.DeselectAction(e)
	assert.True(t, c.SelectAction(e))
	assert.Equal(t, 0, c.Draft().Actions[0].OrderIndex)
}

func TestSetManualExtensionPerLanguage(t *testing.T) {
	c := New(newFakeService(), "tr", "technician")
	require.True(t, c.SelectAction(entry(7, "a", "b")))

	c.SetManualExtension(7, "tr", "Salmastra degistirildi.")
	c.SetManualExtension(7, "en", "Packing replaced.")

	a := c.Draft().Actions[0]
	assert.Equal(t, "Salmastra degistirildi.", a.ManualExtensionTr)
	assert.Equal(t, "Packing replaced.", a.ManualExtensionEn)
	assert.Equal(t, "a", a.SnapshotTextTr, "snapshot text untouched")
}

func TestSetManualExtensionRequiresSelection(t *testing.T) {
	c := New(newFakeService(), "tr", "technician")

	c.SetManualExtension(42, "tr", "never stored")
	assert.Empty(t, c.Draft().Actions)

	require.True(t, c.SelectAction(entry(7, "a", "b")))
	c.SetManualExtension(42, "en", "wrong reference")
	assert.Empty(t, c.Draft().Actions[0].ManualExtensionEn)
}

func TestManualExtensionClearable(t *testing.T) {
	c := New(newFakeService(), "tr", "technician")
	require.True(t, c.SelectAction(entry(7, "a", "b")))

	c.SetManualExtension(7, "en", "temporary note")
	c.SetManualExtension(7, "en", "")
	assert.Empty(t, c.Draft().Actions[0].ManualExtensionEn)
}
