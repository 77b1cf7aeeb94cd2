package wizard

// Action snapshot handling. Selecting a catalog entry copies its bilingual
// text into the draft at that moment; the copy is never re-read from the
// catalog, so later edits or deletions of the library entry leave issued
// reports untouched.

import (
	"github.com/yilfev-stack/yeniservisrapor26022026/models"
)

// SelectAction appends a snapshot of the catalog entry to the draft's action
// list. Re-selecting an entry that is already on the draft is rejected; the
// return value reports whether the entry was added.
func (c *Controller) SelectAction(entry models.CatalogEntry) bool {
	for _, a := range c.draft.Actions {
		if a.LibraryID == entry.ID {
			return false
		}
	}
	c.draft.Actions = append(c.draft.Actions, models.ReportAction{
		LibraryID:      entry.ID,
		SnapshotTextTr: entry.TextTr,
		SnapshotTextEn: entry.TextEn,
		OrderIndex:     len(c.draft.Actions),
	})
	return true
}

// DeselectAction removes the action created from the given catalog entry and
// recompacts the remaining order indexes to 0..n-1, preserving relative
// order.
func (c *Controller) DeselectAction(entry models.CatalogEntry) {
	kept := c.draft.Actions[:0]
	for _, a := range c.draft.Actions {
		if a.LibraryID != entry.ID {
			kept = append(kept, a)
		}
	}
	for i := range kept {
		kept[i].OrderIndex = i
	}
	c.draft.Actions = kept
}

// SetManualExtension updates the per-language manual addendum on the action
// matching the catalog reference. A reference that was never selected is a
// no-op: selection must precede extension.
func (c *Controller) SetManualExtension(libraryID uint, language, text string) {
	for i := range c.draft.Actions {
		if c.draft.Actions[i].LibraryID != libraryID {
			continue
		}
		switch language {
		case "tr":
			c.draft.Actions[i].ManualExtensionTr = text
		case "en":
			c.draft.Actions[i].ManualExtensionEn = text
		}
		return
	}
}
