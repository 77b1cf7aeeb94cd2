package actionLibraryController

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedActionsWellFormed(t *testing.T) {
	assert.NotEmpty(t, seedActions)

	validScope := map[string]bool{
		"valve":              true,
		"actuator_pneumatic": true,
		"actuator_electric":  true,
		"positioner":         true,
		"accessory":          true,
	}

	seen := map[string]bool{}
	for _, seed := range seedActions {
		assert.Truef(t, validScope[seed.Scope], "unexpected scope %q", seed.Scope)
		assert.NotEmpty(t, seed.Category)
		assert.NotEmptyf(t, seed.TextTr, "missing TR text in scope %s", seed.Scope)
		assert.NotEmptyf(t, seed.TextEn, "missing EN text for %q", seed.TextTr)

		key := seed.Scope + "|" + seed.TextTr
		assert.Falsef(t, seen[key], "duplicate seed entry %q", key)
		seen[key] = true
	}
}
