package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prospekt/internal/brochure"
)

func TestRepairMergeFillsGapsFromOriginal(t *testing.T) {
	original := brochure.Default()
	response := map[string]any{
		"projectName": "Reworded Heights",
		// malformed values the merge must skip
		"tagline":       42,
		"developerName": "",
		"keyDistances":  []any{"CBD - 4 km", true},
		"floorPlans":    []any{"not an object"},
	}

	doc, verr := RepairMerge(response, original)
	require.Nil(t, verr)

	assert.Equal(t, "Reworded Heights", doc.ProjectName)
	assert.Equal(t, original.Tagline, doc.Tagline)
	assert.Equal(t, original.DeveloperName, doc.DeveloperName)
	assert.Equal(t, original.KeyDistances, doc.KeyDistances)
	assert.Equal(t, original.FloorPlans, doc.FloorPlans)
}

func TestRepairMergeIgnoresUnknownFields(t *testing.T) {
	original := brochure.Default()
	doc, verr := RepairMerge(map[string]any{
		"projectName":   "Reworded Heights",
		"notARealField": "junk",
	}, original)
	require.Nil(t, verr)
	assert.Equal(t, "Reworded Heights", doc.ProjectName)
}

func TestRepairMergeStillFailsOnPoisonedEntries(t *testing.T) {
	original := brochure.Default()
	// well-typed at the shallow level (a list of objects) but invalid inside,
	// so the merge keeps it and validation rejects it
	_, verr := RepairMerge(map[string]any{
		"floorPlans": []any{
			map[string]any{"name": "", "area": "", "features": []any{}, "image": ""},
		},
	}, original)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "floorPlans.0.name")
}
