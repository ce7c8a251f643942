package generate

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prospekt/internal/brochure"
	"prospekt/internal/llm"
	"prospekt/internal/logging"
)

type fakeDrafter struct {
	responses []string
	err       error
	calls     int
	prompts   []llm.Prompt
}

func (f *fakeDrafter) Draft(_ context.Context, p llm.Prompt) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, p)
	if f.err != nil {
		return "", f.err
	}
	idx := f.calls - 1
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	return f.responses[idx], nil
}

// docJSON renders the default document with the given mutations applied, as
// a model response would carry it.
func docJSON(t *testing.T, mutate func(m map[string]any)) string {
	t.Helper()
	m := brochure.ToMap(brochure.Default())
	if mutate != nil {
		mutate(m)
	}
	data, err := json.Marshal(m)
	require.NoError(t, err)
	return string(data)
}

func newTestGenerator(d llm.Drafter) *Generator {
	return New(d, logging.Nop(), Options{})
}

func TestGenerateSectionRewordsOnlyTargetedField(t *testing.T) {
	existing := brochure.Default()
	drafter := &fakeDrafter{responses: []string{docJSON(t, func(m map[string]any) {
		m["locationDesc1"] = "Moments from the ring road, minutes from everywhere."
		// out-of-scope edits the conformance pass must discard
		m["developerName"] = "Invented Estates"
		m["coverImage"] = "https://evil.example.com/cover.jpg"
		m["keyDistances"] = []any{"CBD - 4.5 km", "Airport - 28 km"}
	})}}

	gen := newTestGenerator(drafter)
	out, err := gen.GenerateSection(context.Background(), Input{
		Existing: existing,
		Section:  brochure.SectionLocation,
		Fields:   []string{"locationDesc1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Moments from the ring road, minutes from everywhere.", out.LocationDesc1)
	assert.Equal(t, existing.DeveloperName, out.DeveloperName)
	assert.Equal(t, existing.CoverImage, out.CoverImage)
	assert.Equal(t, existing.KeyDistances, out.KeyDistances)
	assert.Equal(t, existing.LocationDesc2, out.LocationDesc2)
}

func TestGenerateSectionPreservesListCardinality(t *testing.T) {
	existing := brochure.Default()
	drafter := &fakeDrafter{responses: []string{docJSON(t, func(m map[string]any) {
		m["specsInterior"] = []any{
			"Imported vitrified flooring",
			"Engineered wood in bedrooms",
			"Granite-counter modular kitchen",
			"An extra item the model invented",
			"And one more",
		}
	})}}

	gen := newTestGenerator(drafter)
	out, err := gen.GenerateSection(context.Background(), Input{
		Existing: existing,
		Section:  brochure.SectionSpecifications,
	})
	require.NoError(t, err)

	require.Len(t, out.SpecsInterior, len(existing.SpecsInterior))
	assert.Equal(t, "Imported vitrified flooring", out.SpecsInterior[0])
}

func TestGenerateWholeDocumentKeepsEveryImage(t *testing.T) {
	existing, verr := brochure.Validate(map[string]any{
		"coverImage": "https://cdn.example.com/real-cover.jpg",
	})
	require.Nil(t, verr)

	drafter := &fakeDrafter{responses: []string{docJSON(t, func(m map[string]any) {
		m["coverImage"] = "https://model.example.com/fake.jpg"
		m["mapImage"] = "https://model.example.com/map.jpg"
		m["backCoverLogo"] = "https://model.example.com/logo.png"
	})}}

	gen := newTestGenerator(drafter)
	out, err := gen.GenerateSection(context.Background(), Input{Existing: existing})
	require.NoError(t, err)

	inMap := brochure.ToMap(existing)
	outMap := brochure.ToMap(out)
	for field := range inMap {
		if brochure.IsImageField(field) {
			assert.Equal(t, inMap[field], outMap[field], "image field %s changed", field)
		}
	}
}

func TestGenerateSectionKeepsFloorPlanStructure(t *testing.T) {
	existing := brochure.Default()
	drafter := &fakeDrafter{responses: []string{docJSON(t, func(m map[string]any) {
		m["floorPlans"] = []any{
			map[string]any{
				"id":       "model-invented",
				"name":     "2 BHK Signature",
				"area":     "1,180 sq.ft. of pure living",
				"features": []any{"Reworded feature one", "Reworded feature two", "Invented third"},
				"image":    "https://model.example.com/plan.png",
			},
		}
	})}}

	gen := newTestGenerator(drafter)
	out, err := gen.GenerateSection(context.Background(), Input{
		Existing: existing,
		Section:  brochure.SectionFloorPlans,
	})
	require.NoError(t, err)

	require.Len(t, out.FloorPlans, len(existing.FloorPlans))
	assert.Equal(t, existing.FloorPlans[0].ID, out.FloorPlans[0].ID)
	assert.Equal(t, existing.FloorPlans[0].Image, out.FloorPlans[0].Image)
	assert.Equal(t, "2 BHK Signature", out.FloorPlans[0].Name)
	assert.Len(t, out.FloorPlans[0].Features, len(existing.FloorPlans[0].Features))
	// the second plan was missing from the response entirely
	assert.Equal(t, existing.FloorPlans[1], out.FloorPlans[1])
}

func TestGenerateFailsWhenDrafterErrors(t *testing.T) {
	drafter := &fakeDrafter{err: errors.New("upstream exploded")}
	gen := newTestGenerator(drafter)
	_, err := gen.GenerateSection(context.Background(), Input{Existing: brochure.Default()})
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestGenerateRetriesOnceOnUnparseableOutput(t *testing.T) {
	drafter := &fakeDrafter{responses: []string{
		"I am sorry, I cannot produce JSON today.",
		docJSON(t, nil),
	}}
	gen := newTestGenerator(drafter)
	_, err := gen.GenerateSection(context.Background(), Input{Existing: brochure.Default()})
	require.NoError(t, err)
	assert.Equal(t, 2, drafter.calls)
}

func TestGenerateGivesUpAfterRetry(t *testing.T) {
	drafter := &fakeDrafter{responses: []string{"garbage", "still garbage"}}
	gen := newTestGenerator(drafter)
	_, err := gen.GenerateSection(context.Background(), Input{Existing: brochure.Default()})
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.Equal(t, 2, drafter.calls)
}

type blockingDrafter struct {
	started chan struct{}
	release chan struct{}
	payload string
}

func (d *blockingDrafter) Draft(_ context.Context, _ llm.Prompt) (string, error) {
	d.started <- struct{}{}
	<-d.release
	return d.payload, nil
}

func TestGenerateRejectsConcurrentRequestForSameSection(t *testing.T) {
	drafter := &blockingDrafter{
		started: make(chan struct{}),
		release: make(chan struct{}),
		payload: docJSON(t, nil),
	}
	gen := newTestGenerator(drafter)

	done := make(chan error, 1)
	go func() {
		_, err := gen.GenerateSection(context.Background(), Input{
			Existing: brochure.Default(),
			Section:  brochure.SectionLocation,
		})
		done <- err
	}()
	<-drafter.started
	assert.True(t, gen.Generating(brochure.SectionLocation))

	_, err := gen.GenerateSection(context.Background(), Input{
		Existing: brochure.Default(),
		Section:  brochure.SectionLocation,
	})
	assert.ErrorIs(t, err, ErrSectionBusy)

	close(drafter.release)
	require.NoError(t, <-done)
	assert.False(t, gen.Generating(brochure.SectionLocation))

	// the slot is free again
	quick := &fakeDrafter{responses: []string{docJSON(t, nil)}}
	gen2 := newTestGenerator(quick)
	_, err = gen2.GenerateSection(context.Background(), Input{
		Existing: brochure.Default(),
		Section:  brochure.SectionLocation,
	})
	assert.NoError(t, err)
}

func TestResolveScopeRejectsBadTargets(t *testing.T) {
	_, err := resolveScope(brochure.SectionLocation, []string{"coverImage"})
	assert.Error(t, err)

	_, err = resolveScope(brochure.SectionLocation, []string{"developerName"})
	assert.Error(t, err)

	_, err = resolveScope("penthouse", nil)
	assert.Error(t, err)

	_, err = resolveScope("", []string{"locationDesc1"})
	assert.Error(t, err)
}
