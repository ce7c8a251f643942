package preview

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prospekt/internal/brochure"
	"prospekt/internal/logging"
)

type fakeSurface struct {
	mu       sync.Mutex
	renders  []brochure.Document
	themes   []Theme
	prints   int
	printErr error
	onPrint  func() // runs while the dialog is "up"
}

func (s *fakeSurface) Render(doc brochure.Document, theme Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renders = append(s.renders, doc)
	s.themes = append(s.themes, theme)
}

func (s *fakeSurface) Print() error {
	s.mu.Lock()
	s.prints++
	hook := s.onPrint
	err := s.printErr
	s.mu.Unlock()
	if hook != nil {
		hook()
	}
	return err
}

func (s *fakeSurface) renderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.renders)
}

func (s *fakeSurface) lastRender() brochure.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renders[len(s.renders)-1]
}

func (s *fakeSurface) printCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prints
}

var testTimings = Timings{
	Debounce:   20 * time.Millisecond,
	PaintWait:  time.Millisecond,
	SettleWait: time.Millisecond,
}

func newTestController(t *testing.T) (*Controller, *fakeSurface, *fakeSurface) {
	t.Helper()
	live := &fakeSurface{}
	printer := &fakeSurface{}
	c := NewController(live, printer, logging.Nop(), testTimings)
	t.Cleanup(c.Stop)
	return c, live, printer
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestShowMovesIdleToLive(t *testing.T) {
	c, live, _ := newTestController(t)
	assert.Equal(t, StateIdle, c.State())

	require.NoError(t, c.Show(map[string]any{"projectName": "Azure Bay"}))
	assert.Equal(t, StateLive, c.State())
	assert.Equal(t, 1, live.renderCount())
	assert.Equal(t, "Azure Bay", c.Document().ProjectName)
}

func TestShowInvalidKeepsLastKnownGood(t *testing.T) {
	c, live, _ := newTestController(t)
	require.NoError(t, c.Show(map[string]any{"projectName": "Azure Bay"}))

	err := c.Show(map[string]any{"coverImage": "not-a-url"})
	require.Error(t, err)

	var verr *brochure.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "coverImage")

	assert.Equal(t, StateLive, c.State())
	assert.Equal(t, "Azure Bay", c.Document().ProjectName)
	assert.Equal(t, 1, live.renderCount())
	assert.NotNil(t, c.LastErrors())
}

func TestEditsAreCoalesced(t *testing.T) {
	c, live, _ := newTestController(t)
	require.NoError(t, c.Show(map[string]any{"projectName": "v0"}))

	for i := 0; i < 10; i++ {
		c.Edit(map[string]any{"projectName": "edit burst"})
	}
	c.Edit(map[string]any{"projectName": "final"})

	waitFor(t, func() bool { return live.renderCount() == 2 })
	assert.Equal(t, "final", live.lastRender().ProjectName)

	// no further renders arrive once the burst settles
	time.Sleep(3 * testTimings.Debounce)
	assert.Equal(t, 2, live.renderCount())
}

func TestEditCopiesFormState(t *testing.T) {
	c, live, _ := newTestController(t)
	require.NoError(t, c.Show(map[string]any{"projectName": "v0"}))

	raw := map[string]any{"projectName": "edited"}
	c.Edit(raw)
	raw["projectName"] = "mutated"

	waitFor(t, func() bool { return live.renderCount() == 2 })
	assert.Equal(t, "edited", live.lastRender().ProjectName)
	assert.Equal(t, "edited", c.Document().ProjectName)
}

func TestShowCopiesFormState(t *testing.T) {
	c, _, _ := newTestController(t)

	raw := map[string]any{"projectName": "shown"}
	require.NoError(t, c.Show(raw))
	raw["projectName"] = "mutated"

	require.NoError(t, c.Print())
	assert.Equal(t, "shown", c.Document().ProjectName)
}

func TestInvalidEditNeverEvictsPreview(t *testing.T) {
	c, _, _ := newTestController(t)
	require.NoError(t, c.Show(map[string]any{"projectName": "Good"}))

	c.Edit(map[string]any{"projectName": ""})
	waitFor(t, func() bool { return c.LastErrors() != nil })

	assert.Equal(t, "Good", c.Document().ProjectName)
	assert.Equal(t, StateLive, c.State())
}

func TestPrintFlow(t *testing.T) {
	c, live, printer := newTestController(t)
	require.NoError(t, c.Show(map[string]any{"projectName": "Azure Bay"}))

	require.NoError(t, c.Print())

	assert.Equal(t, 1, printer.renderCount())
	assert.Equal(t, 1, printer.printCount())
	assert.Equal(t, "Azure Bay", printer.lastRender().ProjectName)
	assert.Equal(t, StateLive, c.State())
	// resume re-renders the live surface
	assert.Equal(t, 2, live.renderCount())
}

func TestPrintRequiresLive(t *testing.T) {
	c, _, printer := newTestController(t)
	err := c.Print()
	assert.ErrorIs(t, err, ErrNotLive)
	assert.Equal(t, 0, printer.printCount())
}

func TestPrintAbortsOnInvalidFormState(t *testing.T) {
	c, _, printer := newTestController(t)
	require.NoError(t, c.Show(map[string]any{"projectName": "Good"}))

	// the form moved to an invalid state after the last successful render
	c.Edit(map[string]any{"coverImage": "not-a-url"})
	waitFor(t, func() bool { return c.LastErrors() != nil })

	err := c.Print()
	var perr *PrintPreparationError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Validation.Fields, "coverImage")

	assert.Equal(t, 0, printer.printCount())
	assert.Equal(t, StateLive, c.State())
	assert.Equal(t, "Good", c.Document().ProjectName)
}

func TestPrintFallsBackToIdleWhenFormInvalidatedMidPrint(t *testing.T) {
	live := &fakeSurface{}
	printer := &fakeSurface{}
	c := NewController(live, printer, logging.Nop(), testTimings)
	t.Cleanup(c.Stop)

	// the dialog is modal for the loop but not for the form: an edit lands
	// while it is up and leaves the live state invalid
	printer.onPrint = func() {
		c.Edit(map[string]any{"coverImage": "not-a-url"})
	}

	require.NoError(t, c.Show(map[string]any{"projectName": "Azure Bay"}))
	require.NoError(t, c.Print())

	assert.Equal(t, StateIdle, c.State())
	require.NotNil(t, c.LastErrors())
	assert.Contains(t, c.LastErrors().Fields, "coverImage")
	// the snapshot that went to the dialog predates the bad edit
	assert.Equal(t, "Azure Bay", printer.lastRender().ProjectName)
	assert.Equal(t, "Azure Bay", c.Document().ProjectName)
}

func TestPrintSurfaceErrorPropagates(t *testing.T) {
	live := &fakeSurface{}
	printer := &fakeSurface{printErr: errors.New("dialog dismissed")}
	c := NewController(live, printer, logging.Nop(), testTimings)
	t.Cleanup(c.Stop)

	require.NoError(t, c.Show(map[string]any{"projectName": "Azure Bay"}))
	err := c.Print()
	assert.EqualError(t, err, "dialog dismissed")
	assert.Equal(t, StateLive, c.State())
}

func TestHideReturnsToIdle(t *testing.T) {
	c, _, _ := newTestController(t)
	require.NoError(t, c.Show(map[string]any{"projectName": "Azure Bay"}))
	c.Hide()
	assert.Equal(t, StateIdle, c.State())
}

func TestRegenerateShufflesTheme(t *testing.T) {
	c, live, _ := newTestController(t)
	before := c.Theme()

	require.NoError(t, c.Regenerate(brochure.Default()))
	after := c.Theme()

	assert.NotEqual(t, before.Name, after.Name)
	assert.Equal(t, StateLive, c.State())
	assert.Equal(t, 1, live.renderCount())
}

func TestMicroEditsNeverChangeTheme(t *testing.T) {
	c, live, _ := newTestController(t)
	require.NoError(t, c.Show(map[string]any{"projectName": "v0"}))
	theme := c.Theme()

	c.Edit(map[string]any{"projectName": "v1"})
	waitFor(t, func() bool { return live.renderCount() == 2 })

	assert.Equal(t, theme.Name, c.Theme().Name)
}

func TestRandomThemeAvoidsCurrent(t *testing.T) {
	current := DefaultTheme()
	for i := 0; i < 20; i++ {
		next := RandomTheme(current)
		assert.NotEqual(t, current.Name, next.Name)
		current = next
	}
}

func TestThemesPaletteIsFixed(t *testing.T) {
	themes := Themes()
	assert.Len(t, themes, 5)
	seen := map[string]bool{}
	for _, th := range themes {
		assert.False(t, seen[th.Name])
		seen[th.Name] = true
	}
}
