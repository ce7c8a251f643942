package preview

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"prospekt/internal/brochure"
	"prospekt/internal/logging"
)

// State names the controller's position in the preview lifecycle.
type State int

const (
	StateIdle State = iota
	StateLive
	StatePrinting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLive:
		return "live"
	case StatePrinting:
		return "printing"
	default:
		return "unknown"
	}
}

// ErrNotLive is returned for operations that require a visible preview.
var ErrNotLive = errors.New("preview is not live")

// PrintPreparationError means the form state was invalid at print time. The
// print is aborted and the live preview keeps its last known-good document.
type PrintPreparationError struct {
	Validation *brochure.ValidationError
}

func (e *PrintPreparationError) Error() string {
	return fmt.Sprintf("cannot print, form state invalid: %v", e.Validation)
}

func (e *PrintPreparationError) Unwrap() error {
	return e.Validation
}

// Renderer draws a document snapshot. Both the live surface and the
// dedicated print surface satisfy it; the print surface additionally
// triggers the platform print dialog.
type Renderer interface {
	Render(doc brochure.Document, theme Theme)
}

// PrintSurface renders a frozen snapshot and invokes the print dialog.
type PrintSurface interface {
	Renderer
	Print() error
}

// Timings groups the controller's fixed delays. Zero values fall back to the
// production defaults; tests shrink them.
type Timings struct {
	Debounce   time.Duration // edit coalescing window
	PaintWait  time.Duration // first settle before the print dialog
	SettleWait time.Duration // second settle before and after the dialog
}

func (t Timings) withDefaults() Timings {
	if t.Debounce <= 0 {
		t.Debounce = 750 * time.Millisecond
	}
	if t.PaintWait <= 0 {
		t.PaintWait = 200 * time.Millisecond
	}
	if t.SettleWait <= 0 {
		t.SettleWait = 500 * time.Millisecond
	}
	return t
}

type eventKind int

const (
	evShow eventKind = iota
	evHide
	evPrint
	evRegenerate
)

type event struct {
	kind  eventKind
	raw   map[string]any
	doc   brochure.Document
	reply chan error
}

// Controller runs the preview state machine on a single goroutine. The
// latest raw form state is held by the controller and replaced wholesale on
// every edit (values are cloned on receipt, so a caller mutating its map
// after the call never reaches the preview); the loop owns all transitions
// and external readers go through the mutex-guarded accessors.
type Controller struct {
	renderer Renderer
	printer  PrintSurface
	log      *logging.Logger
	timings  Timings

	events chan event
	edits  chan struct{}
	done   chan struct{}

	mu         sync.Mutex
	state      State
	current    brochure.Document
	theme      Theme
	form       map[string]any
	lastErrors *brochure.ValidationError
}

func NewController(renderer Renderer, printer PrintSurface, log *logging.Logger, timings Timings) *Controller {
	c := &Controller{
		renderer: renderer,
		printer:  printer,
		log:      log,
		timings:  timings.withDefaults(),
		events:   make(chan event),
		edits:    make(chan struct{}, 1),
		done:     make(chan struct{}),
		state:    StateIdle,
		current:  brochure.Default(),
		theme:    DefaultTheme(),
	}
	go c.loop()
	return c
}

// Stop shuts the event loop down. The controller must not be used after.
func (c *Controller) Stop() {
	close(c.events)
	<-c.done
}

// Show validates the form state and, on success, enters Live and renders.
// On failure the controller stays in its current state and keeps the last
// known-good document.
func (c *Controller) Show(raw map[string]any) error {
	return c.send(event{kind: evShow, raw: cloneForm(raw)})
}

// Edit records a form change. Changes are coalesced: only after the
// debounce window passes without further edits does the controller
// re-validate and re-render. Invalid intermediate states never evict the
// last known-good preview. Edit never blocks, so changes keep landing while
// a print flow holds the loop.
func (c *Controller) Edit(raw map[string]any) {
	c.mu.Lock()
	c.form = cloneForm(raw)
	c.mu.Unlock()

	select {
	case c.edits <- struct{}{}:
	default:
	}
}

// Hide returns the controller to Idle without touching the document.
func (c *Controller) Hide() {
	_ = c.send(event{kind: evHide})
}

// Print runs the print flow: re-validate the latest form state, freeze a
// snapshot, render the print surface, wait for layout and images to settle,
// invoke the print dialog, then resume Live — re-validating whatever the
// form state is by then, and falling back to Idle when it no longer
// validates. Blocks until the flow completes.
func (c *Controller) Print() error {
	return c.send(event{kind: evPrint})
}

// Regenerate swaps in a freshly generated document and reshuffles the
// theme. Micro-edits never change the theme; only this path does.
func (c *Controller) Regenerate(doc brochure.Document) error {
	return c.send(event{kind: evRegenerate, doc: doc})
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Document returns the last known-good preview document.
func (c *Controller) Document() brochure.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Clone()
}

func (c *Controller) Theme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// LastErrors reports the field-keyed errors from the most recent failed
// validation, or nil when the last transition succeeded.
func (c *Controller) LastErrors() *brochure.ValidationError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErrors
}

func (c *Controller) send(ev event) error {
	ev.reply = make(chan error, 1)
	select {
	case c.events <- ev:
		return <-ev.reply
	case <-c.done:
		return errors.New("preview controller stopped")
	}
}

// latestForm returns the current raw form state. The stored map is replaced,
// never mutated, so handing it out to the loop is safe.
func (c *Controller) latestForm() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.form == nil {
		return brochure.ToMap(c.current)
	}
	return c.form
}

func (c *Controller) setForm(raw map[string]any) {
	c.mu.Lock()
	c.form = raw
	c.mu.Unlock()
}

func (c *Controller) loop() {
	defer close(c.done)

	var (
		debounce  *time.Timer
		debounceC <-chan time.Time
	)
	resetDebounce := func() {
		if debounce == nil {
			debounce = time.NewTimer(c.timings.Debounce)
		} else {
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(c.timings.Debounce)
		}
		debounceC = debounce.C
	}

	for {
		select {
		case ev, ok := <-c.events:
			if !ok {
				if debounce != nil {
					debounce.Stop()
				}
				return
			}
			switch ev.kind {
			case evShow:
				c.setForm(ev.raw)
				ev.reply <- c.applyForm(ev.raw)
			case evHide:
				c.setState(StateIdle)
				ev.reply <- nil
			case evPrint:
				ev.reply <- c.runPrint()
			case evRegenerate:
				c.mu.Lock()
				c.theme = RandomTheme(c.theme)
				c.current = ev.doc.Clone()
				c.state = StateLive
				c.lastErrors = nil
				c.form = brochure.ToMap(ev.doc)
				theme := c.theme
				c.mu.Unlock()
				c.renderer.Render(ev.doc, theme)
				ev.reply <- nil
			}
		case <-c.edits:
			resetDebounce()
		case <-debounceC:
			debounceC = nil
			if c.State() != StateIdle {
				if err := c.applyForm(c.latestForm()); err != nil {
					c.log.Debug("debounced edit kept invalid form out of preview")
				}
			}
		}
	}
}

// applyForm validates a raw form state and, when valid, makes it the
// current document and renders it.
func (c *Controller) applyForm(raw map[string]any) error {
	doc, verr := brochure.Validate(raw)
	if verr != nil {
		c.mu.Lock()
		c.lastErrors = verr
		c.mu.Unlock()
		return verr
	}

	c.mu.Lock()
	c.current = doc
	c.state = StateLive
	c.lastErrors = nil
	theme := c.theme
	c.mu.Unlock()

	c.renderer.Render(doc, theme)
	return nil
}

func (c *Controller) runPrint() error {
	if c.State() != StateLive {
		return ErrNotLive
	}

	snapshot, verr := brochure.Validate(c.latestForm())
	if verr != nil {
		c.mu.Lock()
		c.lastErrors = verr
		c.mu.Unlock()
		return &PrintPreparationError{Validation: verr}
	}

	c.setState(StatePrinting)

	theme := c.Theme()
	c.printer.Render(snapshot, theme)
	time.Sleep(c.timings.PaintWait)
	time.Sleep(c.timings.SettleWait)

	printErr := c.printer.Print()

	time.Sleep(c.timings.SettleWait)

	// resume: edits may have landed while the dialog was up, so re-validate
	// whatever the form holds now and fall back to Idle when it no longer
	// holds together
	doc, verr := brochure.Validate(c.latestForm())
	if verr != nil {
		c.mu.Lock()
		c.state = StateIdle
		c.lastErrors = verr
		c.mu.Unlock()
		return printErr
	}

	c.mu.Lock()
	c.current = doc
	c.state = StateLive
	c.lastErrors = nil
	c.mu.Unlock()
	c.renderer.Render(doc, theme)

	return printErr
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func cloneForm(raw map[string]any) map[string]any {
	if raw == nil {
		return nil
	}
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = cloneFormValue(v)
	}
	return out
}

func cloneFormValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneForm(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneFormValue(item)
		}
		return out
	default:
		return v
	}
}
