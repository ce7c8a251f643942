package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"prospekt/internal/brochure"
	"prospekt/internal/llm"
	"prospekt/internal/logging"
)

const defaultTimeout = 90 * time.Second

// Input is one generation request. An empty Section targets the whole
// document; Fields (optional) narrows the scope to named fields within the
// section. Hint is free text forwarded to the model.
type Input struct {
	Existing brochure.Document
	Section  brochure.SectionName
	Fields   []string
	Hint     string
}

// Generator owns the content-generation contract: it delegates text
// synthesis to a Drafter but enforces grounding, scope, image immutability
// and list cardinality itself, after the call returns.
type Generator struct {
	drafter llm.Drafter
	log     *logging.Logger
	prompts PromptBuilder
	timeout time.Duration

	mu       sync.Mutex
	inflight map[brochure.SectionName]bool
}

type Options struct {
	// Timeout bounds each upstream model call. Zero means the default 90s.
	Timeout time.Duration
}

func New(drafter llm.Drafter, log *logging.Logger, opts Options) *Generator {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Generator{
		drafter:  drafter,
		log:      log,
		timeout:  timeout,
		inflight: map[brochure.SectionName]bool{},
	}
}

// GenerateSection runs one targeted generation pass and returns the full,
// validated document. Out-of-scope fields round-trip from the input byte for
// byte; a second request for a section already generating is rejected with
// ErrSectionBusy.
func (g *Generator) GenerateSection(ctx context.Context, input Input) (brochure.Document, error) {
	sc, err := resolveScope(input.Section, input.Fields)
	if err != nil {
		return brochure.Document{}, err
	}

	if err := g.acquire(input.Section); err != nil {
		return brochure.Document{}, err
	}
	defer g.release(input.Section)

	system, user := g.prompts.BuildSectionPrompt(input.Existing, sc.editableFields(), input.Hint)
	response, err := g.draftObject(ctx, llm.Prompt{System: system, User: user})
	if err != nil {
		return brochure.Document{}, err
	}

	inputMap := brochure.ToMap(input.Existing)
	conformant := enforce(inputMap, response, sc)

	doc, verr := brochure.Validate(conformant)
	if verr == nil {
		return doc, nil
	}

	g.log.Warn("model output failed validation, attempting repair",
		"section", string(input.Section), "fields", verr.Fields)
	doc, verr = RepairMerge(conformant, input.Existing)
	if verr == nil {
		return doc, nil
	}
	return brochure.Document{}, &UnrecoverableError{Validation: verr}
}

// Generating reports whether a request for the section is currently in
// flight. The empty section name is the whole-document slot.
func (g *Generator) Generating(section brochure.SectionName) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inflight[section]
}

func (g *Generator) acquire(section brochure.SectionName) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inflight[section] {
		return fmt.Errorf("%w: %s", ErrSectionBusy, sectionLabel(section))
	}
	g.inflight[section] = true
	return nil
}

func (g *Generator) release(section brochure.SectionName) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, section)
}

func sectionLabel(section brochure.SectionName) string {
	if section == "" {
		return "whole document"
	}
	return string(section)
}

// draftObject runs the model call under the configured timeout and decodes
// the response into a JSON object. An unparseable first response earns one
// corrective retry; after that the call fails.
func (g *Generator) draftObject(ctx context.Context, prompt llm.Prompt) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()
	raw, err := g.drafter.Draft(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	g.log.Debug("model call finished", "latencyMs", time.Since(started).Milliseconds())

	obj, perr := decodeObject(raw)
	if perr == nil {
		return obj, nil
	}

	g.log.Warn("model response unparseable, retrying once", "cause", perr.Error())
	retry := prompt
	retry.User = prompt.User + "\n\n" + g.prompts.BuildRetryPrompt(perr.Error())
	raw, err = g.drafter.Draft(ctx, retry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	obj, perr = decodeObject(raw)
	if perr != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, perr)
	}
	return obj, nil
}

func decodeObject(raw string) (map[string]any, error) {
	text := llm.CleanJSONOutput(raw)
	if text == "" {
		return nil, fmt.Errorf("response contains no JSON object")
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %v", err)
	}
	return obj, nil
}
