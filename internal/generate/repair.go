package generate

import (
	"strings"

	"prospekt/internal/brochure"
)

// RepairMerge is the one recovery attempt for a model response that failed
// schema validation: shallow-merge the response over the original document
// (response fields win where present and well-typed, original fields fill
// every gap) and re-validate. No per-field coercion is attempted beyond what
// default-filling already provides.
func RepairMerge(response map[string]any, original brochure.Document) (brochure.Document, *brochure.ValidationError) {
	merged := brochure.ToMap(original)
	for field, want := range fieldShapes() {
		v, ok := response[field]
		if !ok || v == nil {
			continue
		}
		if wellTyped(v, want) {
			merged[field] = v
		}
	}
	return brochure.Validate(merged)
}

type fieldShape int

const (
	shapeString fieldShape = iota
	shapeStringList
	shapeEntryList
)

func fieldShapes() map[string]fieldShape {
	shapes := map[string]fieldShape{}
	for _, spec := range brochure.Sections() {
		for _, f := range spec.TextFields {
			shapes[f] = shapeString
		}
		for _, f := range spec.ImageFields {
			shapes[f] = shapeString
		}
		for _, f := range spec.ListFields {
			shapes[f] = shapeStringList
		}
		for _, f := range spec.EntryListFields {
			shapes[f] = shapeEntryList
		}
	}
	return shapes
}

func wellTyped(v any, want fieldShape) bool {
	switch want {
	case shapeString:
		s, ok := v.(string)
		return ok && strings.TrimSpace(s) != ""
	case shapeStringList:
		list, ok := v.([]any)
		if !ok || len(list) == 0 {
			return false
		}
		for _, item := range list {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		return true
	case shapeEntryList:
		list, ok := v.([]any)
		if !ok || len(list) == 0 {
			return false
		}
		for _, item := range list {
			if _, ok := item.(map[string]any); !ok {
				return false
			}
		}
		return true
	}
	return false
}
