package generate

import (
	"encoding/json"
	"fmt"
	"strings"

	"prospekt/internal/brochure"
)

// scope is the resolved set of fields a generation call may change, split by
// how changes are applied. Image fields are never part of any scope.
type scope struct {
	text    map[string]bool
	lists   map[string]bool
	entries map[string]bool
}

func (s scope) editableFields() []string {
	out := make([]string, 0, len(s.text)+len(s.lists)+len(s.entries))
	for f := range s.text {
		out = append(out, f)
	}
	for f := range s.lists {
		out = append(out, f)
	}
	for f := range s.entries {
		out = append(out, f)
	}
	return out
}

// resolveScope turns a section/field targeting pair into a concrete scope.
// No section means every textual field in the document is editable. Fields
// must belong to the targeted section and must not be image fields.
func resolveScope(section brochure.SectionName, fields []string) (scope, error) {
	sc := scope{
		text:    map[string]bool{},
		lists:   map[string]bool{},
		entries: map[string]bool{},
	}

	specs := brochure.Sections()
	if section != "" {
		spec, err := brochure.SectionByName(section)
		if err != nil {
			return scope{}, err
		}
		specs = []brochure.SectionSpec{spec}
	}

	for _, spec := range specs {
		for _, f := range spec.TextFields {
			sc.text[f] = true
		}
		for _, f := range spec.ListFields {
			sc.lists[f] = true
		}
		for _, f := range spec.EntryListFields {
			sc.entries[f] = true
		}
	}

	if len(fields) == 0 {
		return sc, nil
	}
	if section == "" {
		return scope{}, fmt.Errorf("fieldsToGenerate requires sectionToGenerate")
	}

	narrowed := scope{
		text:    map[string]bool{},
		lists:   map[string]bool{},
		entries: map[string]bool{},
	}
	for _, f := range fields {
		switch {
		case sc.text[f]:
			narrowed.text[f] = true
		case sc.lists[f]:
			narrowed.lists[f] = true
		case sc.entries[f]:
			narrowed.entries[f] = true
		case brochure.IsImageField(f):
			return scope{}, fmt.Errorf("field %q is an image reference and cannot be generated", f)
		default:
			return scope{}, fmt.Errorf("field %q does not belong to section %q", f, section)
		}
	}
	return narrowed, nil
}

// enforce rebuilds a conformant document from the model response: every
// out-of-scope field and every image reference comes from the input, list
// cardinality matches the input exactly, and in-scope rewording is taken
// from the response where it is present and well-typed.
func enforce(input map[string]any, response map[string]any, sc scope) map[string]any {
	result := deepCopyMap(input)

	for f := range sc.text {
		if s, ok := response[f].(string); ok && strings.TrimSpace(s) != "" {
			result[f] = s
		}
	}
	for f := range sc.lists {
		result[f] = clampStringList(asList(input[f]), asList(response[f]))
	}
	for f := range sc.entries {
		switch f {
		case "floorPlans":
			result[f] = clampFloorPlans(asList(input[f]), asList(response[f]))
		case "amenitiesGridItems":
			result[f] = clampGridItems(asList(input[f]), asList(response[f]))
		}
	}
	return result
}

// clampStringList keeps the input's cardinality: element i is taken from the
// response when it is a non-empty string, from the input otherwise. Extra
// response elements are dropped.
func clampStringList(input, response []any) []any {
	out := make([]any, len(input))
	for i := range input {
		out[i] = input[i]
		if i < len(response) {
			if s, ok := response[i].(string); ok && strings.TrimSpace(s) != "" {
				out[i] = s
			}
		}
	}
	return out
}

func clampFloorPlans(input, response []any) []any {
	out := make([]any, len(input))
	for i := range input {
		in, _ := input[i].(map[string]any)
		entry := deepCopyMap(in)
		if i < len(response) {
			if resp, ok := response[i].(map[string]any); ok {
				if s, ok := resp["name"].(string); ok && strings.TrimSpace(s) != "" {
					entry["name"] = s
				}
				if s, ok := resp["area"].(string); ok && strings.TrimSpace(s) != "" {
					entry["area"] = s
				}
				entry["features"] = clampStringList(asList(in["features"]), asList(resp["features"]))
			}
		}
		// id and image always round-trip from the input
		entry["id"] = in["id"]
		entry["image"] = in["image"]
		out[i] = entry
	}
	return out
}

func clampGridItems(input, response []any) []any {
	out := make([]any, len(input))
	for i := range input {
		in, _ := input[i].(map[string]any)
		entry := deepCopyMap(in)
		if i < len(response) {
			if resp, ok := response[i].(map[string]any); ok {
				if s, ok := resp["label"].(string); ok && strings.TrimSpace(s) != "" {
					entry["label"] = s
				}
			}
		}
		entry["id"] = in["id"]
		entry["image"] = in["image"]
		out[i] = entry
	}
	return out
}

func asList(v any) []any {
	list, _ := v.([]any)
	return list
}

func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{}
	}
	return out
}
