package generate

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"prospekt/internal/brochure"
	"prospekt/internal/llm"
)

// Expand mode may originate list content from nothing; when it does, the
// list stays within this range.
const (
	expandListMin = 3
	expandListMax = 7
)

// ExpandDocument drafts a complete brochure from sparse or empty input. The
// model may invent plausible filler for fields the caller left empty, but
// every non-empty input field round-trips verbatim, no image URL is ever
// taken from the model, and empty optional images are filled with seeded
// placeholder references.
func (g *Generator) ExpandDocument(ctx context.Context, partial map[string]any, hint string) (brochure.Document, error) {
	seed, verr := brochure.Validate(partial)
	if verr != nil {
		return brochure.Document{}, fmt.Errorf("expand input invalid: %w", verr)
	}
	provided := providedFields(partial)

	if err := g.acquire(""); err != nil {
		return brochure.Document{}, err
	}
	defer g.release("")

	system, user := g.prompts.BuildExpandPrompt(seed, setToSlice(provided), hint)
	response, err := g.draftObject(ctx, llm.Prompt{System: system, User: user})
	if err != nil {
		return brochure.Document{}, err
	}

	seedMap := brochure.ToMap(seed)
	result := buildExpandResult(seedMap, response, provided)

	doc, verr := brochure.Validate(result)
	if verr != nil {
		g.log.Warn("expand output failed validation, attempting repair", "fields", verr.Fields)
		doc, verr = RepairMerge(result, seed)
		if verr != nil {
			return brochure.Document{}, &UnrecoverableError{Validation: verr}
		}
	}
	return FillPlaceholderImages(doc), nil
}

// providedFields marks the top-level fields the caller actually populated.
// Only those count as immutable facts under expand-mode grounding; empty
// fields in an otherwise-supplied input may be originated.
func providedFields(partial map[string]any) map[string]bool {
	out := map[string]bool{}
	for k, v := range partial {
		switch val := v.(type) {
		case string:
			if strings.TrimSpace(val) != "" {
				out[k] = true
			}
		case []any:
			if len(val) > 0 {
				out[k] = true
			}
		case nil:
		default:
			out[k] = true
		}
	}
	return out
}

func setToSlice(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

// buildExpandResult merges the model's draft with the seed document:
// provided fields and all image references come from the seed; originated
// lists are clamped to the expand range; structured entries keep only their
// text from the model.
func buildExpandResult(seed map[string]any, response map[string]any, provided map[string]bool) map[string]any {
	result := deepCopyMap(seed)

	for _, spec := range brochure.Sections() {
		for _, f := range spec.TextFields {
			if provided[f] {
				continue
			}
			if s, ok := response[f].(string); ok && strings.TrimSpace(s) != "" {
				result[f] = s
			}
		}
		// image references never come from the model
		for _, f := range spec.ListFields {
			if provided[f] {
				continue
			}
			if list := clampExpandList(asList(response[f])); list != nil {
				result[f] = list
			}
		}
		for _, f := range spec.EntryListFields {
			if provided[f] {
				continue
			}
			switch f {
			case "floorPlans":
				if list := sanitizeExpandPlans(asList(response[f])); list != nil {
					result[f] = list
				}
			case "amenitiesGridItems":
				if list := sanitizeExpandGrid(asList(response[f])); list != nil {
					result[f] = list
				}
			}
		}
	}
	return result
}

// clampExpandList keeps an originated list within the expand range: extra
// elements are dropped, and a list that comes back under the minimum is
// treated as unusable (nil) so the seed value wins.
func clampExpandList(items []any) []any {
	out := make([]any, 0, expandListMax)
	for _, item := range items {
		s, ok := item.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
		if len(out) == expandListMax {
			break
		}
	}
	if len(out) < expandListMin {
		return nil
	}
	return out
}

func sanitizeExpandPlans(items []any) []any {
	out := make([]any, 0, expandListMax)
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, _ := entry["name"].(string)
		area, _ := entry["area"].(string)
		features := clampExpandList(asList(entry["features"]))
		if strings.TrimSpace(name) == "" || strings.TrimSpace(area) == "" || features == nil {
			continue
		}
		out = append(out, map[string]any{
			"name":     name,
			"area":     area,
			"features": features,
			"image":    "",
		})
		if len(out) == expandListMax {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func sanitizeExpandGrid(items []any) []any {
	out := make([]any, 0, expandListMax)
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		label, _ := entry["label"].(string)
		if strings.TrimSpace(label) == "" {
			continue
		}
		out = append(out, map[string]any{"label": label, "image": ""})
		if len(out) == expandListMax {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// placeholderSpec seeds a deterministic-but-distinct placeholder image per
// field, with explicit pixel dimensions.
type placeholderSpec struct {
	seed   string
	width  int
	height int
}

var imagePlaceholders = map[string]placeholderSpec{
	"coverImage":              {"skyline", 1600, 900},
	"logoImage":               {"emblem", 400, 200},
	"introWatermark":          {"linework", 800, 800},
	"developerImage":          {"construction", 1200, 800},
	"developerLogo":           {"builder", 400, 200},
	"mapImage":                {"citymap", 1200, 900},
	"locationWatermark":       {"compass", 800, 800},
	"connectivityImage":       {"boulevard", 1200, 800},
	"connectivityWatermark":   {"transit", 800, 800},
	"amenitiesIntroWatermark": {"foliage", 800, 800},
	"amenitiesListImage":      {"poolside", 1200, 800},
	"specsImage":              {"interiors", 1200, 800},
	"masterPlanImage":         {"masterplan", 1400, 1000},
	"backCoverImage":          {"dusk", 1600, 900},
	"backCoverLogo":           {"emblem", 400, 200},
}

func placeholderURL(spec placeholderSpec) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", spec.seed, spec.width, spec.height)
}

var seedSlugRE = regexp.MustCompile(`[^a-z0-9]+`)

func seedSlug(label string) string {
	slug := seedSlugRE.ReplaceAllString(strings.ToLower(label), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "amenity"
	}
	return slug
}

// FillPlaceholderImages assigns a seeded placeholder reference to every
// empty optional image field. Populated references are left untouched; floor
// plan images stay empty because they are immutable under generation.
func FillPlaceholderImages(doc brochure.Document) brochure.Document {
	out := doc.Clone()
	m := brochure.ToMap(out)
	for field, spec := range imagePlaceholders {
		if s, ok := m[field].(string); ok && s == "" {
			m[field] = placeholderURL(spec)
		}
	}
	filled, verr := brochure.Validate(m)
	if verr != nil {
		// placeholder URLs are always valid absolute URLs
		return out
	}
	for i := range filled.AmenitiesGridItems {
		if filled.AmenitiesGridItems[i].Image == "" {
			filled.AmenitiesGridItems[i].Image = placeholderURL(placeholderSpec{
				seed:   seedSlug(filled.AmenitiesGridItems[i].Label),
				width:  600,
				height: 400,
			})
		}
	}
	return filled
}
