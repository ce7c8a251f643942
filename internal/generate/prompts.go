package generate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"prospekt/internal/brochure"
)

// PromptBuilder constructs the drafting prompts for targeted and expand
// generation. The prompts carry the behavioral contract; the conformance
// pass after the call enforces it regardless of model compliance.
type PromptBuilder struct{}

const targetedSystemPrompt = `Role: Real estate copywriter. Task: improve the prose of a property brochure document.

Hard rules:
1. GROUNDING: every statement must be derivable from facts already present in the document. Never invent amenities, distances, certifications, names or numbers that are not in the input.
2. SCOPE: only the fields listed under EDITABLE FIELDS may change. Every other field must be returned exactly as given, byte for byte.
3. IMAGES: never alter, add or remove any image URL field.
4. LISTS: every array must keep exactly the same number of elements as the input. Reword elements; never add or remove them. Element 0 of each connectivity list is a category heading and should stay a short heading.
5. Return the COMPLETE document as a single JSON object with every field present. No markdown, no commentary, JSON only.`

func (pb *PromptBuilder) BuildSectionPrompt(doc brochure.Document, editable []string, hint string) (string, string) {
	var sb strings.Builder
	sb.WriteString("CURRENT DOCUMENT (ground truth):\n")
	sb.WriteString(marshalDoc(doc))
	sb.WriteString("\n\nEDITABLE FIELDS (reword only these):\n")
	fields := append([]string(nil), editable...)
	sort.Strings(fields)
	for _, f := range fields {
		sb.WriteString("- " + f + "\n")
	}
	if strings.TrimSpace(hint) != "" {
		sb.WriteString("\nSTYLE HINT from the editor:\n")
		sb.WriteString(strings.TrimSpace(hint))
		sb.WriteString("\n")
	}
	sb.WriteString("\nReturn the full document as one JSON object.")
	return targetedSystemPrompt, sb.String()
}

const expandSystemPrompt = `Role: Real estate copywriter. Task: draft a complete property brochure document from sparse input.

Hard rules:
1. Fields marked PROVIDED are facts. Return them exactly as given, byte for byte, and keep all generated content consistent with them.
2. For every empty field, invent plausible, internally consistent content for a premium residential project. Keep the tone confident but factual.
3. Leave every image URL field exactly as given. Do not invent image URLs.
4. When creating list content from nothing, produce between %d and %d items per list. The first element of each connectivity list is its category heading.
5. Return the COMPLETE document as a single JSON object with every field present. No markdown, no commentary, JSON only.`

func (pb *PromptBuilder) BuildExpandPrompt(doc brochure.Document, provided []string, hint string) (string, string) {
	var sb strings.Builder
	sb.WriteString("DOCUMENT SHAPE WITH CURRENT VALUES:\n")
	sb.WriteString(marshalDoc(doc))
	if len(provided) > 0 {
		sb.WriteString("\n\nPROVIDED FIELDS (immutable facts):\n")
		fields := append([]string(nil), provided...)
		sort.Strings(fields)
		for _, f := range fields {
			sb.WriteString("- " + f + "\n")
		}
	}
	if strings.TrimSpace(hint) != "" {
		sb.WriteString("\nPROJECT BRIEF from the editor:\n")
		sb.WriteString(strings.TrimSpace(hint))
		sb.WriteString("\n")
	}
	sb.WriteString("\nReturn the full document as one JSON object.")
	return fmt.Sprintf(expandSystemPrompt, expandListMin, expandListMax), sb.String()
}

// BuildRetryPrompt asks for a corrected resend after an unparseable or
// nonconformant response. One retry only; after that the repair merge is the
// last line of defense.
func (pb *PromptBuilder) BuildRetryPrompt(issue string) string {
	return fmt.Sprintf(
		"Your previous response was rejected: %s\nResend the complete document as a single valid JSON object with every field present. JSON only, no markdown fences, no explanation.",
		strings.TrimSpace(issue),
	)
}

func marshalDoc(doc brochure.Document) string {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
