package brochure

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func documentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("brochure.schema.json", strings.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("brochure.schema.json")
	})
	return compiledSchema, schemaErr
}

// ValidationError maps a field path to one or more human-readable messages.
// Callers decide whether to reject, repair, or surface per-field UI errors.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "document is invalid"
	}
	paths := make([]string, 0, len(e.Fields))
	for p := range e.Fields {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	parts := make([]string, 0, len(paths))
	for _, p := range paths {
		parts = append(parts, fmt.Sprintf("%s: %s", p, strings.Join(e.Fields[p], "; ")))
	}
	return "document is invalid: " + strings.Join(parts, ", ")
}

func (e *ValidationError) add(path, msg string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[path] = append(e.Fields[path], msg)
}

func (e *ValidationError) orNil() *ValidationError {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Validate fills missing fields from defaults, checks the merged value
// against the document schema and the field-level rules, and returns the
// resulting document. Omission alone never fails; only present-but-malformed
// values do.
func Validate(raw map[string]any) (Document, *ValidationError) {
	merged := overlayDefaults(raw)

	verr := &ValidationError{}
	schema, err := documentSchema()
	if err != nil {
		// The schema is embedded; a compile failure is a programming error.
		panic(fmt.Sprintf("brochure: compiling document schema: %v", err))
	}
	if err := schema.Validate(normalizeJSON(merged)); err != nil {
		collectSchemaErrors(verr, err)
	}
	if v := verr.orNil(); v != nil {
		return Document{}, v
	}

	doc, err := FromMap(merged)
	if err != nil {
		verr.add("$", err.Error())
		return Document{}, verr
	}

	checkFieldRules(&doc, verr)
	if v := verr.orNil(); v != nil {
		return Document{}, v
	}
	return doc, nil
}

// overlayDefaults merges raw over the default document, field by field.
// Null values are treated as absent. Grid items and floor plans get their
// stable IDs assigned when the input omits them.
func overlayDefaults(raw map[string]any) map[string]any {
	merged := ToMap(Default())
	for k, v := range raw {
		if v == nil {
			continue
		}
		merged[k] = v
	}
	fillEntryIDs(merged, "amenitiesGridItems", "grid")
	fillEntryIDs(merged, "floorPlans", "plan")
	return merged
}

func fillEntryIDs(m map[string]any, field, prefix string) {
	items, ok := m[field].([]any)
	if !ok {
		return
	}
	out := make([]any, len(items))
	for i, it := range items {
		entry, ok := it.(map[string]any)
		if !ok {
			out[i] = it
			continue
		}
		cp := make(map[string]any, len(entry))
		for k, v := range entry {
			cp[k] = v
		}
		id, _ := cp["id"].(string)
		if strings.TrimSpace(id) == "" {
			cp["id"] = fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
		}
		out[i] = cp
	}
	m[field] = out
}

func collectSchemaErrors(verr *ValidationError, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		verr.add("$", err.Error())
		return
	}
	if len(ve.Causes) == 0 {
		verr.add(instancePath(ve.InstanceLocation), ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(verr, cause)
	}
}

func instancePath(loc string) string {
	loc = strings.TrimPrefix(loc, "/")
	if loc == "" {
		return "$"
	}
	return strings.ReplaceAll(loc, "/", ".")
}

// requiredMinimums lists the string-list fields with a declared minimum
// length. Element 0 of connectivity lists is the category heading, so one
// element is the floor for those as well.
var requiredMinimums = map[string]int{
	"keyDistances":        1,
	"businessPoints":      1,
	"healthcarePoints":    1,
	"educationPoints":     1,
	"leisurePoints":       1,
	"wellnessAmenities":   1,
	"recreationAmenities": 1,
	"specsInterior":       1,
	"specsBuilding":       1,
}

func checkFieldRules(doc *Document, verr *ValidationError) {
	for _, spec := range Sections() {
		for _, f := range spec.TextFields {
			if strings.TrimSpace(textFieldValue(doc, f)) == "" {
				verr.add(f, "must not be empty")
			}
		}
		for _, f := range spec.ImageFields {
			if msg := checkImageRef(imageFieldValue(doc, f)); msg != "" {
				verr.add(f, msg)
			}
		}
	}

	for _, kind := range ListKinds() {
		items := kind.Get(doc)
		if min := requiredMinimums[kind.Field()]; len(items) < min {
			verr.add(kind.Field(), fmt.Sprintf("must have at least %d item(s)", min))
		}
		for i, item := range items {
			if strings.TrimSpace(item) == "" {
				verr.add(fmt.Sprintf("%s.%d", kind.Field(), i), "must not be empty")
			}
		}
	}

	for i, item := range doc.AmenitiesGridItems {
		if strings.TrimSpace(item.Label) == "" {
			verr.add(fmt.Sprintf("amenitiesGridItems.%d.label", i), "must not be empty")
		}
		if msg := checkImageRef(item.Image); msg != "" {
			verr.add(fmt.Sprintf("amenitiesGridItems.%d.image", i), msg)
		}
	}

	for i, plan := range doc.FloorPlans {
		if strings.TrimSpace(plan.Name) == "" {
			verr.add(fmt.Sprintf("floorPlans.%d.name", i), "must not be empty")
		}
		if strings.TrimSpace(plan.Area) == "" {
			verr.add(fmt.Sprintf("floorPlans.%d.area", i), "must not be empty")
		}
		if len(plan.Features) == 0 {
			verr.add(fmt.Sprintf("floorPlans.%d.features", i), "must have at least 1 item(s)")
		}
		for j, feat := range plan.Features {
			if strings.TrimSpace(feat) == "" {
				verr.add(fmt.Sprintf("floorPlans.%d.features.%d", i, j), "must not be empty")
			}
		}
		if msg := checkImageRef(plan.Image); msg != "" {
			verr.add(fmt.Sprintf("floorPlans.%d.image", i), msg)
		}
	}
}

// checkImageRef accepts an absolute URL or "". Empty means "no image", not an
// error.
func checkImageRef(ref string) string {
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "must be an absolute URL or empty"
	}
	return ""
}

// ToMap converts a document to its generic JSON form.
func ToMap(d Document) map[string]any {
	data, err := json.Marshal(d)
	if err != nil {
		panic(fmt.Sprintf("brochure: marshaling document: %v", err))
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		panic(fmt.Sprintf("brochure: remarshaling document: %v", err))
	}
	return m
}

// FromMap decodes a generic JSON form into a document. Unknown fields are
// rejected so a malformed model response cannot slip through decode.
func FromMap(m map[string]any) (Document, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return Document{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decoding document: %w", err)
	}
	return doc, nil
}

// normalizeJSON round-trips a value through encoding/json so the schema
// validator sees canonical JSON types.
func normalizeJSON(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}

func textFieldValue(d *Document, field string) string {
	m := textGetters[field]
	if m == nil {
		return ""
	}
	return m(d)
}

func imageFieldValue(d *Document, field string) string {
	m := imageGetters[field]
	if m == nil {
		return ""
	}
	return m(d)
}

var textGetters = map[string]func(*Document) string{
	"projectName":             func(d *Document) string { return d.ProjectName },
	"tagline":                 func(d *Document) string { return d.Tagline },
	"reraNotice":              func(d *Document) string { return d.ReraNotice },
	"introTitle":              func(d *Document) string { return d.IntroTitle },
	"introPara1":              func(d *Document) string { return d.IntroPara1 },
	"introPara2":              func(d *Document) string { return d.IntroPara2 },
	"introPara3":              func(d *Document) string { return d.IntroPara3 },
	"developerName":           func(d *Document) string { return d.DeveloperName },
	"developerDesc1":          func(d *Document) string { return d.DeveloperDesc1 },
	"developerDesc2":          func(d *Document) string { return d.DeveloperDesc2 },
	"developerDisclaimer":     func(d *Document) string { return d.DeveloperDisclaimer },
	"locationTitle":           func(d *Document) string { return d.LocationTitle },
	"locationDesc1":           func(d *Document) string { return d.LocationDesc1 },
	"locationDesc2":           func(d *Document) string { return d.LocationDesc2 },
	"mapDisclaimer":           func(d *Document) string { return d.MapDisclaimer },
	"connectivityTitle":       func(d *Document) string { return d.ConnectivityTitle },
	"connectivityNote":        func(d *Document) string { return d.ConnectivityNote },
	"districtLabel":           func(d *Document) string { return d.DistrictLabel },
	"amenitiesIntroTitle":     func(d *Document) string { return d.AmenitiesIntroTitle },
	"amenitiesIntroPara1":     func(d *Document) string { return d.AmenitiesIntroPara1 },
	"amenitiesIntroPara2":     func(d *Document) string { return d.AmenitiesIntroPara2 },
	"amenitiesIntroPara3":     func(d *Document) string { return d.AmenitiesIntroPara3 },
	"amenitiesListTitle":      func(d *Document) string { return d.AmenitiesListTitle },
	"amenitiesListDisclaimer": func(d *Document) string { return d.AmenitiesListDisclaimer },
	"amenitiesGridTitle":      func(d *Document) string { return d.AmenitiesGridTitle },
	"amenitiesGridDisclaimer": func(d *Document) string { return d.AmenitiesGridDisclaimer },
	"specsTitle":              func(d *Document) string { return d.SpecsTitle },
	"specsDisclaimer":         func(d *Document) string { return d.SpecsDisclaimer },
	"masterPlanTitle":         func(d *Document) string { return d.MasterPlanTitle },
	"masterPlanDisclaimer":    func(d *Document) string { return d.MasterPlanDisclaimer },
	"masterPlanDesc1":         func(d *Document) string { return d.MasterPlanDesc1 },
	"masterPlanDesc2":         func(d *Document) string { return d.MasterPlanDesc2 },
	"floorPlansTitle":         func(d *Document) string { return d.FloorPlansTitle },
	"floorPlansDisclaimer":    func(d *Document) string { return d.FloorPlansDisclaimer },
	"callToAction":            func(d *Document) string { return d.CallToAction },
	"contactTitle":            func(d *Document) string { return d.ContactTitle },
	"contactPhone":            func(d *Document) string { return d.ContactPhone },
	"contactEmail":            func(d *Document) string { return d.ContactEmail },
	"contactWebsite":          func(d *Document) string { return d.ContactWebsite },
	"contactAddress":          func(d *Document) string { return d.ContactAddress },
	"fullDisclaimer":          func(d *Document) string { return d.FullDisclaimer },
	"reraDisclaimer":          func(d *Document) string { return d.ReraDisclaimer },
}

var imageGetters = map[string]func(*Document) string{
	"coverImage":              func(d *Document) string { return d.CoverImage },
	"logoImage":               func(d *Document) string { return d.LogoImage },
	"introWatermark":          func(d *Document) string { return d.IntroWatermark },
	"developerImage":          func(d *Document) string { return d.DeveloperImage },
	"developerLogo":           func(d *Document) string { return d.DeveloperLogo },
	"mapImage":                func(d *Document) string { return d.MapImage },
	"locationWatermark":       func(d *Document) string { return d.LocationWatermark },
	"connectivityImage":       func(d *Document) string { return d.ConnectivityImage },
	"connectivityWatermark":   func(d *Document) string { return d.ConnectivityWatermark },
	"amenitiesIntroWatermark": func(d *Document) string { return d.AmenitiesIntroWatermark },
	"amenitiesListImage":      func(d *Document) string { return d.AmenitiesListImage },
	"specsImage":              func(d *Document) string { return d.SpecsImage },
	"masterPlanImage":         func(d *Document) string { return d.MasterPlanImage },
	"backCoverImage":          func(d *Document) string { return d.BackCoverImage },
	"backCoverLogo":           func(d *Document) string { return d.BackCoverLogo },
}
