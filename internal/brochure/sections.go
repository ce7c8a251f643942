package brochure

import "fmt"

// SectionName identifies one of the twelve thematic groupings of fields.
type SectionName string

const (
	SectionCover          SectionName = "cover"
	SectionIntroduction   SectionName = "introduction"
	SectionDeveloper      SectionName = "developer"
	SectionLocation       SectionName = "location"
	SectionConnectivity   SectionName = "connectivity"
	SectionAmenitiesIntro SectionName = "amenities-intro"
	SectionAmenitiesList  SectionName = "amenities-list"
	SectionAmenitiesGrid  SectionName = "amenities-grid"
	SectionSpecifications SectionName = "specifications"
	SectionMasterPlan     SectionName = "master-plan"
	SectionFloorPlans     SectionName = "floor-plans"
	SectionBackCover      SectionName = "back-cover"
)

// SectionSpec declares which top-level fields a section owns, split by role.
// The generation contract uses the split to decide what may change (text),
// what never changes (images), and what changes only element-wise (lists).
type SectionSpec struct {
	Name        SectionName
	TextFields  []string
	ImageFields []string
	ListFields  []string
	// EntryListFields hold structured entries (grid items, floor plans) whose
	// ID and image sub-fields are immutable under generation.
	EntryListFields []string
}

var sectionOrder = []SectionName{
	SectionCover,
	SectionIntroduction,
	SectionDeveloper,
	SectionLocation,
	SectionConnectivity,
	SectionAmenitiesIntro,
	SectionAmenitiesList,
	SectionAmenitiesGrid,
	SectionSpecifications,
	SectionMasterPlan,
	SectionFloorPlans,
	SectionBackCover,
}

var sectionSpecs = map[SectionName]SectionSpec{
	SectionCover: {
		Name:        SectionCover,
		TextFields:  []string{"projectName", "tagline", "reraNotice"},
		ImageFields: []string{"coverImage", "logoImage"},
	},
	SectionIntroduction: {
		Name:        SectionIntroduction,
		TextFields:  []string{"introTitle", "introPara1", "introPara2", "introPara3"},
		ImageFields: []string{"introWatermark"},
	},
	SectionDeveloper: {
		Name:        SectionDeveloper,
		TextFields:  []string{"developerName", "developerDesc1", "developerDesc2", "developerDisclaimer"},
		ImageFields: []string{"developerImage", "developerLogo"},
	},
	SectionLocation: {
		Name:        SectionLocation,
		TextFields:  []string{"locationTitle", "locationDesc1", "locationDesc2", "mapDisclaimer"},
		ImageFields: []string{"mapImage", "locationWatermark"},
		ListFields:  []string{"keyDistances"},
	},
	SectionConnectivity: {
		Name:        SectionConnectivity,
		TextFields:  []string{"connectivityTitle", "connectivityNote", "districtLabel"},
		ImageFields: []string{"connectivityImage", "connectivityWatermark"},
		ListFields:  []string{"businessPoints", "healthcarePoints", "educationPoints", "leisurePoints"},
	},
	SectionAmenitiesIntro: {
		Name:        SectionAmenitiesIntro,
		TextFields:  []string{"amenitiesIntroTitle", "amenitiesIntroPara1", "amenitiesIntroPara2", "amenitiesIntroPara3"},
		ImageFields: []string{"amenitiesIntroWatermark"},
	},
	SectionAmenitiesList: {
		Name:        SectionAmenitiesList,
		TextFields:  []string{"amenitiesListTitle", "amenitiesListDisclaimer"},
		ImageFields: []string{"amenitiesListImage"},
		ListFields:  []string{"wellnessAmenities", "recreationAmenities"},
	},
	SectionAmenitiesGrid: {
		Name:            SectionAmenitiesGrid,
		TextFields:      []string{"amenitiesGridTitle", "amenitiesGridDisclaimer"},
		EntryListFields: []string{"amenitiesGridItems"},
	},
	SectionSpecifications: {
		Name:        SectionSpecifications,
		TextFields:  []string{"specsTitle", "specsDisclaimer"},
		ImageFields: []string{"specsImage"},
		ListFields:  []string{"specsInterior", "specsBuilding"},
	},
	SectionMasterPlan: {
		Name:        SectionMasterPlan,
		TextFields:  []string{"masterPlanTitle", "masterPlanDesc1", "masterPlanDesc2", "masterPlanDisclaimer"},
		ImageFields: []string{"masterPlanImage"},
	},
	SectionFloorPlans: {
		Name:            SectionFloorPlans,
		TextFields:      []string{"floorPlansTitle", "floorPlansDisclaimer"},
		EntryListFields: []string{"floorPlans"},
	},
	SectionBackCover: {
		Name:        SectionBackCover,
		TextFields:  []string{"callToAction", "contactTitle", "contactPhone", "contactEmail", "contactWebsite", "contactAddress", "fullDisclaimer", "reraDisclaimer"},
		ImageFields: []string{"backCoverImage", "backCoverLogo"},
	},
}

// Sections returns all section specs in presentation order.
func Sections() []SectionSpec {
	out := make([]SectionSpec, 0, len(sectionOrder))
	for _, name := range sectionOrder {
		out = append(out, sectionSpecs[name])
	}
	return out
}

// SectionByName looks up a section spec by its wire name.
func SectionByName(name SectionName) (SectionSpec, error) {
	spec, ok := sectionSpecs[name]
	if !ok {
		return SectionSpec{}, fmt.Errorf("unknown section %q", name)
	}
	return spec, nil
}

// Fields returns every top-level field the section owns.
func (s SectionSpec) Fields() []string {
	out := make([]string, 0, len(s.TextFields)+len(s.ImageFields)+len(s.ListFields)+len(s.EntryListFields))
	out = append(out, s.TextFields...)
	out = append(out, s.ImageFields...)
	out = append(out, s.ListFields...)
	out = append(out, s.EntryListFields...)
	return out
}

// Owns reports whether the named field belongs to this section.
func (s SectionSpec) Owns(field string) bool {
	for _, f := range s.Fields() {
		if f == field {
			return true
		}
	}
	return false
}

var imageFieldSet = buildImageFieldSet()

func buildImageFieldSet() map[string]bool {
	set := make(map[string]bool)
	for _, spec := range sectionSpecs {
		for _, f := range spec.ImageFields {
			set[f] = true
		}
	}
	return set
}

// IsImageField reports whether the named top-level field is an image
// reference. Nested images (grid items, floor plans) are handled through
// their entry lists.
func IsImageField(field string) bool {
	return imageFieldSet[field]
}

// ListKind tags one of the named editable string-list fields. The generation
// contract and the editor's list widgets address lists through these kinds
// instead of stringly-typed paths.
type ListKind int

const (
	ListKeyDistances ListKind = iota
	ListBusinessPoints
	ListHealthcarePoints
	ListEducationPoints
	ListLeisurePoints
	ListWellnessAmenities
	ListRecreationAmenities
	ListSpecsInterior
	ListSpecsBuilding
)

// ListKinds enumerates every string-list kind in declaration order.
func ListKinds() []ListKind {
	return []ListKind{
		ListKeyDistances,
		ListBusinessPoints,
		ListHealthcarePoints,
		ListEducationPoints,
		ListLeisurePoints,
		ListWellnessAmenities,
		ListRecreationAmenities,
		ListSpecsInterior,
		ListSpecsBuilding,
	}
}

// Field returns the JSON field name the kind addresses.
func (k ListKind) Field() string {
	switch k {
	case ListKeyDistances:
		return "keyDistances"
	case ListBusinessPoints:
		return "businessPoints"
	case ListHealthcarePoints:
		return "healthcarePoints"
	case ListEducationPoints:
		return "educationPoints"
	case ListLeisurePoints:
		return "leisurePoints"
	case ListWellnessAmenities:
		return "wellnessAmenities"
	case ListRecreationAmenities:
		return "recreationAmenities"
	case ListSpecsInterior:
		return "specsInterior"
	case ListSpecsBuilding:
		return "specsBuilding"
	}
	return ""
}

// Get returns the list the kind addresses.
func (k ListKind) Get(d *Document) []string {
	switch k {
	case ListKeyDistances:
		return d.KeyDistances
	case ListBusinessPoints:
		return d.BusinessPoints
	case ListHealthcarePoints:
		return d.HealthcarePoints
	case ListEducationPoints:
		return d.EducationPoints
	case ListLeisurePoints:
		return d.LeisurePoints
	case ListWellnessAmenities:
		return d.WellnessAmenities
	case ListRecreationAmenities:
		return d.RecreationAmenities
	case ListSpecsInterior:
		return d.SpecsInterior
	case ListSpecsBuilding:
		return d.SpecsBuilding
	}
	return nil
}

// Set replaces the list the kind addresses.
func (k ListKind) Set(d *Document, items []string) {
	switch k {
	case ListKeyDistances:
		d.KeyDistances = items
	case ListBusinessPoints:
		d.BusinessPoints = items
	case ListHealthcarePoints:
		d.HealthcarePoints = items
	case ListEducationPoints:
		d.EducationPoints = items
	case ListLeisurePoints:
		d.LeisurePoints = items
	case ListWellnessAmenities:
		d.WellnessAmenities = items
	case ListRecreationAmenities:
		d.RecreationAmenities = items
	case ListSpecsInterior:
		d.SpecsInterior = items
	case ListSpecsBuilding:
		d.SpecsBuilding = items
	}
}
