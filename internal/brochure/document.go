package brochure

// Document is the full structured brochure content object. Every field is
// always populated: missing input is filled from defaults before validation,
// so downstream code never has to guard against absent fields. Image fields
// hold an absolute URL or "" ("no image").
type Document struct {
	// Cover
	ProjectName string `json:"projectName"`
	Tagline     string `json:"tagline"`
	CoverImage  string `json:"coverImage"`
	LogoImage   string `json:"logoImage"`
	ReraNotice  string `json:"reraNotice"`

	// Introduction
	IntroTitle     string `json:"introTitle"`
	IntroPara1     string `json:"introPara1"`
	IntroPara2     string `json:"introPara2"`
	IntroPara3     string `json:"introPara3"`
	IntroWatermark string `json:"introWatermark"`

	// Developer
	DeveloperName       string `json:"developerName"`
	DeveloperDesc1      string `json:"developerDesc1"`
	DeveloperDesc2      string `json:"developerDesc2"`
	DeveloperImage      string `json:"developerImage"`
	DeveloperLogo       string `json:"developerLogo"`
	DeveloperDisclaimer string `json:"developerDisclaimer"`

	// Location
	LocationTitle     string   `json:"locationTitle"`
	LocationDesc1     string   `json:"locationDesc1"`
	LocationDesc2     string   `json:"locationDesc2"`
	KeyDistances      []string `json:"keyDistances"`
	MapImage          string   `json:"mapImage"`
	MapDisclaimer     string   `json:"mapDisclaimer"`
	LocationWatermark string   `json:"locationWatermark"`

	// Connectivity. Element 0 of each point list is the category heading.
	ConnectivityTitle     string   `json:"connectivityTitle"`
	BusinessPoints        []string `json:"businessPoints"`
	HealthcarePoints      []string `json:"healthcarePoints"`
	EducationPoints       []string `json:"educationPoints"`
	LeisurePoints         []string `json:"leisurePoints"`
	ConnectivityNote      string   `json:"connectivityNote"`
	ConnectivityImage     string   `json:"connectivityImage"`
	DistrictLabel         string   `json:"districtLabel"`
	ConnectivityWatermark string   `json:"connectivityWatermark"`

	// Amenities intro
	AmenitiesIntroTitle     string `json:"amenitiesIntroTitle"`
	AmenitiesIntroPara1     string `json:"amenitiesIntroPara1"`
	AmenitiesIntroPara2     string `json:"amenitiesIntroPara2"`
	AmenitiesIntroPara3     string `json:"amenitiesIntroPara3"`
	AmenitiesIntroWatermark string `json:"amenitiesIntroWatermark"`

	// Amenities list
	AmenitiesListTitle      string   `json:"amenitiesListTitle"`
	AmenitiesListImage      string   `json:"amenitiesListImage"`
	AmenitiesListDisclaimer string   `json:"amenitiesListDisclaimer"`
	WellnessAmenities       []string `json:"wellnessAmenities"`
	RecreationAmenities     []string `json:"recreationAmenities"`

	// Amenities grid
	AmenitiesGridTitle      string     `json:"amenitiesGridTitle"`
	AmenitiesGridItems      []GridItem `json:"amenitiesGridItems"`
	AmenitiesGridDisclaimer string     `json:"amenitiesGridDisclaimer"`

	// Specifications
	SpecsTitle      string   `json:"specsTitle"`
	SpecsImage      string   `json:"specsImage"`
	SpecsDisclaimer string   `json:"specsDisclaimer"`
	SpecsInterior   []string `json:"specsInterior"`
	SpecsBuilding   []string `json:"specsBuilding"`

	// Master plan
	MasterPlanTitle      string `json:"masterPlanTitle"`
	MasterPlanImage      string `json:"masterPlanImage"`
	MasterPlanDisclaimer string `json:"masterPlanDisclaimer"`
	MasterPlanDesc1      string `json:"masterPlanDesc1"`
	MasterPlanDesc2      string `json:"masterPlanDesc2"`

	// Floor plans
	FloorPlansTitle      string      `json:"floorPlansTitle"`
	FloorPlans           []FloorPlan `json:"floorPlans"`
	FloorPlansDisclaimer string      `json:"floorPlansDisclaimer"`

	// Back cover
	BackCoverImage string `json:"backCoverImage"`
	BackCoverLogo  string `json:"backCoverLogo"`
	CallToAction   string `json:"callToAction"`
	ContactTitle   string `json:"contactTitle"`
	ContactPhone   string `json:"contactPhone"`
	ContactEmail   string `json:"contactEmail"`
	ContactWebsite string `json:"contactWebsite"`
	ContactAddress string `json:"contactAddress"`
	FullDisclaimer string `json:"fullDisclaimer"`
	ReraDisclaimer string `json:"reraDisclaimer"`
}

// GridItem is one cell of the amenities grid. ID is a stable handle for list
// operations in the editor and carries no meaning in rendering.
type GridItem struct {
	ID    string `json:"id"`
	Image string `json:"image"`
	Label string `json:"label"`
}

// FloorPlan describes one unit layout. ID and Image are immutable under
// generation; Name, Area and Features may be reworded when targeted.
type FloorPlan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Area     string   `json:"area"`
	Features []string `json:"features"`
	Image    string   `json:"image"`
}

// Clone returns a deep copy. Renderers receive clones so a draw always
// observes a stable value while the editor keeps mutating the live document.
func (d Document) Clone() Document {
	out := d
	out.KeyDistances = append([]string(nil), d.KeyDistances...)
	out.BusinessPoints = append([]string(nil), d.BusinessPoints...)
	out.HealthcarePoints = append([]string(nil), d.HealthcarePoints...)
	out.EducationPoints = append([]string(nil), d.EducationPoints...)
	out.LeisurePoints = append([]string(nil), d.LeisurePoints...)
	out.WellnessAmenities = append([]string(nil), d.WellnessAmenities...)
	out.RecreationAmenities = append([]string(nil), d.RecreationAmenities...)
	out.SpecsInterior = append([]string(nil), d.SpecsInterior...)
	out.SpecsBuilding = append([]string(nil), d.SpecsBuilding...)
	out.AmenitiesGridItems = append([]GridItem(nil), d.AmenitiesGridItems...)
	out.FloorPlans = make([]FloorPlan, len(d.FloorPlans))
	for i, fp := range d.FloorPlans {
		fp.Features = append([]string(nil), fp.Features...)
		out.FloorPlans[i] = fp
	}
	return out
}
