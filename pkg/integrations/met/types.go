package met

// ObjectSummaryList is returned by [Client.ListObjects] and [Client.Search].
//
// Total need not equal len(ObjectIDs); the API may cap the list. The API
// sends null objectIDs for an empty search, which decodes to a nil slice.
type ObjectSummaryList struct {
	Total     int   `json:"total" toml:"total"`
	ObjectIDs []int `json:"objectIDs" toml:"objectIDs"`
}

// ObjectDetails is the full record for one object.
//
// Attribution fields are empty strings when unknown. List-valued fields may be
// nil (JSON null) or empty; both mean "no data".
type ObjectDetails struct {
	ObjectID          int           `json:"objectID" toml:"objectID"`
	IsHighlight       bool          `json:"isHighlight" toml:"isHighlight"`
	AccessionNumber   string        `json:"accessionNumber" toml:"accessionNumber"`
	AccessionYear     string        `json:"accessionYear" toml:"accessionYear"`
	IsPublicDomain    bool          `json:"isPublicDomain" toml:"isPublicDomain"`
	PrimaryImage      string        `json:"primaryImage" toml:"primaryImage"`
	PrimaryImageSmall string        `json:"primaryImageSmall" toml:"primaryImageSmall"`
	AdditionalImages  []string      `json:"additionalImages" toml:"additionalImages"`
	Constituents      []Constituent `json:"constituents" toml:"constituents"`
	Department        string        `json:"department" toml:"department"`
	ObjectName        string        `json:"objectName" toml:"objectName"`
	Title             string        `json:"title" toml:"title"`
	Culture           string        `json:"culture" toml:"culture"`
	Period            string        `json:"period" toml:"period"`
	Dynasty           string        `json:"dynasty" toml:"dynasty"`
	Reign             string        `json:"reign" toml:"reign"`
	Portfolio         string        `json:"portfolio" toml:"portfolio"`

	ArtistRole        string `json:"artistRole" toml:"artistRole"`
	ArtistPrefix      string `json:"artistPrefix" toml:"artistPrefix"`
	ArtistDisplayName string `json:"artistDisplayName" toml:"artistDisplayName"`
	ArtistDisplayBio  string `json:"artistDisplayBio" toml:"artistDisplayBio"`
	ArtistSuffix      string `json:"artistSuffix" toml:"artistSuffix"`
	ArtistAlphaSort   string `json:"artistAlphaSort" toml:"artistAlphaSort"`
	ArtistNationality string `json:"artistNationality" toml:"artistNationality"`
	ArtistBeginDate   string `json:"artistBeginDate" toml:"artistBeginDate"`
	ArtistEndDate     string `json:"artistEndDate" toml:"artistEndDate"`
	ArtistGender      string `json:"artistGender,omitempty" toml:"artistGender,omitempty"`
	ArtistWikidataURL string `json:"artistWikidata_URL,omitempty" toml:"artistWikidata_URL,omitempty"`
	ArtistULANURL     string `json:"artistULAN_URL,omitempty" toml:"artistULAN_URL,omitempty"`

	ObjectDate       string            `json:"objectDate" toml:"objectDate"`
	ObjectBeginDate  int               `json:"objectBeginDate" toml:"objectBeginDate"`
	ObjectEndDate    int               `json:"objectEndDate" toml:"objectEndDate"`
	Medium           string            `json:"medium" toml:"medium"`
	Dimensions       string            `json:"dimensions" toml:"dimensions"`
	DimensionsParsed []ParsedDimension `json:"dimensionsParsed" toml:"dimensionsParsed"`
	Measurements     []Measurement     `json:"measurements" toml:"measurements"`
	CreditLine       string            `json:"creditLine" toml:"creditLine"`

	GeographyType string `json:"geographyType" toml:"geographyType"`
	City          string `json:"city" toml:"city"`
	State         string `json:"state" toml:"state"`
	County        string `json:"county" toml:"county"`
	Country       string `json:"country" toml:"country"`
	Region        string `json:"region" toml:"region"`
	Subregion     string `json:"subregion" toml:"subregion"`
	Locale        string `json:"locale" toml:"locale"`
	Locus         string `json:"locus" toml:"locus"`
	Excavation    string `json:"excavation" toml:"excavation"`
	River         string `json:"river" toml:"river"`

	Classification        string `json:"classification" toml:"classification"`
	RightsAndReproduction string `json:"rightsAndReproduction" toml:"rightsAndReproduction"`
	LinkResource          string `json:"linkResource" toml:"linkResource"`
	MetadataDate          string `json:"metadataDate" toml:"metadataDate"`
	Repository            string `json:"repository" toml:"repository"`
	ObjectURL             string `json:"objectURL" toml:"objectURL"`
	Tags                  []Tag  `json:"tags" toml:"tags"`
	ObjectWikidataURL     string `json:"objectWikidata_URL,omitempty" toml:"objectWikidata_URL,omitempty"`
	IsTimelineWork        bool   `json:"isTimelineWork" toml:"isTimelineWork"`
	GalleryNumber         string `json:"GalleryNumber" toml:"GalleryNumber"`
}

// OnView reports whether the object has a gallery assignment.
func (o *ObjectDetails) OnView() bool { return o.GalleryNumber != "" }

// Artist returns the display name with its role prefix and suffix, if any.
func (o *ObjectDetails) Artist() string {
	name := o.ArtistDisplayName
	if name == "" {
		return ""
	}
	if o.ArtistPrefix != "" {
		name = o.ArtistPrefix + " " + name
	}
	if o.ArtistSuffix != "" {
		name = name + " " + o.ArtistSuffix
	}
	return name
}

// Tag is a subject keyword linked to the Getty AAT and optionally Wikidata.
type Tag struct {
	Term        string `json:"term" toml:"term"`
	AATURL      string `json:"AAT_URL" toml:"AAT_URL"`
	WikidataURL string `json:"Wikidata_URL,omitempty" toml:"Wikidata_URL,omitempty"`
}

// Constituent is a person or entity associated with an object.
type Constituent struct {
	ConstituentID int    `json:"constituentID" toml:"constituentID"`
	Role          string `json:"role" toml:"role"`
	Name          string `json:"name" toml:"name"`
	ULANURL       string `json:"constituentULAN_URL,omitempty" toml:"constituentULAN_URL,omitempty"`
	WikidataURL   string `json:"constituentWikidata_URL,omitempty" toml:"constituentWikidata_URL,omitempty"`
	Gender        string `json:"gender,omitempty" toml:"gender,omitempty"`
}

// Measurement describes one physical element of an object.
// ElementDescription is nil when the API sends null.
type Measurement struct {
	ElementName         string              `json:"elementName" toml:"elementName"`
	ElementDescription  *string             `json:"elementDescription" toml:"elementDescription"`
	ElementMeasurements ElementMeasurements `json:"elementMeasurements" toml:"elementMeasurements"`
}

// ElementMeasurements maps a dimension name (Height, Width, Depth, Length,
// Diameter, Weight, ...) to its value in centimeters or kilograms.
type ElementMeasurements map[string]float64

// ParsedDimension is one dimension extracted from the raw dimensions string.
type ParsedDimension struct {
	Element       string  `json:"element" toml:"element"`
	DimensionType string  `json:"dimensionType" toml:"dimensionType"`
	Dimension     float64 `json:"dimension" toml:"dimension"`
}

// Department is a curatorial division of the collection.
type Department struct {
	DepartmentID int    `json:"departmentId" toml:"departmentId"`
	DisplayName  string `json:"displayName" toml:"displayName"`
}

// DepartmentList is the list returned by [Client.ListDepartments].
type DepartmentList []Department

// departmentsResponse is the envelope the API wraps around [DepartmentList].
type departmentsResponse struct {
	Departments DepartmentList `json:"departments"`
}
