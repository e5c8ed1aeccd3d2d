package addressgen

// DescriptorCategory selects one of the street descriptor tables.
type DescriptorCategory int

// Street descriptor categories.
const (
	General DescriptorCategory = iota
	Size
	Function
)

// UnitCategory selects one of the secondary-unit descriptor tables.
type UnitCategory int

// Secondary-unit categories.
const (
	Residential UnitCategory = iota
	Commercial
)

// Fallback controls what CityIn does when the requested state is not found.
type Fallback int

const (
	// FallbackRandom silently substitutes a uniformly random state.
	FallbackRandom Fallback = iota
	// FallbackError surfaces ErrStateNotFound naming the bad input.
	FallbackError
)

// Direction is a compass direction with its postal abbreviation.
type Direction struct {
	Name string `yaml:"name"`
	Abbr string `yaml:"abbr"`
}

// StreetDescriptor is a street-type word such as Avenue/Ave.
type StreetDescriptor struct {
	Name string `yaml:"name"`
	Abbr string `yaml:"abbr"`
}

// City is one reference entry: a city with its county and ZIP code prefix.
// The prefix is a digit string of up to nine characters; Zip extends it with
// random digits to a full code.
type City struct {
	Name      string `yaml:"city"`
	County    string `yaml:"county"`
	ZipPrefix string `yaml:"zip_prefix"`
}

// State groups the reference cities of one state. The state table keys
// entries by abbreviation.
type State struct {
	Name   string `yaml:"name"`
	Abbr   string `yaml:"-"`
	Cities []City `yaml:"cities"`
}

// Address is one generated postal address record.
type Address struct {
	Street1 string `json:"street1"`
	Street2 string `json:"street2"`
	City    string `json:"city"`
	County  string `json:"county"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}
