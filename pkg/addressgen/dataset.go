package addressgen

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Descriptors groups the street descriptor tables by category.
type Descriptors struct {
	General  []StreetDescriptor `yaml:"general"`
	Size     []StreetDescriptor `yaml:"size"`
	Function []StreetDescriptor `yaml:"function"`
}

func (d Descriptors) byCategory(c DescriptorCategory) []StreetDescriptor {
	switch c {
	case Size:
		return d.Size
	case Function:
		return d.Function
	default:
		return d.General
	}
}

// UnitDescriptors groups the secondary-unit descriptor tables by category.
type UnitDescriptors struct {
	Residential []string `yaml:"residential"`
	Commercial  []string `yaml:"commercial"`
}

func (d UnitDescriptors) byCategory(c UnitCategory) []string {
	if c == Commercial {
		return d.Commercial
	}
	return d.Residential
}

// Dataset holds the immutable reference tables a Generator draws from: the
// direction tables, street names, descriptor lists, street-line templates,
// and the state table keyed by abbreviation. Load it once before generating
// and never mutate it afterwards; a Generator only ever reads from it.
type Dataset struct {
	Country         string           `yaml:"country"`
	Cardinals       []Direction      `yaml:"cardinals"`
	Intercardinals  []Direction      `yaml:"intercardinals"`
	StreetNames     []string         `yaml:"street_names"`
	Descriptors     Descriptors      `yaml:"descriptors"`
	UnitDescriptors UnitDescriptors  `yaml:"unit_descriptors"`
	Patterns        []string         `yaml:"patterns"`
	States          map[string]State `yaml:"states"`
}

// streetTokens are the placeholder names the composer binds resolvers for.
// Validate rejects templates referencing anything outside this set, so a
// template/resolver mismatch fails at load time instead of mid-generation.
var streetTokens = map[string]struct{}{
	"ord":        {},
	"street":     {},
	"descriptor": {},
	"dir":        {},
}

// Validate checks the shapes the generator relies on: exactly four cardinal
// and four intercardinal directions, non-empty name, descriptor, and template
// tables, at least one state, every state with at least one city, digit-only
// ZIP prefixes of at most nine characters, and only bound placeholder tokens
// in the templates. All errors wrap ErrInvalidDataset.
func (d *Dataset) Validate() error {
	if d.Country == "" {
		return fmt.Errorf("%w: country is empty", ErrInvalidDataset)
	}
	if len(d.Cardinals) != 4 {
		return fmt.Errorf("%w: expected 4 cardinal directions, got %d", ErrInvalidDataset, len(d.Cardinals))
	}
	if len(d.Intercardinals) != 4 {
		return fmt.Errorf("%w: expected 4 intercardinal directions, got %d", ErrInvalidDataset, len(d.Intercardinals))
	}
	if len(d.StreetNames) == 0 {
		return fmt.Errorf("%w: street_names is empty", ErrInvalidDataset)
	}
	for cat, name := range map[DescriptorCategory]string{General: "general", Size: "size", Function: "function"} {
		if len(d.Descriptors.byCategory(cat)) == 0 {
			return fmt.Errorf("%w: %s descriptors is empty", ErrInvalidDataset, name)
		}
	}
	for cat, name := range map[UnitCategory]string{Residential: "residential", Commercial: "commercial"} {
		if len(d.UnitDescriptors.byCategory(cat)) == 0 {
			return fmt.Errorf("%w: %s unit descriptors is empty", ErrInvalidDataset, name)
		}
	}
	if len(d.Patterns) == 0 {
		return fmt.Errorf("%w: patterns is empty", ErrInvalidDataset)
	}
	for _, p := range d.Patterns {
		for _, tok := range templateTokens(p) {
			if _, ok := streetTokens[tok]; !ok {
				return fmt.Errorf("%w: %q in template %q", ErrUnknownToken, tok, p)
			}
		}
	}
	if len(d.States) == 0 {
		return fmt.Errorf("%w: state table is empty", ErrInvalidDataset)
	}
	for abbr, st := range d.States {
		if len(st.Cities) == 0 {
			return fmt.Errorf("%w: state %q has no cities", ErrInvalidDataset, abbr)
		}
		for _, c := range st.Cities {
			if len(c.ZipPrefix) > 9 || !isDigits(c.ZipPrefix) {
				return fmt.Errorf("%w: state %q city %q has bad zip prefix %q", ErrInvalidDataset, abbr, c.Name, c.ZipPrefix)
			}
		}
	}
	return nil
}

// LoadDataset decodes a YAML dataset and validates it. State abbreviations
// come from the map keys; the decoded entries are normalized to carry them.
func LoadDataset(r io.Reader) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	for abbr, st := range ds.States {
		st.Abbr = abbr
		ds.States[abbr] = st
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// stateAbbrs returns the state table keys sorted, giving uniform sampling a
// stable order independent of map iteration.
func stateAbbrs(d *Dataset) []string {
	abbrs := make([]string, 0, len(d.States))
	for abbr := range d.States {
		abbrs = append(abbrs, abbr)
	}
	sort.Strings(abbrs)
	return abbrs
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
