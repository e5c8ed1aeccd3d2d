package addressgen

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Generator produces synthetic postal addresses from an immutable reference
// dataset. It is safe for concurrent use: the only shared mutable state is
// the random source, guarded by a mutex, and every call consumes its own
// bounded number of draws.
type Generator struct {
	ds        *Dataset
	abbrs     []string
	resolvers map[string]Resolver

	mu  sync.Mutex
	rnd *rand.Rand
}

// New builds a Generator over the built-in en_US dataset unless WithDataset
// overrides it. It panics if the dataset fails validation: a malformed table
// or a template referencing an unbound token is a programming defect, caught
// at startup rather than on some later draw.
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.dataset.Validate(); err != nil {
		panic(err)
	}

	src := cfg.source
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}

	g := &Generator{
		ds:    cfg.dataset,
		abbrs: stateAbbrs(cfg.dataset),
		rnd:   rand.New(src),
	}

	// Resolver draws run with g.mu already held by the calling method.
	g.resolvers = map[string]Resolver{
		"ord":        func() string { return ordinal(randInt(g.rnd, 1, 50)) },
		"street":     func() string { return pickOne(g.rnd, g.ds.StreetNames) },
		"descriptor": g.randomDescriptor,
		"dir":        func() string { return g.direction(false, g.rnd.Intn(2) == 0) },
	}
	return g
}

// Direction returns a random compass direction, abbreviated or by full name.
// With excludeIntercardinal only the four cardinal entries are eligible;
// otherwise cardinals and intercardinals carry equal aggregate probability.
func (g *Generator) Direction(excludeIntercardinal, abbreviated bool) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.direction(excludeIntercardinal, abbreviated)
}

// direction draws in [0,3] or [0,7]; 0-3 index the cardinal table, 4-7 the
// intercardinal table via mod 4.
func (g *Generator) direction(excludeIntercardinal, abbreviated bool) string {
	upper := 7
	if excludeIntercardinal {
		upper = 3
	}
	i := randInt(g.rnd, 0, upper)

	var d Direction
	if i < 4 {
		d = g.ds.Cardinals[i]
	} else {
		d = g.ds.Intercardinals[i%4]
	}
	if abbreviated {
		return d.Abbr
	}
	return d.Name
}

// State returns a uniformly random state, abbreviated or by full name.
func (g *Generator) State(abbreviated bool) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	st := g.randomState()
	if abbreviated {
		return st.Abbr
	}
	return st.Name
}

func (g *Generator) randomState() State {
	return g.ds.States[pickOne(g.rnd, g.abbrs)]
}

// City returns the name of a uniformly random city within a uniformly random
// state.
func (g *Generator) City() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	st := g.randomState()
	return pickOne(g.rnd, st.Cities).Name
}

// CityIn returns a random city in the named state. The input matches state
// abbreviations first, then full names. On a miss the fallback decides:
// FallbackRandom substitutes a random state, FallbackError returns
// ErrStateNotFound naming the input.
func (g *Generator) CityIn(state string, fb Fallback) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	st, ok := g.findState(state)
	if !ok {
		if fb == FallbackError {
			return "", fmt.Errorf("%w: %q", ErrStateNotFound, state)
		}
		st = g.randomState()
	}
	return pickOne(g.rnd, st.Cities).Name, nil
}

func (g *Generator) findState(key string) (State, bool) {
	if st, ok := g.ds.States[key]; ok {
		return st, true
	}
	for _, abbr := range g.abbrs {
		if g.ds.States[abbr].Name == key {
			return g.ds.States[abbr], true
		}
	}
	return State{}, false
}

// County returns the county of a random city in a random state. The draw is
// independent of City: two separate calls may name a city and a county from
// different states. Callers needing a consistent record must use Address.
func (g *Generator) County() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	st := g.randomState()
	return pickOne(g.rnd, st.Cities).County
}

// Zip returns a syntactically valid ZIP code: 5 digits by default, or with
// NineDigit a ZIP+4 code, dash-separated unless NoDash. Any configured prefix
// is extended with random digits as needed.
func (g *Generator) Zip(opts ...ZipOption) string {
	var cfg zipConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.zip(cfg)
}

func (g *Generator) zip(cfg zipConfig) string {
	prefix := strings.ReplaceAll(cfg.prefix, "-", "")

	base := prefix
	var remainder string
	if len(prefix) > 5 {
		base, remainder = prefix[:5], prefix[5:]
	}
	if len(base) < 5 {
		base += randDigits(g.rnd, 5-len(base))
	}

	if !cfg.nineDigit {
		return base
	}

	if len(remainder) > 4 {
		remainder = remainder[:4]
	}
	if len(remainder) < 4 {
		remainder += randDigits(g.rnd, 4-len(remainder))
	}
	if cfg.noDash {
		return base + remainder
	}
	return base + "-" + remainder
}

// Street1 returns a primary street line composed from a uniformly random
// template. With includeNumber a random 3 to 5 digit street number and a
// space are prepended.
func (g *Generator) Street1(includeNumber bool) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.street1(includeNumber)
}

func (g *Generator) street1(includeNumber bool) string {
	template := pickOne(g.rnd, g.ds.Patterns)
	line, err := interpolate(template, g.resolvers)
	if err != nil {
		// Unreachable once New validated the dataset templates.
		panic(err)
	}
	if includeNumber {
		return streetNumber(g.rnd) + " " + line
	}
	return line
}

// randomDescriptor draws the street descriptor token: category weighted a
// third each, then a uniform entry, then a coin flip between abbreviation and
// full name.
func (g *Generator) randomDescriptor() string {
	cat := pickWeighted(g.rnd, []weightedEntry[DescriptorCategory]{
		{General, 1.0 / 3},
		{Size, 1.0 / 3},
		{Function, 1.0 / 3},
	})
	d := pickOne(g.rnd, g.ds.Descriptors.byCategory(cat))
	return oneOf(g.rnd, 0.5, d.Abbr, d.Name)
}

// Street2 returns a secondary address line with a 50/50 random unit category.
func (g *Generator) Street2() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.street2(g.randomUnitCategory())
}

// Street2For returns a secondary address line for the given unit category: a
// uniformly random descriptor followed by a unit identifier of one or two
// digits and an uppercase letter.
func (g *Generator) Street2For(cat UnitCategory) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.street2(cat)
}

func (g *Generator) randomUnitCategory() UnitCategory {
	return oneOf(g.rnd, 0.5, Residential, Commercial)
}

func (g *Generator) street2(cat UnitCategory) string {
	desc := pickOne(g.rnd, g.ds.UnitDescriptors.byCategory(cat))
	unit := randDigits(g.rnd, randInt(g.rnd, 1, 2)) + randUpper(g.rnd)
	return desc + " " + unit
}

// Address returns a full address record. One city is drawn within one random
// state and anchors the city, county, and ZIP prefix, so those three fields
// are always mutually consistent. The street number is always included and
// the unit category is random; NineDigit and NoDash shape the ZIP code.
func (g *Generator) Address(opts ...ZipOption) Address {
	var cfg zipConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.randomState()
	city := pickOne(g.rnd, st.Cities)
	cfg.prefix = city.ZipPrefix

	return Address{
		Street1: g.street1(true),
		Street2: g.street2(g.randomUnitCategory()),
		City:    city.Name,
		County:  city.County,
		State:   st.Abbr,
		Zip:     g.zip(cfg),
		Country: g.ds.Country,
	}
}
