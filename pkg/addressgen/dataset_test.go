package addressgen_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addrforge/addrforge/pkg/addressgen"
)

const testDatasetYAML = `
country: US
cardinals:
  - {name: North, abbr: N}
  - {name: East, abbr: E}
  - {name: South, abbr: S}
  - {name: West, abbr: W}
intercardinals:
  - {name: Northeast, abbr: NE}
  - {name: Northwest, abbr: NW}
  - {name: Southeast, abbr: SE}
  - {name: Southwest, abbr: SW}
street_names: [Maple, Oak]
descriptors:
  general:
    - {name: Street, abbr: St}
  size:
    - {name: Boulevard, abbr: Blvd}
  function:
    - {name: Plaza, abbr: Plz}
unit_descriptors:
  residential: [Apt.]
  commercial: [Suite]
patterns:
  - "{street} {descriptor}"
  - "{dir} {ord} {descriptor}"
states:
  XA:
    name: Alpha
    cities:
      - {city: Alphaville, county: Alpha County, zip_prefix: "123"}
  XB:
    name: Beta
    cities:
      - {city: Betatown, county: Beta County, zip_prefix: "45678"}
`

func TestDefaultDatasetValid(t *testing.T) {
	require.NoError(t, addressgen.DefaultDataset().Validate())
}

func TestLoadDataset(t *testing.T) {
	ds, err := addressgen.LoadDataset(strings.NewReader(testDatasetYAML))
	require.NoError(t, err)

	assert.Equal(t, "US", ds.Country)
	assert.Len(t, ds.Cardinals, 4)
	assert.Len(t, ds.Patterns, 2)

	st, ok := ds.States["XA"]
	require.True(t, ok)
	assert.Equal(t, "Alpha", st.Name)
	assert.Equal(t, "XA", st.Abbr, "abbreviation should be filled from the map key")
	require.Len(t, st.Cities, 1)
	assert.Equal(t, "Alpha County", st.Cities[0].County)
}

func TestLoadDatasetDrivesGenerator(t *testing.T) {
	ds, err := addressgen.LoadDataset(strings.NewReader(testDatasetYAML))
	require.NoError(t, err)

	gen := addressgen.New(addressgen.WithDataset(ds), addressgen.WithSeed(9))

	for i := 0; i < 50; i++ {
		addr := gen.Address()
		assert.Contains(t, []string{"XA", "XB"}, addr.State)
		assert.Contains(t, []string{"Alphaville", "Betatown"}, addr.City)
	}
}

func TestLoadDatasetErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		errText string
	}{
		{
			name:    "unknown template token",
			mutate:  func(s string) string { return strings.Replace(s, "{street}", "{bogus}", 1) },
			errText: "bogus",
		},
		{
			name:    "empty street names",
			mutate:  func(s string) string { return strings.Replace(s, "street_names: [Maple, Oak]", "street_names: []", 1) },
			errText: "street_names",
		},
		{
			name:    "non-digit zip prefix",
			mutate:  func(s string) string { return strings.Replace(s, `"123"`, `"12a"`, 1) },
			errText: "zip prefix",
		},
		{
			name:    "not yaml",
			mutate:  func(string) string { return "{{{" },
			errText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := addressgen.LoadDataset(strings.NewReader(tt.mutate(testDatasetYAML)))
			require.Error(t, err)
			if tt.errText != "" {
				assert.Contains(t, err.Error(), tt.errText)
			}
		})
	}
}

func TestValidateRejectsBadShapes(t *testing.T) {
	ds, err := addressgen.LoadDataset(strings.NewReader(testDatasetYAML))
	require.NoError(t, err)

	ds.Cardinals = ds.Cardinals[:3]
	err = ds.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, addressgen.ErrInvalidDataset))
}

func TestNewPanicsOnInvalidDataset(t *testing.T) {
	ds, err := addressgen.LoadDataset(strings.NewReader(testDatasetYAML))
	require.NoError(t, err)
	ds.Patterns = nil

	assert.Panics(t, func() {
		addressgen.New(addressgen.WithDataset(ds))
	})
}
