package addressgen

import "math/rand"

// Option configures a Generator at construction time.
type Option func(*config)

type config struct {
	dataset *Dataset
	source  rand.Source
}

func defaultConfig() *config {
	return &config{dataset: usDataset}
}

// WithDataset replaces the built-in en_US reference tables. New validates the
// dataset and panics if it is malformed; run Validate or LoadDataset first if
// the tables come from untrusted input.
func WithDataset(ds *Dataset) Option {
	if ds == nil {
		panic("WithDataset: nil dataset")
	}
	return func(c *config) { c.dataset = ds }
}

// WithSeed makes every draw deterministic for the given seed. Intended for
// tests and reproducible fixtures.
func WithSeed(seed int64) Option {
	return func(c *config) { c.source = rand.NewSource(seed) }
}

// WithSource supplies a custom random source.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("WithSource: nil source")
	}
	return func(c *config) { c.source = src }
}

// ZipOption configures a single Zip or Address call.
type ZipOption func(*zipConfig)

type zipConfig struct {
	prefix    string
	nineDigit bool
	noDash    bool
}

// WithPrefix seeds the ZIP code with a digit prefix; dashes are stripped and
// missing digits are filled in randomly. Address ignores this option because
// the anchored city supplies the prefix.
func WithPrefix(prefix string) ZipOption {
	return func(c *zipConfig) { c.prefix = prefix }
}

// NineDigit requests a ZIP+4 code instead of the 5-digit default.
func NineDigit() ZipOption {
	return func(c *zipConfig) { c.nineDigit = true }
}

// NoDash drops the dash from a nine-digit code. No effect on 5-digit codes.
func NoDash() ZipOption {
	return func(c *zipConfig) { c.noDash = true }
}
