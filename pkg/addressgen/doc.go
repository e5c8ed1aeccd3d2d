// Package addressgen generates synthetic, internally-consistent US postal
// address records for test suites and demo/seed-data tooling. Every field is
// drawn from static reference tables combined with weighted random choices and
// string templates, so the output looks plausible without ever touching the
// network or a real address database.
//
// A Generator produces street lines, cities, counties, states, ZIP codes, and
// complete Address records. Within one Address call the city, county, and ZIP
// prefix are always taken from the same reference City entry, so the three
// fields never contradict each other.
//
// # Architecture
//
//   - Reference tables live in a Dataset: direction tables, street names,
//     street and unit descriptors grouped by category, street-line templates,
//     and a state table keyed by abbreviation with cities, counties, and ZIP
//     prefixes. Datasets are read-only after load; a custom one can be
//     supplied via WithDataset or decoded from YAML with LoadDataset.
//   - Street lines are built by interpolating `{token}` placeholders in a
//     randomly chosen template. Each token is bound to a resolver function,
//     and every occurrence gets an independent fresh draw. New validates at
//     construction time that every loaded template only references bound
//     tokens, turning a template/resolver mismatch into a startup failure.
//   - Weighted choices walk the alternatives in order, accumulating weights
//     until the running sum exceeds a single uniform draw. Boundary values
//     land in the earlier bucket, so the distribution is exact and every
//     positive-weight alternative stays reachable.
//   - Randomness comes from a single math/rand source behind a mutex, making
//     a Generator safe for concurrent use. WithSeed or WithSource give fully
//     deterministic output for tests.
//
// # Usage
//
//	gen := addressgen.New()
//
//	addr := gen.Address(addressgen.NineDigit())
//	fmt.Println(addr.Street1) // e.g. "4521 NW Maple Blvd"
//	fmt.Println(addr.Zip)     // e.g. "98101-3544"
//
// Deterministic generation for tests:
//
//	gen := addressgen.New(addressgen.WithSeed(42))
//
// # Errors
//
// CityIn returns ErrStateNotFound when the requested state does not exist and
// the fallback mode is FallbackError. Malformed datasets surface as
// ErrInvalidDataset from Dataset.Validate or LoadDataset; New panics on an
// invalid dataset because that is a programming defect, not a runtime
// condition.
package addressgen
