package addressgen

import (
	"math"
	"math/rand"
	"testing"
)

func TestPickWeightedDistribution(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	entries := []weightedEntry[string]{
		{"a", 0.5},
		{"b", 0.3},
		{"c", 0.2},
	}

	const n = 100000
	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		counts[pickWeighted(rnd, entries)]++
	}

	for _, e := range entries {
		got := float64(counts[e.value]) / n
		if math.Abs(got-e.weight) > 0.01 {
			t.Errorf("empirical frequency of %q = %.4f, want %.4f ± 0.01", e.value, got, e.weight)
		}
	}
}

func TestPickWeightedZeroWeightUnreachable(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	entries := []weightedEntry[string]{
		{"never", 0},
		{"always", 1},
	}

	for i := 0; i < 1000; i++ {
		if got := pickWeighted(rnd, entries); got != "always" {
			t.Fatalf("pickWeighted returned zero-weight entry %q", got)
		}
	}
}

func TestPickWeightedSingleEntry(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	entries := []weightedEntry[int]{{42, 1}}
	for i := 0; i < 100; i++ {
		if got := pickWeighted(rnd, entries); got != 42 {
			t.Fatalf("pickWeighted = %d, want 42", got)
		}
	}
}

func TestOneOf(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))

	for i := 0; i < 100; i++ {
		if got := oneOf(rnd, 1, "a", "b"); got != "a" {
			t.Fatalf("oneOf with p=1 returned %q", got)
		}
		if got := oneOf(rnd, 0, "a", "b"); got != "b" {
			t.Fatalf("oneOf with p=0 returned %q", got)
		}
	}

	// A fair coin should land on both sides over enough flips.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[oneOf(rnd, 0.5, "a", "b")] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("oneOf with p=0.5 never returned both alternatives: %v", seen)
	}
}

func TestPickOne(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))

	if got := pickOne(rnd, []string{"only"}); got != "only" {
		t.Fatalf("pickOne single element = %q", got)
	}

	valid := map[string]bool{"x": true, "y": true, "z": true}
	for i := 0; i < 500; i++ {
		if got := pickOne(rnd, []string{"x", "y", "z"}); !valid[got] {
			t.Fatalf("pickOne returned out-of-set value %q", got)
		}
	}
}
