package sampling_test

import (
	"testing"

	"github.com/remaimber-it/quizengine/internal/sampling"
)

func TestRandom_DistinctInRange(t *testing.T) {
	var s sampling.Random
	for trial := 0; trial < 200; trial++ {
		got := s.Sample(20, 7)
		if len(got) != 7 {
			t.Fatalf("expected 7 indices, got %d", len(got))
		}
		seen := make(map[int]bool)
		for _, i := range got {
			if i < 0 || i >= 20 {
				t.Fatalf("index %d out of range", i)
			}
			if seen[i] {
				t.Fatalf("duplicate index %d in %v", i, got)
			}
			seen[i] = true
		}
	}
}

func TestRandom_ClampsK(t *testing.T) {
	var s sampling.Random
	if got := s.Sample(3, 10); len(got) != 3 {
		t.Errorf("expected 3 indices, got %d", len(got))
	}
	if got := s.Sample(3, 0); len(got) != 0 {
		t.Errorf("expected no indices, got %v", got)
	}
}

// Every index should be picked at least once over enough trials.
func TestRandom_CoversPool(t *testing.T) {
	var s sampling.Random
	hits := make([]int, 10)
	for trial := 0; trial < 500; trial++ {
		for _, i := range s.Sample(10, 2) {
			hits[i]++
		}
	}
	for i, h := range hits {
		if h == 0 {
			t.Errorf("index %d never sampled", i)
		}
	}
}

func TestPick_UsesSampler(t *testing.T) {
	last := sampling.Func(func(n, k int) []int {
		out := make([]int, 0, k)
		for i := n - 1; i >= n-k; i-- {
			out = append(out, i)
		}
		return out
	})

	got := sampling.Pick(last, []string{"a", "b", "c", "d"}, 2)
	if len(got) != 2 || got[0] != "d" || got[1] != "c" {
		t.Errorf("expected [d c], got %v", got)
	}

	if got := sampling.Pick(last, []string{"a"}, 3); len(got) != 1 || got[0] != "a" {
		t.Errorf("expected k to clamp to the pool, got %v", got)
	}
	if got := sampling.Pick(last, []string{}, 3); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}
