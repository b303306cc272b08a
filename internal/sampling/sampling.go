// Package sampling selects items uniformly at random without replacement.
// The Sampler is injected so tests can pin the selection.
package sampling

import "math/rand/v2"

// Sampler returns k distinct indices from [0, n). Callers pass k <= n.
type Sampler interface {
	Sample(n, k int) []int
}

// Func adapts a plain function to Sampler.
type Func func(n, k int) []int

func (f Func) Sample(n, k int) []int { return f(n, k) }

// Random samples with math/rand/v2's global source, which is safe for
// concurrent use.
type Random struct{}

// Sample runs a partial Fisher-Yates shuffle over the index range.
func (Random) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rand.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// Pick returns up to k items of src chosen by s. src is not modified.
func Pick[T any](s Sampler, src []T, k int) []T {
	if k > len(src) {
		k = len(src)
	}
	if k <= 0 {
		return []T{}
	}
	out := make([]T, 0, k)
	for _, i := range s.Sample(len(src), k) {
		out = append(out, src[i])
	}
	return out
}
