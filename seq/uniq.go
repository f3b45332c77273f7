// File: iniconf/seq/uniq.go

// Package seq provides small adapters over iter.Seq.
package seq

import "iter"

// Uniq filters src so each distinct element is yielded once, at its first
// occurrence. The result stays lazy: src is consumed only as far as the
// consumer pulls, and the seen-set grows with the number of distinct
// elements pulled so far.
func Uniq[T comparable](src iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range src {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// UniqSlice is Uniq over a slice, collecting the result eagerly.
func UniqSlice[T comparable](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, 0, len(in))
	seen := make(map[T]struct{}, len(in))
	for _, v := range in {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
