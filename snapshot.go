package gocursor

import (
	"iter"
	"slices"
)

// Snapshot returns an ordered copy of src that shares no storage with it.
// The copy is shallow: pointers and reference types inside the elements are
// copied as-is. The result is never nil.
func Snapshot[T any](src []T) []T {
	if len(src) == 0 {
		return make([]T, 0)
	}

	return slices.Clone(src)
}

// SnapshotSeq drains seq into a new slice. A nil seq yields an empty snapshot.
func SnapshotSeq[T any](seq iter.Seq[T]) []T {
	if seq == nil {
		return make([]T, 0)
	}

	ret := slices.Collect(seq)
	if ret == nil {
		return make([]T, 0)
	}

	return ret
}
