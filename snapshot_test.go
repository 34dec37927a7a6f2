package gocursor

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Snapshot(t *testing.T) {
	tests := []struct {
		name  string
		input []string
	}{
		{"nil", nil},
		{"empty", []string{}},
		{"values", []string{"b", "a", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Snapshot(tt.input)

			require.NotNil(t, got)
			require.Len(t, got, len(tt.input))
			if len(tt.input) > 0 {
				require.Equal(t, tt.input, got)
			}
		})
	}
}

func Test_Snapshot_DoesNotAlias(t *testing.T) {
	src := []int{1, 2, 3}
	dst := Snapshot(src)

	src[0] = 10
	dst[1] = 20

	require.Equal(t, []int{10, 2, 3}, src)
	require.Equal(t, []int{1, 20, 3}, dst)
}

func Test_Snapshot_IsShallow(t *testing.T) {
	type item struct{ Name string }

	shared := &item{Name: "before"}
	dst := Snapshot([]*item{shared})
	shared.Name = "after"

	require.Same(t, shared, dst[0])
	require.Equal(t, "after", dst[0].Name)
}

func Test_SnapshotSeq(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, SnapshotSeq(slices.Values([]int{1, 2, 3})))
	require.Equal(t, []int{}, SnapshotSeq(slices.Values([]int(nil))))
	require.Equal(t, []int{}, SnapshotSeq[int](nil))

	keys := SnapshotSeq(maps.Keys(map[string]int{"a": 1, "b": 2}))
	slices.Sort(keys)
	require.Equal(t, []string{"a", "b"}, keys)
}
