package gocursor

import "github.com/samber/lo"

// Row limits applied by Query when loading a snapshot.
const (
	NoLimit      = -1
	MaxLimit     = 1000
	DefaultLimit = 100
)

// IsNormalizedLimitMax clamps limit into [1, maxLimit]. A non-positive limit
// falls back to DefaultLimit, itself capped by maxLimit. The boolean is true
// when limit came back unchanged.
func IsNormalizedLimitMax(limit int, maxLimit int) (int, bool) {
	if limit <= 0 {
		return min(DefaultLimit, maxLimit), false
	}

	ret := lo.Clamp(limit, 1, maxLimit)

	return ret, ret == limit
}

func NormalizeLimitMax(limit int, maxLimit int) int {
	ret, _ := IsNormalizedLimitMax(limit, maxLimit)
	return ret
}

func NormalizeLimit(limit int) int {
	return NormalizeLimitMax(limit, MaxLimit)
}
