package model

import (
	"cmp"
	"slices"
)

// Label is the capability a class label type must provide: equality with ==,
// a total order through cmp.Compare and copy-by-value. Any integer, float or
// string type, including named types derived from them, satisfies it.
// Float labels must not be NaN.
type Label interface {
	cmp.Ordered
}

// UniqueLabels returns the distinct labels of y in ascending order.
// y is not modified.
func UniqueLabels[L Label](y []L) []L {
	labels := slices.Clone(y)
	slices.Sort(labels)
	return slices.Compact(labels)
}
