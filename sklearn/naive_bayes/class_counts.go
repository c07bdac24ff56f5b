package naive_bayes

import (
	"cmp"
	"math"
	"slices"

	"github.com/YuminosukeSato/scigo-nb/core/model"
)

// ClassCounts holds per-class sample counts in ascending class order.
// Values are immutable; Merge returns a new ClassCounts.
type ClassCounts[L model.Label] struct {
	classes []L
	counts  []int
}

// CountClasses counts the occurrences of every label in y.
func CountClasses[L model.Label](y []L) *ClassCounts[L] {
	classes := model.UniqueLabels(y)
	counts := make([]int, len(classes))
	for _, label := range y {
		k, _ := slices.BinarySearch(classes, label)
		counts[k]++
	}
	return &ClassCounts[L]{classes: classes, counts: counts}
}

// Len returns the number of classes.
func (c *ClassCounts[L]) Len() int {
	return len(c.classes)
}

// Classes returns a copy of the class labels.
func (c *ClassCounts[L]) Classes() []L {
	return slices.Clone(c.classes)
}

// Counts returns a copy of the counts, aligned with Classes.
func (c *ClassCounts[L]) Counts() []int {
	return slices.Clone(c.counts)
}

// Index returns the position of label in the class order.
func (c *ClassCounts[L]) Index(label L) (int, bool) {
	return slices.BinarySearch(c.classes, label)
}

// Count returns the number of samples seen for label, or 0.
func (c *ClassCounts[L]) Count(label L) int {
	if k, ok := c.Index(label); ok {
		return c.counts[k]
	}
	return 0
}

// Total returns the number of samples across all classes.
func (c *ClassCounts[L]) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Merge returns the sum of c and other. Classes present in only one side are kept.
func (c *ClassCounts[L]) Merge(other *ClassCounts[L]) *ClassCounts[L] {
	merged := &ClassCounts[L]{
		classes: make([]L, 0, len(c.classes)+len(other.classes)),
		counts:  make([]int, 0, len(c.classes)+len(other.classes)),
	}
	i, j := 0, 0
	for i < len(c.classes) || j < len(other.classes) {
		switch {
		case j == len(other.classes) || (i < len(c.classes) && cmp.Less(c.classes[i], other.classes[j])):
			merged.classes = append(merged.classes, c.classes[i])
			merged.counts = append(merged.counts, c.counts[i])
			i++
		case i == len(c.classes) || cmp.Less(other.classes[j], c.classes[i]):
			merged.classes = append(merged.classes, other.classes[j])
			merged.counts = append(merged.counts, other.counts[j])
			j++
		default:
			merged.classes = append(merged.classes, c.classes[i])
			merged.counts = append(merged.counts, c.counts[i]+other.counts[j])
			i++
			j++
		}
	}
	return merged
}

// LogPriors returns log(count/total) per class, aligned with Classes.
// It returns nil when no sample has been counted.
func (c *ClassCounts[L]) LogPriors() []float64 {
	total := c.Total()
	if total == 0 {
		return nil
	}
	logTotal := math.Log(float64(total))
	priors := make([]float64, len(c.counts))
	for k, n := range c.counts {
		priors[k] = math.Log(float64(n)) - logTotal
	}
	return priors
}
