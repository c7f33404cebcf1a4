package volume

import (
	"math"
	"strconv"
)

// Volume is the training volume of one or more sets: weight multiplied by
// repetitions. It is never negative.
type Volume struct {
	value float64
}

// New clamps negative input to zero, so construction never fails.
func New(v float64) Volume {
	if v < 0 {
		v = 0
	}
	return Volume{value: v}
}

func (v Volume) Value() float64 {
	return v.value
}

// Add sums two volumes. The sum of two non-negative values is non-negative,
// so the result needs no clamping.
func (v Volume) Add(other Volume) Volume {
	return Volume{value: v.value + other.value}
}

func (v Volume) GreaterThan(other Volume) bool {
	return v.value > other.value
}

func (v Volume) LessThan(other Volume) bool {
	return v.value < other.value
}

// String renders the volume rounded to the nearest whole unit.
func (v Volume) String() string {
	return strconv.FormatFloat(math.Round(v.value), 'f', 0, 64)
}
