package volume_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okorolev/liftlog_backend/internal/domain/volume"
)

func TestNew_ClampsNegativeToZero(t *testing.T) {
	assert.Equal(t, 0.0, volume.New(-5).Value())
	assert.Equal(t, 0.0, volume.New(0).Value())
	assert.Equal(t, 42.5, volume.New(42.5).Value())
}

func TestAdd(t *testing.T) {
	a := volume.New(120)
	b := volume.New(80.5)

	assert.Equal(t, 200.5, a.Add(b).Value())
	assert.Equal(t, 120.0, a.Value(), "operands must stay unchanged")
}

func TestOrdering(t *testing.T) {
	small := volume.New(100)
	big := volume.New(250)

	assert.True(t, big.GreaterThan(small))
	assert.False(t, small.GreaterThan(big))
	assert.True(t, small.LessThan(big))
	assert.False(t, big.LessThan(small))
	assert.False(t, big.GreaterThan(big))
}

func TestString_RoundsToWholeUnits(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{512.4, "512"},
		{512.5, "513"},
		{0.6, "1"},
		{1000, "1000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, volume.New(tc.value).String())
	}
}
