package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"both zero", 0, 0, 0},
		{"grew from nothing", 5, 0, 100},
		{"halved", 5, 10, -50},
		{"doubled", 10, 5, 100},
		{"unchanged", 7, 7, 0},
		{"dropped to zero", 0, 4, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PercentChange(tt.current, tt.previous), 1e-9)
		})
	}
}

func TestBounceRatePercent(t *testing.T) {
	assert.Equal(t, float64(0), BounceRatePercent(0, 0))
	assert.Equal(t, float64(0), BounceRatePercent(5, 0))
	assert.InDelta(t, 50, BounceRatePercent(5, 10), 1e-9)
	assert.InDelta(t, 100, BounceRatePercent(10, 10), 1e-9)
}

func TestNewMetricComparison(t *testing.T) {
	c := NewMetricComparison(10, 5)
	assert.Equal(t, float64(10), c.Current)
	assert.Equal(t, float64(5), c.Previous)
	assert.InDelta(t, 100, c.PercentChange, 1e-9)
}
