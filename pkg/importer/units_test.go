package importer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMlToOz(t *testing.T) {
	assert.InDelta(t, 4.1, MlToOz(120), 0.001)
	assert.InDelta(t, 1.0, MlToOz(29.5735), 0.001)
	assert.InDelta(t, 0.0, MlToOz(0), 0.001)
}

func TestOzToMl(t *testing.T) {
	assert.InDelta(t, 118, OzToMl(4), 0.001)
	assert.InDelta(t, 30, OzToMl(1), 0.001)
	assert.InDelta(t, 120, OzToMl(4.06), 0.001)
}

func TestRoundTripTolerance(t *testing.T) {
	// Conversions round in opposite directions, so round-trips drift but
	// stay inside +-1 ml / +-0.02 oz.
	for ml := 1.0; ml <= 500; ml += 0.5 {
		back := OzToMl(MlToOz(ml))
		assert.LessOrEqual(t, math.Abs(back-ml), 1.5, "ml=%v back=%v", ml, back)
	}
	for oz := 0.5; oz <= 16; oz += 0.1 {
		back := MlToOz(OzToMl(oz))
		assert.LessOrEqual(t, math.Abs(back-oz), 0.02, "oz=%v back=%v", oz, back)
	}
}
