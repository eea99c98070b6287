package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONFloat(t *testing.T) {
	assert.Equal(t, "NaN", jsonFloat(math.NaN()))
	assert.Equal(t, "Infinity", jsonFloat(float32(math.Inf(1))))
	assert.Equal(t, "-Infinity", jsonFloat(math.Inf(-1)))
	assert.Equal(t, float32(1.5), jsonFloat(float32(1.5)))
	assert.Equal(t, 2.25, jsonFloat(2.25))
}

func TestJSONInteger(t *testing.T) {
	assert.Equal(t, int64(-MaxSafeInteger), jsonInteger(int64(-MaxSafeInteger)))
	assert.Equal(t, "-9007199254740992", jsonInteger(int64(-MaxSafeInteger-1)))
	assert.Equal(t, uint64(42), jsonInteger(uint64(42)))
}
