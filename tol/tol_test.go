package tol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCloseTo(t *testing.T) {
	assert.True(t, IsCloseTo(1, 1))
	assert.True(t, IsCloseTo(1-1e-6, 1))
	assert.True(t, IsCloseTo(1+1e-6, 1))
	assert.False(t, IsCloseTo(1-2.1e-6, 1))
	assert.False(t, IsCloseTo(1+2.1e-6, 1))

	// around zero only the absolute term is left
	assert.True(t, IsCloseTo(1e-9, 0))
	assert.False(t, IsCloseTo(1e-7, 0))
}

func TestIsCloseToWithin(t *testing.T) {
	assert.True(t, IsCloseToWithin(99, 100, 0.01, 0))
	assert.False(t, IsCloseToWithin(98.9, 100, 0.01, 0))
	assert.True(t, IsCloseToWithin(98.9, 100, 0, 1.2))
}

func TestAreClose(t *testing.T) {
	assert.True(t, AreClose(1, 1-1e-6))
	assert.False(t, AreClose(1, 1-2.1e-6))
	assert.True(t, AreClose(0, 0))

	// symmetric in its two arguments
	assert.Equal(t, AreClose(3, 3.0000001), AreClose(3.0000001, 3))
	assert.Equal(t, AreClose(100, 99), AreClose(99, 100))
}
