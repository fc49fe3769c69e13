package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1+Epsilon/2))
	assert.False(t, Equal(1, 1+2*Epsilon))
	assert.True(t, NearZero(Epsilon/2))
	assert.True(t, NearZero(-Epsilon/2))
	assert.False(t, NearZero(2*Epsilon))
}
