package bim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gobim/pkg/geometry"
)

// triangleBuffer builds a buffer with one triangle per id, offset along
// the x axis so every subset has distinct bounds.
func triangleBuffer(ids ...int32) *GeometryBuffer {
	buffer := &GeometryBuffer{}
	for _, id := range ids {
		base := uint32(len(buffer.Vertices))
		x := float64(id)
		buffer.Vertices = append(buffer.Vertices,
			geometry.NewVector3(x, 0, 0),
			geometry.NewVector3(x+1, 0, 0),
			geometry.NewVector3(x, 1, 0),
		)
		buffer.IDs = append(buffer.IDs, id, id, id)
		buffer.Indices = append(buffer.Indices, base, base+1, base+2)
	}
	return buffer
}

func TestDistinctIDsOrderAndFiltering(t *testing.T) {
	buffer := triangleBuffer(5, -1, 3, 5, 0, 3, 9)

	ids := buffer.DistinctIDs()
	assert.Equal(t, []int32{5, 3, 9}, ids)
}

func TestValidateMissingIDAttribute(t *testing.T) {
	buffer := triangleBuffer(1)
	buffer.IDs = nil

	assert.Error(t, buffer.Validate())
}

func TestValidateIndexOutOfRange(t *testing.T) {
	buffer := triangleBuffer(1)
	buffer.Indices[0] = 999

	assert.Error(t, buffer.Validate())
}

func TestSubsetBoundsAndTriangles(t *testing.T) {
	buffer := triangleBuffer(2, 4)

	subset := buffer.Subset(4)
	assert.Equal(t, int32(4), subset.ID())
	assert.Equal(t, 1, subset.TriangleCount())

	bounds, ok := subset.Bounds()
	require.True(t, ok)
	assert.Equal(t, geometry.NewVector3(4, 0, 0), bounds.Min)
	assert.Equal(t, geometry.NewVector3(5, 1, 0), bounds.Max)
}

func TestSubsetOfUnknownIDIsEmpty(t *testing.T) {
	buffer := triangleBuffer(2)

	subset := buffer.Subset(77)
	assert.Equal(t, 0, subset.TriangleCount())
	_, ok := subset.Bounds()
	assert.False(t, ok)
}

func TestSubsetReleaseIsIdempotent(t *testing.T) {
	buffer := triangleBuffer(2)
	subset := buffer.Subset(2)

	subset.Release()
	subset.Release()

	assert.True(t, subset.Released())
	_, ok := subset.Bounds()
	assert.False(t, ok)
	assert.Empty(t, subset.Vertices())
}
