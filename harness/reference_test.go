package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceTables(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint64(0), reference3DCode(0, 0, 0))
	assert.Equal(uint64(1), reference3DCode(1, 0, 0))
	assert.Equal(uint64(2), reference3DCode(0, 1, 0))
	assert.Equal(uint64(4), reference3DCode(0, 0, 1))
	assert.Equal(uint64(0xFFF), reference3DCode(15, 15, 15))
	assert.Equal(uint64(1), reference2DCode(1, 0))
	assert.Equal(uint64(2), reference2DCode(0, 1))
	assert.Equal(uint64(0xFF), reference2DCode(15, 15))

	assert.Equal([2]uint8{63, 63}, reference2DDecode[4095])
	assert.Equal([3]uint8{15, 15, 15}, reference3DDecode[4095])
}

func TestReferenceTablesInvert(t *testing.T) {
	for x := range referenceEdge {
		for y := range referenceEdge {
			assert.Equal(t, [2]uint8{uint8(x), uint8(y)}, reference2DDecode[reference2DCode(x, y)])
			for z := range referenceEdge {
				assert.Equal(t, [3]uint8{uint8(x), uint8(y), uint8(z)}, reference3DDecode[reference3DCode(x, y, z)])
			}
		}
	}
}
