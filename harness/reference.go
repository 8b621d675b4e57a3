package harness

//go:generate go run ../internal/refgen/main.go -out reference_tables.go

// The reference tables cover a 16-wide cube for encoding and the first 4096
// codes for decoding. Both ranges fit every (dims, width) combination, so one
// set of tables serves all of them.
const (
	referenceEdge  = 16
	referenceCodes = 4096
)

func reference2DCode(x, y int) uint64 {
	return uint64(reference2DEncode[y+referenceEdge*x])
}

func reference3DCode(x, y, z int) uint64 {
	return uint64(reference3DEncode[z+referenceEdge*y+referenceEdge*referenceEdge*x])
}
