// stand for bytes helper
package bx

import (
	"encoding/binary"
	"math"
)

// LE is the byte order of every column buffer. It matches the in-memory layout arrow
// expects, so encoded buffers can be handed to arrow arrays without conversion.
var LE = binary.LittleEndian

// --- LE: read ---
func U32(b []byte) uint32 { return LE.Uint32(b) }
func U64(b []byte) uint64 { return LE.Uint64(b) }
func I32(b []byte) int32  { return int32(U32(b)) }
func I64(b []byte) int64  { return int64(U64(b)) }
func F64(b []byte) float64 {
	return math.Float64frombits(U64(b))
}

// --- LE: write ---
func PutU32(b []byte, v uint32) { LE.PutUint32(b, v) }
func PutU64(b []byte, v uint64) { LE.PutUint64(b, v) }

// --- LE: At (offset) ---
func U32At(b []byte, off int) uint32  { return U32(b[off:]) }
func F64At(b []byte, off int) float64 { return F64(b[off:]) }
