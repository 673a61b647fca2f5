package dtype

import "github.com/tuannm99/novatables/internal/alias/bx"

// Decode copies little-endian encoded elements out of b. The caller is responsible
// for b holding elements of type T.
func Decode[T Native](b []byte) []T {
	dt := Of[T]()
	size := dt.Size()
	out := make([]T, len(b)/size)
	for i := range out {
		off := i * size
		switch dt {
		case Int8:
			out[i] = T(int8(b[off]))
		case Uint8:
			out[i] = T(b[off])
		case Int32:
			out[i] = T(bx.I32(b[off:]))
		case Uint32:
			out[i] = T(bx.U32At(b, off))
		case Int64:
			out[i] = T(bx.I64(b[off:]))
		case Float64:
			out[i] = T(bx.F64At(b, off))
		}
	}
	return out
}
