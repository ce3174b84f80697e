package geom

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// BinarySize is the encoded size of a rectangle: four 32-bit fields.
const BinarySize = 16

var (
	ErrShortBuffer = errors.New("geom: short buffer")
	// ErrRange is returned when a field does not survive narrowing to 32 bits.
	ErrRange = errors.New("geom: value out of 32-bit range")
)

// AppendBinary appends the four fields in declared order, little endian.
// Integer rectangles are written as int32 and floating-point rectangles as
// IEEE-754 float32, the native layouts of IntRect and FloatRect. Wider
// element types are accepted only when every field narrows exactly;
// otherwise ErrRange is returned and b is left unchanged.
func (r Rect[T]) AppendBinary(b []byte) ([]byte, error) {
	fields := [4]T{r.Left, r.Top, r.Width, r.Height}
	for i, v := range fields {
		if !fits32(v) {
			return b, fmt.Errorf("geom: encode rect field %d (%v): %w", i, v, ErrRange)
		}
	}
	for _, v := range fields {
		b = binary.LittleEndian.AppendUint32(b, encodeScalar(v))
	}
	return b, nil
}

func (r Rect[T]) MarshalBinary() ([]byte, error) {
	return r.AppendBinary(make([]byte, 0, BinarySize))
}

func (r *Rect[T]) UnmarshalBinary(data []byte) error {
	if len(data) < BinarySize {
		return fmt.Errorf("geom: decode rect: %w: got %d bytes, want %d", ErrShortBuffer, len(data), BinarySize)
	}
	var fields [4]T
	for i := range fields {
		fields[i] = decodeScalar[T](binary.LittleEndian.Uint32(data[i*4:]))
	}
	*r = Rect[T]{Left: fields[0], Top: fields[1], Width: fields[2], Height: fields[3]}
	return nil
}

func fits32[T Scalar](v T) bool {
	if isFloat[T]() {
		return v != v || T(float32(v)) == v
	}
	return T(int32(v)) == v
}

func encodeScalar[T Scalar](v T) uint32 {
	if isFloat[T]() {
		return math.Float32bits(float32(v))
	}
	return uint32(int32(v))
}

func decodeScalar[T Scalar](u uint32) T {
	if isFloat[T]() {
		return T(math.Float32frombits(u))
	}
	return T(int32(u))
}
