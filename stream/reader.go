package stream

import (
	"fmt"
	"math"

	"github.com/arloliu/bitstream/crc"
	"github.com/arloliu/bitstream/errs"
)

// Reader is the symmetric inverse of Writer: an immutable byte sequence
// plus a bit cursor. A Reader never mutates the bytes it was built from, so
// the same byte slice may be handed to multiple Readers concurrently.
type Reader struct {
	noCopyGuard noCopy

	bytes       []byte
	endBitIndex uint64
	currentBit  uint64
}

// NewReader builds a Reader over data, which must be at least 4 bytes (the
// header). The header's little-endian uint32 becomes endBitIndex; the
// cursor starts at bit 32.
func NewReader(data []byte) (*Reader, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: header requires 4 bytes, got %d", errs.ErrTooShort, len(data))
	}

	return &Reader{
		bytes:       data,
		endBitIndex: uint64(headerEngine.Uint32(data[0:4])),
		currentBit:  headerBits,
	}, nil
}

// NewCRCValidatedReader builds a Reader over data, which must carry a
// trailing 4-byte CRC-32 (i.e. be the output of Writer.Pack(true)). It fails
// with errs.ErrIncorrectChecksum if the trailer doesn't match the computed
// CRC-32 of the preceding bytes; otherwise it behaves like NewReader over
// data with the trailer stripped.
func NewCRCValidatedReader(data []byte) (*Reader, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("%w: CRC-validated stream requires 8 bytes, got %d", errs.ErrTooShort, len(data))
	}

	payload := data[:len(data)-4]
	want := headerEngine.Uint32(data[len(data)-4:])
	got := crc.Checksum(payload)
	if got != want {
		return nil, fmt.Errorf("%w: computed %08x, trailer has %08x", errs.ErrIncorrectChecksum, got, want)
	}

	return NewReader(payload)
}

// EndBitIndex returns the total number of bits in the stream, including the
// 32-bit header, as declared by the stream's header.
func (r *Reader) EndBitIndex() uint64 {
	return r.endBitIndex
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() uint64 {
	return r.endBitIndex - r.currentBit
}

// ReadBit reads a single bit and advances the cursor by 1.
func (r *Reader) ReadBit() (uint8, error) {
	if r.currentBit >= r.endBitIndex {
		return 0, fmt.Errorf("%w: no bits remain", errs.ErrTooShort)
	}

	byteIdx := r.currentBit / 8
	bitOfs := r.currentBit % 8
	bit := (r.bytes[byteIdx] >> bitOfs) & 1
	r.currentBit++

	return bit, nil
}

// ReadBool reads a single bit as a boolean.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadBit()
	return b != 0, err
}

// ReadFixed reads widthBits bits LSB-first into T. widthBits must be in
// (0, bit-width(T)]; violating this is a caller bug and panics. Running out
// of bits fails with errs.ErrTooShort and leaves the cursor unchanged (the
// read either fully succeeds or doesn't advance at all).
func ReadFixed[T Value](r *Reader, widthBits int) (T, error) {
	var zero T

	maxWidth := bitWidthOf(zero)
	if widthBits <= 0 || widthBits > maxWidth {
		panic(fmt.Sprintf("stream: ReadFixed: width %d out of range (0,%d] for %T", widthBits, maxWidth, zero))
	}

	if r.Remaining() < uint64(widthBits) {
		return zero, fmt.Errorf("%w: need %d bits, have %d", errs.ErrTooShort, widthBits, r.Remaining())
	}

	var uval uint64
	bitsRead := 0
	bitsLeft := widthBits

	for bitsLeft > 0 {
		byteIdx := r.currentBit / 8
		bitOfs := int(r.currentBit % 8)
		free := 8 - bitOfs
		n := free
		if bitsLeft < n {
			n = bitsLeft
		}

		mask := byte(1<<n - 1)
		chunk := (r.bytes[byteIdx] >> bitOfs) & mask
		uval |= uint64(chunk) << bitsRead

		r.currentBit += uint64(n)
		bitsRead += n
		bitsLeft -= n
	}

	return T(uval), nil
}

// ReadFull reads the whole-width bit pattern of T (its two's complement
// representation for signed integers).
func ReadFull[T Value](r *Reader) (T, error) {
	var zero T
	return ReadFixed[T](r, bitWidthOf(zero))
}

// ReadFloat32 reads a 32-bit IEEE-754 bit pattern and reinterprets it as a float32.
func (r *Reader) ReadFloat32() (float32, error) {
	bits, err := ReadFull[uint32](r)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(bits), nil
}

// ReadFloat64 reads a 64-bit IEEE-754 bit pattern and reinterprets it as a float64.
func (r *Reader) ReadFloat64() (float64, error) {
	bits, err := ReadFull[uint64](r)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}

// ReadBytes reads a length field sized from maxCountHint (which must match
// what the writer used), aligns to the next byte boundary, and returns a
// copy of the following length bytes.
func (r *Reader) ReadBytes(maxCountHint uint32) ([]byte, error) {
	widthBits := lengthWidth(maxCountHint)

	length, err := ReadFixed[uint32](r, widthBits)
	if err != nil {
		return nil, err
	}

	r.Align()

	need := uint64(length) * 8
	if r.Remaining() < need {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrTooShort, length, r.Remaining()/8)
	}

	byteIdx := r.currentBit / 8
	out := make([]byte, length)
	copy(out, r.bytes[byteIdx:byteIdx+uint64(length)])
	r.currentBit += need

	return out, nil
}

// ReadString reads a length-prefixed byte sequence via ReadBytes and
// interprets it as UTF-8. Invalid UTF-8 is passed through as Go's string
// conversion does (no replacement or validation); that's a host concern,
// not a core codec error.
func (r *Reader) ReadString(maxCountHint uint32) (string, error) {
	b, err := r.ReadBytes(maxCountHint)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Align advances the cursor to the next byte boundary.
func (r *Reader) Align() {
	r.currentBit = (r.currentBit + 7) &^ 7
}
