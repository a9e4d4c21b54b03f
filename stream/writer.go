package stream

import (
	"fmt"
	"math"

	"github.com/arloliu/bitstream/crc"
	"github.com/arloliu/bitstream/endian"
	"github.com/arloliu/bitstream/internal/pool"
)

// headerBits is the width of the reserved bit-length prefix.
const headerBits = 32

// headerEngine is the byte order used to encode the 4-byte header and
// (when present) the 4-byte CRC-32 trailer. The wire format is fixed at
// little-endian; this stays an endian.EndianEngine rather than a direct
// encoding/binary call so Writer and Reader share one definition of "the"
// header byte order.
var headerEngine = endian.GetLittleEndianEngine()

// DefaultMaxCount is the max-count hint used by AppendBytes/AppendString
// (and their Reader counterparts) when the caller has no tighter bound in
// mind. It yields a 30-bit length field (bit-width(2^29) per §4.2's
// formula), matching spec.md's default.
const DefaultMaxCount = 1 << 29

// noCopy lets go vet's copylocks check flag accidental Writer/Reader copies,
// mirroring the source's "non-copyable" stream marker.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Writer accumulates bits into a growable byte buffer. The zero value is not
// usable; construct one with New.
type Writer struct {
	noCopyGuard noCopy

	buf         *pool.ByteBuffer
	endBitIndex uint64
	finished    bool
}

// New returns a Writer in its initial state: 4 reserved zero header bytes
// and an end-of-stream cursor of 32 bits. reserveHint preallocates capacity
// for roughly reserveHint additional payload bytes plus a 4-byte CRC
// trailer; it does not change any observable state.
func New(reserveHint int) *Writer {
	w := &Writer{}
	w.reinit(reserveHint)

	return w
}

func (w *Writer) reinit(reserveHint int) {
	if reserveHint < 0 {
		reserveHint = 0
	}

	w.buf = pool.GetFrameBuffer()
	w.buf.Grow(4 + reserveHint + 4)
	w.buf.ExtendOrGrow(4)
	w.endBitIndex = headerBits
	w.finished = false
}

// Reset returns the Writer to its initial state, reusing the underlying
// buffer's capacity where possible.
func (w *Writer) Reset(reserveHint int) {
	w.mustBeActive()
	w.buf.Reset()
	w.buf.Grow(reserveHint + 4)
	w.buf.ExtendOrGrow(4)
	w.endBitIndex = headerBits
}

// Finish releases the Writer's backing buffer back to the pool. The Writer
// must not be used after Finish; further Append*, Reset and Pack calls
// panic, and a second Finish is a no-op.
func (w *Writer) Finish() {
	if w.finished {
		return
	}

	pool.PutFrameBuffer(w.buf)
	w.buf = nil
	w.finished = true
}

func (w *Writer) mustBeActive() {
	if w.finished {
		panic("stream: Writer used after Finish")
	}
}

// EndBitIndex returns the current number of bits written, including the
// 32-bit header.
func (w *Writer) EndBitIndex() uint64 {
	return w.endBitIndex
}

// AppendBit appends a single bit (0 or 1 in the low bit of b).
func (w *Writer) AppendBit(b uint8) {
	w.mustBeActive()

	if w.endBitIndex%8 == 0 {
		w.buf.ExtendOrGrow(1)
	}

	byteIdx := w.endBitIndex / 8
	bitOfs := w.endBitIndex % 8
	if b&1 != 0 {
		w.buf.B[byteIdx] |= 1 << bitOfs
	}
	w.endBitIndex++
}

// AppendBool appends one bit: 1 if x is true, 0 otherwise.
func (w *Writer) AppendBool(x bool) {
	if x {
		w.AppendBit(1)
	} else {
		w.AppendBit(0)
	}
}

// AppendFixed appends exactly widthBits bits of value, LSB-first. widthBits
// must be in (0, bit-width(T)]; violating this is a caller bug and panics.
func AppendFixed[T Value](w *Writer, value T, widthBits int) {
	w.mustBeActive()

	maxWidth := bitWidthOf(value)
	if widthBits <= 0 || widthBits > maxWidth {
		panic(fmt.Sprintf("stream: AppendFixed: width %d out of range (0,%d] for %T", widthBits, maxWidth, value))
	}

	uval := uint64(value)
	bitsLeft := widthBits

	for bitsLeft > 0 {
		if w.endBitIndex%8 == 0 {
			w.buf.ExtendOrGrow(1)
		}

		byteIdx := w.endBitIndex / 8
		bitOfs := int(w.endBitIndex % 8)
		free := 8 - bitOfs
		n := free
		if bitsLeft < n {
			n = bitsLeft
		}

		mask := uint64(1)<<n - 1
		w.buf.B[byteIdx] |= byte((uval & mask) << bitOfs)

		uval >>= n
		w.endBitIndex += uint64(n)
		bitsLeft -= n
	}
}

// AppendFull appends the whole-width bit pattern of value (its two's
// complement representation for signed integers).
func AppendFull[T Value](w *Writer, value T) {
	AppendFixed(w, value, bitWidthOf(value))
}

// AppendFloat32 appends the 32-bit IEEE-754 bit pattern of x.
func (w *Writer) AppendFloat32(x float32) {
	AppendFull(w, math.Float32bits(x))
}

// AppendFloat64 appends the 64-bit IEEE-754 bit pattern of x.
func (w *Writer) AppendFloat64(x float64) {
	AppendFull(w, math.Float64bits(x))
}

// lengthWidth returns the bit width of a length field hinted by maxCount,
// per spec.md §4.2: bit-width(uint32) - leading-zero-count(maxCount), which
// equals ceil(log2(maxCount+1)) for every maxCount >= 1 (powers of two
// included, e.g. 16 -> 5).
func lengthWidth(maxCount uint32) int {
	return LengthWidth(maxCount)
}

// LengthWidth returns the bit width of a length/variant field hinted by
// maxCount, per spec §4.2/§4.5: bit-width(uint32) - leading-zero-count(maxCount).
// Exported so codec.Enum and array codecs can size their own length/tag
// fields with the exact formula Writer.AppendBytes uses, without duplicating
// it. The result is the bit length of maxCount, i.e. ceil(log2(maxCount+1)),
// so a count equal to maxCount always fits; a maxCount of 0 is treated as 1.
func LengthWidth(maxCount uint32) int {
	if maxCount == 0 {
		maxCount = 1
	}

	n := 0
	for m := maxCount; m != 0; m >>= 1 {
		n++
	}

	return n
}

// AppendBytes encodes len(data) as an unsigned length field sized from
// maxCountHint, aligns to the next byte boundary, then copies data onto the
// stream. The source does not check len(data) against maxCountHint; an
// oversized count is truncated into the declared length field rather than
// rejected (see DESIGN.md's Open Question note).
func (w *Writer) AppendBytes(data []byte, maxCountHint uint32) {
	w.mustBeActive()

	widthBits := lengthWidth(maxCountHint)
	AppendFixed(w, uint64(len(data)), widthBits)
	w.Align()
	w.buf.MustWrite(data)
	w.endBitIndex += uint64(len(data)) * 8
}

// AppendString encodes the UTF-8 bytes of s via AppendBytes.
func (w *Writer) AppendString(s string, maxCountHint uint32) {
	w.AppendBytes([]byte(s), maxCountHint)
}

// Align advances the cursor to the next byte boundary, skipping any
// trailing unset bits of the current byte.
func (w *Writer) Align() {
	w.endBitIndex = uint64(w.buf.Len()) * 8
}

// Pack finalizes the stream: it writes the final bit count into the 4-byte
// header, optionally appends a CRC-32 trailer, and returns an independent
// copy of the resulting bytes. The Writer remains usable afterward (e.g.
// for Reset) but its internal buffer must not be assumed to equal the
// returned slice.
func (w *Writer) Pack(withCRC bool) []byte {
	w.mustBeActive()

	if w.endBitIndex > math.MaxUint32 {
		panic("stream: Pack: endBitIndex overflows uint32")
	}

	headerEngine.PutUint32(w.buf.B[0:4], uint32(w.endBitIndex))

	if withCRC {
		sum := crc.Checksum(w.buf.B)
		trailer := headerEngine.AppendUint32(nil, sum)
		w.buf.MustWrite(trailer)
	}

	out := make([]byte, w.buf.Len())
	copy(out, w.buf.B)

	return out
}
