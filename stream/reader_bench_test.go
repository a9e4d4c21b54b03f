package stream

import "testing"

func BenchmarkReadFixed(b *testing.B) {
	w := New(64)
	for i := 0; i < 1000; i++ {
		AppendFixed(w, uint32(12345), 17)
	}
	packed := w.Pack(false)
	b.ResetTimer()

	for b.Loop() {
		r, _ := NewReader(packed)
		for i := 0; i < 1000; i++ {
			_, _ = ReadFixed[uint32](r, 17)
		}
	}
}

func BenchmarkReadFull(b *testing.B) {
	w := New(64)
	for i := 0; i < 1000; i++ {
		AppendFull(w, uint64(0x0102030405060708))
	}
	packed := w.Pack(false)
	b.ResetTimer()

	for b.Loop() {
		r, _ := NewReader(packed)
		for i := 0; i < 1000; i++ {
			_, _ = ReadFull[uint64](r)
		}
	}
}

func BenchmarkReadBytes(b *testing.B) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	w := New(1024)
	w.AppendBytes(data, 255)
	packed := w.Pack(false)
	b.ResetTimer()

	for b.Loop() {
		r, _ := NewReader(packed)
		_, _ = r.ReadBytes(255)
	}
}
