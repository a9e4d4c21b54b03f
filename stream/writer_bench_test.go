package stream

import "testing"

func BenchmarkAppendFixed(b *testing.B) {
	w := New(64)
	b.ResetTimer()

	for b.Loop() {
		AppendFixed(w, uint32(12345), 17)
	}
}

func BenchmarkAppendFull(b *testing.B) {
	w := New(64)
	b.ResetTimer()

	for b.Loop() {
		AppendFull(w, uint64(0x0102030405060708))
	}
}

func BenchmarkAppendBytes(b *testing.B) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	w := New(1024)
	b.ResetTimer()

	for b.Loop() {
		w.AppendBytes(data, 255)
	}
}

func BenchmarkPack(b *testing.B) {
	b.Run("NoCRC", func(b *testing.B) {
		for b.Loop() {
			w := New(64)
			AppendFull(w, uint64(163))
			AppendFull(w, uint64(164))
			_ = w.Pack(false)
		}
	})

	b.Run("WithCRC", func(b *testing.B) {
		for b.Loop() {
			w := New(64)
			AppendFull(w, uint64(163))
			AppendFull(w, uint64(164))
			_ = w.Pack(true)
		}
	})
}
