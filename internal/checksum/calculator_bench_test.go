package checksum

import (
	"bytes"
	"testing"
)

// BenchmarkSum benchmarks streaming a 1 MiB payload through the digest
func BenchmarkSum(b *testing.B) {
	calculator := New()
	content := bytes.Repeat([]byte("%PDF-1.7 stream "), 64*1024)

	b.SetBytes(int64(len(content)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := calculator.Sum(bytes.NewReader(content)); err != nil {
			b.Fatal(err)
		}
	}
}
