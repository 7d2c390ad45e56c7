package index

import (
	"fmt"
	"strings"
	"testing"
)

func benchIndex(b *testing.B, n int) (*Index, []string) {
	b.Helper()
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, fmt.Sprintf("bench%06d", i))
	}
	ix, err := Build([]byte(strings.Join(words, "\n")))
	if err != nil {
		b.Fatal(err)
	}
	return ix, words
}

// BenchmarkContains_Hit measures the membership fast path. Must report
// zero allocs/op: the lookup is hash + bounded probe + byte compare.
func BenchmarkContains_Hit(b *testing.B) {
	ix, words := benchIndex(b, 100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !ix.Contains(words[i%len(words)]) {
			b.Fatal("missing word")
		}
	}
}

// BenchmarkContains_Miss measures a same-length miss, which still hashes
// and probes to an empty slot.
func BenchmarkContains_Miss(b *testing.B) {
	ix, _ := benchIndex(b, 100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ix.Contains("bench999999") {
			b.Fatal("phantom word")
		}
	}
}

// BenchmarkContains_NoBucket measures the length short-circuit: no bucket
// for the query length, so no hashing at all.
func BenchmarkContains_NoBucket(b *testing.B) {
	ix, _ := benchIndex(b, 100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ix.Contains("zz") {
			b.Fatal("phantom word")
		}
	}
}

// BenchmarkBuild measures the one-time construction cost paid at first use.
func BenchmarkBuild(b *testing.B) {
	words := make([]string, 0, 100_000)
	for i := 0; i < 100_000; i++ {
		words = append(words, fmt.Sprintf("bench%06d", i))
	}
	raw := []byte(strings.Join(words, "\n"))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Build(raw); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkWords measures full enumeration throughput.
func BenchmarkWords(b *testing.B) {
	ix, _ := benchIndex(b, 100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range ix.Words() {
			n++
		}
		if n != 100_000 {
			b.Fatal("short enumeration")
		}
	}
}
