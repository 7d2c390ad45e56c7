// Package index implements the compact in-memory word index: words grouped
// by length into contiguous fixed-stride buffers, with an open-addressing
// slot table per length for O(1) membership tests.
package index

import (
	"iter"

	"github.com/cespare/xxhash/v2"
)

// emptySlot marks an unoccupied slot-table entry.
const emptySlot = int32(-1)

// lengthBucket holds every word of one fixed length.
//
// MEMORY LAYOUT:
//   - buf packs all words back-to-back with no delimiters and no per-word
//     allocation: word i lives at buf[i*stride : (i+1)*stride]
//   - slots maps xxhash(word) to the word's ordinal i via linear probing;
//     capacity is a power of two sized for a max load factor of 0.7
type lengthBucket struct {
	stride int
	buf    []byte
	slots  []int32
	count  int
}

// word returns the bytes of the word with ordinal ord.
func (b *lengthBucket) word(ord int32) []byte {
	off := int(ord) * b.stride
	return b.buf[off : off+b.stride]
}

// insert stores ord in the slot table. Only called during build; the
// source list is deduplicated, so probing never meets an equal word.
func (b *lengthBucket) insert(ord int32) {
	mask := uint64(len(b.slots) - 1)
	i := xxhash.Sum64(b.word(ord)) & mask
	for b.slots[i] != emptySlot {
		i = (i + 1) & mask
	}
	b.slots[i] = ord
}

// contains reports whether word is present in the bucket. len(word) must
// equal b.stride. Zero allocations; bounded by the table capacity even if
// the load-factor invariant were ever violated.
func (b *lengthBucket) contains(word string) bool {
	mask := uint64(len(b.slots) - 1)
	i := xxhash.Sum64String(word) & mask
	for probes := 0; probes < len(b.slots); probes++ {
		ord := b.slots[i]
		if ord == emptySlot {
			return false
		}
		if b.equal(ord, word) {
			return true
		}
		i = (i + 1) & mask
	}
	return false
}

// equal compares the stored word at ord against the query without
// converting either side.
func (b *lengthBucket) equal(ord int32, word string) bool {
	off := int(ord) * b.stride
	for j := 0; j < b.stride; j++ {
		if b.buf[off+j] != word[j] {
			return false
		}
	}
	return true
}

// Index is the immutable word index. Built once by Build; after that every
// method is safe for unsynchronized concurrent use because nothing mutates.
type Index struct {
	// buckets is addressed by word length; nil entries mean no word of
	// that length exists in the source.
	buckets []*lengthBucket
	minLen  int
	maxLen  int
	total   int
}

// Contains reports whether word is in the index. Any input is well-formed:
// unknown lengths (including the empty string) answer false without hashing.
func (ix *Index) Contains(word string) bool {
	n := len(word)
	if n >= len(ix.buckets) {
		return false
	}
	b := ix.buckets[n]
	if b == nil {
		return false
	}
	return b.contains(word)
}

// Len returns the total number of indexed words.
func (ix *Index) Len() int { return ix.total }

// MinLen returns the shortest word length present in the index.
func (ix *Index) MinLen() int { return ix.minLen }

// MaxLen returns the longest word length present in the index.
func (ix *Index) MaxLen() int { return ix.maxLen }

// WordsByLen returns an iterator over every indexed word of length n, in
// buffer storage order (not alphabetical; callers must not rely on any
// ordering). Unknown lengths yield an empty sequence. Each call returns an
// independent, restartable sequence.
func (ix *Index) WordsByLen(n int) iter.Seq[string] {
	var b *lengthBucket
	if n >= 0 && n < len(ix.buckets) {
		b = ix.buckets[n]
	}
	return func(yield func(string) bool) {
		if b == nil {
			return
		}
		for off := 0; off < len(b.buf); off += b.stride {
			if !yield(string(b.buf[off : off+b.stride])) {
				return
			}
		}
	}
}

// WordsInRange returns an iterator over every indexed word whose length
// falls in [minLen, maxLen], ascending by length; order within one length
// is unspecified. An inverted range yields an empty sequence.
func (ix *Index) WordsInRange(minLen, maxLen int) iter.Seq[string] {
	return func(yield func(string) bool) {
		lo := max(minLen, ix.minLen)
		hi := min(maxLen, ix.maxLen)
		for n := lo; n <= hi; n++ {
			b := ix.buckets[n]
			if b == nil {
				continue
			}
			for off := 0; off < len(b.buf); off += b.stride {
				if !yield(string(b.buf[off : off+b.stride])) {
					return
				}
			}
		}
	}
}

// Words returns an iterator over every indexed word, ascending by length.
func (ix *Index) Words() iter.Seq[string] {
	return ix.WordsInRange(ix.minLen, ix.maxLen)
}
