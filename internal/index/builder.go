package index

import (
	"fmt"
	"math/bits"
)

// maxLoadNum/maxLoadDen express the 0.7 maximum slot-table load factor
// without floating point: capacity must satisfy count/capacity <= 0.7.
const (
	maxLoadNum = 7
	maxLoadDen = 10
)

// slotCapacity returns the slot-table capacity for count words: the next
// power of two at or above count/0.7. Always strictly greater than count,
// so at least one empty slot terminates every unsuccessful probe.
func slotCapacity(count int) int {
	need := (count*maxLoadDen + maxLoadNum - 1) / maxLoadNum
	return 1 << bits.Len(uint(need-1))
}

// Build constructs the immutable Index from a newline-delimited word blob.
// Lines may end in LF or CRLF; a trailing newline is tolerated. The blob is
// expected to be deduplicated with no empty interior lines; violations are
// packaging defects and surface as errors. Build copies every word into
// per-length buffers, so the blob may be released afterwards.
//
// All allocation happens here: membership tests on the returned Index
// allocate nothing.
func Build(raw []byte) (*Index, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("index: empty word list")
	}

	// Pass 1: count words per length so every buffer is sized exactly once.
	perLen := make(map[int]int)
	maxLen := 0
	line := 0
	if err := scanWords(raw, func(word []byte) error {
		line++
		if len(word) == 0 {
			return fmt.Errorf("index: empty word at line %d", line)
		}
		perLen[len(word)]++
		if len(word) > maxLen {
			maxLen = len(word)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	ix := &Index{
		buckets: make([]*lengthBucket, maxLen+1),
		minLen:  maxLen,
		maxLen:  maxLen,
	}
	for n, c := range perLen {
		ix.buckets[n] = &lengthBucket{
			stride: n,
			buf:    make([]byte, 0, n*c),
			slots:  newSlots(slotCapacity(c)),
			count:  c,
		}
		if n < ix.minLen {
			ix.minLen = n
		}
		ix.total += c
	}

	// Pass 2: pack each word into its bucket buffer and index its ordinal.
	if err := scanWords(raw, func(word []byte) error {
		b := ix.buckets[len(word)]
		ord := int32(len(b.buf) / b.stride)
		b.buf = append(b.buf, word...)
		b.insert(ord)
		return nil
	}); err != nil {
		return nil, err
	}
	return ix, nil
}

// scanWords calls fn for each newline-delimited word in raw, stripping a
// trailing CR from each line. A final line without a newline is included;
// a single trailing newline does not produce an empty word.
func scanWords(raw []byte, fn func(word []byte) error) error {
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i != len(raw) && raw[i] != '\n' {
			continue
		}
		if i == len(raw) && start == i {
			break // trailing newline, no final word
		}
		end := i
		if end > start && raw[end-1] == '\r' {
			end--
		}
		if err := fn(raw[start:end]); err != nil {
			return err
		}
		start = i + 1
	}
	return nil
}

// newSlots allocates a slot table of the given capacity with every slot
// marked empty.
func newSlots(capacity int) []int32 {
	slots := make([]int32, capacity)
	for i := range slots {
		slots[i] = emptySlot
	}
	return slots
}
