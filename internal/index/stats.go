package index

// Stats describes the resident footprint of a built index. Derived on
// demand from immutable state; cheap enough to call repeatedly.
type Stats struct {
	Words   int           // total indexed words
	MinLen  int           // shortest word length present
	MaxLen  int           // longest word length present
	Buckets []BucketStats // one per populated length, ascending

	BufferBytes int // total word-buffer bytes across buckets
	SlotBytes   int // total slot-table bytes across buckets
}

// BucketStats describes one length bucket.
type BucketStats struct {
	Len      int     // word length (stride)
	Count    int     // words of this length
	Capacity int     // slot-table capacity (power of two)
	Load     float64 // Count / Capacity, at most 0.7 by construction
}

// Stats computes footprint statistics for the index.
func (ix *Index) Stats() Stats {
	s := Stats{
		Words:  ix.total,
		MinLen: ix.minLen,
		MaxLen: ix.maxLen,
	}
	for n := ix.minLen; n <= ix.maxLen; n++ {
		b := ix.buckets[n]
		if b == nil {
			continue
		}
		s.Buckets = append(s.Buckets, BucketStats{
			Len:      n,
			Count:    b.count,
			Capacity: len(b.slots),
			Load:     float64(b.count) / float64(len(b.slots)),
		})
		s.BufferBytes += len(b.buf)
		s.SlotBytes += len(b.slots) * 4 // int32 slots
	}
	return s
}
