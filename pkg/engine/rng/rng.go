// Package rng provides the table-driven byte generator used by level generation.
// Every draw reads the next entry of a fixed 256-byte table, so a source started
// at the same position always replays the same sequence.
package rng

import "sync/atomic"

// table is a fixed permutation of 0..255.
var table = [256]byte{
	49, 95, 151, 17, 172, 15, 123, 177, 212, 91, 201, 175, 43, 246, 81, 114,
	10, 85, 100, 86, 211, 76, 16, 182, 242, 120, 4, 247, 190, 27, 11, 79,
	138, 24, 89, 224, 158, 186, 225, 157, 62, 119, 237, 108, 209, 226, 222, 94,
	110, 0, 67, 104, 220, 33, 163, 164, 8, 111, 59, 30, 55, 214, 255, 210,
	68, 243, 58, 53, 121, 72, 176, 13, 66, 165, 99, 239, 166, 187, 189, 170,
	48, 137, 202, 159, 51, 161, 37, 213, 153, 70, 193, 105, 5, 6, 253, 174,
	36, 216, 148, 132, 71, 168, 103, 149, 245, 116, 235, 69, 244, 155, 238, 156,
	139, 52, 227, 60, 88, 56, 234, 154, 221, 252, 63, 188, 65, 29, 152, 117,
	113, 129, 162, 2, 25, 54, 26, 251, 254, 136, 128, 179, 57, 28, 147, 206,
	233, 223, 180, 19, 232, 191, 183, 12, 171, 127, 50, 14, 38, 249, 23, 205,
	215, 98, 250, 230, 32, 185, 167, 125, 74, 218, 107, 39, 20, 118, 173, 194,
	178, 40, 199, 75, 160, 73, 9, 96, 106, 197, 184, 145, 44, 146, 35, 18,
	93, 77, 109, 198, 102, 90, 208, 78, 61, 42, 196, 207, 126, 87, 130, 97,
	82, 92, 200, 21, 241, 3, 204, 229, 83, 1, 217, 248, 34, 231, 195, 115,
	80, 64, 41, 47, 181, 236, 22, 144, 140, 101, 131, 122, 45, 150, 84, 219,
	141, 142, 192, 133, 135, 240, 134, 203, 228, 124, 31, 169, 46, 112, 7, 143,
}

// Source is a position in the byte table. The zero value starts at index 0 and
// is ready to use. A Source may be shared between goroutines; concurrent callers
// interleave through the same stream.
type Source struct {
	index atomic.Uint32
}

// Default is the process-wide source used when a caller does not supply one.
var Default = &Source{}

// NewSource returns a source positioned at seed.
func NewSource(seed byte) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed moves the source to the given table position.
func (s *Source) Seed(seed byte) {
	s.index.Store(uint32(seed))
}

// Index returns the table position of the next draw.
func (s *Source) Index() byte {
	return byte(s.index.Load())
}

// Random returns the next byte in the stream.
func (s *Source) Random() byte {
	i := s.index.Add(1) - 1
	return table[i&0xff]
}

// RandomInRange returns a byte in the half-open range [low, high).
// An empty range returns low without advancing the stream.
func (s *Source) RandomInRange(low, high byte) byte {
	if high <= low {
		return low
	}
	return low + s.Random()%(high-low)
}

// RandomIndex returns an index in [0, n). It reports false when n is not
// positive. Indexes above 255 combine two draws.
func (s *Source) RandomIndex(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	if n <= 0x100 {
		return int(s.Random()) % n, true
	}
	hi := int(s.Random())
	lo := int(s.Random())
	return (hi<<8 | lo) % n, true
}
