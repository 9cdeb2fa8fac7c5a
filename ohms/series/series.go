// Package series holds the IEC 60063 preferred number series and the
// successor/predecessor search used to step between standard values.
//
// Entries are stored as integers made of the significant digits (22 for
// 2.2, 475 for 4.75). Within one table every entry has the same number of
// digits, so numeric order and lexicographic digit-tuple order coincide.
package series

import "sort"

// Table is one preferred number series.
type Table struct {
	Name    string
	Width   int // significant digits per entry
	entries []int
}

// Step is a navigation direction through a table.
type Step int

const (
	Previous Step = -1
	Next     Step = 1
)

func (s Step) String() string {
	if s == Previous {
		return "previous"
	}
	return "next"
}

var (
	E6  = Table{Name: "E6", Width: 2, entries: []int{10, 15, 22, 33, 47, 68}}
	E12 = Table{Name: "E12", Width: 2, entries: []int{10, 12, 15, 18, 22, 27, 33, 39, 47, 56, 68, 82}}
	E24 = Table{Name: "E24", Width: 2, entries: []int{
		10, 11, 12, 13, 15, 16, 18, 20, 22, 24, 27, 30,
		33, 36, 39, 43, 47, 51, 56, 62, 68, 75, 82, 91,
	}}
	E192 = Table{Name: "E192", Width: 3, entries: []int{
		100, 101, 102, 104, 105, 106, 107, 109, 110, 111, 113, 114,
		115, 117, 118, 120, 121, 123, 124, 126, 127, 129, 130, 132,
		133, 135, 137, 138, 140, 142, 143, 145, 147, 149, 150, 152,
		154, 156, 158, 160, 162, 164, 165, 167, 169, 172, 174, 176,
		178, 180, 182, 184, 187, 189, 191, 193, 196, 198, 200, 203,
		205, 208, 210, 213, 215, 218, 221, 223, 226, 229, 232, 234,
		237, 240, 243, 246, 249, 252, 255, 258, 261, 264, 267, 271,
		274, 277, 280, 284, 287, 291, 294, 298, 301, 305, 309, 312,
		316, 320, 324, 328, 332, 336, 340, 344, 348, 352, 357, 361,
		365, 370, 374, 379, 383, 388, 392, 397, 402, 407, 412, 417,
		422, 427, 432, 437, 442, 448, 453, 459, 464, 470, 475, 481,
		487, 493, 499, 505, 511, 517, 523, 530, 536, 542, 549, 556,
		562, 569, 576, 583, 590, 597, 604, 612, 619, 626, 634, 642,
		649, 657, 665, 673, 681, 690, 698, 706, 715, 723, 732, 741,
		750, 759, 768, 777, 787, 796, 806, 816, 825, 835, 845, 856,
		866, 876, 887, 898, 909, 920, 931, 942, 953, 965, 976, 988,
	}}
	// E96 and E48 are every second and every fourth E192 value.
	E96 = Table{Name: "E96", Width: 3, entries: every(E192.entries, 2)}
	E48 = Table{Name: "E48", Width: 3, entries: every(E192.entries, 4)}
)

func every(entries []int, n int) []int {
	out := make([]int, 0, len(entries)/n)
	for i := 0; i < len(entries); i += n {
		out = append(out, entries[i])
	}
	return out
}

// Len returns the number of entries.
func (t Table) Len() int { return len(t.entries) }

// Entries returns a copy of the table.
func (t Table) Entries() []int { return append([]int(nil), t.entries...) }

// First returns the smallest entry.
func (t Table) First() int { return t.entries[0] }

// Last returns the largest entry.
func (t Table) Last() int { return t.entries[len(t.entries)-1] }

// Contains reports whether v is one of the entries.
func (t Table) Contains(v int) bool {
	i := sort.SearchInts(t.entries, v)
	return i < len(t.entries) && t.entries[i] == v
}

// Successor returns the smallest entry strictly greater than v. When v is
// at or past the top of the table it returns the first entry and wrapped.
func (t Table) Successor(v int) (next int, wrapped bool) {
	i := sort.SearchInts(t.entries, v+1)
	if i == len(t.entries) {
		return t.First(), true
	}
	return t.entries[i], false
}

// Predecessor returns the largest entry strictly smaller than v. When v is
// at or below the bottom of the table it returns the last entry and wrapped.
func (t Table) Predecessor(v int) (prev int, wrapped bool) {
	i := sort.SearchInts(t.entries, v)
	if i == 0 {
		return t.Last(), true
	}
	return t.entries[i-1], false
}

// Walk moves one entry in the given direction.
func (t Table) Walk(v int, s Step) (int, bool) {
	if s == Previous {
		return t.Predecessor(v)
	}
	return t.Successor(v)
}

// Digits splits a value into width base-10 digits, most significant first.
func Digits(v, width int) []int {
	out := make([]int, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = v % 10
		v /= 10
	}
	return out
}

// Join is the inverse of Digits.
func Join(digits ...int) int {
	v := 0
	for _, d := range digits {
		v = v*10 + d
	}
	return v
}
