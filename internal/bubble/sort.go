package bubble

// Sort is a plain bubble sort. Every pass runs to completion even after
// the slice is already ordered.
func Sort(a []int) {
	l := len(a)
	for i := 1; i < l; i++ {
		for j := 0; j < l-i; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
			}
		}
	}
}

type Stats struct {
	Passes      int `json:"passes"`
	Comparisons int `json:"comparisons"`
	Swaps       int `json:"swaps"`
}

// SortCounted sorts a exactly like Sort and counts the work done.
func SortCounted(a []int) Stats {
	var s Stats
	l := len(a)
	for i := 1; i < l; i++ {
		s.Passes++
		for j := 0; j < l-i; j++ {
			s.Comparisons++
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				s.Swaps++
			}
		}
	}
	return s
}
