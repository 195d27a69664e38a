package cart

import "github.com/google/uuid"

// Lines is the sparse quantity mapping the client keeps per session:
// property id -> size -> quantity. A quantity of zero means the line is
// absent, never present-with-zero.
type Lines map[uuid.UUID]map[string]int

// Count sums all positive quantities. Missing or negative entries
// contribute zero; nothing here can fail.
func Count(lines Lines) int {
	total := 0
	for _, sizes := range lines {
		for _, qty := range sizes {
			if qty > 0 {
				total += qty
			}
		}
	}
	return total
}

// Amount sums unit price times quantity over all positive lines. Lines
// whose property id is absent from prices are skipped silently; checkout
// revalidates them, this is display-level tolerance only.
func Amount(lines Lines, prices map[uuid.UUID]int64) int64 {
	var total int64
	for propertyID, sizes := range lines {
		unit, ok := prices[propertyID]
		if !ok {
			continue
		}
		for _, qty := range sizes {
			if qty > 0 {
				total += unit * int64(qty)
			}
		}
	}
	return total
}

// Merge adds src quantities into dst, summing per (property, size). Used
// when a guest cart meets the server-side cart at login. dst is returned
// for convenience; nil dst is allocated.
func Merge(dst, src Lines) Lines {
	if dst == nil {
		dst = Lines{}
	}
	for propertyID, sizes := range src {
		for size, qty := range sizes {
			if qty <= 0 {
				continue
			}
			if dst[propertyID] == nil {
				dst[propertyID] = map[string]int{}
			}
			dst[propertyID][size] += qty
		}
	}
	return dst
}

// Normalize drops non-positive quantities and empty size maps.
func Normalize(lines Lines) Lines {
	out := Lines{}
	for propertyID, sizes := range lines {
		for size, qty := range sizes {
			if qty <= 0 {
				continue
			}
			if out[propertyID] == nil {
				out[propertyID] = map[string]int{}
			}
			out[propertyID][size] = qty
		}
	}
	return out
}
