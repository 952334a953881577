package inventory

// SuggestedQty es la cantidad a pedir para alcanzar el mínimo: max(0, minTotal - total).
func SuggestedQty(minTotal, total int64) int64 {
	if total >= minTotal {
		return 0
	}
	return minTotal - total
}
