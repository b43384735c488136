package radiator

// Real is the set of numeric kinds accepted by the constructors.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Wavelengths converts a slice of any [Real] kind to float64, preserving
// length and order. A nil input yields a nil result.
func Wavelengths[E Real](s []E) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}
