// Package adxtest builds synthetic AdX bid requests and OpenRTB bids for adapter tests.
//
// Every builder is driven by a small integer shape. The shape sets the length of the repeated
// fields, picks one of the mutually exclusive geo payloads and decides whether the optional
// sub-messages are filled in, so one loop over shapes covers many structural variants of the
// wire format. Some shapes carry deliberately bad values for exercising consumer validation.
//
// All builders return freshly allocated values and may be called concurrently.
package adxtest

// Sample returns a new slice with the first min(count, len(items)) items, in order.
// A count of zero or less yields an empty slice.
func Sample[T any](count int, items ...T) []T {
	if count > len(items) {
		count = len(items)
	}
	if count < 0 {
		count = 0
	}
	sample := make([]T, count)
	copy(sample, items)
	return sample
}

// Sizes returns count consecutive values starting at base.
func Sizes(count, base int) []int32 {
	if count < 0 {
		count = 0
	}
	sizes := make([]int32, count)
	for i := range sizes {
		sizes[i] = int32(base + i)
	}
	return sizes
}
