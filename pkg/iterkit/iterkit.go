package iterkit

import (
	"fmt"
	"slices"
	"strings"
)

// Chunk splits data into consecutive chunks of at most size elements. The
// final chunk may be shorter. A size below one is treated as one. The chunks
// share backing storage with data.
func Chunk[T any](data []T, size int) [][]T {
	if size < 1 {
		size = 1
	}
	if len(data) == 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(data)+size-1)/size)
	for start := 0; start < len(data); start += size {
		end := min(start+size, len(data))
		chunks = append(chunks, data[start:end])
	}
	return chunks
}

// Flatten concatenates chunks into a single slice.
func Flatten[T any](chunks [][]T) []T {
	total := 0
	for _, c := range chunks {
		total += len(c)
	}

	out := make([]T, 0, total)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// SequenceToString renders a set of integers compactly, merging runs with a
// consistent stride. The input is sorted and deduplicated first.
//
//	SequenceToString([]int{1, 2, 3, 5, 7, 8, 9}) // "1..3^5^7..9"
//	SequenceToString([]int{10, 20, 30, 40})      // "10..40:10"
//
// The stride is the minimum difference between consecutive values.
func SequenceToString(values []int) string {
	if len(values) == 0 {
		return ""
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	stride := 1
	for i := 1; i < len(sorted); i++ {
		if d := sorted[i] - sorted[i-1]; i == 1 || d < stride {
			stride = d
		}
	}
	stride = max(stride, 1)

	var parts []string
	v0, v1 := sorted[0], sorted[0]
	for _, v := range sorted[1:] {
		if v == v1+stride {
			v1 = v
			continue
		}
		parts = appendRun(parts, v0, v1, stride)
		v0, v1 = v, v
	}
	parts = appendRun(parts, v0, v1, stride)

	return strings.Join(parts, "^")
}

// appendRun formats one run of values [v0, v1] with the given stride.
func appendRun(parts []string, v0, v1, stride int) []string {
	switch {
	case v0 == v1:
		return append(parts, fmt.Sprint(v0))
	case v1 == v0+stride:
		return append(parts, fmt.Sprintf("%d^%d", v0, v1))
	case stride > 1:
		return append(parts, fmt.Sprintf("%d..%d:%d", v0, v1, stride))
	default:
		return append(parts, fmt.Sprintf("%d..%d", v0, v1))
	}
}
