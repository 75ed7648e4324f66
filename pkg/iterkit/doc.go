// Package iterkit provides small generic helpers for working with slices of
// values: chunking, flattening, and compact formatting of integer sequences.
//
// # Usage
//
//	for _, batch := range iterkit.Chunk(ids, 1000) {
//		process(batch)
//	}
//
//	all := iterkit.Flatten(batches)
//
//	s := iterkit.SequenceToString([]int{1, 2, 3, 5, 7, 8, 9})
//	// "1..3^5^7..9"
package iterkit
