package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeq2MapKey converts the keys of a dual-return iterator.
func IterSeq2MapKey[K1 any, K2 any, V any](seq iter.Seq2[K1, V], fn func(K1) K2) iter.Seq2[K2, V] {
	return func(yield func(K2, V) bool) {
		for key, val := range seq {
			if !yield(fn(key), val) {
				return
			}
		}
	}
}
