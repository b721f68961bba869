package util

import "iter"

func CollectSeq[T any](seq iter.Seq[T]) (out []T) {
	for item := range seq {
		out = append(out, item)
	}
	return out
}
