package main

import (
	"cmp"
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/navijation/njheap/binary"
	"github.com/navijation/njheap/binomial"
	"github.com/urfave/cli/v3"
)

// benchHeaps times three phases on both heaps: a bulk build, individual
// insertions, and draining extractions. The binary heap's bulk build is the
// O(n) heapify, so it is the interesting comparison point for MultiInsert.
func benchHeaps(ctx context.Context, cmd *cli.Command) error {
	numInputs := int(cmd.Uint("inputs"))

	bulkKeys := make([]int, numInputs)
	indivKeys := make([]int, numInputs)
	for i := range bulkKeys {
		bulkKeys[i] = rand.IntN(numInputs)
		indivKeys[i] = rand.IntN(numInputs)
	}

	binom := binomial.New(cmp.Compare[int])

	startBulkBinom := time.Now()
	binom.MultiInsert(bulkKeys...)
	bulkBinom := time.Since(startBulkBinom)

	startBulkBinary := time.Now()
	bin := binary.NewHeap(cmp.Compare[int], slices.Clone(bulkKeys)...)
	bulkBinary := time.Since(startBulkBinary)

	startIndivBinom := time.Now()
	for _, key := range indivKeys {
		binom.Insert(key)
	}
	indivBinom := time.Since(startIndivBinom)

	startIndivBinary := time.Now()
	for _, key := range indivKeys {
		bin.Push(key)
	}
	indivBinary := time.Since(startIndivBinary)

	startExtractBinom := time.Now()
	for !binom.Empty() {
		_, _ = binom.Extract()
	}
	extractBinom := time.Since(startExtractBinom)

	startExtractBinary := time.Now()
	for !bin.Empty() {
		bin.Pop()
	}
	extractBinary := time.Since(startExtractBinary)

	printPhase("bulk insertions", numInputs, bulkBinom, bulkBinary)
	printPhase("individual insertions", numInputs, indivBinom, indivBinary)
	printPhase("extractions", 2*numInputs, extractBinom, extractBinary)
	return nil
}

func printPhase(phase string, count int, binomTime, binaryTime time.Duration) {
	fmt.Printf(
		"For %d %s:\n"+
			"  Binomial Heap:\n"+
			"    Total: %s\n"+
			"    Average: %s per operation\n"+
			"  Binary Heap:\n"+
			"    Total: %s\n"+
			"    Average: %s per operation\n",
		count, phase,
		binomTime, binomTime/time.Duration(count),
		binaryTime, binaryTime/time.Duration(count),
	)
}
