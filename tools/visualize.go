package main

import (
	"cmp"
	"context"
	"fmt"
	"os"

	"github.com/navijation/njheap/binomial"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func visualizeHeap(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return errors.New("usage: visualize number [number ...]")
	}

	numbers, err := parseNumbers(cmd.Args().Slice())
	if err != nil {
		return err
	}

	heap := binomial.New(cmp.Compare[int])
	heap.MultiInsert(numbers...)

	front, err := heap.Front()
	if err != nil {
		return errors.Wrap(err, "heap has no front")
	}

	fmt.Printf(
		"Heap\n"+
			"  ID: %s\n"+
			"  Size: %d\n"+
			"  Front: %d\n\n"+
			"Trees:\n",
		heap.ID().String(),
		heap.Size(),
		front,
	)
	heap.Dump(os.Stdout)
	return nil
}
