package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "heap_tools",
		Usage: "exercise and visualize binomial heaps",
		Commands: []*cli.Command{
			{
				Name:   "sort",
				Usage:  "heap-sort whitespace-separated integers read from a file",
				Action: sortNumbersFile,
			},
			{
				Name:   "bench",
				Usage:  "time binomial heap operations against a binary heap baseline",
				Action: benchHeaps,
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:        "inputs",
						DefaultText: "1000000",
						Value:       1000000,
						Usage:       "number of keys per phase",
					},
				},
			},
			{
				Name:   "visualize",
				Usage:  "insert the given integers and dump the forest structure",
				Action: visualizeHeap,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
