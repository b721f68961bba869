package main

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/navijation/njheap/heapsort"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func sortNumbersFile(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("usage: sort numbers_path")
	}

	path := cmd.Args().First()
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %q", path)
	}

	numbers, err := parseNumbers(strings.Fields(string(content)))
	if err != nil {
		return err
	}

	heapsort.Sort(numbers, cmp.Compare)

	for _, number := range numbers {
		fmt.Println(number)
	}
	return nil
}

func parseNumbers(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for _, field := range fields {
		number, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "bad number %q", field)
		}
		out = append(out, number)
	}
	return out, nil
}
