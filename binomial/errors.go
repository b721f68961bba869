package binomial

import "github.com/pkg/errors"

var (
	ErrEmptyHeap       = errors.New("heap is empty")
	ErrNotFound        = errors.New("no equivalent key in heap")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrStaleHandle     = errors.New("handle refers to a removed element")
)
