package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ProsperityMC/bubblesort/internal/bubble"
	"github.com/google/uuid"
)

type RunOptions struct {
	Shuffle  bubble.ShuffleMode
	Seed     int64
	MaxItems int
	// Count swaps the plain sort for the instrumented one.
	Count bool
	// Shuffled is called between the shuffle and the timed sort.
	Shuffled func()
}

type Report struct {
	ID      uuid.UUID          `json:"id"`
	Items   int                `json:"items"`
	Seed    int64              `json:"seed"`
	Shuffle bubble.ShuffleMode `json:"shuffle"`
	Elapsed time.Duration      `json:"-"`
	Seconds float64            `json:"seconds"`
	Stats   *bubble.Stats      `json:"stats,omitempty"`
	Values  []int              `json:"values,omitempty"`
}

// runSort builds the identity sequence, shuffles it and times the sort.
// Nothing is allocated or mutated when the options or size are invalid.
func runSort(items int, opts RunOptions) (Report, error) {
	mode, err := bubble.ParseShuffleMode(string(opts.Shuffle))
	if err != nil {
		return Report{}, err
	}
	seq, err := bubble.NewSequence(items, opts.MaxItems)
	if err != nil {
		return Report{}, err
	}

	err = bubble.ShuffleWith(mode, seq, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return Report{}, fmt.Errorf("shuffle: %w", err)
	}
	if opts.Shuffled != nil {
		opts.Shuffled()
	}

	r := Report{
		ID:      uuid.New(),
		Items:   items,
		Seed:    opts.Seed,
		Shuffle: mode,
	}

	start := time.Now()
	if opts.Count {
		stats := bubble.SortCounted(seq)
		r.Stats = &stats
	} else {
		bubble.Sort(seq)
	}
	r.Elapsed = time.Since(start)

	r.Seconds = r.Elapsed.Seconds()
	r.Values = seq
	return r, nil
}
