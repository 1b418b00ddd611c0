package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ProsperityMC/bubblesort/internal/bubble"
)

const bannerLine = "--- This program will sort a randomly sorted and generated list of integers with the bubblesort algorithm ---"

func parseItemCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s' is not an integer", bubble.ErrInvalidInput, s)
	}
	return n, nil
}

func promptItemCount(r io.Reader, w io.Writer) (int, error) {
	_, _ = fmt.Fprint(w, "Please enter the number of items the generated list should contain: ")
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("read item count: %w", err)
		}
		return 0, fmt.Errorf("%w: no item count given", bubble.ErrInvalidInput)
	}
	return parseItemCount(sc.Text())
}

func printShuffled(w io.Writer) {
	_, _ = fmt.Fprintln(w, "\n\n... A shuffled input dataset was successfully created")
}

func printReport(w io.Writer, r Report, debug bool) {
	_, _ = fmt.Fprintf(w, "... The list was successfully sorted. The operation completed in: %f sec.\n", r.Seconds)
	if r.Stats != nil {
		_, _ = fmt.Fprintf(w, "... %d passes, %d comparisons, %d swaps\n", r.Stats.Passes, r.Stats.Comparisons, r.Stats.Swaps)
	}
	if !debug {
		return
	}
	vals := make([]string, len(r.Values))
	for i, v := range r.Values {
		vals[i] = strconv.Itoa(v)
	}
	_, _ = fmt.Fprintln(w, strings.Join(vals, " "))
}
