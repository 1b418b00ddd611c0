package bubble

import "fmt"

// RandMax is the largest value returned by Source.Int31, matching the
// RAND_MAX of glibc.
const RandMax = 1<<31 - 1

// Source is satisfied by *math/rand.Rand.
type Source interface {
	Int31() int32
	Intn(n int) int
}

type ShuffleMode string

const (
	ShuffleBiased  ShuffleMode = "biased"
	ShuffleUniform ShuffleMode = "uniform"
)

func ParseShuffleMode(s string) (ShuffleMode, error) {
	switch m := ShuffleMode(s); m {
	case ShuffleBiased, ShuffleUniform:
		return m, nil
	}
	return "", fmt.Errorf(`%w: must be one of "biased","uniform" but got "%s"`, ErrUnknownShuffle, s)
}

// Shuffle permutes a in place. Every position is swapped with an index
// drawn from [0, len(a)-2], so the last position is never drawn and the
// result is not uniform over all permutations.
func Shuffle(a []int, src Source) {
	l := len(a)
	if l <= 1 {
		return
	}
	for i := 0; i < l; i++ {
		j := drawIndex(src.Int31(), l)
		a[i], a[j] = a[j], a[i]
	}
}

// drawIndex scales r in [0, RandMax] down to [0, l-2].
func drawIndex(r int32, l int) int {
	return int(int64(r) / (RandMax/int64(l-1) + 1))
}

// FisherYates is a uniform shuffle.
func FisherYates(a []int, src Source) {
	for i := len(a) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

func ShuffleWith(mode ShuffleMode, a []int, src Source) error {
	switch mode {
	case ShuffleBiased:
		Shuffle(a, src)
	case ShuffleUniform:
		FisherYates(a, src)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShuffle, mode)
	}
	return nil
}
