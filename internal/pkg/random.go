package pkg

import "lukechampine.com/frand"

// Random is the source of every random choice the games make.
type Random interface {
	// Intn returns a uniform integer in [0, n). It panics if n <= 0.
	Intn(n int) int
}

type fastRandom struct{}

func NewRandom() Random {
	return fastRandom{}
}

func (fastRandom) Intn(n int) int {
	return frand.Intn(n)
}

// Shuffle permutes n elements with Fisher-Yates using rnd.
func Shuffle(rnd Random, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, rnd.Intn(i+1))
	}
}

// Sequence replays fixed values modulo n and repeats the last one when exhausted.
// A zero Sequence always returns 0.
type Sequence struct {
	values []int
	next   int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (that *Sequence) Intn(n int) int {
	if len(that.values) == 0 {
		return 0
	}

	v := that.values[min(that.next, len(that.values)-1)]
	that.next++

	return v % n
}
