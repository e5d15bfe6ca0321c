package generator

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
)

// DefaultLikelihood is the booleanLikely factor that yields true on half of the draws.
const DefaultLikelihood = 2

// Random is the shared source of every draw. It is safe for concurrent use
// and satisfies refdata.Picker, so one seed drives both the engine and the store.
type Random struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandom seeds a PCG source. A zero seed picks one at random.
func NewRandom(seed uint64) *Random {
	seq := seed
	if seed == 0 {
		seed, seq = rand.Uint64(), rand.Uint64()
	}
	return &Random{rnd: rand.New(rand.NewPCG(seed, seq))}
}

// IntN returns a uniform int in [0, n). It returns 0 when n <= 0.
func (r *Random) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.IntN(n)
}

// Int returns a uniform int in [min, max], both ends inclusive.
func (r *Random) Int(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + r.IntN(max-min+1)
}

// Float glues a random integer part in [min, max] to `precision` separately
// drawn decimal digits, then clamps to the range and rounds.
func (r *Random) Float(min, max, precision int) float64 {
	if min > max {
		min, max = max, min
	}

	whole := r.Int(min, max)
	if precision <= 0 {
		return float64(whole)
	}

	num, err := strconv.ParseFloat(strconv.Itoa(whole)+"."+r.digits(precision), 64)
	if err != nil {
		num = float64(whole)
	}
	num = math.Min(math.Max(num, float64(min)), float64(max))

	p := math.Pow10(precision)
	return math.Round(num*p) / p
}

func (r *Random) Bool() bool {
	return BoolLikely(r, true, false, DefaultLikelihood)
}

// digits appends numbers in [1, 10] until length is reached and truncates.
func (r *Random) digits(length int) string {
	var sb strings.Builder
	for sb.Len() < length {
		sb.WriteString(strconv.Itoa(r.Int(1, 10)))
	}
	return sb.String()[:length]
}

// ChooseUniform returns a uniformly chosen item, or the zero value and false
// for an empty slice.
func ChooseUniform[T any](r *Random, items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[r.IntN(len(items))], true
}

type Weighted[T any] struct {
	Item   T
	Weight int
}

// ChooseWeighted expands every item into Weight copies and picks uniformly
// from the flat pool. Items with a non-positive weight never win.
func ChooseWeighted[T any](r *Random, items []Weighted[T]) (T, bool) {
	pool := make([]T, 0)
	for _, w := range items {
		for i := 0; i < w.Weight; i++ {
			pool = append(pool, w.Item)
		}
	}
	return ChooseUniform(r, pool)
}

// BoolLikely draws from [1, 100] and returns t iff the draw is divisible by
// likely. A non-positive likely falls back to DefaultLikelihood.
func BoolLikely[T any](r *Random, t, f T, likely int) T {
	if likely <= 0 {
		likely = DefaultLikelihood
	}
	if r.Int(1, 100)%likely == 0 {
		return t
	}
	return f
}
