package dailyset

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1 << 31
)

// lcg is a linear congruential generator over [0, 2^31).
// State stays below 2^31, so state*lcgMultiplier fits in a uint64.
type lcg struct {
	state uint64
}

func newLCG(seed uint32) *lcg {
	return &lcg{state: uint64(seed)}
}

func (g *lcg) next() uint64 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return g.state
}

// intn returns floor(state/2^31 * n) computed exactly in integers.
func (g *lcg) intn(n int) int {
	return int((g.next() * uint64(n)) >> 31)
}

// Shuffle returns a Fisher-Yates permutation of items driven only by seed.
// The input slice is not modified.
func Shuffle[T any](items []T, seed uint32) []T {
	out := make([]T, len(items))
	copy(out, items)

	rng := newLCG(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
