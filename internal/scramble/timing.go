// Package scramble animates text between a scrambled and a resolved form.
//
// A Scrambler resolves a target string one position at a time in a shuffled
// order, a Dissolver does the opposite from left to right, and a Controller
// cycles a list of titles through both with a pause in between.
package scramble

import (
	"math/rand"
	"time"
)

// Letters is the default alphabet used for unresolved positions.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Timing controls how many steps a run takes.
type Timing struct {
	Interval    time.Duration // length of one step
	PerChar     time.Duration // budget per character before clamping
	MinDuration time.Duration
	MaxDuration time.Duration
}

var (
	// DefaultTiming is used for resolving titles.
	DefaultTiming = Timing{
		Interval:    50 * time.Millisecond,
		PerChar:     150 * time.Millisecond,
		MinDuration: 50 * time.Millisecond,
		MaxDuration: 200 * time.Millisecond,
	}

	// DefaultReverseTiming is shorter so the old title clears quickly.
	DefaultReverseTiming = Timing{
		Interval:    50 * time.Millisecond,
		PerChar:     150 * time.Millisecond,
		MinDuration: 50 * time.Millisecond,
		MaxDuration: 100 * time.Millisecond,
	}
)

// Duration returns the clamped total duration of a run over length characters.
func (t Timing) Duration(length int) time.Duration {
	total := time.Duration(length) * t.PerChar
	if total > t.MaxDuration {
		total = t.MaxDuration
	}
	if total < t.MinDuration {
		total = t.MinDuration
	}
	return total
}

// Steps returns the number of steps a run over length characters takes.
// Zero means the run finishes on its first step.
func (t Timing) Steps(length int) int {
	if t.Interval <= 0 {
		return 0
	}
	steps := int(t.Duration(length) / t.Interval)
	if steps < 0 {
		return 0
	}
	return steps
}

// progressCount maps step i of steps onto floor(i/steps * length).
func progressCount(i, steps, length int) int {
	if steps <= 0 {
		return length
	}
	n := i * length / steps
	if n > length {
		n = length
	}
	return n
}

func randomRune(alphabet []rune, rng *rand.Rand) rune {
	return alphabet[rng.Intn(len(alphabet))]
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func alphabetOrDefault(alphabet []rune) []rune {
	if len(alphabet) == 0 {
		return []rune(Letters)
	}
	return alphabet
}
