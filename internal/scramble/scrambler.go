package scramble

import "math/rand"

// Scrambler resolves a target string from random characters.
//
// Positions resolve in an order shuffled once at construction. Each call to
// Next produces one step; unresolved positions get a fresh random character
// every step. A Scrambler is single-use and not safe for concurrent use.
type Scrambler struct {
	target   []rune
	text     string
	alphabet []rune
	order    []int
	steps    int
	step     int
	resolved int
	done     bool
	buf      []rune
	rng      *rand.Rand
}

// NewScrambler prepares a run towards target. A nil rng uses a time-seeded
// source and an empty alphabet falls back to Letters.
func NewScrambler(target string, alphabet []rune, timing Timing, rng *rand.Rand) *Scrambler {
	if rng == nil {
		rng = newRand()
	}
	runes := []rune(target)
	s := &Scrambler{
		target:   runes,
		text:     target,
		alphabet: alphabetOrDefault(alphabet),
		order:    make([]int, len(runes)),
		steps:    timing.Steps(len(runes)),
		buf:      make([]rune, len(runes)),
		rng:      rng,
	}
	for i := range s.order {
		s.order[i] = i
	}
	for i := len(s.order) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}
	if len(runes) == 0 {
		s.done = true
	}
	return s
}

// Target returns the string the run converges to.
func (s *Scrambler) Target() string { return s.text }

// Steps returns the step count derived from the timing.
func (s *Scrambler) Steps() int { return s.steps }

// Resolved returns how many positions were resolved in the last step.
func (s *Scrambler) Resolved() int { return s.resolved }

// Done reports whether the target has been emitted.
func (s *Scrambler) Done() bool { return s.done }

// Order returns a copy of the reveal order.
func (s *Scrambler) Order() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

// Next computes the next step. complete is true from the first step whose
// text equals the target; later calls keep returning the target.
func (s *Scrambler) Next() (text string, complete bool) {
	if s.done {
		s.resolved = len(s.target)
		return s.text, true
	}

	n := progressCount(s.step, s.steps, len(s.target))
	s.step++
	s.resolved = n

	for k, pos := range s.order {
		if k < n || s.target[pos] == ' ' {
			s.buf[pos] = s.target[pos]
			continue
		}
		s.buf[pos] = randomRune(s.alphabet, s.rng)
	}

	text = string(s.buf)
	if text == s.text {
		s.done = true
	}
	return text, s.done
}
