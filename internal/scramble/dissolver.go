package scramble

import "math/rand"

// Dissolver turns a resolved string back into noise, left to right.
//
// At step i the first floor(i/steps * len) characters are redrawn at random
// and the rest keep the source text. Spaces are never replaced.
type Dissolver struct {
	source     []rune
	alphabet   []rune
	steps      int
	step       int
	randomized int
	stopChance float64
	done       bool
	last       string
	buf        []rune
	rng        *rand.Rand
}

// NewDissolver prepares a dissolve of source.
func NewDissolver(source string, alphabet []rune, timing Timing, rng *rand.Rand) *Dissolver {
	if rng == nil {
		rng = newRand()
	}
	runes := []rune(source)
	d := &Dissolver{
		source:   runes,
		alphabet: alphabetOrDefault(alphabet),
		steps:    timing.Steps(len(runes)),
		buf:      make([]rune, len(runes)),
		last:     source,
		rng:      rng,
	}
	copy(d.buf, runes)
	if len(runes) == 0 {
		d.done = true
	}
	return d
}

// WithStopChance makes every step finish the dissolve with probability p,
// regardless of how much has been randomized. Zero disables it.
func (d *Dissolver) WithStopChance(p float64) *Dissolver {
	d.stopChance = p
	return d
}

// Randomized returns how many leading positions were redrawn in the last step.
func (d *Dissolver) Randomized() int { return d.randomized }

// Done reports whether the dissolve has finished.
func (d *Dissolver) Done() bool { return d.done }

// Next computes the next step. done turns true once every position has been
// randomized; after that the last text is repeated.
func (d *Dissolver) Next() (text string, done bool) {
	if d.done {
		return d.last, true
	}

	n := progressCount(d.step, d.steps, len(d.source))
	d.step++
	d.randomized = n

	for i := 0; i < n; i++ {
		if d.source[i] == ' ' {
			continue
		}
		d.buf[i] = randomRune(d.alphabet, d.rng)
	}
	d.last = string(d.buf)

	if n == len(d.source) {
		d.done = true
	} else if d.stopChance > 0 && d.rng.Float64() < d.stopChance {
		d.done = true
	}
	return d.last, d.done
}
