// Package reply turns whatever the player actually types into one of the
// canned responses, one character per keystroke.
package reply

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Closest returns the option with the smallest edit distance to input.
// Matching is case-insensitive. With no options it returns "", false; an
// empty input matches the first option so the composer always has a target.
func Closest(input string, options []string) (string, bool) {
	if len(options) == 0 {
		return "", false
	}
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return options[0], true
	}
	best := options[0]
	bestDist := levenshtein.ComputeDistance(in, strings.ToLower(best))
	for _, opt := range options[1:] {
		if d := levenshtein.ComputeDistance(in, strings.ToLower(opt)); d < bestDist {
			best, bestDist = opt, d
		}
	}
	return best, true
}

// Composer tracks raw keystrokes and presents a canned response growing one
// rune per keystroke. Retargeting mid-compose keeps the shown length so the
// text never jumps backwards.
type Composer struct {
	options []string
	raw     []rune
	target  []rune
}

func NewComposer(options []string) *Composer {
	c := &Composer{options: options}
	c.retarget()
	return c
}

// Keystroke records one typed rune and advances the shown response.
func (c *Composer) Keystroke(r rune) {
	c.raw = append(c.raw, r)
	c.retarget()
}

// Backspace removes the last raw rune and shrinks the shown response.
func (c *Composer) Backspace() {
	if len(c.raw) == 0 {
		return
	}
	c.raw = c.raw[:len(c.raw)-1]
	c.retarget()
}

func (c *Composer) retarget() {
	t, ok := Closest(string(c.raw), c.options)
	if !ok {
		c.target = nil
		return
	}
	c.target = []rune(t)
}

// Text is the canned response revealed so far.
func (c *Composer) Text() string {
	n := len(c.raw)
	if n > len(c.target) {
		n = len(c.target)
	}
	return string(c.target[:n])
}

// Done reports whether the full response has been revealed.
func (c *Composer) Done() bool {
	return len(c.target) > 0 && len(c.raw) >= len(c.target)
}

// Message is the complete canned response the composer is converging on.
func (c *Composer) Message() string {
	return string(c.target)
}

// Reset clears the raw input for the next reply.
func (c *Composer) Reset() {
	c.raw = c.raw[:0]
	c.retarget()
}
