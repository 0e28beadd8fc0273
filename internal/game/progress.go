package game

import "sort"

// Progress is the bounded fundraising meter. It only moves forward, clamps at
// its maximum, and fires each registered milestone exactly once when its
// threshold is crossed. Reaching the maximum is terminal.
type Progress struct {
	value      float64
	max        float64
	milestones []*milestone
}

type milestone struct {
	at    float64
	fired bool
	fn    func(at float64)
}

func NewProgress(max float64) *Progress {
	if max <= 0 {
		max = 100
	}
	return &Progress{max: max}
}

// OnThreshold registers a one-shot callback fired when progress first reaches
// at. Thresholds at or above max fire on completion.
func (p *Progress) OnThreshold(at float64, fn func(at float64)) {
	if fn == nil || at <= 0 {
		return
	}
	p.milestones = append(p.milestones, &milestone{at: at, fn: fn})
	sort.SliceStable(p.milestones, func(i, j int) bool { return p.milestones[i].at < p.milestones[j].at })
}

// Add raises progress by amount, clamped to max. Negative amounts and adds
// after completion are no-ops. It returns the amount actually applied.
func (p *Progress) Add(amount float64) float64 {
	if amount <= 0 || p.Complete() {
		return 0
	}
	before := p.value
	p.value += amount
	if p.value > p.max {
		p.value = p.max
	}
	for _, m := range p.milestones {
		if !m.fired && p.value >= m.at {
			m.fired = true
			m.fn(m.at)
		}
	}
	return p.value - before
}

func (p *Progress) Value() float64 { return p.value }

func (p *Progress) Max() float64 { return p.max }

// Percent reports progress scaled to 0-100 regardless of max.
func (p *Progress) Percent() float64 {
	return p.value / p.max * 100
}

func (p *Progress) Complete() bool { return p.value >= p.max }
