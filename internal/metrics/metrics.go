// Package metrics provides trajectory summary observers. Each metric
// satisfies dynamo.Observer so it can watch a run sample by sample, and
// reduces the run to a single named value recorded with the run metadata.
package metrics

import (
	"math"

	"github.com/paperlab/rollsim/internal/dynamo"
)

type Metric interface {
	dynamo.Observer
	Name() string
	Value() float64
	Reset()
}

// Final reports the last observed value of one state component.
type Final struct {
	name  string
	index int
	value float64
}

func NewFinal(name string, index int) *Final {
	return &Final{name: name, index: index, value: math.NaN()}
}

func (f *Final) Name() string   { return f.name }
func (f *Final) Value() float64 { return f.value }
func (f *Final) Reset()         { f.value = math.NaN() }

func (f *Final) OnSample(x dynamo.State, t float64) {
	if f.index < len(x) {
		f.value = x[f.index]
	}
}

// Peak reports the largest magnitude one component reaches.
type Peak struct {
	name  string
	index int
	peak  float64
}

func NewPeak(name string, index int) *Peak {
	return &Peak{name: name, index: index}
}

func (p *Peak) Name() string   { return p.name }
func (p *Peak) Value() float64 { return p.peak }
func (p *Peak) Reset()         { p.peak = 0 }

func (p *Peak) OnSample(x dynamo.State, t float64) {
	if p.index < len(x) && math.Abs(x[p.index]) > p.peak {
		p.peak = math.Abs(x[p.index])
	}
}

// FirstCrossing reports the first time a component reaches a target
// value, linearly interpolated between the straddling samples. NaN until
// the crossing occurs.
type FirstCrossing struct {
	name   string
	index  int
	target float64

	crossed      bool
	lastT, lastV float64
	haveLast     bool
	crossingTime float64
}

func NewFirstCrossing(name string, index int, target float64) *FirstCrossing {
	return &FirstCrossing{name: name, index: index, target: target, crossingTime: math.NaN()}
}

func (c *FirstCrossing) Name() string   { return c.name }
func (c *FirstCrossing) Value() float64 { return c.crossingTime }

func (c *FirstCrossing) Reset() {
	c.crossed = false
	c.haveLast = false
	c.crossingTime = math.NaN()
}

func (c *FirstCrossing) OnSample(x dynamo.State, t float64) {
	if c.crossed || c.index >= len(x) {
		return
	}
	v := x[c.index]
	if c.haveLast {
		lo, hi := c.lastV, v
		if (lo <= c.target && c.target <= hi) || (hi <= c.target && c.target <= lo) {
			c.crossed = true
			if hi == lo {
				c.crossingTime = t
			} else {
				frac := (c.target - lo) / (hi - lo)
				c.crossingTime = c.lastT + frac*(t-c.lastT)
			}
			return
		}
	}
	c.lastT, c.lastV = t, v
	c.haveLast = true
}
