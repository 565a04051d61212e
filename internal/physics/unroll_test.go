package physics

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/paperlab/rollsim/internal/dynamo"
)

func demoUnrollCondition() UnrollCondition {
	return UnrollCondition{
		Rmin:     0.02,
		Rmax:     0.055,
		L:        47,
		Mcore:    0.015,
		Mroll:    0.215,
		Tension:  2e-4,
		Duration: 180,
	}
}

func TestNewUnrollDerivesConstants(t *testing.T) {
	g := NewWithT(t)

	u, err := NewUnroll(demoUnrollCondition())
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(u.K).To(BeNumerically("~", 2.7926e-5, 1e-8))
	g.Expect(float64(u.RhoH)).To(BeNumerically("~", 26.071, 1e-3))
}

func TestNewUnrollRejectsBadConditions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*UnrollCondition)
	}{
		{"equal radii", func(c *UnrollCondition) { c.Rmax = c.Rmin }},
		{"zero core mass", func(c *UnrollCondition) { c.Mcore = 0 }},
		{"zero paper mass", func(c *UnrollCondition) { c.Mroll = 0 }},
		{"negative tension", func(c *UnrollCondition) { c.Tension = -1 }},
		{"zero duration", func(c *UnrollCondition) { c.Duration = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond := demoUnrollCondition()
			tt.mutate(&cond)
			_, err := NewUnroll(cond)
			if !errors.Is(err, dynamo.ErrInvalidCondition) {
				t.Fatalf("expected ErrInvalidCondition, got %v", err)
			}
		})
	}
}

func TestUnrollRadiusAt(t *testing.T) {
	g := NewWithT(t)

	u, err := NewUnroll(demoUnrollCondition())
	g.Expect(err).NotTo(HaveOccurred())

	// Full roll has radius Rmax, empty roll has radius Rmin.
	g.Expect(u.RadiusAt(u.L)).To(BeNumerically("~", 0.055, 1e-9))
	g.Expect(u.RadiusAt(0)).To(BeNumerically("~", 0.02, 1e-9))
}

func TestUnrollMomentOfInertiaGrowsWithRadius(t *testing.T) {
	g := NewWithT(t)

	u, err := NewUnroll(demoUnrollCondition())
	g.Expect(err).NotTo(HaveOccurred())

	iMin := u.MomentOfInertia(u.Rmin)
	iMax := u.MomentOfInertia(u.Rmax)

	g.Expect(iMin).To(BeNumerically("<", iMax))
	// Bare core: only the Mcore·Rmin² term survives.
	g.Expect(iMin).To(BeNumerically("~", 0.015*0.02*0.02, 1e-12))
}

func TestUnrollDerive(t *testing.T) {
	g := NewWithT(t)

	u, err := NewUnroll(demoUnrollCondition())
	g.Expect(err).NotTo(HaveOccurred())

	x0 := u.InitialState()
	g.Expect(x0).To(Equal(dynamo.State{0, 0, 47.0}))

	// At rest the roll spins up but pays out nothing yet.
	dx := u.Derive(x0, 0)
	g.Expect(dx[0]).To(Equal(0.0))
	g.Expect(dx[1]).To(BeNumerically(">", 0))
	g.Expect(dx[2]).To(Equal(0.0))

	// Spinning: paper pays out at r·omega.
	dx = u.Derive(dynamo.State{100, 2, 30}, 50)
	r := u.RadiusAt(30)
	g.Expect(dx[0]).To(Equal(2.0))
	g.Expect(dx[2]).To(BeNumerically("~", -r*2, 1e-12))
}

func TestUnrollFreezesWhenPaidOut(t *testing.T) {
	u, err := NewUnroll(demoUnrollCondition())
	if err != nil {
		t.Fatal(err)
	}

	for _, y := range []float64{0, -0.001, -5} {
		dx := u.Derive(dynamo.State{1000, 20, y}, 200)
		for i, v := range dx {
			if v != 0 {
				t.Fatalf("y=%g: expected zero derivative, component %d = %g", y, i, v)
			}
		}
	}
}
