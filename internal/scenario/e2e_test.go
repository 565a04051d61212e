package scenario_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/paperlab/rollsim/internal/config"
	"github.com/paperlab/rollsim/internal/dynamo"
	"github.com/paperlab/rollsim/internal/interp"
	"github.com/paperlab/rollsim/internal/scenario"
)

func execute(scenarioName, preset string) (*dynamo.Trajectory, map[string]float64) {
	GinkgoHelper()
	cfg := config.GetPreset(scenarioName, preset)
	Expect(cfg).NotTo(BeNil())
	run, err := scenario.Assemble(cfg)
	Expect(err).NotTo(HaveOccurred())
	traj, vals, err := run.Execute(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return traj, vals
}

var _ = Describe("Roll", func() {
	var (
		traj *dynamo.Trajectory
		vals map[string]float64
	)

	BeforeEach(func() {
		traj, vals = execute("roll", "demo")
	})

	It("turns at the drive rate for the whole run", func() {
		Expect(traj.Final()[0]).To(BeNumerically("~", 1300, 1e-9))
		Expect(vals["total_rotation"]).To(BeNumerically("~", 1300, 1e-9))
	})

	It("takes up all 47 m with radius growing toward Rmax", func() {
		Expect(traj.Final()[1]).To(BeNumerically("~", 49.597, 0.01))
		Expect(vals["final_r"]).To(BeNumerically("~", 0.05630, 2e-4))
	})

	It("finishes take-up shortly before the run ends", func() {
		Expect(vals["takeup_time"]).To(BeNumerically("~", 125.33, 0.1))
	})

	It("answers point queries along the wound length", func() {
		ys := traj.Series("y")
		t47, err := interp.TimeOf(traj.Times, ys, 47)
		Expect(err).NotTo(HaveOccurred())
		Expect(t47).To(BeNumerically("~", 125.33, 0.1))

		r47, err := interp.At(traj.Times, traj.Series("r"), t47)
		Expect(err).NotTo(HaveOccurred())
		Expect(r47).To(BeNumerically("~", 0.0550, 2e-4))

		theta47, err := interp.At(traj.Times, traj.Series("theta"), t47)
		Expect(err).NotTo(HaveOccurred())
		Expect(theta47).To(BeNumerically("~", 1253.3, 1.0))
	})

	It("keeps the radius within the roll's physical range", func() {
		for _, r := range traj.Series("r") {
			Expect(r).To(BeNumerically(">=", 0.02))
			Expect(r).To(BeNumerically("<=", 0.0564))
		}
	})
})

var _ = Describe("Unroll", func() {
	Context("over the three-minute demo", func() {
		var (
			traj *dynamo.Trajectory
			vals map[string]float64
		)

		BeforeEach(func() {
			traj, vals = execute("unroll", "demo")
		})

		It("leaves most of the roll unpaid under the light tension", func() {
			Expect(traj.Final()[2]).To(BeNumerically("~", 20.80, 0.05))
			Expect(vals["final_y"]).To(Equal(traj.Final()[2]))
		})

		It("spins up monotonically under constant pull", func() {
			omegas := traj.Series("omega")
			for i := 1; i < len(omegas); i++ {
				Expect(omegas[i]).To(BeNumerically(">=", omegas[i-1]))
			}
			Expect(omegas[0]).To(BeZero())
			Expect(vals["peak_omega"]).To(BeNumerically("~", 7.373, 0.01))
		})

		It("pays out paper without rewinding", func() {
			ys := traj.Series("y")
			for i := 1; i < len(ys); i++ {
				Expect(ys[i]).To(BeNumerically("<=", ys[i-1]))
			}
			Expect(traj.Final()[0]).To(BeNumerically("~", 554.5, 0.5))
		})
	})

	Context("run long enough to pay out fully", func() {
		var traj *dynamo.Trajectory

		BeforeEach(func() {
			traj, _ = execute("unroll", "full")
		})

		It("stops at the end of the paper", func() {
			final := traj.Final()
			Expect(final[2]).To(BeNumerically("~", 0, 0.01))
			Expect(final[0]).To(BeNumerically("~", 1253.4, 0.5))
			Expect(final[1]).To(BeNumerically("~", 19.81, 0.05))
		})

		It("matches the roll's total rotation once empty", func() {
			// Both scenarios wind the same 47 m through the same radii,
			// so the total turn angle must agree.
			rollTraj, _ := execute("roll", "demo")
			t47, err := interp.TimeOf(rollTraj.Times, rollTraj.Series("y"), 47)
			Expect(err).NotTo(HaveOccurred())
			rollTheta, err := interp.At(rollTraj.Times, rollTraj.Series("theta"), t47)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Final()[0]).To(BeNumerically("~", rollTheta, 1.0))
		})
	})
})

var _ = Describe("Yo-yo", func() {
	var (
		traj *dynamo.Trajectory
		vals map[string]float64
	)

	BeforeEach(func() {
		traj, vals = execute("yoyo", "demo")
	})

	It("descends for the whole drop", func() {
		vels := traj.Series("v")
		for _, v := range vels {
			Expect(v).To(BeNumerically("<=", 1e-12))
		}
		ys := traj.Series("y")
		for i := 1; i < len(ys); i++ {
			Expect(ys[i]).To(BeNumerically("<=", ys[i-1]))
		}
	})

	It("falls much slower than free fall", func() {
		// Free fall over 1 m would reach sqrt(2 g L) = 4.43 m/s.
		Expect(vals["peak_speed"]).To(BeNumerically("~", 1.995, 0.02))
		Expect(vals["peak_speed"]).To(BeNumerically("<", 4.43))
	})

	It("runs out of string just before the end of the window", func() {
		Expect(vals["payout_time"]).To(BeNumerically("~", 0.88, 0.03))
		Expect(traj.Final()[2]).To(BeNumerically("~", 0, 0.01))
	})

	It("holds its state once the string is spent", func() {
		frozen := -1
		for i, s := range traj.States {
			if s[2] < 0 {
				frozen = i
				break
			}
		}
		Expect(frozen).To(BeNumerically(">", 0))
		for i := frozen + 1; i < traj.Len(); i++ {
			Expect(traj.States[i]).To(Equal(traj.States[frozen]))
		}
	})

	It("accumulates spin throughout the drop", func() {
		final := traj.Final()
		Expect(final[0]).To(BeNumerically("~", 67.1, 0.2))
		Expect(final[1]).To(BeNumerically("~", 144.6, 0.5))
	})
})
