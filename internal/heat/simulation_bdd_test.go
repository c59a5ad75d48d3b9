package heat_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/heatsim/internal/heat"
)

var _ = Describe("Simulation", func() {
	var sim *heat.Simulation

	for _, scheme := range heat.Schemes {
		Context("with the "+scheme.String()+" scheme", func() {
			BeforeEach(func() {
				var err error
				sim, err = heat.New(40, scheme)
				Expect(err).NotTo(HaveOccurred())
			})

			It("starts at time zero with the supplied initial condition", func() {
				sim.Apply(func(x float64) float64 { return math.Cos(x) })

				Expect(sim.Time()).To(BeZero())
				Expect(sim.Steps()).To(BeZero())
				grid := sim.Grid()
				for i, v := range sim.Solution() {
					Expect(v).To(Equal(math.Cos(grid[i])))
				}
			})

			It("pins both boundary values to zero after every step", func() {
				sim.Apply(func(x float64) float64 { return 1 + x })
				for k := 1; k <= 25; k++ {
					sim.Step()
					u := sim.Solution()
					Expect(u[0]).To(Equal(heat.BoundaryValue))
					Expect(u[len(u)-1]).To(Equal(heat.BoundaryValue))
				}
			})

			It("advances time by exactly one step size per step", func() {
				for k := 1; k <= 50; k++ {
					sim.Step()
					Expect(sim.Steps()).To(Equal(k))
					Expect(sim.Time()).To(BeNumerically("~", float64(k)*sim.Dt(), 1e-12))
				}
			})

			It("overshoots the end time by less than one step", func() {
				Expect(sim.RunUntil(0.3)).To(Succeed())
				Expect(sim.Time()).To(BeNumerically(">", 0.3))
				Expect(sim.Time() - sim.Dt()).To(BeNumerically("<=", 0.3))
			})

			It("always takes at least one more step when rerun with the same end time", func() {
				Expect(sim.RunUntil(0.2)).To(Succeed())
				steps, t := sim.Steps(), sim.Time()

				Expect(sim.RunUntil(0.2)).To(Succeed())
				Expect(sim.Steps()).To(Equal(steps + 1))
				Expect(sim.Time()).To(BeNumerically(">", t))
			})

			It("stays zero from a zero initial condition", func() {
				Expect(sim.RunUntil(0.5)).To(Succeed())
				Expect(sim.Solution()).To(HaveEach(BeZero()))
			})
		})
	}

	Describe("construction failures", func() {
		It("rejects two grid points", func() {
			s, err := heat.New(2, heat.Explicit)
			Expect(s).To(BeNil())
			Expect(err).To(MatchError(heat.ErrConfiguration))
		})

		It("rejects unknown scheme labels", func() {
			s, err := heat.NewFromLabel(80, "Leapfrog")
			Expect(s).To(BeNil())
			Expect(err).To(MatchError(heat.ErrUnknownScheme))
			Expect(err).To(MatchError(heat.ErrConfiguration))
		})
	})
})
