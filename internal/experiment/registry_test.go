package experiment_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/experiment"
	"github.com/san-kum/numlab/internal/report"
)

var _ = Describe("Registry", func() {
	var reg *experiment.Registry

	BeforeEach(func() {
		reg = experiment.NewRegistry()
	})

	It("holds one driver per example", func() {
		Expect(reg.ListNames()).To(Equal([]string{
			"fixed-point", "newton-raphson",
			"jacobi", "gauss-seidel", "sor",
			"jacobi-eigen", "power", "lu", "neumann",
			"trapezoidal", "simpson13", "simpson38", "boole", "weddle",
			"euler", "modified-euler", "picard", "taylor",
		}))
	})

	It("groups drivers by family", func() {
		for _, family := range experiment.Families {
			drivers := reg.Family(family)
			Expect(drivers).NotTo(BeEmpty(), family)
			for _, d := range drivers {
				Expect(d.Family).To(Equal(family))
			}
		}
	})

	It("rejects unknown drivers", func() {
		_, err := reg.Get("runge-kutta-fehlberg")
		Expect(err).To(MatchError(ContainSubstring("unknown driver")))
	})

	It("rejects duplicate registrations", func() {
		d, err := reg.Get("euler")
		Expect(err).NotTo(HaveOccurred())
		Expect(reg.Register(d)).To(MatchError(ContainSubstring("already registered")))
		Expect(reg.Register(&experiment.Driver{Name: "empty"})).To(HaveOccurred())
	})

	It("accepts new drivers", func() {
		d := &experiment.Driver{
			Name:   "noop",
			Family: experiment.FamilyRoots,
			Run: func(ctx context.Context, cfg *config.Config, r *report.Report) error {
				r.Printf("ok")
				return nil
			},
		}
		Expect(reg.Register(d)).To(Succeed())

		names := reg.ListNames()
		Expect(names[2]).To(Equal("noop"))
	})

	It("runs every driver with the default configuration", func() {
		ctx := context.Background()
		for _, d := range reg.List() {
			r, err := d.Execute(ctx, config.DefaultConfig())
			Expect(err).NotTo(HaveOccurred(), d.Name)
			Expect(r.Driver).To(Equal(d.Name))
			Expect(r.Sections).NotTo(BeEmpty(), d.Name)
			Expect(r.Warnings).To(BeEmpty(), d.Name)
		}
	})

	It("runs every driver under each preset", func() {
		ctx := context.Background()
		for _, preset := range config.ListPresets() {
			cfg := config.GetPreset(preset)
			for _, d := range reg.List() {
				_, err := d.Execute(ctx, cfg)
				Expect(err).NotTo(HaveOccurred(), preset+"/"+d.Name)
			}
		}
	})

	It("stops on a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		d, err := reg.Get("jacobi")
		Expect(err).NotTo(HaveOccurred())

		_, err = d.Execute(ctx, nil)
		Expect(err).To(MatchError(context.Canceled))
	})
})
