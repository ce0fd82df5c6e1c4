package experiment_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/experiment"
)

var _ = Describe("Batch", func() {
	var reg *experiment.Registry

	BeforeEach(func() {
		reg = experiment.NewRegistry()
	})

	It("runs every driver and keeps registry order", func() {
		drivers := reg.List()
		outcomes := experiment.NewBatch(4).Run(context.Background(), drivers, config.DefaultConfig())

		Expect(outcomes).To(HaveLen(len(drivers)))
		Expect(experiment.Failed(outcomes)).To(Equal(0))
		for i, o := range outcomes {
			Expect(o.Driver.Name).To(Equal(drivers[i].Name))
			Expect(o.Label).To(Equal(drivers[i].Name))
			Expect(o.Report.Driver).To(Equal(drivers[i].Name))
		}
	})

	It("matches a sequential run", func() {
		d, err := reg.Get("sor")
		Expect(err).NotTo(HaveOccurred())

		want, err := d.Execute(context.Background(), nil)
		Expect(err).NotTo(HaveOccurred())

		outcomes := experiment.NewBatch(0).Run(context.Background(), []*experiment.Driver{d}, config.DefaultConfig())
		Expect(outcomes[0].Report.Values).To(Equal(want.Values))
	})

	It("runs one driver per preset", func() {
		d, err := reg.Get("euler")
		Expect(err).NotTo(HaveOccurred())

		names := config.ListPresets()
		outcomes := experiment.NewBatch(2).Presets(context.Background(), d, names, "")
		Expect(outcomes).To(HaveLen(len(names)))

		errs := map[string]float64{}
		for _, o := range outcomes {
			Expect(o.Err).NotTo(HaveOccurred())
			errs[o.Label] = o.Report.Values["error"]
		}
		Expect(errs["precise"]).To(BeNumerically("<", errs["classroom"]))
		Expect(errs["classroom"]).To(BeNumerically("<", errs["coarse"]))
	})

	It("reports an unknown preset instead of running defaults", func() {
		d, err := reg.Get("euler")
		Expect(err).NotTo(HaveOccurred())

		outcomes := experiment.NewBatch(2).Presets(context.Background(), d, []string{"classroom", "nosuch"}, "")
		Expect(outcomes).To(HaveLen(2))
		Expect(outcomes[0].Err).NotTo(HaveOccurred())
		Expect(outcomes[1].Label).To(Equal("nosuch"))
		Expect(outcomes[1].Report).To(BeNil())
		Expect(outcomes[1].Err).To(MatchError("unknown preset: nosuch"))
		Expect(experiment.Failed(outcomes)).To(Equal(1))
	})

	It("loads a config file over every preset", func() {
		d, err := reg.Get("euler")
		Expect(err).NotTo(HaveOccurred())

		path := filepath.Join(GinkgoT().TempDir(), "ode.yaml")
		Expect(os.WriteFile(path, []byte("ode:\n  step: 0.5\n  steps: 2\n"), 0644)).To(Succeed())

		outcomes := experiment.NewBatch(2).Presets(context.Background(), d, []string{"classroom", "precise"}, path)
		for _, o := range outcomes {
			Expect(o.Err).NotTo(HaveOccurred())
			Expect(o.Report.Values["x"]).To(BeNumerically("~", 1.0, 1e-12))
		}
		Expect(outcomes[0].Report.Values["y"]).To(Equal(outcomes[1].Report.Values["y"]))
	})

	It("reports an unreadable config file per preset", func() {
		d, err := reg.Get("euler")
		Expect(err).NotTo(HaveOccurred())

		missing := filepath.Join(GinkgoT().TempDir(), "missing.yaml")
		outcomes := experiment.NewBatch(1).Presets(context.Background(), d, []string{"classroom"}, missing)
		Expect(outcomes[0].Err).To(HaveOccurred())
		Expect(outcomes[0].Err.Error()).To(ContainSubstring("preset classroom"))
	})

	It("reports cancellation per driver", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		outcomes := experiment.NewBatch(2).Run(ctx, reg.Family(experiment.FamilyRoots), nil)
		Expect(experiment.Failed(outcomes)).To(Equal(len(outcomes)))
		for _, o := range outcomes {
			Expect(o.Err).To(MatchError(context.Canceled))
		}
	})
})
