package quadrature_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/quadrature"
)

var _ = Describe("Rules", func() {
	DescribeTable("integrate polynomials up to their degree exactly",
		func(rule *quadrature.Rule, n int) {
			for d := 0; d <= rule.Degree; d++ {
				ig := quadrature.Monomial(d, 0, 2)
				got, err := rule.Integrate(ig.F, ig.A, ig.B, n)
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(BeNumerically("~", ig.Value, 1e-10), ig.Name)
			}
		},
		Entry("trapezoidal", quadrature.Trapezoidal, 10),
		Entry("simpson 1/3", quadrature.Simpson13, 2),
		Entry("simpson 3/8", quadrature.Simpson38, 3),
		Entry("boole", quadrature.Boole, 4),
		Entry("weddle", quadrature.Weddle, 6),
	)

	DescribeTable("are not exact one degree above",
		func(rule *quadrature.Rule) {
			ig := quadrature.Monomial(rule.Degree+1, 0, 2)
			got, err := rule.Integrate(ig.F, ig.A, ig.B, rule.Divisor)
			Expect(err).NotTo(HaveOccurred())
			Expect(math.Abs(got - ig.Value)).To(BeNumerically(">", 1e-6))
		},
		Entry("trapezoidal", quadrature.Trapezoidal),
		Entry("simpson 1/3", quadrature.Simpson13),
		Entry("boole", quadrature.Boole),
		Entry("weddle", quadrature.Weddle),
	)

	DescribeTable("reject subdivision counts that break the divisibility constraint",
		func(rule *quadrature.Rule, n int) {
			_, err := rule.Integrate(math.Sin, 0, 1, n)
			Expect(errors.Is(err, numeric.ErrSubdivisions)).To(BeTrue())

			var ruleErr *numeric.RuleError
			Expect(errors.As(err, &ruleErr)).To(BeTrue())
			Expect(ruleErr.Divisor).To(Equal(rule.Divisor))
			Expect(ruleErr.N).To(Equal(n))
		},
		Entry("simpson 1/3 odd", quadrature.Simpson13, 3),
		Entry("simpson 3/8 not multiple of 3", quadrature.Simpson38, 4),
		Entry("boole not multiple of 4", quadrature.Boole, 6),
		Entry("weddle not multiple of 6", quadrature.Weddle, 8),
		Entry("trapezoidal zero", quadrature.Trapezoidal, 0),
		Entry("boole negative", quadrature.Boole, -4),
	)

	It("reproduces the documented checks", func() {
		got, err := quadrature.Simpson13.Integrate(func(x float64) float64 { return x * x * x }, 0, 2, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeNumerically("~", 4.0, 1e-12))

		got, err = quadrature.Boole.Integrate(func(x float64) float64 { return math.Pow(x, 5) }, 0, 2, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeNumerically("~", 64.0/6.0, 1e-12))

		sq := quadrature.Square()
		got, err = quadrature.Trapezoidal.Integrate(sq.F, sq.A, sq.B, 1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(math.Abs(got - sq.Value)).To(BeNumerically("<", 1e-5))
	})

	It("converges on the standard integrals", func() {
		for _, rule := range quadrature.Rules() {
			n := rule.Divisor * 100
			for _, ig := range quadrature.Standard() {
				got, err := rule.Integrate(ig.F, ig.A, ig.B, n)
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(BeNumerically("~", ig.Value, 1e-3), rule.Name+" "+ig.Name)
			}
		}
	})
})

var _ = Describe("Registry", func() {
	It("looks rules up by key", func() {
		r, err := quadrature.Lookup("boole")
		Expect(err).NotTo(HaveOccurred())
		Expect(r).To(BeIdenticalTo(quadrature.Boole))

		_, err = quadrature.Lookup("gauss")
		Expect(err).To(MatchError(ContainSubstring("unknown quadrature rule")))
	})

	It("lists rules ordered by divisor", func() {
		rules := quadrature.Rules()
		Expect(rules).To(HaveLen(5))
		Expect(rules[0].Key).To(Equal("trapezoidal"))
		Expect(rules[4].Key).To(Equal("weddle"))
	})

	It("resolves integrand names", func() {
		for _, name := range quadrature.IntegrandNames() {
			f, err := quadrature.LookupIntegrand(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(f).NotTo(BeNil())
		}
		_, err := quadrature.LookupIntegrand("tan")
		Expect(err).To(HaveOccurred())
	})
})
