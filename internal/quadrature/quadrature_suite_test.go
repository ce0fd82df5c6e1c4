package quadrature_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestQuadrature(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Quadrature Suite")
}
