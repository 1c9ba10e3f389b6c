package machine_test

import (
	"github.com/JamesLinus/marss/machine"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Context pool", func() {
	It("claims contexts in allocation order", func() {
		m := machine.NewMachine("m")

		c0, err := m.ClaimContext()
		Expect(err).NotTo(HaveOccurred())
		c1, err := m.ClaimContext()
		Expect(err).NotTo(HaveOccurred())

		Expect(c0.ID()).To(Equal(0))
		Expect(c1.ID()).To(Equal(1))
	})

	It("refuses to exceed the architectural maximum", func() {
		m := machine.NewMachine("m")

		for i := 0; i < machine.MaxContexts; i++ {
			_, err := m.ClaimContext()
			Expect(err).NotTo(HaveOccurred())
		}

		_, err := m.ClaimContext()
		Expect(err).To(HaveOccurred())
	})

	It("rewinds on Reset", func() {
		m := machine.NewMachine("m")
		_, _ = m.ClaimContext()
		_, _ = m.ClaimContext()

		m.Reset()

		c0, err := m.ClaimContext()
		Expect(err).NotTo(HaveOccurred())
		Expect(c0.ID()).To(Equal(0))
	})
})
