package machine_test

import (
	"fmt"

	"github.com/JamesLinus/marss/machine"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registries", func() {
	It("lets a later registration replace an earlier one under the same key", func() {
		key := fmt.Sprintf("dup-core-%d", GinkgoRandomSeed())

		first := newFakeCoreFactory(1)
		second := newFakeCoreFactory(2)

		machine.RegisterCore(key, first)
		machine.RegisterCore(key, second)

		templateName := fmt.Sprintf("dup-template-%d", GinkgoRandomSeed())
		machine.RegisterMachine(templateName, func(m *machine.Machine) error {
			m.AddCore("core", key)
			return nil
		})

		m := machine.NewMachine("m")
		machine.Assemble(m, templateName, fakeMemFactory)

		c := m.Cores()[0].(*fakeCore)
		Expect(c.insnsPerCycle).To(Equal(uint64(2)))
	})
})
