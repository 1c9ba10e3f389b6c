package machine_test

import (
	"github.com/JamesLinus/marss/machine"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OptionsStore", func() {
	var opts *machine.OptionsStore

	BeforeEach(func() {
		opts = machine.NewOptionsStore()
	})

	It("round-trips a bool option", func() {
		opts.SetBool("core0", "verbose", true)
		v, ok := opts.GetBool("core0", "verbose")
		Expect(ok).To(BeTrue())
		Expect(v).To(BeTrue())
	})

	It("round-trips an int option", func() {
		opts.SetInt("core0", "insns_per_cycle", 4)
		v, ok := opts.GetInt("core0", "insns_per_cycle")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(4))
	})

	It("round-trips a string option", func() {
		opts.SetString("l1_0", "policy", "lru")
		v, ok := opts.GetString("l1_0", "policy")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("lru"))
	})

	It("overwrites on duplicate set", func() {
		opts.SetInt("core0", "x", 1)
		opts.SetInt("core0", "x", 2)
		v, ok := opts.GetInt("core0", "x")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(2))
	})

	It("reports absence without coercion across kinds", func() {
		opts.SetBool("core0", "x", true)
		_, ok := opts.GetInt("core0", "x")
		Expect(ok).To(BeFalse())
	})

	It("reports absence for an unknown name", func() {
		_, ok := opts.GetString("unknown", "x")
		Expect(ok).To(BeFalse())
	})

	It("supports the prefix+index convenience overload", func() {
		opts.SetIntIndexed("core", 2, "insns_per_cycle", 7)
		v, ok := opts.GetInt("core2", "insns_per_cycle")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(7))

		v2, ok2 := opts.GetIntIndexed("core", 2, "insns_per_cycle")
		Expect(ok2).To(BeTrue())
		Expect(v2).To(Equal(7))
	})
})
