package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/JamesLinus/marss/builtins"
	"github.com/JamesLinus/marss/builtins/ooo"
	"github.com/JamesLinus/marss/config"
	"github.com/JamesLinus/marss/engine"
	"github.com/JamesLinus/marss/machine"
)

// These specs assemble real machines from the builtins plugins and run
// them through the engine, one per scenario.

var _ = Describe("end-to-end scenarios", func() {
	BeforeEach(func() {
		builtins.Register()
	})

	It("single_core stopped at zero instructions exits after exactly one cycle", func() {
		m := machine.NewMachine("s1")
		machine.Assemble(m, builtins.TemplateSingleCore, builtins.MemoryHierarchyFactory)

		cfg := config.Default()
		cfg.StopAtUserInsns = 0
		e := engine.New(m, cfg, nil, nil)

		Expect(e.Run()).To(Succeed())
		Expect(e.CurrentCycle()).To(Equal(uint64(1)))
		Expect(e.TotalUserInsnsCommitted()).To(Equal(uint64(0)))
		Expect(m.Cores()[0].(*ooo.Core).InstructionsCommitted()).To(Equal(uint64(0)))
	})

	It("dual_core committing 100/cycle/core exits at cycle 5 with budget 1000", func() {
		m := machine.NewMachine("s2")
		machine.Assemble(m, builtins.TemplateDualCore, builtins.MemoryHierarchyFactory)

		cfg := config.Default()
		cfg.StopAtUserInsns = 1000
		e := engine.New(m, cfg, nil, nil)

		Expect(e.Run()).To(Succeed())
		Expect(e.CurrentCycle()).To(Equal(uint64(5)))
		Expect(e.TotalUserInsnsCommitted()).To(Equal(uint64(1000)))
	})

	It("the same machine run threaded with one core per worker reaches the same result", func() {
		m := machine.NewMachine("s3")
		machine.Assemble(m, builtins.TemplateDualCore, builtins.MemoryHierarchyFactory)

		cfg := config.Default()
		cfg.StopAtUserInsns = 1000
		cfg.ThreadedSimulation = true
		cfg.CoresPerWorker = 1
		e := engine.New(m, cfg, nil, nil)

		Expect(e.Run()).To(Succeed())
		Expect(e.CurrentCycle()).To(Equal(uint64(5)))
		Expect(e.TotalUserInsnsCommitted()).To(Equal(uint64(1000)))
	})

	It("one core voting to terminate on its third cycle stops the whole machine at cycle 3", func() {
		m := machine.NewMachine("s4")
		m.Options().SetIntIndexed("core", 0, ooo.OptTerminateAtCycle, 3)
		machine.Assemble(m, builtins.TemplateDualCore, builtins.MemoryHierarchyFactory)

		cfg := config.Default()
		e := engine.New(m, cfg, nil, nil)

		Expect(e.Run()).To(Succeed())
		Expect(e.CurrentCycle()).To(Equal(uint64(3)))
		for _, c := range m.Cores() {
			Expect(c.(*ooo.Core).InstructionsCommitted()).To(Equal(uint64(300)))
		}
	})

	It("a template requesting an unregistered core type fails fatally before any cycle runs", func() {
		m := machine.NewMachine("s5")
		Expect(func() {
			machine.Assemble(m, builtins.TemplateBrokenCore, builtins.MemoryHierarchyFactory)
		}).To(PanicWith(BeAssignableToTypeOf(&machine.ConfigError{})))
	})

	It("threaded mode degrades to sequential once deferred logging engages", func() {
		cores := []*scenarioCore{
			{insnsPerCycle: 1, terminateAtCycle: 0},
			{insnsPerCycle: 1, terminateAtCycle: 0},
		}
		m := buildMachine(cores)

		cfg := baseConfig()
		cfg.ThreadedSimulation = true
		cfg.CoresPerWorker = 1
		cfg.StartLogAtIteration = 10

		e := engine.New(m, cfg, nil, nil)

		err := e.RunThreaded()
		Expect(err).To(MatchError(engine.ErrDegradeToSequential))
		Expect(e.CurrentCycle()).To(Equal(uint64(10)))

		for _, c := range cores {
			Expect(c.runCycleCalls).To(Equal(10))
		}

		cores[0].terminateAtCycle = 12
		Expect(e.RunSequential()).To(Succeed())
		Expect(cores[0].runCycleCalls).To(Equal(12))
	})
})
