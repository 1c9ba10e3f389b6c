package stats_test

import (
	"os"
	"path/filepath"

	"github.com/JamesLinus/marss/stats"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CSVSink", func() {
	var path string

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "stats.csv")
	})

	It("writes a header and flushed rows", func() {
		sink := stats.NewCSVSink(path)
		Expect(sink.Open()).To(Succeed())

		Expect(sink.DumpHeader()).To(Succeed())
		Expect(sink.DumpPeriodic(10000, 500)).To(Succeed())
		Expect(sink.DumpPeriodic(20000, 900)).To(Succeed())
		Expect(sink.Flush()).To(Succeed())

		contents, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(contents)).To(Equal(
			"cycle,total_user_insns_committed\n10000,500\n20000,900\n"))
	})

	It("generates a name when none is given", func() {
		wd, err := os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(GinkgoT().TempDir())).To(Succeed())
		defer func() { _ = os.Chdir(wd) }()

		sink := stats.NewCSVSink("")
		Expect(sink.Open()).To(Succeed())
	})
})
