package integration

import (
	"encoding/json"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
)

func tamper(path string, deltas map[int]float64) {
	terms := readTerms(path)
	for i, d := range deltas {
		terms[i] += d
	}
	b, err := json.Marshal(terms)
	Expect(err).ToNot(HaveOccurred())
	Expect(os.WriteFile(path, b, 0o644)).To(Succeed())
}

var _ = Describe("bbpterms verify", func() {
	var output string

	BeforeEach(func() {
		output = bbpterms.TempPath("output.json")
		session := bbpterms.BbptermsWait([]string{"1600", "100", output})
		Expect(session).Should(gexec.Exit(0))
	})

	It("passes on a freshly computed file", func() {
		session := bbpterms.BbptermsWait([]string{"verify", output, "1600"})
		Expect(session).Should(gexec.Exit(0))
		Expect(session.OutputToString()).To(Equal("Passed 400 terms, max delta 0.0"))
	})

	It("tolerates differences below the threshold", func() {
		tamper(output, map[int]float64{17: 0.0005})
		session := bbpterms.BbptermsWait([]string{"verify", output, "1600"})
		Expect(session).Should(gexec.Exit(0))
		Expect(session.OutputToString()).To(MatchRegexp(`^Passed 400 terms, max delta 0\.000[45]\d*$`))
	})

	It("fails on differences at or above the threshold", func() {
		tamper(output, map[int]float64{3: 0.5, 42: -0.01})
		session := bbpterms.BbptermsWait([]string{"verify", output, "1600"})
		Expect(session).Should(gexec.Exit(125))
		Expect(session.ErrorToString()).To(ContainSubstring("2 of 400 terms differ by 0.001 or more"))
		Expect(session.ErrorToString()).To(ContainSubstring("at idx 3 "))
		Expect(session.ErrorToString()).To(ContainSubstring("at idx 42 "))
	})

	It("honors --threshold", func() {
		tamper(output, map[int]float64{3: 0.0005})
		session := bbpterms.BbptermsWait([]string{"verify", "--threshold", "1e-6", output, "1600"})
		Expect(session).Should(gexec.Exit(125))
		Expect(session.ErrorToString()).To(ContainSubstring("1 of 400 terms differ by 1e-06 or more"))
	})

	It("fails against the wrong position", func() {
		session := bbpterms.BbptermsWait([]string{"verify", output, "1601"})
		Expect(session).Should(gexec.Exit(125))
		Expect(session.ErrorToString()).To(MatchRegexp(`and \d+ more`))
	})

	It("compares two files with --against", func() {
		other := bbpterms.TempPath("other.json")
		session := bbpterms.BbptermsWait([]string{"1600", "100", other})
		Expect(session).Should(gexec.Exit(0))

		session = bbpterms.BbptermsWait([]string{"verify", "--against", other, output, "1600"})
		Expect(session).Should(gexec.Exit(0))

		short := bbpterms.TempPath("short.json")
		session = bbpterms.BbptermsWait([]string{"1600", "10", short})
		Expect(session).Should(gexec.Exit(0))
		session = bbpterms.BbptermsWait([]string{"verify", "--against", short, output, "1600"})
		Expect(session).Should(gexec.Exit(125))
		Expect(session.ErrorToString()).To(ContainSubstring("sequence length mismatch"))
	})
})
