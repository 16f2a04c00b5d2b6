package integration

import (
	"encoding/json"
	"os"

	"github.com/containers/bbpterms/pkg/bbp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
)

func readTerms(path string) []float64 {
	b, err := os.ReadFile(path)
	Expect(err).ToNot(HaveOccurred())
	var terms []float64
	Expect(json.Unmarshal(b, &terms)).To(Succeed())
	return terms
}

var _ = Describe("bbpterms compute", func() {
	It("prints and writes a single quadruple", func() {
		output := bbpterms.TempPath("output.json")
		session := bbpterms.BbptermsWait([]string{"2", "1", output})
		Expect(session).Should(gexec.Exit(0))
		Expect(session.OutputToString()).To(Equal("[0.0, 0.0, 0.2, 0.6666666666666666]"))
		Expect(readTerms(output)).To(Equal([]float64{0, 0, 0.2, 4.0 / 6}))
	})

	It("starts at one for position zero", func() {
		output := bbpterms.TempPath("output.json")
		session := bbpterms.BbptermsWait([]string{"0", "1", output})
		Expect(session).Should(gexec.Exit(0))
		Expect(readTerms(output)[0]).To(Equal(1.0))
	})

	It("round trips every term through the output file", func() {
		output := bbpterms.TempPath("output.json")
		session := bbpterms.BbptermsWait([]string{"1600", "100", output})
		Expect(session).Should(gexec.Exit(0))

		terms := readTerms(output)
		Expect(terms).To(HaveLen(400))
		Expect(terms).To(Equal([]float64(bbp.ComputeSequence(1600, 100))))
		for i := 0; i < 100; i++ {
			for c, j := range bbp.SeriesConstants {
				Expect(terms[4*i+c]).To(Equal(bbp.Compute(1600, int64(i), j)))
			}
		}
	})

	It("writes an empty array for a zero count", func() {
		output := bbpterms.TempPath("output.json")
		session := bbpterms.BbptermsWait([]string{"5", "0", output})
		Expect(session).Should(gexec.Exit(0))
		Expect(session.OutputToString()).To(Equal("[]"))
		b, err := os.ReadFile(output)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(b)).To(Equal("[]"))
	})

	It("overwrites an existing output file", func() {
		output := bbpterms.WriteTempFile("output.json", `{"previous": "content that is longer than the result"}`)
		session := bbpterms.BbptermsWait([]string{"1", "1", output})
		Expect(session).Should(gexec.Exit(0))
		Expect(readTerms(output)).To(HaveLen(4))
	})

	It("accepts a negative position after --", func() {
		output := bbpterms.TempPath("output.json")
		session := bbpterms.BbptermsWait([]string{"--", "-2", "1", output})
		Expect(session).Should(gexec.Exit(0))
		Expect(readTerms(output)[0]).To(Equal(1.0 / 256))
	})

	It("prints JSON with --format json", func() {
		output := bbpterms.TempPath("output.json")
		session := bbpterms.BbptermsWait([]string{"--format", "json", "0", "1", output})
		Expect(session).Should(gexec.Exit(0))
		Expect(session.OutputToString()).To(Equal("[1,0.25,0.2,0.16666666666666666]"))
	})

	It("renders a Go template with --format", func() {
		output := bbpterms.TempPath("output.json")
		session := bbpterms.BbptermsWait([]string{"--format", "{{.K}} {{.J}} {{.Term}}", "2", "1", output})
		Expect(session).Should(gexec.Exit(0))
		Expect(session.OutputToStringArray()).To(Equal([]string{"0 1 0.0", "0 4 0.0", "0 5 0.2", "0 6 0.6666666666666666"}))
	})

	It("fails on a non-numeric position", func() {
		output := bbpterms.TempPath("output.json")
		session := bbpterms.BbptermsWait([]string{"abc", "1", output})
		Expect(session).Should(gexec.Exit(125))
		Expect(session.ErrorToString()).To(ContainSubstring(`parsing N "abc"`))
		Expect(output).ToNot(BeAnExistingFile())
	})

	It("fails on a non-numeric count", func() {
		session := bbpterms.BbptermsWait([]string{"1", "1.5", bbpterms.TempPath("output.json")})
		Expect(session).Should(gexec.Exit(125))
		Expect(session.ErrorToString()).To(ContainSubstring(`parsing COUNT "1.5"`))
	})

	It("fails on a negative count", func() {
		session := bbpterms.BbptermsWait([]string{"--", "1", "-1", bbpterms.TempPath("output.json")})
		Expect(session).Should(gexec.Exit(125))
		Expect(session.ErrorToString()).To(ContainSubstring("COUNT must not be negative"))
	})

	It("fails with the wrong number of arguments", func() {
		session := bbpterms.BbptermsWait([]string{"1", "2"})
		Expect(session).Should(gexec.Exit(125))
		Expect(session.ErrorToString()).To(ContainSubstring("requires 3 arguments (N COUNT OUTPUT), received 2"))
	})

	It("fails on an unwritable output path", func() {
		session := bbpterms.BbptermsWait([]string{"1", "2", bbpterms.TempPath("missing/output.json")})
		Expect(session).Should(gexec.Exit(125))
		Expect(session.ErrorToString()).To(ContainSubstring("writing sequence file"))
	})

	It("honors the log level from the configuration file", func() {
		conf := bbpterms.WriteTempFile("bbpterms.conf", "[engine]\nlog_level = \"debug\"\n")
		session := bbpterms.BbptermsWait([]string{"--config", conf, "1", "1", bbpterms.TempPath("output.json")})
		Expect(session).Should(gexec.Exit(0))
		Expect(session.ErrorToString()).To(ContainSubstring("Computed 4 terms for position 1"))

		session = bbpterms.BbptermsWait([]string{"--config", conf, "--log-level", "error", "1", "1", bbpterms.TempPath("output.json")})
		Expect(session).Should(gexec.Exit(0))
		Expect(session.ErrorToString()).To(BeEmpty())
	})

	It("rejects an unknown log level", func() {
		session := bbpterms.BbptermsWait([]string{"--log-level", "verbose", "1", "1", bbpterms.TempPath("output.json")})
		Expect(session).Should(gexec.Exit(125))
		Expect(session.ErrorToString()).To(ContainSubstring(`"verbose" is not a valid value`))
	})
})
