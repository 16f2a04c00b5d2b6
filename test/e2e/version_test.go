package integration

import (
	"encoding/json"

	"github.com/containers/bbpterms/version"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("bbpterms version", func() {
	It("prints the version table", func() {
		session := bbpterms.BbptermsWait([]string{"version"})
		Expect(session).Should(gexec.Exit(0))
		Expect(session.OutputToString()).To(MatchRegexp(`Version:\s+` + version.Version.String()))
		Expect(session.OutputToString()).To(ContainSubstring("OS/Arch:"))
	})

	It("honors --format", func() {
		session := bbpterms.BbptermsWait([]string{"version", "--format", "{{.Version}}"})
		Expect(session).Should(gexec.Exit(0))
		Expect(session.OutputToString()).To(Equal(version.Version.String()))

		session = bbpterms.BbptermsWait([]string{"version", "--format", "json"})
		Expect(session).Should(gexec.Exit(0))
		var v map[string]interface{}
		Expect(json.Unmarshal(session.Out.Contents(), &v)).To(Succeed())
		Expect(v).To(HaveKeyWithValue("FileFormatVersion", BeNumerically("==", version.FileFormatVersion)))
	})

	It("matches --version", func() {
		session := bbpterms.BbptermsWait([]string{"--version"})
		Expect(session).Should(gexec.Exit(0))
		Expect(session.OutputToString()).To(ContainSubstring(version.Version.String()))
	})

	It("takes no arguments", func() {
		session := bbpterms.BbptermsWait([]string{"version", "extra"})
		Expect(session).Should(gexec.Exit(125))
		Expect(session.ErrorToString()).To(ContainSubstring("`bbpterms version` takes no arguments"))
	})
})
