package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
)

// DefaultWaitTimeout is how long a session may run before the spec fails.
var DefaultWaitTimeout = 90 * time.Second

// BbptermsTest runs a bbpterms binary inside a per-spec temporary directory.
type BbptermsTest struct {
	Binary  string
	TempDir string
}

// BbptermsSession wraps a running or finished bbpterms process.
type BbptermsSession struct {
	*gexec.Session
}

// BbptermsTestCreate returns a BbptermsTest for binary working in tempDir.
func BbptermsTestCreate(binary, tempDir string) *BbptermsTest {
	return &BbptermsTest{
		Binary:  binary,
		TempDir: tempDir,
	}
}

// Bbpterms starts the binary with args, in the temporary directory.
func (p *BbptermsTest) Bbpterms(args []string) *BbptermsSession {
	GinkgoWriter.Printf("Running: %s %s\n", p.Binary, strings.Join(args, " "))
	command := exec.Command(p.Binary, args...)
	command.Dir = p.TempDir
	session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
	Expect(err).ToNot(HaveOccurred(), "starting %s", p.Binary)
	return &BbptermsSession{session}
}

// BbptermsWait runs the binary with args and waits for it to exit.
func (p *BbptermsTest) BbptermsWait(args []string) *BbptermsSession {
	session := p.Bbpterms(args)
	session.WaitWithDefaultTimeout()
	return session
}

// TempPath returns the path of name inside the temporary directory.
func (p *BbptermsTest) TempPath(name string) string {
	return filepath.Join(p.TempDir, name)
}

// WriteTempFile writes content to name inside the temporary directory and
// returns its path.
func (p *BbptermsTest) WriteTempFile(name, content string) string {
	path := p.TempPath(name)
	Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
	return path
}

// WaitWithDefaultTimeout waits for the process to exit.
func (s *BbptermsSession) WaitWithDefaultTimeout() {
	Eventually(s.Session, DefaultWaitTimeout).Should(gexec.Exit())
}

// OutputToString returns the standard output with surrounding whitespace
// removed.
func (s *BbptermsSession) OutputToString() string {
	return strings.TrimSpace(string(s.Out.Contents()))
}

// OutputToStringArray returns the non-empty lines of the standard output.
func (s *BbptermsSession) OutputToStringArray() []string {
	var lines []string
	for _, line := range strings.Split(string(s.Out.Contents()), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ErrorToString returns the standard error with surrounding whitespace
// removed.
func (s *BbptermsSession) ErrorToString() string {
	return strings.TrimSpace(string(s.Err.Contents()))
}

// SystemExec starts command with args and waits for it to exit.
func SystemExec(command string, args []string) *BbptermsSession {
	c := exec.Command(command, args...)
	session, err := gexec.Start(c, GinkgoWriter, GinkgoWriter)
	if err != nil {
		Fail("unable to run command: " + command + " " + strings.Join(args, " "))
	}
	s := &BbptermsSession{session}
	s.WaitWithDefaultTimeout()
	return s
}
