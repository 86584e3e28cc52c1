// Package testutil provides small helpers shared by this module's tests.
package testutil

import (
	"bytes"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

// RunSelfTest re-executes the current test binary with -test.run=testName
// and env=1 set, so that a test scenario that must exit or panic the
// process can be observed from a parent test without killing the real
// test run. It returns the child's exit code and combined output.
func RunSelfTest(t *testing.T, testName, env string) (int, string) {
	t.Helper()

	exe, err := os.Executable()
	require.NoError(t, err)

	cmd := exec.Command(exe, "-test.run="+testName)
	cmd.Env = append(os.Environ(), env+"=1")

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	_ = cmd.Run()
	return cmd.ProcessState.ExitCode(), out.String()
}
