package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRunPrintsToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	s := NewSession(&stdout, &stderr, false)
	s.Run(`print "espresso";`)
	assert.Equal(t, "espresso\n", stdout.String())
	assert.Empty(t, stderr.String())
	assert.False(t, s.Reporter.HadError())
	assert.False(t, s.Reporter.HadRuntimeError())
}

func TestSessionRunStopsBeforeInterpretingOnStaticError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	s := NewSession(&stdout, &stderr, false)
	s.Run(`print ;`)
	assert.Empty(t, stdout.String())
	assert.True(t, s.Reporter.HadError())
	assert.Contains(t, stderr.String(), "Error")
}

func TestSessionRunReportsRuntimeErrorFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	s := NewSession(&stdout, &stderr, false)
	s.Run(`print "a" - 1;`)
	assert.True(t, s.Reporter.HadRuntimeError())
	assert.Contains(t, stderr.String(), "Operands must be numbers")
	assert.Contains(t, stderr.String(), "[line 1]")
}

func TestSessionPersistsGlobalsAcrossRunCalls(t *testing.T) {
	var stdout, stderr bytes.Buffer
	s := NewSession(&stdout, &stderr, false)
	s.Run(`var count = 0;`)
	s.Run(`count = count + 1; print count;`)
	assert.Equal(t, "1\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestReporterResetClearsFlagsBetweenInputs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	s := NewSession(&stdout, &stderr, false)
	s.Run(`print ;`)
	require.True(t, s.Reporter.HadError())
	s.Reporter.Reset()
	assert.False(t, s.Reporter.HadError())
	s.Run(`print 1;`)
	assert.False(t, s.Reporter.HadError())
}

func TestRunFileExitCodeZeroOnSuccess(t *testing.T) {
	path := writeScript(t, `print "ok";`)
	assert.Equal(t, 0, RunFile(path, false))
}

func TestRunFileExitCode65OnStaticError(t *testing.T) {
	path := writeScript(t, `print ;`)
	assert.Equal(t, 65, RunFile(path, false))
}

func TestRunFileExitCode70OnRuntimeError(t *testing.T) {
	path := writeScript(t, `print "a" - 1;`)
	assert.Equal(t, 70, RunFile(path, false))
}

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}
