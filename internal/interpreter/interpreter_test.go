package interpreter

import (
	"bytes"
	"testing"

	"github.com/lisale0/Lox/internal/parser"
	"github.com/lisale0/Lox/internal/resolver"
	"github.com/lisale0/Lox/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	errs []*RuntimeError
}

func (r *recordingReporter) RuntimeError(err *RuntimeError) {
	r.errs = append(r.errs, err)
}

func run(t *testing.T, src string) (string, *recordingReporter) {
	t.Helper()
	toks, scanErrs := scanner.Scan(src)
	require.Empty(t, scanErrs)
	stmts, parseErrs := parser.Parse(toks)
	require.Empty(t, parseErrs)
	locals, resolveErrs := resolver.Resolve(stmts)
	require.Empty(t, resolveErrs)

	in := New()
	var buf bytes.Buffer
	in.Out = &buf
	rep := &recordingReporter{}
	in.Reporter = rep
	in.SetLocals(locals)
	in.Interpret(stmts)
	return buf.String(), rep
}

func TestVariablesAndPrint(t *testing.T) {
	out, rep := run(t, `var beverage = "espresso"; print beverage;`)
	assert.Empty(t, rep.errs)
	assert.Equal(t, "espresso\n", out)
}

func TestShortCircuitOrReturnsOperand(t *testing.T) {
	out, rep := run(t, `print "hi" or 2;`)
	assert.Empty(t, rep.errs)
	assert.Equal(t, "hi\n", out)
}

func TestShortCircuitAndReturnsOperand(t *testing.T) {
	out, rep := run(t, `print false and 2;`)
	assert.Empty(t, rep.errs)
	assert.Equal(t, "false\n", out)
}

func TestScopeShadowing(t *testing.T) {
	out, rep := run(t, `var a="g"; { var a="l"; print a; } print a;`)
	assert.Empty(t, rep.errs)
	assert.Equal(t, "l\ng\n", out)
}

func TestClosureCapturesByReference(t *testing.T) {
	out, rep := run(t, `fun mk(){var i=0; fun inc(){i=i+1; return i;} return inc;} var c=mk(); print c(); print c();`)
	assert.Empty(t, rep.errs)
	assert.Equal(t, "1\n2\n", out)
}

func TestMutualRecursion(t *testing.T) {
	out, rep := run(t, `fun isEven(n){if(n==0) return true; return isOdd(n-1);} fun isOdd(n){if(n==0) return false; return isEven(n-1);} print isEven(3);`)
	assert.Empty(t, rep.errs)
	assert.Equal(t, "false\n", out)
}

func TestRuntimeTypeErrorOnSubtractingString(t *testing.T) {
	out, rep := run(t, `print "a" - 1;`)
	assert.Equal(t, "", out)
	require.Len(t, rep.errs, 1)
	assert.Contains(t, rep.errs[0].Message, "Operands must be numbers")
}

func TestForLoopDesugaring(t *testing.T) {
	out, rep := run(t, `var total = 0; for (var i = 0; i < 4; i = i + 1) { total = total + i; } print total;`)
	assert.Empty(t, rep.errs)
	assert.Equal(t, "6\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, rep := run(t, `print "foo" + "bar";`)
	assert.Empty(t, rep.errs)
	assert.Equal(t, "foobar\n", out)
}

func TestIntegerValuedDoubleStringifiesWithoutTrailingZero(t *testing.T) {
	out, rep := run(t, `print 6 / 2;`)
	assert.Empty(t, rep.errs)
	assert.Equal(t, "3\n", out)
}

func TestFractionalDoubleStringifiesInFull(t *testing.T) {
	out, rep := run(t, `print 1 / 4;`)
	assert.Empty(t, rep.errs)
	assert.Equal(t, "0.25\n", out)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	out, rep := run(t, `print nope;`)
	assert.Equal(t, "", out)
	require.Len(t, rep.errs, 1)
	assert.Contains(t, rep.errs[0].Message, "Undefined variable")
}

func TestCallArityMismatchIsRuntimeError(t *testing.T) {
	out, rep := run(t, `fun f(a, b) { return a + b; } print f(1);`)
	assert.Equal(t, "", out)
	require.Len(t, rep.errs, 1)
	assert.Contains(t, rep.errs[0].Message, "Expected 2 arguments but got 1")
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	out, rep := run(t, `var x = 1; print x();`)
	assert.Equal(t, "", out)
	require.Len(t, rep.errs, 1)
	assert.Contains(t, rep.errs[0].Message, "Can only call functions and classes")
}

func TestClockIsCallableWithZeroArity(t *testing.T) {
	out, rep := run(t, `print clock() >= 0;`)
	assert.Empty(t, rep.errs)
	assert.Equal(t, "true\n", out)
}

func TestEqualityAcrossVariantsIsFalseNotError(t *testing.T) {
	out, rep := run(t, `print 1 == "1"; print nil == false;`)
	assert.Empty(t, rep.errs)
	assert.Equal(t, "false\nfalse\n", out)
}

func TestTruthinessOfZeroAndEmptyString(t *testing.T) {
	out, rep := run(t, `if (0) print "zero is truthy"; if ("") print "empty string is truthy";`)
	assert.Empty(t, rep.errs)
	assert.Equal(t, "zero is truthy\nempty string is truthy\n", out)
}

func TestDivisionByZeroFollowsIEEE754(t *testing.T) {
	out, rep := run(t, `print 1 / 0; print -1 / 0; print 0 / 0;`)
	assert.Empty(t, rep.errs)
	assert.Equal(t, "+Inf\n-Inf\nNaN\n", out)
}
