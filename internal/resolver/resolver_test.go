package resolver

import (
	"testing"

	"github.com/lisale0/Lox/internal/parser"
	"github.com/lisale0/Lox/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustResolve(t *testing.T, src string) (Locals, []*Error) {
	t.Helper()
	toks, scanErrs := scanner.Scan(src)
	require.Empty(t, scanErrs)
	stmts, parseErrs := parser.Parse(toks)
	require.Empty(t, parseErrs)
	return Resolve(stmts)
}

func TestResolveLocalShadowing(t *testing.T) {
	_, errs := mustResolve(t, `var a = "g"; { var a = "l"; print a; } print a;`)
	assert.Empty(t, errs)
}

func TestResolveSelfReferentialInitializerIsError(t *testing.T) {
	_, errs := mustResolve(t, `var a = "outer"; { var a = a; }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "own initializer")
}

func TestResolveDuplicateLocalDeclarationIsError(t *testing.T) {
	_, errs := mustResolve(t, `{ var a = 1; var a = 2; }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "already declared")
}

func TestResolveGlobalRedeclarationIsAllowed(t *testing.T) {
	_, errs := mustResolve(t, `var a = 1; var a = 2;`)
	assert.Empty(t, errs)
}

func TestResolveTopLevelReturnIsError(t *testing.T) {
	_, errs := mustResolve(t, `return 1;`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "top-level code")
}

func TestResolveReturnInsideFunctionIsFine(t *testing.T) {
	_, errs := mustResolve(t, `fun f() { return 1; }`)
	assert.Empty(t, errs)
}

func TestResolveLocalDepthRecorded(t *testing.T) {
	locals, errs := mustResolve(t, `fun outer() { var x = 1; fun inner() { return x; } return inner(); }`)
	assert.Empty(t, errs)
	assert.NotEmpty(t, locals)
}
