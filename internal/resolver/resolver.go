// Package resolver implements the static pass that walks the AST once
// before evaluation, binding each local variable reference to the scope
// depth at which its binding lives. The Interpreter consults the
// resulting side table instead of searching the environment chain at
// every access.
package resolver

import (
	"github.com/lisale0/Lox/internal/ast"
	"github.com/lisale0/Lox/internal/token"
)

// Error is a single resolution error tied to the token that triggered it.
type Error struct {
	Token   token.Token
	Message string
}

func (e *Error) Error() string { return e.Message }

// Locals is the side table produced by Resolve: an expression node's ID
// maps to how many environments up the chain (from the environment active
// at evaluation time) its binding lives. Absence means the name is global.
type Locals map[int]int

type functionType int

const (
	functionNone functionType = iota
	functionFunction
)

// Resolver walks statements and expressions without evaluating them,
// mirroring the interpreter's own scoping rules.
type Resolver struct {
	scopes          []map[string]bool
	currentFunction functionType
	locals          Locals
	errors          []*Error
}

// New returns a Resolver with an empty side table.
func New() *Resolver {
	return &Resolver{locals: make(Locals)}
}

// Resolve walks the given statements and returns the resulting side table
// together with any resolution errors encountered.
func Resolve(stmts []ast.Stmt) (Locals, []*Error) {
	r := New()
	r.ResolveStmts(stmts)
	return r.locals, r.errors
}

// ResolveStmts resolves a list of statements in the current scope.
func (r *Resolver) ResolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

// Locals returns the side table accumulated so far.
func (r *Resolver) Locals() Locals { return r.locals }

// Errors returns every resolution error accumulated so far.
func (r *Resolver) Errors() []*Error { return r.errors }

func (r *Resolver) resolveStmt(s ast.Stmt) {
	// the visitor methods below never return a real error; they record
	// into r.errors directly, matching the teacher's error-reporter
	// collaborator pattern instead of threading resolve errors as Go
	// errors through every recursive call.
	_ = s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	_, _ = e.Accept(r)
}

// --- StmtVisitor ---

// VisitBlock resolves a block's statements in a fresh child scope.
func (r *Resolver) VisitBlock(s *ast.Block) error {
	r.beginScope()
	r.ResolveStmts(s.Statements)
	r.endScope()
	return nil
}

// VisitVar declares the name before resolving its initializer (so a
// self-referential initializer can be detected) and defines it after.
func (r *Resolver) VisitVar(s *ast.Var) error {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil
}

// VisitFunction declares and defines the function's own name eagerly (so
// it can recurse), then resolves its body with a fresh scope seeded with
// its parameters.
func (r *Resolver) VisitFunction(s *ast.Function) error {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, functionFunction)
	return nil
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionType) {
	enclosing := r.currentFunction
	r.currentFunction = kind
	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.ResolveStmts(fn.Body)
	r.endScope()
	r.currentFunction = enclosing
}

// VisitExpression resolves a bare expression statement.
func (r *Resolver) VisitExpression(s *ast.Expression) error {
	r.resolveExpr(s.Expr)
	return nil
}

// VisitPrint resolves a print statement's expression.
func (r *Resolver) VisitPrint(s *ast.Print) error {
	r.resolveExpr(s.Expr)
	return nil
}

// VisitIf resolves the condition and both branches (an absent else branch
// is a no-op).
func (r *Resolver) VisitIf(s *ast.If) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil
}

// VisitWhile resolves the condition and body.
func (r *Resolver) VisitWhile(s *ast.While) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}

// VisitReturn rejects a return outside any function and resolves the
// return value expression when present.
func (r *Resolver) VisitReturn(s *ast.Return) error {
	if r.currentFunction == functionNone {
		r.fail(s.Keyword, "Cannot return from top-level code.")
	}
	if s.Value != nil {
		r.resolveExpr(s.Value)
	}
	return nil
}

// --- ExprVisitor ---

// VisitVariable resolves a variable reference: if the current (innermost)
// scope has declared but not yet defined this name, referencing it here
// is an error (reading a local in its own initializer).
func (r *Resolver) VisitVariable(e *ast.Variable) (interface{}, error) {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
			r.fail(e.Name, "Cannot read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
	return nil, nil
}

// VisitAssign resolves the value expression, then the assignment target.
func (r *Resolver) VisitAssign(e *ast.Assign) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil, nil
}

// VisitBinary resolves both operands.
func (r *Resolver) VisitBinary(e *ast.Binary) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

// VisitCall resolves the callee and every argument.
func (r *Resolver) VisitCall(e *ast.Call) (interface{}, error) {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Args {
		r.resolveExpr(arg)
	}
	return nil, nil
}

// VisitGrouping resolves the inner expression.
func (r *Resolver) VisitGrouping(e *ast.Grouping) (interface{}, error) {
	r.resolveExpr(e.Inner)
	return nil, nil
}

// VisitLiteral is a no-op: literals carry no variable references.
func (r *Resolver) VisitLiteral(e *ast.Literal) (interface{}, error) {
	return nil, nil
}

// VisitLogical resolves both operands.
func (r *Resolver) VisitLogical(e *ast.Logical) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

// VisitUnary resolves the operand.
func (r *Resolver) VisitUnary(e *ast.Unary) (interface{}, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

// --- scope bookkeeping ---

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]bool{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.fail(name, "Variable with this name already declared in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal searches the scope stack innermost-out; the first hit
// records how many scopes up the chain the binding sits. No hit means the
// name is global and is left out of the side table entirely.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) fail(tok token.Token, message string) {
	r.errors = append(r.errors, &Error{Token: tok, Message: message})
}
