// Package interpreter implements the tree-walking evaluator: it executes
// the statement list produced by the parser, consulting the resolver's
// side table to find locals and falling back to the global environment
// otherwise.
package interpreter

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lisale0/Lox/internal/ast"
	"github.com/lisale0/Lox/internal/resolver"
	"github.com/lisale0/Lox/internal/token"
)

// Reporter receives runtime errors produced while interpreting. The
// driver/CLI layer implements this to print to stderr and track the
// had-runtime-error flag; tests can supply a stub.
type Reporter interface {
	RuntimeError(err *RuntimeError)
}

// Interpreter walks the AST, mutating environments and printing to Out.
type Interpreter struct {
	globals  *Environment
	env      *Environment
	locals   resolver.Locals
	Out      io.Writer
	Reporter Reporter
}

// New returns an Interpreter with its global environment seeded with the
// built-in natives (currently just clock/0) and Out wired to stdout.
func New() *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", clockFn{})
	return &Interpreter{globals: globals, env: globals, locals: make(resolver.Locals), Out: os.Stdout}
}

// SetLocals installs the resolver's side table. Must be called (even with
// an empty table) before Interpret if any local variable resolution is
// expected; Interpret treats every reference as global otherwise.
func (in *Interpreter) SetLocals(locals resolver.Locals) {
	in.locals = locals
}

// Interpret executes each statement in order. On a RuntimeError, it is
// reported via Reporter (if set) and execution of the remaining top-level
// statements stops, matching spec.md §7: one uncaught runtime error ends
// the interpret() call.
func (in *Interpreter) Interpret(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			if rt, ok := err.(*RuntimeError); ok {
				if in.Reporter != nil {
					in.Reporter.RuntimeError(rt)
				}
				return
			}
			// a bare return signal reaching here means "return" occurred
			// at the top level; the resolver rejects this before we ever
			// get here, so this path is unreachable in practice.
			return
		}
	}
}

func (in *Interpreter) execute(s ast.Stmt) error {
	return s.Accept(in)
}

func (in *Interpreter) evaluate(e ast.Expr) (interface{}, error) {
	return e.Accept(in)
}

// --- statements ---

// VisitExpression evaluates its expression and discards the result.
func (in *Interpreter) VisitExpression(s *ast.Expression) error {
	_, err := in.evaluate(s.Expr)
	return err
}

// VisitPrint evaluates its expression and writes its stringified form
// followed by a newline.
func (in *Interpreter) VisitPrint(s *ast.Print) error {
	val, err := in.evaluate(s.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintf(in.Out, "%s\n", in.stringify(val))
	return nil
}

// VisitVar defines the name in the current environment; an absent
// initializer binds the name to nil.
func (in *Interpreter) VisitVar(s *ast.Var) error {
	var val interface{}
	if s.Initializer != nil {
		v, err := in.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		val = v
	}
	in.env.Define(s.Name.Lexeme, val)
	return nil
}

// VisitBlock executes its statements in a new child environment; the
// previous environment is restored on every exit path.
func (in *Interpreter) VisitBlock(s *ast.Block) error {
	return in.executeBlockStmts(s.Statements, NewEnvironment(in.env))
}

// executeBlockStmts runs stmts with env installed as the current
// environment, restoring the previous environment before returning
// (whether stmts completed normally, hit a return signal, or errored).
func (in *Interpreter) executeBlockStmts(stmts []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// VisitIf evaluates the condition's truthiness and executes the matching
// branch; an absent else branch with a falsey condition is a no-op.
func (in *Interpreter) VisitIf(s *ast.If) error {
	cond, err := in.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if isTruthy(cond) {
		return in.execute(s.Then)
	} else if s.Else != nil {
		return in.execute(s.Else)
	}
	return nil
}

// VisitWhile re-evaluates the condition before each iteration.
func (in *Interpreter) VisitWhile(s *ast.While) error {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !isTruthy(cond) {
			return nil
		}
		if err := in.execute(s.Body); err != nil {
			return err
		}
	}
}

// VisitFunction constructs a closure over the current environment and
// binds it to the declared name.
func (in *Interpreter) VisitFunction(s *ast.Function) error {
	fn := NewFunction(s, in.env)
	in.env.Define(s.Name.Lexeme, fn)
	return nil
}

// VisitReturn unwinds to the enclosing Call handler, carrying the
// evaluated return value (nil when omitted) as a signal rather than a
// RuntimeError.
func (in *Interpreter) VisitReturn(s *ast.Return) error {
	var value interface{}
	if s.Value != nil {
		v, err := in.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &signal{value: value}
}

// --- expressions ---

// VisitLiteral returns the literal's constant value.
func (in *Interpreter) VisitLiteral(e *ast.Literal) (interface{}, error) {
	return e.Value, nil
}

// VisitGrouping evaluates the parenthesized inner expression.
func (in *Interpreter) VisitGrouping(e *ast.Grouping) (interface{}, error) {
	return in.evaluate(e.Inner)
}

// VisitUnary evaluates a prefix "-" or "!" expression.
func (in *Interpreter) VisitUnary(e *ast.Unary) (interface{}, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.Minus:
		n, ok := right.(float64)
		if !ok {
			return nil, &RuntimeError{Token: e.Operator, Message: "Operand must be a number."}
		}
		return -n, nil
	case token.Bang:
		return !isTruthy(right), nil
	}
	return nil, nil
}

// VisitBinary evaluates an infix expression, left operand before right.
func (in *Interpreter) VisitBinary(e *ast.Binary) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.Greater:
		return numericBinary(e.Operator, left, right, func(a, b float64) interface{} { return a > b })
	case token.GreaterEqual:
		return numericBinary(e.Operator, left, right, func(a, b float64) interface{} { return a >= b })
	case token.Less:
		return numericBinary(e.Operator, left, right, func(a, b float64) interface{} { return a < b })
	case token.LessEqual:
		return numericBinary(e.Operator, left, right, func(a, b float64) interface{} { return a <= b })
	case token.Minus:
		return numericBinary(e.Operator, left, right, func(a, b float64) interface{} { return a - b })
	case token.Slash:
		return numericBinary(e.Operator, left, right, func(a, b float64) interface{} { return a / b })
	case token.Star:
		return numericBinary(e.Operator, left, right, func(a, b float64) interface{} { return a * b })
	case token.Plus:
		return addOperands(e.Operator, left, right)
	case token.EqualEqual:
		return isEqual(left, right), nil
	case token.BangEqual:
		return !isEqual(left, right), nil
	}
	return nil, nil
}

func numericBinary(op token.Token, left, right interface{}, fn func(a, b float64) interface{}) (interface{}, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return nil, &RuntimeError{Token: op, Message: "Operands must be numbers."}
	}
	return fn(l, r), nil
}

func addOperands(op token.Token, left, right interface{}) (interface{}, error) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return l + r, nil
		}
	}
	return nil, &RuntimeError{Token: op, Message: "Operands must be two numbers or two strings."}
}

// VisitVariable resolves the reference via the side table when present,
// falling back to the global environment otherwise.
func (in *Interpreter) VisitVariable(e *ast.Variable) (interface{}, error) {
	return in.lookUpVariable(e.Name, e.ID())
}

func (in *Interpreter) lookUpVariable(name token.Token, exprID int) (interface{}, error) {
	if distance, ok := in.locals[exprID]; ok {
		return in.env.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

// VisitAssign evaluates the value, writes it through the side table (or
// globally), and yields the assigned value.
func (in *Interpreter) VisitAssign(e *ast.Assign) (interface{}, error) {
	val, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals[e.ID()]; ok {
		in.env.AssignAt(distance, e.Name, val)
	} else if err := in.globals.Assign(e.Name, val); err != nil {
		return nil, err
	}
	return val, nil
}

// VisitLogical short-circuits "or"/"and", returning whichever operand
// value decided the result rather than a coerced boolean.
func (in *Interpreter) VisitLogical(e *ast.Logical) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Kind == token.Or {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}
	return in.evaluate(e.Right)
}

// VisitCall evaluates the callee and every argument (left to right)
// before checking callability and arity.
func (in *Interpreter) VisitCall(e *ast.Call) (interface{}, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]interface{}, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	fn, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Token: e.Paren, Message: "Can only call functions and classes."}
	}
	if len(args) != fn.Arity() {
		return nil, &RuntimeError{
			Token:   e.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
		}
	}
	return fn.Call(in, args)
}

// --- value semantics ---

// isTruthy implements Lox's truthiness rule: nil and false are falsey,
// everything else — including 0 and "" — is truthy.
func isTruthy(val interface{}) bool {
	if val == nil {
		return false
	}
	if b, ok := val.(bool); ok {
		return b
	}
	return true
}

// isEqual implements Lox equality: nil equals only nil; values of
// different dynamic types are never equal (no error); same-type values
// compare structurally via Go's ==, which is exact for bool/float64/string.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// stringify renders a Lox value the way `print` and the REPL display it.
func (in *Interpreter) stringify(val interface{}) string {
	if val == nil {
		return "nil"
	}
	switch v := val.(type) {
	case float64:
		// shortest round-tripping decimal representation, with no
		// trailing ".0" for integer-valued doubles (IEEE-754 doubles
		// never need more than this to print and re-parse exactly).
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
