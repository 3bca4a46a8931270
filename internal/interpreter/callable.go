package interpreter

import "github.com/lisale0/Lox/internal/ast"

// Callable is anything invocable from Lox call syntax: user-defined
// functions and native built-ins alike.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []interface{}) (interface{}, error)
	String() string
}

// Function wraps a function declaration together with the environment
// active at the point it was declared — its closure. The captured
// environment, not the call site's environment, is what every invocation
// of this function encloses.
type Function struct {
	declaration *ast.Function
	closure     *Environment
}

// NewFunction binds a function declaration to the environment active at
// its declaration site.
func NewFunction(declaration *ast.Function, closure *Environment) *Function {
	return &Function{declaration: declaration, closure: closure}
}

// Arity returns the number of parameters this function declares.
func (f *Function) Arity() int { return len(f.declaration.Params) }

// Call binds arguments positionally to parameters in a fresh environment
// enclosing the function's closure, then executes the body as a block in
// that environment. A return statement inside the body surfaces here as
// a signal and is converted back into an ordinary value; falling off the
// end of the body yields nil.
func (f *Function) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}
	err := in.executeBlockStmts(f.declaration.Body, env)
	if value, ok := asSignal(err); ok {
		return value, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *Function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}
