package interpreter

import (
	"fmt"

	"github.com/lisale0/Lox/internal/token"
)

// Environment is a chained lexical scope: a mapping of name to value plus
// an optional link to the enclosing scope. Multiple environments may
// share the same enclosing parent, which is how closures observe
// mutations made through any other alias of the same captured scope.
type Environment struct {
	enclosing *Environment
	values    map[string]interface{}
}

// NewEnvironment returns an Environment enclosed by the given parent (nil
// for the global environment).
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]interface{})}
}

// Define binds name to val in this environment, overwriting any existing
// binding of the same name in this (and only this) scope.
func (e *Environment) Define(name string, val interface{}) {
	e.values[name] = val
}

// Get looks up name in this environment and, failing that, in each
// enclosing environment in turn.
func (e *Environment) Get(name token.Token) (interface{}, error) {
	if val, ok := e.values[name.Lexeme]; ok {
		return val, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

// GetAt reads name from the environment exactly `distance` scopes up the
// chain from this one, as pre-computed by the resolver.
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.ancestor(distance).values[name]
}

// AssignAt writes val into the environment exactly `distance` scopes up
// the chain from this one.
func (e *Environment) AssignAt(distance int, name token.Token, val interface{}) {
	e.ancestor(distance).values[name.Lexeme] = val
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// Assign changes the value bound to name, searching this environment and
// then each enclosing one. Assigning to an undeclared name is a
// RuntimeError: Lox distinguishes declaration (var) from assignment (=).
func (e *Environment) Assign(name token.Token, val interface{}) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = val
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, val)
	}
	return &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}
