// Package scope implements the Environment chain: a singly linked list of
// name-to-value scopes rooted at the global scope, grounded on the
// original's environment.{hpp,cpp}. There is no const-locking or
// type-locked `let` here, and no closure-capturing copy: this language has
// no `const`, no type-locked `let`, and function calls never capture a
// defining scope (see eval.callFunction).
package scope

import (
	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/lexer"
	"github.com/mint-lang/mint/value"
)

// Scope owns a mapping from identifier lexeme to value and an optional link
// to an enclosing scope.
type Scope struct {
	values map[string]value.Value
	parent *Scope
}

// New creates a scope enclosed by parent (nil for the global scope).
func New(parent *Scope) *Scope {
	return &Scope{values: make(map[string]value.Value), parent: parent}
}

// Define unconditionally inserts name into the current scope, shadowing any
// outer binding of the same name.
func (s *Scope) Define(name string, v value.Value) {
	s.values[name] = v
}

// Get searches the current scope then the enclosing chain. An unresolved
// name is a RuntimeError naming the token's lexeme and line.
func (s *Scope) Get(name lexer.Token) (value.Value, error) {
	for scope := s; scope != nil; scope = scope.parent {
		if v, ok := scope.values[name.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, diag.NewRuntimeError(name, "Undefined variable `%s`", name.Lexeme)
}

// Assign searches the chain and updates the first matching binding in
// place. It never creates a new binding; an unresolved name is a
// RuntimeError.
func (s *Scope) Assign(name lexer.Token, v value.Value) error {
	for scope := s; scope != nil; scope = scope.parent {
		if _, ok := scope.values[name.Lexeme]; ok {
			scope.values[name.Lexeme] = v
			return nil
		}
	}
	return diag.NewRuntimeError(name, "Undefined variable `%s`", name.Lexeme)
}
