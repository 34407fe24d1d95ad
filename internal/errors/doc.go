// Package errors provides structured, actionable error values for jst.
//
// Every error the engine returns on a fatal path carries a registered code
// that maps to:
//   - A category (config, invariant, render, target, cli)
//   - A short message and a longer explanation
//   - A documentation URL
//
// # Error Categories
//
//   - config: misuse at the call site (component without a render function,
//     malformed form or style descriptor, bad configuration file)
//   - invariant: reconciliation bookkeeping went wrong (refcount below zero,
//     use of a torn-down component); these indicate a bug in the engine
//   - render: a render pass could not complete
//   - target: the render target refused an operation
//   - cli: command line usage problems
//
// # Usage
//
//	err := errors.New("J001").
//	    WithDetail("component *app.Header has no Render method").
//	    WithSuggestion("Pass a Renderer to Engine.Component or use Engine.Fill")
//
//	fmt.Println(err.Format())
//
// Errors compare by code, so a freshly built error matches a sentinel with
// the standard library's errors.Is:
//
//	var ErrNoRender = errors.New("J001")
//	stderrors.Is(errors.New("J001").WithDetail("x"), ErrNoRender) // true
package errors
