// Package dom defines the render-target contract consumed by the jst engine.
//
// The engine never touches a concrete document. It creates and mutates live
// nodes exclusively through Document and Node, so any backend that honours
// this small operation set is interchangeable: a browser DOM bridged through
// syscall/js, the headless memdom package used in tests and on the server,
// or a recorder that streams operations to a remote client.
//
// # Operations
//
// The contract is deliberately narrow:
//
//   - create an element (optionally namespaced) or a text node
//   - set or remove an attribute
//   - set or clear a boolean property flag
//   - add or remove an event listener
//   - insert a node before a sibling, or append it
//   - remove a node from its parent
//   - set the content of a text node
//
// Every mutation is named by an Op, which backends may log or count.
package dom
