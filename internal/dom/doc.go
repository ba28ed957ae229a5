// Package dom provides convenience helpers over an HTML document tree parsed
// with golang.org/x/net/html: CSS selection, attribute batches, entity
// escaping, and a small per-node event listener registry.
package dom
