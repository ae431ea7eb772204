// Package domkit is the Composition Root for the domkit library.
//
// It connects the core facade (Domain Layer) with the tree adapters
// (Host Document Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// domkit is a small utility layer over a document tree: element
// selection, content/attribute/style mutation, event binding, node
// creation, and idempotent injection of external resources. Every
// operation is a stateless pass-through to the host tree; nothing is
// cached between calls, so a removed node simply stops resolving.
// While the default implementation parses HTML with net/html and
// resolves selectors with cascadia, domkit's core is agnostic, allowing
// for other adapters (a headless browser session, a test double).
//
// Features:
//
//   - **Hexagonal Architecture**: Core facade is isolated from the tree representation.
//   - **Explicit Targets**: A tagged union (Sel/Ref/Refs/Root) replaces selector-or-value guessing.
//   - **Soft Failure**: Unresolved targets log a diagnostic and return ErrNotFound; nothing faults mid-mutation.
//   - **Default Adapter (net/html + cascadia)**: Out-of-the-box support for parsed HTML documents, with XPath as an optional capability.
//   - **Reloadable**: File-backed trees can be watched and re-parsed on change.
//
// Usage:
//
//	// Initialize a facade with functional options
//	d, err := domkit.Open("./index.html",
//		domkit.WithLogger(logger),
//	)
//
//	// Mutate
//	_, err = d.Update(domkit.Sel("#title"), "Hello", domkit.ContentText)
package domkit
