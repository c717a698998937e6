// Package reactive provides a minimal observable-value layer: signals owned
// by an explicit Scope instead of a global registry.
//
// A Scope exclusively owns the signals and child scopes created within it and
// tears the whole subtree down with a single Dispose call. Everything here is
// single-goroutine by design; callers on the UI thread serialize access.
package reactive
