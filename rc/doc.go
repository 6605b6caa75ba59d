// Package rc implements deterministic shared ownership for heap
// objects: a reference-counted Shared handle, a non-owning Weak
// observer, and a SelfRef mixin that lets a managed object hand out
// handles to itself. The point is not to replace the garbage collector
// but to pin destruction to a well-defined moment, so resources close
// exactly once, at last release.
//
// The package is single-threaded by design. Counters are plain ints
// and check-then-act sequences are not atomic; handles bound to the
// same object must stay on one goroutine or be fenced by the caller.
package rc
