// Package unique implements sole ownership: a handle that destroys its
// object exactly once through a pluggable deleter policy. Policies are
// type parameters, so a stateless policy costs the handle no storage
// (see package pair). Ownership moves and never copies; go vet flags
// accidental value copies.
package unique
