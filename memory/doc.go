// Package memory provides object recycling on top of the rc handles:
// typed pools whose deleters return objects for reuse at last release,
// and a retire ring that defers releases so teardown bursts can be
// spread over quiet moments.
package memory
