// Package docgen renders bug pattern records into per-check markdown pages.
// It owns template construction, example stitching, index generation, and the
// sequential run orchestration that ties parsing and rendering together.
package docgen
