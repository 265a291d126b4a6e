// Package testing provides a headless harness for component tests. A
// Tester wires a registry, overlay manager and router over a fixed
// viewport and drives them with synthetic input; a RecordingCanvas
// captures draw commands for assertions without a real renderer.
//
// Import it aliased to avoid shadowing the standard library:
//
//	veltest "github.com/go-velt/velt/pkg/testing"
package testing
