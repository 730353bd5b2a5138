// Package dashboard implements the full-screen bubbletea application that
// composes the chart and table widgets into a frame.
//
// The model owns all cross-widget state the engine deliberately does not:
// widget focus, the expanded-widget mode, per-widget scroll and selection
// contexts, and the refresh tick. Widgets receive that state per draw and
// event call and hold none of it themselves.
//
// One frame is produced per View call by drawing every visible widget into
// a shared cell buffer; rendering is synchronous and single-threaded, and
// event handling is serialized by the bubbletea loop.
package dashboard
