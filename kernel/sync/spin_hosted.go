//go:build !386

package sync

import "runtime"

// Hosted builds share the CPU with other goroutines so spinning tasks yield
// instead of issuing a PAUSE.
var spinHintFn = runtime.Gosched
