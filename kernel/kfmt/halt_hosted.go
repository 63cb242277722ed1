//go:build !386

package kfmt

// cpuHaltFn parks the calling goroutine forever, which is the closest hosted
// equivalent of a halted CPU.
var cpuHaltFn = func() { select {} }
