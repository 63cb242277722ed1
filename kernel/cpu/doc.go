// Package cpu exposes the handful of 386 instructions the kernel core needs:
// port I/O, halting, spin-wait hints and access to the kernel stack, which is
// reserved by this package.
//
// All functions are implemented in assembly and are only available when
// building for GOARCH=386. Code that must also build on a hosted toolchain
// should depend on the device.Bus interfaces instead of this package.
package cpu
