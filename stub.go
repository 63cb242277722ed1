//go:build 386

package main

import "kfs/kernel/kmain"

var bootMagic, bootInfoPtr uint32

// main makes a dummy call to the actual kernel entrypoint function. It is
// intentionally defined to prevent the Go compiler from optimizing away the
// real kernel code.
//
// Global variables are passed as arguments to StartKernel to prevent the
// compiler from inlining the call and removing StartKernel from the generated
// .o file.
func main() {
	kmain.StartKernel(bootMagic, bootInfoPtr)
}
