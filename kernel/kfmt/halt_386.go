package kfmt

import "kfs/kernel/cpu"

// cpuHaltFn is mocked by tests. cpu.Halt masks interrupts before halting so
// it never returns.
var cpuHaltFn = cpu.Halt
