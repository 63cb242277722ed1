package sync

import "kfs/kernel/cpu"

var spinHintFn = cpu.Pause
