package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"kfs/kernel/gdt"
)

// gdtCommand prints the descriptor table installed by the kernel at boot.
type gdtCommand struct {
	raw bool
}

// Name implements subcommands.Command.Name.
func (*gdtCommand) Name() string {
	return "gdt"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*gdtCommand) Synopsis() string {
	return "print the kernel descriptor table and selectors"
}

// Usage implements subcommands.Command.Usage.
func (*gdtCommand) Usage() string {
	return "gdt [-raw]\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (g *gdtCommand) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&g.raw, "raw", false, "also print the packed 64-bit descriptors")
}

// Execute implements subcommands.Command.Execute.
func (g *gdtCommand) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	if err := printGDT(os.Stdout, g.raw); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func printGDT(w io.Writer, raw bool) error {
	table := gdt.Template()
	table.Dump(w)

	if raw {
		for index, d := range table {
			if _, err := fmt.Fprintf(w, "gdt[%d] = 0x%016x\n", index, uint64(d)); err != nil {
				return err
			}
		}
	}

	selectors := []struct {
		name string
		sel  gdt.Selector
	}{
		{"kernel code", gdt.KernelCodeSelector},
		{"kernel data", gdt.KernelDataSelector},
		{"kernel stack", gdt.KernelStackSelector},
		{"user code", gdt.UserCodeSelector},
		{"user data", gdt.UserDataSelector},
		{"user stack", gdt.UserStackSelector},
	}

	for _, s := range selectors {
		_, live := table.Lookup(s.sel)
		if _, err := fmt.Fprintf(w, "%-12s selector=0x%02x index=%d ring=%d live=%t\n", s.name, uint16(s.sel), s.sel.Index(), s.sel.Ring(), live); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "table at 0x%x, %d bytes\n", gdt.TablePhysAddr, gdt.TableSize)
	return err
}
