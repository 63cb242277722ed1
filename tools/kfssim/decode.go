package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"kfs/device/input/keyboard"
)

// decodeCommand runs scancodes given on the command line through the
// keyboard decoder.
type decodeCommand struct{}

// Name implements subcommands.Command.Name.
func (*decodeCommand) Name() string {
	return "decode"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*decodeCommand) Synopsis() string {
	return "decode a sequence of set 1 scancodes into key events"
}

// Usage implements subcommands.Command.Usage.
func (*decodeCommand) Usage() string {
	return "decode <hex byte>...\n\nExample: decode 2a 1e 9e aa\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (*decodeCommand) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*decodeCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	if err := decodeScancodes(os.Stdout, f.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// decodeScancodes parses args as hex bytes and writes one line per decoded
// event to w.
func decodeScancodes(w io.Writer, args []string) error {
	scancodes := make([]uint8, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(arg), "0x"), 16, 8)
		if err != nil {
			return fmt.Errorf("invalid scancode %q: %w", arg, err)
		}
		scancodes = append(scancodes, uint8(v))
	}

	var d keyboard.Decoder
	for _, sc := range scancodes {
		if _, err := fmt.Fprintln(w, formatEvent(sc, d.Decode(sc))); err != nil {
			return err
		}
	}

	return nil
}

func formatEvent(sc uint8, ev keyboard.KeyEvent) string {
	action := "release"
	if ev.Pressed {
		action = "press"
	}

	var code string
	switch ev.Code.Kind {
	case keyboard.KindChar:
		code = fmt.Sprintf("char(%q)", ev.Code.Value)
	case keyboard.KindUnknown:
		code = fmt.Sprintf("unknown(0x%02x)", ev.Code.Value)
	default:
		code = ev.Code.Kind.String()
	}

	line := fmt.Sprintf("0x%02x %-7s %-14s mods=%s", sc, action, code, formatMods(ev.Mods))
	if b, ok := ev.PrintableByte(); ok {
		line += fmt.Sprintf(" echo=%q", b)
	}
	return line
}

func formatMods(mods keyboard.Modifiers) string {
	names := []struct {
		mask keyboard.Modifiers
		name string
	}{
		{keyboard.Shift, "shift"},
		{keyboard.Ctrl, "ctrl"},
		{keyboard.Alt, "alt"},
		{keyboard.Caps, "caps"},
	}

	var held []string
	for _, n := range names {
		if mods.Has(n.mask) {
			held = append(held, n.name)
		}
	}

	if len(held) == 0 {
		return "none"
	}
	return strings.Join(held, "+")
}
