package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"kfs/device/video/console"
	"kfs/kernel/hal/sim"
	"kfs/kernel/kmain"
)

// Keys that stop the simulator.
const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
)

// errQuit is returned by the input pump when the user asks to quit.
var errQuit = errors.New("quit requested")

// runCommand boots the kernel on an emulated machine and connects it to the
// terminal.
type runCommand struct {
	configPath string
	noColor    bool
}

// Name implements subcommands.Command.Name.
func (*runCommand) Name() string {
	return "run"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*runCommand) Synopsis() string {
	return "boot the kernel on emulated hardware attached to this terminal"
}

// Usage implements subcommands.Command.Usage.
func (*runCommand) Usage() string {
	return "run [-config <file>] [-no-color]\n\nPress Ctrl-C or Ctrl-D to quit.\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (r *runCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.configPath, "config", "", "path to a TOML config file")
	f.BoolVar(&r.noColor, "no-color", false, "render the screen without ANSI colors")
}

// Execute implements subcommands.Command.Execute.
func (r *runCommand) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := r.execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "kfssim: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (r *runCommand) execute(ctx context.Context) error {
	cfg, err := loadConfig(r.configPath)
	if err != nil {
		return err
	}
	if r.noColor {
		cfg.Colors = false
	}

	log, logCloser, err := newLogger(cfg, nil)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	inFd, outFd := int(os.Stdin.Fd()), int(os.Stdout.Fd())
	if !term.IsTerminal(inFd) || !term.IsTerminal(outFd) {
		return errors.New("stdin and stdout must be terminals")
	}
	if w, h, err := term.GetSize(outFd); err == nil && (w < console.Width || h < console.Height) {
		log.WithFields(logrus.Fields{"width": w, "height": h}).Warn("terminal is smaller than the emulated screen")
	}

	m := sim.NewMachine()
	k, kerr := kmain.Boot(m, cfg.BootMagic, cfg.BootInfo)
	if kerr != nil {
		return fmt.Errorf("boot failed: [%s] %s", kerr.Module, kerr.Message)
	}
	log.WithFields(logrus.Fields{
		"magic": fmt.Sprintf("0x%x", cfg.BootMagic),
		"mbi":   fmt.Sprintf("0x%x", cfg.BootInfo),
	}).Info("kernel booted")

	state, err := term.MakeRaw(inFd)
	if err != nil {
		return fmt.Errorf("switching terminal to raw mode: %w", err)
	}
	defer term.Restore(inFd, state)

	fmt.Fprint(os.Stdout, "\x1b[2J")
	defer fmt.Fprint(os.Stdout, "\x1b[0m\x1b[2J\x1b[H")

	keys := make(chan byte, 64)
	go readKeys(os.Stdin, keys)

	sess := &session{
		cfg:    cfg,
		log:    log,
		m:      m,
		k:      k,
		screen: newScreen(cfg.Colors),
		out:    os.Stdout,
	}

	err = sess.run(ctx, keys)
	if errors.Is(err, errQuit) {
		log.Info("simulator stopped")
		return nil
	}
	return err
}

// readKeys forwards bytes read from r to keys until r fails. It is not part
// of the errgroup since a blocked terminal read cannot be interrupted.
func readKeys(r io.Reader, keys chan<- byte) {
	defer close(keys)

	var buf [64]byte
	for {
		n, err := r.Read(buf[:])
		for _, b := range buf[:n] {
			keys <- b
		}
		if err != nil {
			return
		}
	}
}

// session ties the emulated machine, the kernel and the terminal together.
type session struct {
	cfg    *config
	log    *logrus.Logger
	m      *sim.Machine
	k      *kmain.Kernel
	screen *screen
	out    io.Writer
}

// run starts the input pump, the kernel loop and the renderer and waits until
// one of them fails or the input pump returns errQuit.
func (s *session) run(ctx context.Context, keys <-chan byte) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return s.pumpInput(gctx, keys) })
	g.Go(func() error { return s.kernelLoop(gctx) })
	g.Go(func() error { return s.renderLoop(gctx) })

	return g.Wait()
}

// pumpInput converts terminal bytes to scancodes and queues them in the
// emulated PS/2 controller.
func (s *session) pumpInput(ctx context.Context, keys <-chan byte) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case b, ok := <-keys:
			if !ok || b == keyCtrlC || b == keyCtrlD {
				return errQuit
			}

			scancodes := sim.ScancodesFor(b)
			if scancodes == nil {
				s.log.WithField("byte", fmt.Sprintf("0x%02x", b)).Warn("no scancode mapping for input byte")
				continue
			}

			s.log.WithFields(logrus.Fields{
				"byte":      fmt.Sprintf("%q", b),
				"scancodes": fmt.Sprintf("% x", scancodes),
			}).Debug("key typed")
			s.m.PS2.Enqueue(scancodes...)

			if delay := s.cfg.keyDelay(); delay > 0 {
				if err := sleep(ctx, delay); err != nil {
					return nil
				}
			}
		}
	}
}

// kernelLoop runs the kernel polling loop until ctx is cancelled.
func (s *session) kernelLoop(ctx context.Context) error {
	idle := s.cfg.idleSleep()
	for ctx.Err() == nil {
		if s.k.Step() {
			continue
		}
		if idle > 0 {
			if err := sleep(ctx, idle); err != nil {
				return nil
			}
		}
	}
	return nil
}

// renderLoop periodically copies the text buffer to the terminal. The buffer
// is read while holding the console lock so that a frame never shows a half
// finished scroll.
func (s *session) renderLoop(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.refreshInterval())
	defer ticker.Stop()

	for {
		if err := s.drawFrame(); err != nil {
			return fmt.Errorf("rendering screen: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (s *session) drawFrame() error {
	var frame []byte
	s.k.Console().With(func(console.Device) {
		frame = s.screen.render(s.m.Cells, s.m.CRTC.CursorOffset())
	})

	_, err := s.out.Write(frame)
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
