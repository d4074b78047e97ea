package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ariel-frischer/confkeep/internal/cli/shared"
	"github.com/ariel-frischer/confkeep/internal/debug"
	clierrors "github.com/ariel-frischer/confkeep/internal/errors"
	"github.com/ariel-frischer/confkeep/internal/output"
	"github.com/ariel-frischer/confkeep/internal/settings"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// errQuit signals a clean user-requested exit from the watch loop.
var errQuit = errors.New("quit")

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor the settings file and print changes live",
	Long: `Monitor the settings file and print a colorized diff every time it
changes on disk.

The watch command prints the current settings once, then watches the file's
directory so edits, atomic replaces, and editor rename-into-place saves are
all detected. Each reload prints added, removed, and changed keys; when a
reload fails the previous settings stay in effect and the error is shown.

Press 'q' or Ctrl+C to exit.`,
	Example: `  # Watch the settings file next to the binary
  confkeep watch

  # Watch a settings file in another directory
  confkeep watch -C /etc/server

  # Watch with a faster polling fallback (500ms)
  confkeep watch --interval 500ms`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Duration("interval", time.Second, "Polling fallback interval (e.g., 1s, 500ms)")
	watchCmd.GroupID = shared.GroupInspection
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig(cmd)
	if err != nil {
		return err
	}

	interval := cfg.Watch.Interval
	if cmd.Flags().Changed("interval") {
		interval, _ = cmd.Flags().GetDuration("interval")
	}
	if interval < 100*time.Millisecond {
		return clierrors.NewArgumentError("interval must be at least 100ms")
	}

	store := settings.NewStore(cfg.Settings.Dir)
	if err := store.Load(); err != nil {
		return err
	}

	path, err := store.File()
	if err != nil {
		return err
	}

	watcher, err := settings.NewWatcher(store, settings.WithInterval(interval))
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	events, err := watcher.Watch(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printWatchHeader(out, path, interval)
	output.PrintSettings(out, store.All(), nil)
	fmt.Fprintln(out)
	debug.Printf(2, "watching %s every %s", path, interval)

	session := newWatchSession(out, store.All())
	return session.run(cmd.Context(), events)
}

// printWatchHeader prints the initial watch header.
func printWatchHeader(out io.Writer, path string, interval time.Duration) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprint(out, "Watching ")
	fmt.Fprintf(out, "%s (refresh: %s, quit: q)\n\n", path, interval)
}

// watchSession drives one interactive watch: it consumes reload events,
// prints diffs against the previous snapshot, and manages raw-mode keyboard
// input for clean exit.
type watchSession struct {
	out  io.Writer
	prev map[string]any

	mu        sync.Mutex
	oldState  *term.State
	isRawMode bool
	stdinFd   int
}

func newWatchSession(out io.Writer, initial map[string]any) *watchSession {
	return &watchSession{
		out:     out,
		prev:    initial,
		stdinFd: int(os.Stdin.Fd()),
	}
}

// run blocks until the user quits, a signal arrives, or the context is
// cancelled. The event consumer and the quit waiter run as errgroup
// goroutines; either one returning stops the other through the shared
// context.
func (s *watchSession) run(ctx context.Context, events <-chan settings.Event) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	keyCh := s.startKeyboardListener(ctx)
	defer s.restoreTerminal()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.waitForQuit(ctx, keyCh, sigCh)
	})
	g.Go(func() error {
		return s.consumeEvents(ctx, events)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// waitForQuit returns errQuit when the user presses a quit key or a
// termination signal arrives.
func (s *watchSession) waitForQuit(ctx context.Context, keyCh <-chan byte, sigCh <-chan os.Signal) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigCh:
			return errQuit
		case key := <-keyCh:
			if key == 'q' || key == 'Q' || key == 3 { // 3 = Ctrl+C
				return errQuit
			}
		}
	}
}

// consumeEvents prints reload events until the channel closes or the
// context is cancelled.
func (s *watchSession) consumeEvents(ctx context.Context, events <-chan settings.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			s.printEvent(ev)
		}
	}
}

// printEvent prints one reload outcome: a timestamped diff on success, a
// warning on failure. Reloads that change no values print nothing.
func (s *watchSession) printEvent(ev settings.Event) {
	if ev.Err != nil {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Fprintf(s.out, "%s %v\n", yellow("reload failed:"), ev.Err)
		return
	}

	var buf bytes.Buffer
	changes := output.PrintDiff(&buf, s.prev, ev.Values)
	s.prev = ev.Values
	if changes == 0 {
		debug.Printf(3, "settings file changed on disk, values identical")
		return
	}

	faint := color.New(color.Faint).SprintFunc()
	fmt.Fprintln(s.out, faint(time.Now().Format("15:04:05")))
	buf.WriteTo(s.out)
	fmt.Fprintln(s.out)
}

// startKeyboardListener starts a goroutine that listens for keyboard input.
// Returns a channel that receives key presses.
func (s *watchSession) startKeyboardListener(ctx context.Context) <-chan byte {
	keyCh := make(chan byte, 1)

	// Only enable raw mode if stdout is a terminal
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return keyCh
	}

	go s.keyboardLoop(ctx, keyCh)

	return keyCh
}

// keyboardLoop reads keyboard input in raw mode.
func (s *watchSession) keyboardLoop(ctx context.Context, keyCh chan<- byte) {
	// Put terminal in raw mode for immediate key detection
	oldState, err := term.MakeRaw(s.stdinFd)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.oldState = oldState
	s.isRawMode = true
	s.mu.Unlock()

	buf := make([]byte, 1)
	for {
		select {
		case <-ctx.Done():
			return
		default:
			n, err := os.Stdin.Read(buf)
			if err != nil || n == 0 {
				continue
			}
			select {
			case keyCh <- buf[0]:
			default:
			}
		}
	}
}

// restoreTerminal restores the terminal to its original state.
func (s *watchSession) restoreTerminal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRawMode && s.oldState != nil {
		term.Restore(s.stdinFd, s.oldState)
		s.isRawMode = false
	}
}
