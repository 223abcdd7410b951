// Package views renders the terminal front end: each view fetches data
// through the client SDK and dispatches user intents back to it.
package views

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/jugadveer/wealthplay-cli/internal/clients/wealthplay"
	"github.com/jugadveer/wealthplay-cli/internal/common"
	"github.com/jugadveer/wealthplay-cli/internal/guard"
	"github.com/jugadveer/wealthplay-cli/internal/session"
)

// App wires the session controller, SDK client and view bus into a
// navigable terminal application.
type App struct {
	config  *common.Config
	logger  *common.Logger
	client  *wealthplay.Client
	session *session.Controller
	bus     *Bus

	in  *bufio.Reader
	out io.Writer

	staleCourses bool // set by the module-completed event
}

// AppOption configures the app.
type AppOption func(*App)

// WithIO redirects the app's input and output, used in tests.
func WithIO(in io.Reader, out io.Writer) AppOption {
	return func(a *App) {
		a.in = bufio.NewReader(in)
		a.out = out
	}
}

// NewApp builds the application around an SDK client.
func NewApp(config *common.Config, client *wealthplay.Client, logger *common.Logger, opts ...AppOption) *App {
	a := &App{
		config: config,
		logger: logger,
		client: client,
		bus:    NewBus(),
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	a.session = session.NewController(client,
		session.WithLogger(logger),
		session.WithResetFunc(func(target string) {
			// The browser equivalent reloads to a cache-busted root; here a
			// fresh landing render with all caches dropped does the same.
			a.logger.Debug().Str("target", target).Msg("session reset")
			a.staleCourses = true
		}),
	)

	a.bus.Subscribe(EventModuleCompleted, func(ev Event) {
		a.staleCourses = true
	})

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Session exposes the session controller.
func (a *App) Session() *session.Controller {
	return a.session
}

// Run resolves the session and enters the navigation loop. A panic in view
// logic is caught here and replaced with a recovery screen offering a
// restart, matching how a rendering defect should not take the whole
// application down.
func (a *App) Run(ctx context.Context) error {
	for {
		restart, err := a.runOnce(ctx)
		if err != nil || !restart {
			return err
		}
	}
}

func (a *App) runOnce(ctx context.Context) (restart bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error().Interface("panic", r).Msg("view crashed")
			fmt.Fprintln(a.out, "\nSomething went wrong rendering this screen.")
			restart = a.promptYesNo("Restart?")
		}
	}()

	a.session.CheckAuth(ctx)

	for {
		snap := a.session.Snapshot()
		if snap.State() == session.Authenticated {
			if done := a.renderHome(ctx); done {
				return false, nil
			}
			continue
		}
		if done := a.renderLanding(ctx); done {
			return false, nil
		}
	}
}

// open routes to a protected view through the guard.
func (a *App) open(ctx context.Context, path string, render func(context.Context)) {
	decision := guard.Decide(a.session.Snapshot(), path)
	switch decision.Action {
	case guard.Pending:
		fmt.Fprintln(a.out, "Loading...")
	case guard.Redirect:
		a.logger.Debug().Str("from", path).Str("to", decision.Target).Msg("redirected")
		if decision.Target == guard.AuthedHome {
			fmt.Fprintln(a.out, "Onboarding already completed.")
		}
	case guard.Render:
		render(ctx)
	}
}

func (a *App) promptLine(label string) string {
	fmt.Fprintf(a.out, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (a *App) promptInt(label string) int {
	n, err := strconv.Atoi(a.promptLine(label))
	if err != nil {
		return 0
	}
	return n
}

func (a *App) promptFloat(label string) float64 {
	f, err := strconv.ParseFloat(a.promptLine(label), 64)
	if err != nil {
		return 0
	}
	return f
}

func (a *App) promptYesNo(label string) bool {
	answer := strings.ToLower(a.promptLine(label + " [y/n]"))
	return answer == "y" || answer == "yes"
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (tests, pipes).
func (a *App) promptPassword(label string) string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return a.promptLine(label)
	}
	fmt.Fprintf(a.out, "%s: ", label)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(a.out)
	if err != nil {
		return ""
	}
	return string(raw)
}

// alert shows a dismissible failure banner.
func (a *App) alert(message string) {
	fmt.Fprintf(a.out, "\n  [!] %s\n\n", message)
}

// toast shows a transient reward notification.
func (a *App) toast(message string) {
	fmt.Fprintf(a.out, "  *** %s ***\n", message)
}
