// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/wneessen/weather-dash/internal/debounce"
	"github.com/wneessen/weather-dash/internal/logger"
	"github.com/wneessen/weather-dash/internal/presenter"
	"github.com/wneessen/weather-dash/internal/service"
	"github.com/wneessen/weather-dash/internal/session"
	"github.com/wneessen/weather-dash/internal/weather"
)

const helpText = `Type a city name to get suggestions, or use one of the commands:
  :go <city>   search for a city
  :pick <n>    select suggestion number n
  :here        use your approximate location
  :unit        switch between °C and °F
  :theme       switch between light and dark theme
  :new         start a new search
  :help        show this help
  :quit        exit`

var errQuit = errors.New("quit")

// controller is the part of the service driven by the dashboard.
type controller interface {
	Input(text string) session.State
	Suggest(ctx context.Context, text string) []weather.Location
	Search(ctx context.Context, city string) error
	SelectSuggestion(ctx context.Context, index int) error
	Locate(ctx context.Context) error
	ToggleUnit() session.State
	ToggleTheme() (session.State, error)
	NewSearch() session.State
	Snapshot() session.State
	Store() *session.Store
}

// dashboard is the interactive terminal frontend. Plain input lines feed the debounced
// suggestion lookup, lines starting with a colon are commands.
type dashboard struct {
	ctrl      controller
	pres      *presenter.Presenter
	log       *logger.Logger
	debouncer *debounce.Debouncer

	mu  sync.Mutex
	out io.Writer
}

func newDashboard(ctx context.Context, ctrl controller, pres *presenter.Presenter, log *logger.Logger,
	out io.Writer, delay time.Duration,
) *dashboard {
	dash := &dashboard{
		ctrl: ctrl,
		pres: pres,
		log:  log,
		out:  out,
	}
	dash.debouncer = debounce.New(ctx, delay, dash.suggest)
	ctrl.Store().Subscribe(func(state session.State) {
		dash.debouncer.Suppress(state.Confirmed())
	})
	return dash
}

// run reads input lines until in is exhausted, ctx is canceled or the user quits.
func (d *dashboard) run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer d.debouncer.Stop()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	d.println(helpText)
	d.prompt()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if err := d.handle(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				d.log.Debug("command failed", logger.Err(err))
			}
			d.prompt()
		}
	}
}

func (d *dashboard) handle(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		d.ctrl.Input(line)
		d.debouncer.Trigger(line)
		return nil
	}

	cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)
	var err error
	switch strings.ToLower(cmd) {
	case "q", "quit", "exit":
		return errQuit
	case "h", "help":
		d.println(helpText)
		return nil
	case "go", "search":
		d.debouncer.Stop()
		err = d.ctrl.Search(ctx, arg)
	case "p", "pick":
		index, perr := strconv.Atoi(arg)
		if perr != nil {
			d.println(fmt.Sprintf("invalid suggestion number: %q", arg))
			return perr
		}
		err = d.ctrl.SelectSuggestion(ctx, index)
		var fetchErr *service.FetchError
		if err != nil && !errors.As(err, &fetchErr) {
			d.println(err.Error())
			return err
		}
	case "here":
		err = d.ctrl.Locate(ctx)
	case "unit":
		d.ctrl.ToggleUnit()
	case "theme":
		if _, err = d.ctrl.ToggleTheme(); err != nil {
			d.log.Warn("failed to persist theme", logger.Err(err))
		}
	case "new":
		d.ctrl.NewSearch()
	default:
		d.println(fmt.Sprintf("unknown command %q, type :help for a list of commands", cmd))
		return nil
	}
	d.render(d.ctrl.Snapshot())
	return err
}

func (d *dashboard) suggest(ctx context.Context, text string) {
	locations := d.ctrl.Suggest(ctx, text)
	if ctx.Err() != nil || len(locations) == 0 {
		return
	}
	d.render(d.ctrl.Snapshot())
	d.prompt()
}

func (d *dashboard) render(state session.State) {
	view, err := d.pres.Dashboard(state)
	if err != nil {
		d.log.Error("failed to render dashboard", logger.Err(err))
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, _ = io.WriteString(d.out, "\n"+view)
}

func (d *dashboard) println(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, _ = fmt.Fprintln(d.out, text)
}

func (d *dashboard) prompt() {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, _ = io.WriteString(d.out, "> ")
}
