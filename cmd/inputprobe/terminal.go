package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sicle-games/sicle/pkg/sicle"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
	"github.com/sicle-games/sicle/pkg/sicle/source/tcellsource"
)

// runTerminal drives the probe from terminal key presses and draws a status
// block instead of a window. Logs go to the log file only while the screen
// is active.
func runTerminal(ctx context.Context, p *probe, options sicle.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return sicle.NewSourceError("open_terminal", err)
	}
	if err := screen.Init(); err != nil {
		return sicle.NewSourceError("init_terminal", err)
	}
	defer screen.Fini()

	src := tcellsource.New(screen)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	readErr := make(chan error, 1)
	go func() {
		readErr <- src.Run(ctx)
	}()

	r := newRouter(src, p, options)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	last := time.Now()
	for !p.quit {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return err
		case now := <-ticker.C:
			src.Poll()
			r.Tick()
			p.clock.Advance(now.Sub(last))
			last = now
			drawStatus(screen, p)
			p.endFrame()
		}
	}

	cancel()
	<-readErr
	p.logger.Info("Input probe stopped", "presses", p.presses, "events", src.Events())
	return nil
}

func drawStatus(screen tcell.Screen, p *probe) {
	screen.Clear()

	style := tcell.StyleDefault
	if p.router.IsPaused() {
		style = style.Foreground(tcell.ColorRed)
	}

	lines := []string{
		"inputprobe (terminal)  Escape pauses, q quits",
		fmt.Sprintf("page: %s  depth: %d  paused: %v", p.router.CurrentName(), p.router.Depth(), p.router.IsPaused()),
		fmt.Sprintf("presses: %d  last: %s", p.presses, p.labels.Key(p.lastKey, p.platform)),
		"held: " + heldList(p),
		fmt.Sprintf("axes: horizontal %+.1f  vertical %+.1f", p.axes[keys.AxisHorizontal], p.axes[keys.AxisVertical]),
		fmt.Sprintf("sim time: %s", p.clock.Elapsed().Truncate(time.Millisecond)),
	}
	if p.router.IsPaused() {
		lines = append(lines, p.labels.Paused())
	}

	for y, line := range lines {
		for x, r := range line {
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}

func heldList(p *probe) string {
	names := make([]string, 0, len(p.held))
	for k := range p.held {
		names = append(names, k.String())
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}
