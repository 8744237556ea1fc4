// Package player paces a command sequence in real time and hands each
// command to a Tapper as its start time arrives.
package player

import (
	"context"
	"log/slog"
	"time"

	"github.com/burrowlab/wellflute/pkg/sequence"
)

// Tapper consumes one command at its scheduled moment. The terminal
// tapper renders it; an input injector would press the keys.
type Tapper interface {
	Tap(cmd sequence.Command) error
}

// Clock abstracts time for the player so pacing is testable.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in
	// the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Player replays a command sequence against an absolute timeline.
// Each command is scheduled at the cumulative duration of everything
// before it, so render time never accumulates as drift.
type Player struct {
	Tapper Tapper
	Clock  Clock        // nil means the system clock
	Logger *slog.Logger // nil means slog.Default
}

func (p *Player) clock() Clock {
	if p.Clock != nil {
		return p.Clock
	}
	return systemClock{}
}

func (p *Player) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// Countdown waits the given number of seconds, calling notify with the
// remaining count each second. Gives the user time to focus the target
// window before the first tap.
func (p *Player) Countdown(ctx context.Context, seconds int, notify func(remaining int)) error {
	clk := p.clock()
	for i := seconds; i > 0; i-- {
		if notify != nil {
			notify(i)
		}
		if err := clk.Sleep(ctx, time.Second); err != nil {
			return err
		}
	}
	return nil
}

// Play runs the sequence to completion or until ctx is canceled.
func (p *Player) Play(ctx context.Context, cmds []sequence.Command) error {
	clk := p.clock()
	start := clk.Now()
	elapsed := time.Duration(0)

	p.logger().Debug("playback started", "commands", len(cmds))
	for i, cmd := range cmds {
		if err := clk.Sleep(ctx, start.Add(elapsed).Sub(clk.Now())); err != nil {
			p.logger().Debug("playback interrupted", "at", i)
			return err
		}
		if err := p.Tapper.Tap(cmd); err != nil {
			return err
		}
		elapsed += time.Duration(cmd.DurationMS * float64(time.Millisecond))
	}
	// Let the final note ring out for its full duration.
	if err := clk.Sleep(ctx, start.Add(elapsed).Sub(clk.Now())); err != nil {
		return err
	}
	p.logger().Debug("playback finished", "elapsed", elapsed)
	return nil
}
