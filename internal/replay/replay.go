// Package replay drives a game headlessly from a text script of pointer events.
//
// One line is one frame:
//
//	press X Y    hold the primary button with the cursor at screen (X, Y)
//	move X Y     move the cursor, button unchanged
//	release      let go of the button
//	leave        the cursor leaves the window
//	wait D       an idle frame lasting D (a Go duration, e.g. 2s)
//	idle         an idle frame of the default length
//
// Blank lines and lines starting with # are ignored. Any line may end in
// "xN" to repeat it N times.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"chosenoffset.com/pawnboard/internal/board"
	"chosenoffset.com/pawnboard/internal/drag"
	"chosenoffset.com/pawnboard/internal/game"
	"chosenoffset.com/pawnboard/internal/render/headless"
)

// Op is a script verb.
type Op string

const (
	OpPress   Op = "press"
	OpMove    Op = "move"
	OpRelease Op = "release"
	OpLeave   Op = "leave"
	OpWait    Op = "wait"
	OpIdle    Op = "idle"
)

// Step is one parsed script line.
type Step struct {
	Line  int
	Op    Op
	X, Y  float64
	Delta time.Duration // zero means the default frame length
}

// Parse reads a script. Repeated lines are expanded.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		repeat := 1
		if last := fields[len(fields)-1]; len(fields) > 1 && strings.HasPrefix(last, "x") {
			n, err := strconv.Atoi(last[1:])
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("line %d: bad repeat %q", line, last)
			}
			repeat = n
			fields = fields[:len(fields)-1]
		}

		step, err := parseStep(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		step.Line = line
		for i := 0; i < repeat; i++ {
			steps = append(steps, step)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return steps, nil
}

func parseStep(fields []string) (Step, error) {
	step := Step{Op: Op(fields[0])}
	args := fields[1:]

	switch step.Op {
	case OpPress, OpMove:
		if len(args) != 2 {
			return step, fmt.Errorf("%s takes X and Y", step.Op)
		}
		var err error
		if step.X, err = strconv.ParseFloat(args[0], 64); err != nil {
			return step, fmt.Errorf("bad X %q", args[0])
		}
		if step.Y, err = strconv.ParseFloat(args[1], 64); err != nil {
			return step, fmt.Errorf("bad Y %q", args[1])
		}
	case OpWait:
		if len(args) != 1 {
			return step, fmt.Errorf("wait takes a duration")
		}
		d, err := time.ParseDuration(args[0])
		if err != nil || d <= 0 {
			return step, fmt.Errorf("bad duration %q", args[0])
		}
		step.Delta = d
	case OpRelease, OpLeave, OpIdle:
		if len(args) != 0 {
			return step, fmt.Errorf("%s takes no arguments", step.Op)
		}
	default:
		return step, fmt.Errorf("unknown command %q", fields[0])
	}
	return step, nil
}

// Record is the state of the game after one replayed frame.
type Record struct {
	Frame   int
	Step    Step
	Drag    drag.Snapshot
	Pawn    board.GridPosition
	Level   int
	Label   string
	LevelUp bool
	Elapsed time.Duration
}

// Run replays steps through g.Step and calls fn after every frame.
func Run(g *game.Game, steps []Step, frame time.Duration, fn func(Record)) {
	in := headless.NewInput(0, 0)
	in.Leave()

	var elapsed time.Duration
	for _, s := range steps {
		switch s.Op {
		case OpPress:
			in.Press(s.X, s.Y)
		case OpMove:
			in.MoveTo(s.X, s.Y)
		case OpRelease:
			in.Release()
		case OpLeave:
			in.Leave()
		}

		delta := frame
		if s.Delta > 0 {
			delta = s.Delta
		}
		before, _ := g.Level()
		g.Step(game.Frame{Delta: delta, Pointer: in})
		elapsed += delta

		lvl, label := g.Level()
		if fn != nil {
			fn(Record{
				Frame:   g.FrameCount(),
				Step:    s,
				Drag:    g.Drag(),
				Pawn:    g.Pawn().Cell,
				Level:   lvl,
				Label:   label,
				LevelUp: lvl != before,
				Elapsed: elapsed,
			})
		}
	}
}
