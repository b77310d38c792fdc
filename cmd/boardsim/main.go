// Command boardsim replays a pointer script against the board without a window
// and prints what the drag tracker, pawn and level counter did on every frame.
//
// Scripts are read from --script or stdin; see package replay for the format.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"chosenoffset.com/pawnboard/internal/cmdutil"
	"chosenoffset.com/pawnboard/internal/drag"
	"chosenoffset.com/pawnboard/internal/game"
	"chosenoffset.com/pawnboard/internal/replay"
)

func main() {
	cmdutil.LoadEnv()

	cmd := &cli.Command{
		Name:  "boardsim",
		Usage: "replay a pointer script headlessly",
		Flags: append(cmdutil.ConfigFlags(),
			&cli.StringFlag{
				Name:    "script",
				Aliases: []string{"s"},
				Usage:   "script file (stdin when empty)",
			},
			&cli.IntFlag{
				Name:  "tps",
				Value: 60,
				Usage: "simulated frames per second",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only print frames where something changed",
			},
		),
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := cmdutil.LoadConfig(cmd)
	if err != nil {
		return err
	}
	tps := int(cmd.Int("tps"))
	if tps <= 0 {
		return fmt.Errorf("invalid tps: %d", tps)
	}
	if cmd.Bool("no-color") {
		color.NoColor = true
	}

	var src io.Reader = os.Stdin
	if path := cmd.String("script"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		src = f
	}

	steps, err := replay.Parse(src)
	if err != nil {
		return err
	}

	g, err := game.New(game.Deps{}, cfg)
	if err != nil {
		return err
	}

	quiet := cmd.Bool("quiet")
	replay.Run(g, steps, time.Second/time.Duration(tps), func(rec replay.Record) {
		if quiet && !interesting(rec) {
			return
		}
		fmt.Fprintln(os.Stdout, formatRecord(rec))
	})

	lvl, label := g.Level()
	fmt.Printf("%d frames, pawn at %v, %s (level %d)\n", g.FrameCount(), g.Pawn().Cell, label, lvl)
	return nil
}

var (
	held    = color.New(color.FgGreen).SprintFunc()
	edge    = color.New(color.FgYellow, color.Bold).SprintFunc()
	levelUp = color.New(color.FgCyan, color.Bold).SprintFunc()
	offGrid = color.New(color.FgRed).SprintFunc()
)

func interesting(rec replay.Record) bool {
	return rec.Drag.JustPressed || rec.Drag.JustReleased || rec.LevelUp
}

func formatRecord(rec replay.Record) string {
	state := rec.Drag.State.String()
	if rec.Drag.State == drag.Pressed {
		state = held(state)
	}

	line := fmt.Sprintf("%5d %8s %-8s %-8s pawn=%v", rec.Frame, rec.Elapsed.Round(time.Millisecond), rec.Step.Op, state, rec.Pawn)
	if rec.Drag.HasCell && !rec.Drag.OnBoard {
		line += " " + offGrid("off-board")
	}
	if rec.Drag.JustPressed {
		line += " " + edge("just-pressed")
	}
	if rec.Drag.JustReleased {
		line += " " + edge("just-released")
	}
	if rec.LevelUp {
		line += " " + levelUp(rec.Label)
	}
	return line
}
