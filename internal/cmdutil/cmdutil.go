// Package cmdutil holds the flag and environment handling shared by the
// commands under cmd/.
package cmdutil

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"chosenoffset.com/pawnboard/internal/config"
)

// LoadEnv loads a .env file from the working directory if there is one.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
		return
	}
	log.Println("Loaded environment variables from .env file")
}

// ConfigFlags are the flags that override the JSON config.
func ConfigFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a JSON config file (defaults are used when empty)",
			Sources: cli.EnvVars("PAWNBOARD_CONFIG"),
		},
		&cli.IntFlag{
			Name:    "cols",
			Usage:   "board columns",
			Sources: cli.EnvVars("PAWNBOARD_COLS"),
		},
		&cli.IntFlag{
			Name:    "rows",
			Usage:   "board rows",
			Sources: cli.EnvVars("PAWNBOARD_ROWS"),
		},
		&cli.FloatFlag{
			Name:    "cell-size",
			Usage:   "cell edge length in world units",
			Sources: cli.EnvVars("PAWNBOARD_CELL_SIZE"),
		},
		&cli.FloatFlag{
			Name:    "interval",
			Usage:   "seconds between level increments",
			Sources: cli.EnvVars("PAWNBOARD_INTERVAL"),
		},
		&cli.StringFlag{
			Name:    "out-of-bounds",
			Usage:   "what dragging off the board does: clamp or ignore",
			Sources: cli.EnvVars("PAWNBOARD_OUT_OF_BOUNDS"),
		},
		&cli.StringFlag{
			Name:    "atlas",
			Usage:   "sprite atlas JSON (placeholders are used when it cannot be loaded)",
			Sources: cli.EnvVars("PAWNBOARD_ATLAS"),
		},
	}
}

// LoadConfig reads the config named by --config and applies the flag overrides.
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("cols") {
		cfg.Board.Cols = int(cmd.Int("cols"))
	}
	if cmd.IsSet("rows") {
		cfg.Board.Rows = int(cmd.Int("rows"))
	}
	if cmd.IsSet("cell-size") {
		cfg.Board.CellSize = cmd.Float("cell-size")
	}
	if cmd.IsSet("interval") {
		cfg.Level.IntervalSeconds = cmd.Float("interval")
	}
	if cmd.IsSet("out-of-bounds") {
		cfg.Drag.OutOfBounds = cmd.String("out-of-bounds")
	}
	if cmd.IsSet("atlas") {
		cfg.Assets.AtlasPath = cmd.String("atlas")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
