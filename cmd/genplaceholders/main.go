package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"chosenoffset.com/pawnboard/internal/placeholders"
)

func main() {
	cmd := &cli.Command{
		Name:  "genplaceholders",
		Usage: "write placeholder board and pawn sprites",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Value: "assets",
				Usage: "directory for the atlas image and config",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Println("Pawnboard Placeholder Graphics Generator")
			fmt.Println("========================================")
			fmt.Println()

			if err := placeholders.GenerateAndSave(cmd.String("out")); err != nil {
				return err
			}

			fmt.Println()
			fmt.Println("Done! Run pawnboard to see the placeholders in action.")
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
