package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"chosenoffset.com/pawnboard/internal/cmdutil"
	"chosenoffset.com/pawnboard/internal/game"
	ebitenrender "chosenoffset.com/pawnboard/internal/render/ebiten"
)

func main() {
	cmdutil.LoadEnv()

	cmd := &cli.Command{
		Name:   "pawnboard",
		Usage:  "drag a pawn around a chessboard",
		Flags:  cmdutil.ConfigFlags(),
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

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	sprites, err := game.LoadSprites(cfg, loader, renderer)
	if err != nil {
		return err
	}

	g, err := game.New(game.Deps{
		Renderer: renderer,
		Input:    inputMgr,
		Clock:    ebitenrender.NewClock(),
		Sprites:  sprites,
	}, cfg)
	if err != nil {
		return err
	}

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Printf("Starting %dx%d board...", cfg.Board.Cols, cfg.Board.Rows)
	if err := engine.RunGame(g); err != nil {
		return err
	}
	log.Println("Window closed")
	return nil
}
