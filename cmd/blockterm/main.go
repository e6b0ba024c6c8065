package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/qnkhuat/blockterm/pkg/config"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/gui"
	"github.com/qnkhuat/blockterm/pkg/logging"
	"github.com/qnkhuat/blockterm/pkg/mino"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	nick := flag.String("nick", "", "nickname shown next to the board")
	lineMode := flag.Bool("line", false, "read commands line by line instead of drawing the interactive interface")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "piece generator seed, 0 for random")
	flag.DurationVar(&cfg.Tick, "tick", cfg.Tick, "gravity interval")
	flag.StringVar(&cfg.Randomizer, "randomizer", cfg.Randomizer, "piece randomizer: uniform or bag")
	flag.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: basic or mono")
	flag.StringVar(&cfg.Log, "log", cfg.Log, "path to log file")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	closer, err := logging.Init(cfg.Log, "CLIENT: ")
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	if err := mino.VerifyCatalog(); err != nil {
		log.Fatalf("bad piece catalog: %s", err)
	}

	gen, seed, err := cfg.Generator()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("new game: randomizer %s, seed %d", cfg.Randomizer, seed)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g := game.New(gen)

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if *lineMode || !interactive {
		if err := runLines(ctx, g, os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	theme, err := gui.LookupTheme(cfg.Theme)
	if err != nil {
		log.Fatal(err)
	}

	ui := gui.New(g, game.NewClock(cfg.Tick), theme, *nick)
	if err := ui.Run(ctx); err != nil {
		log.Fatalf("failed to run interface: %s", err)
	}
}
