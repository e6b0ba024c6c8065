package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/qnkhuat/blockterm/pkg/config"
	"github.com/qnkhuat/blockterm/pkg/logging"
	"github.com/qnkhuat/blockterm/pkg/server"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	flag.StringVar(&cfg.Addr, "listen", cfg.Addr, "address to listen for ssh connections")
	flag.StringVar(&cfg.Binary, "binary", cfg.Binary, "path to the blockterm client binary")
	flag.StringVar(&cfg.HostKey, "host-key", cfg.HostKey, "path to the ssh host key, empty for an ephemeral key")
	flag.DurationVar(&cfg.IdleTimeout, "idle-timeout", cfg.IdleTimeout, "disconnect idle sessions after this long")
	flag.StringVar(&cfg.Log, "log", cfg.Log, "path to log file, empty for stderr")
	flag.Parse()

	if cfg.Log != "" {
		closer, err := logging.Init(cfg.Log, "SERVER: ")
		if err != nil {
			log.Fatal(err)
		}
		defer closer.Close()
	} else {
		log.SetPrefix("SERVER: ")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := &server.SSHServer{
		Addr:        cfg.Addr,
		Binary:      cfg.Binary,
		HostKey:     cfg.HostKey,
		IdleTimeout: cfg.IdleTimeout,
	}

	log.Println("Server started")
	if err := s.ListenAndServe(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("Server stopped")
}
