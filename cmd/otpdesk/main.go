package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/okarpushin/otpdesk/internal/buildinfo"
	"github.com/okarpushin/otpdesk/internal/cli"
	"github.com/okarpushin/otpdesk/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
