package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/futurama-catalog/internal/app"
	"github.com/dmitrijs2005/futurama-catalog/internal/buildinfo"
	"github.com/dmitrijs2005/futurama-catalog/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	ctx := context.Background()
	cfg := config.LoadConfig()
	a, err := app.NewApp(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	a.Run(ctx)

}
