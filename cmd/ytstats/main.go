package main

import (
	"context"
	"flag"
	"log"

	"github.com/mstolbov/ytstats/internal/app"
)

var (
	version   string
	buildTime string
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	scriptPath := flag.String("script", "", "Path to a JavaScript file to run with the youtube binding")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		log.Printf("ytstats %s (built at: %s)", version, buildTime)
		return
	}

	application, err := app.New(*configPath)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.Run(context.Background(), *scriptPath, flag.Args()); err != nil {
		application.Logger.WithError(err).Fatal("ytstats failed")
	}
}
