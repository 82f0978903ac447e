package main

import (
	"flag"
	"os"

	"portfolio-admin/global"
	"portfolio-admin/initialize"
	"portfolio-admin/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML config")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Error().Err(err).Msg("startup failed")
		os.Exit(1)
	}
	defer app.Store.Close()

	if err := server.Start(app.Cfg.Server.Host, app.Cfg.Server.Port, app.Router); err != nil {
		global.Logger.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
}
