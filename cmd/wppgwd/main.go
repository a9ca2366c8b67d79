package main

import (
	"flag"

	"github.com/joho/godotenv"
	"github.com/matheus3301/wppgw/internal/gateway"
	"go.uber.org/fx"
)

func main() {
	configFlag := flag.String("config", "", "path to TOML config file")
	listenFlag := flag.String("listen", "", "listen address (overrides config)")
	backendFlag := flag.String("backend", "", "backend base URL (overrides config)")
	flag.Parse()

	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	app := fx.New(
		gateway.Module(gateway.Params{
			ConfigPath: *configFlag,
			ListenAddr: *listenFlag,
			BackendURL: *backendFlag,
		}),
	)

	app.Run()
}
