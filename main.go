package main

import (
	"fmt"
	"log"
	"time"

	"github.com/skratchdot/open-golang/open"

	"calcmcp/config"
	"calcmcp/service/calculator"
	"calcmcp/service/storage"
	"calcmcp/ui"
)

func main() {
	cfg := config.Load()

	st := storage.NewStorage(cfg.HistoryFile)
	service := calculator.NewService(st)

	switch cfg.Mode {
	case "web":
		calcURL := "http://localhost" + cfg.WebAddr

		if cfg.OpenBrowser {
			go func() {
				time.Sleep(500 * time.Millisecond)
				err := open.Run(calcURL)
				if err != nil {
					log.Printf("❌ Не удалось открыть браузер: %v", err)
				}
			}()
		}

		fmt.Printf("🌐 Калькулятор доступен по адресу: %s\n", calcURL)
		fmt.Println("Нажмите Ctrl+C для выхода.")

		web := ui.NewWebInterface(service, cfg)
		if err := web.Start(cfg.WebAddr); err != nil {
			log.Fatal(err)
		}

	case "cli":
		cli := ui.NewConsoleInterface(service)
		if err := cli.Run(); err != nil {
			log.Fatal(err)
		}

	default:
		// MCP режим по умолчанию: stdout занят транспортом
		mcp := ui.NewMCPInterface(service)
		if err := mcp.Start(); err != nil {
			log.Fatal(err)
		}
	}
}
