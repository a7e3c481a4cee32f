// FilePath: cmd/facilityhub/main.go
package main

import (
	"fmt"
	"log"
	"os"

	tm "github.com/buger/goterm"
	nuts "github.com/vaudience/go-nuts"
	_ "github.com/voltwatch/facilityhub/docs"
	"github.com/voltwatch/facilityhub/internal/config"
	"github.com/voltwatch/facilityhub/internal/server"
)

// @title FacilityHub API
// @version 1.0
// @description Facility asset hierarchy and power-source backend.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Clear console and draw logo
	ClearConsole()
	DrawLogo()
	// Initialize version info
	nuts.InitVersion()
	nuts.L.Infof("[Main] Starting FacilityHub Server v%s", nuts.GetVersion())

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create and start server
	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		os.Exit(1)
	}
}

// ClearConsole clears the console screen and draws the logo.
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		"    ______           _ ___ __        __  __      __  ",
		"   / ____/___ ______(_) (_) /___  __/ / / /_  __/ /_ ",
		"  / /_  / __ `/ ___/ / / / __/ / / / /_/ / / / / __ \\",
		" / __/ / /_/ / /__/ / / / /_/ /_/ / __  / /_/ / /_/ /",
		"/_/    \\__,_/\\___/_/_/_/\\__/\\__, /_/ /_/\\__,_/_.___/ ",
		".........................../____/...................  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
