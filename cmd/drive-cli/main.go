package main

import (
	"fmt"
	"os"

	"file-relay/internal/infrastructure/drive"
	"file-relay/internal/pkg/config"
	"file-relay/internal/usecases"

	"github.com/fatih/color"
)

func main() {
	config.LoadEnvFile()
	cfg := config.LoadConfig()

	open := func() (usecases.DriveService, error) {
		backend, err := drive.New(cfg.Drive)
		if err != nil {
			return nil, err
		}
		return usecases.NewDriveService(backend), nil
	}

	root := newRootCmd(open, os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
