package main

import (
	"os"

	"github.com/Snider/quotegen/cmd"
	"github.com/Snider/quotegen/pkg/logger"
)

var osExit = os.Exit

func main() {
	Main()
}

func Main() {
	log := logger.New(false, "info")
	if err := cmd.Execute(); err != nil {
		log.Error("fatal error", "err", err)
		osExit(1)
	}
}
