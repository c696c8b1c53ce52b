package main

import (
	"os"

	"github.com/OliveiraNt/maned-courier/cmd"
	"github.com/OliveiraNt/maned-courier/internal/utils"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	utils.InitLogger()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
