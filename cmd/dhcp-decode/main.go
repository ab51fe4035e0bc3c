package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rejdeboer/dhcp-decoder/cmd/dhcp-decode/commands"
)

func main() {
	godotenv.Load(".env")

	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
