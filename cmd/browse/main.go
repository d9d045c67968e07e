package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"nextplay/internal/tui"
)

func main() {
	_ = godotenv.Load()

	baseURL := flag.String("server", envOr("NP_SERVER_URL", "http://localhost:8080"), "nextplay server base URL")
	userID := flag.String("user", os.Getenv("NP_USER"), "user id sent with requests (enables favorites)")
	pageSize := flag.Int("page-size", 40, "catalog items per page")
	flag.Parse()

	client := tui.NewAPIClient(*baseURL, *userID)
	model := tui.NewModel(client, *pageSize)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "browse:", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
