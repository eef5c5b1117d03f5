// Whence feed viewer — an interactive demo of readable timestamps.
//
// Usage:
//
//	whence-feed [flags]
//
// Flags:
//
//	--db    Path to SQLite database file (default: ~/.whence/feed.db)
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/whence-dev/whence/internal/feed"
	"github.com/whence-dev/whence/internal/tui"
)

func main() {
	homeDir, _ := os.UserHomeDir()
	defaultDB := filepath.Join(homeDir, ".whence", "feed.db")

	dbPath := flag.String("db", defaultDB, "Path to SQLite database file")
	flag.Parse()

	store, err := feed.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open feed database at %s: %v\n"+
			"Seed a demo feed first with: whence seed", *dbPath, err)
	}
	defer store.Close()

	model := tui.NewModel(store)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running feed viewer: %v\n", err)
		os.Exit(1)
	}
}
