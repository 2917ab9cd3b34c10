package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/liyas/soalgen/internal/config"
	"github.com/liyas/soalgen/internal/export"
	"github.com/liyas/soalgen/internal/llm"
	"github.com/liyas/soalgen/internal/secrets"
	"github.com/liyas/soalgen/internal/service"
	"github.com/liyas/soalgen/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	providerName := strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	apiKey := secrets.ResolveAPIKey(providerName, cfg.LLM.APIKeyEnv, cfg.LLM.APIKey)
	if apiKey == "" {
		fmt.Fprintf(os.Stderr, "no API key: set %s or store one with the secrets file\n", cfg.LLM.APIKeyEnv)
		os.Exit(1)
	}

	provider, err := llm.NewGeminiProvider(ctx, apiKey, cfg.LLM.Model)
	if err != nil {
		log.Fatalf("llm: %v", err)
	}

	generator := &service.GeneratorService{Provider: provider}
	coord := &service.Coordinator{Provider: provider}
	exporter := &export.Exporter{Dir: cfg.Export.Dir}

	p := tea.NewProgram(tui.New(ctx, cfg, generator, coord, exporter), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
