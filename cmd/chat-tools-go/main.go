// Package main provides the chat-tools CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/minhyannv/chat-tools-go/pkg/assistant"
	configpkg "github.com/minhyannv/chat-tools-go/pkg/config"
	"github.com/minhyannv/chat-tools-go/pkg/llm"
	loggerpkg "github.com/minhyannv/chat-tools-go/pkg/logger"
	"github.com/minhyannv/chat-tools-go/pkg/weather"
)

// main is the program entry point.
func main() {
	cfg, err := configpkg.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appLogger := loggerpkg.NewWriterLogger(os.Stderr)

	provider := llm.NewClient(llm.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
	})
	weatherClient := weather.New(weather.Config{
		APIKey:  cfg.Weather.APIKey,
		BaseURL: cfg.Weather.BaseURL,
		Logger:  appLogger,
	})
	bot := assistant.New(provider, weatherClient,
		assistant.WithLogger(appLogger),
		assistant.WithDebug(cfg.Debug),
	)

	opts := replOptions{WeatherKey: cfg.Weather.APIKey}
	if err := runREPL(context.Background(), bot, opts, os.Stdin, os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
