// Interactive loop, startup checks and banner.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// answerer is the orchestrator surface the REPL needs.
type answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// replOptions configures REPL behavior.
type replOptions struct {
	WeatherKey string
}

// Fixed smoke-test questions issued before the loop starts.
const (
	weatherSmokeQuestion = "Weather in London"
	timeSmokeQuestion    = "What time is it"
)

// runREPL prints the banner, runs the startup checks and serves the
// interactive loop until a quit word or end of input.
func runREPL(ctx context.Context, bot answerer, opts replOptions, in io.Reader, out io.Writer) error {
	if bot == nil {
		return fmt.Errorf("assistant is required")
	}
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}

	printBanner(out)
	if err := runStartupChecks(ctx, bot, opts.WeatherKey, out); err != nil {
		return err
	}
	return runLoop(ctx, bot, in, out)
}

func printBanner(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Testing Enhanced AI with Tools...")
	_, _ = fmt.Fprintln(out, "Available tools: Weather data, Current time")
	_, _ = fmt.Fprintln(out, "Example questions:")
	_, _ = fmt.Fprintln(out, "- What's the weather in London")
	_, _ = fmt.Fprintln(out, "- Weather for New York")
	_, _ = fmt.Fprintln(out, "- What time is it")
	_, _ = fmt.Fprintln(out, "- Regular questions still work too!")
	_, _ = fmt.Fprintln(out, strings.Repeat("-", 50))
}

// runStartupChecks warns when the weather key is missing and exercises
// each tool once. The weather check is skipped without a key; the time
// check always runs.
func runStartupChecks(ctx context.Context, bot answerer, weatherKey string, out io.Writer) error {
	if weatherKey == "" {
		_, _ = fmt.Fprintln(out, "⚠️  Weather API key not found. Add OPENWEATHER_API_KEY to your .env file")
		_, _ = fmt.Fprintln(out, "⚠️  Get your free API key from: https://openweathermap.org/api")
	} else {
		_, _ = fmt.Fprintf(out, "✅ Weather API key loaded: %s...\n", maskKey(weatherKey))
		_, _ = fmt.Fprintln(out, "Testing weather feature...")
		answer, err := bot.Answer(ctx, weatherSmokeQuestion)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "AI: %s\n\n", answer)
	}

	_, _ = fmt.Fprintln(out, "Testing time feature...")
	answer, err := bot.Answer(ctx, timeSmokeQuestion)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "AI: %s\n\n", answer)
	return nil
}

// maskKey keeps the first eight characters for the startup print.
func maskKey(key string) string {
	if len(key) <= 8 {
		return key
	}
	return key[:8]
}

// runLoop reads lines until a quit word or end of input. Lines go to
// the assistant verbatim; an assistant error ends the loop.
func runLoop(ctx context.Context, bot answerer, in io.Reader, out io.Writer) error {
	_, _ = fmt.Fprintln(out, "Chat with Enhanced AI (type 'quit' to exit):")
	_, _ = fmt.Fprintln(out, "💡 Tip: Try questions like 'weather in Paris' or 'what time is it'")
	_, _ = fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	for {
		_, _ = fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		switch strings.ToLower(line) {
		case "quit", "exit", "bye":
			_, _ = fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		answer, err := bot.Answer(ctx, line)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "AI: %s\n\n", answer)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
