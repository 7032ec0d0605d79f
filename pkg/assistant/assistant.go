// Package assistant routes questions to tools and composes model
// prompts from their output.
package assistant

import (
	"context"
	"time"

	"github.com/minhyannv/chat-tools-go/pkg/intent"
	"github.com/minhyannv/chat-tools-go/pkg/llm"
	loggerpkg "github.com/minhyannv/chat-tools-go/pkg/logger"
	"github.com/minhyannv/chat-tools-go/pkg/weather"
)

// WeatherService is the weather lookup an Assistant depends on,
// satisfied by *weather.Client.
type WeatherService interface {
	Current(ctx context.Context, city string) (weather.Reading, error)
}

// Assistant answers one question at a time. It keeps no conversation
// state between calls.
type Assistant struct {
	provider    llm.Provider
	weather     WeatherService
	classify    intent.ClassifierFunc
	extractCity intent.CityExtractorFunc
	clock       func() time.Time
	logger      loggerpkg.Logger
	debug       bool
}

// New builds an Assistant around a model provider and a weather
// service.
func New(provider llm.Provider, weatherSvc WeatherService, opts ...Option) *Assistant {
	d := deps{
		classify:    intent.Classify,
		extractCity: intent.ExtractCity,
		clock:       time.Now,
		logger:      loggerpkg.NopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}

	return &Assistant{
		provider:    provider,
		weather:     weatherSvc,
		classify:    d.classify,
		extractCity: d.extractCity,
		clock:       d.clock,
		logger:      d.logger,
		debug:       d.debug,
	}
}

// Answer resolves one question. Weather and time questions get tool
// output folded into the prompt; everything else goes to the model
// as-is. A non-nil error is always a model failure; weather lookup
// failures are answered directly with their user-facing wording.
func (a *Assistant) Answer(ctx context.Context, question string) (string, error) {
	kind := a.classify(question)
	loggerpkg.Debug(a.debug, a.logger, "question classified", loggerpkg.Fields{"intent": kind})

	switch kind {
	case intent.Weather:
		return a.answerWeather(ctx, question)
	case intent.Time:
		return a.answerTime(ctx, question)
	default:
		return a.provider.Generate(ctx, question)
	}
}

func (a *Assistant) answerWeather(ctx context.Context, question string) (string, error) {
	city, ok := a.extractCity(question)
	if !ok {
		loggerpkg.Debug(a.debug, a.logger, "no city in weather question", nil)
		return clarifyCityMessage, nil
	}
	loggerpkg.Debug(a.debug, a.logger, "city extracted", loggerpkg.Fields{"city": city})

	reading, err := a.weather.Current(ctx, city)
	if err != nil {
		return renderWeatherError(err), nil
	}
	return a.provider.Generate(ctx, weatherPrompt(reading, question))
}

func (a *Assistant) answerTime(ctx context.Context, question string) (string, error) {
	now := a.clock().Format(timeLayout)
	return a.provider.Generate(ctx, timePrompt(now, question))
}
