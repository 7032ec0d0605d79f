// Prompt composition and user-facing wording for the answer paths.
package assistant

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/minhyannv/chat-tools-go/pkg/weather"
)

// clarifyCityMessage answers a weather question that names no city.
const clarifyCityMessage = "I can help you with weather! Please specify a city. For example: 'What's the weather in London?'"

// timeLayout renders timestamps as YYYY-MM-DD HH:MM:SS.
const timeLayout = "2006-01-02 15:04:05"

// weatherPrompt folds one reading and the original question into the
// context block handed to the model.
func weatherPrompt(r weather.Reading, question string) string {
	return fmt.Sprintf(`Current weather data for %s, %s:
- Temperature: %s°C (feels like %s°C)
- Condition: %s
- Humidity: %d%%
- Wind speed: %s m/s

Present this weather information in a conversational way to answer the user's question: "%s"`,
		r.City, r.Country,
		formatFloat(r.Temperature), formatFloat(r.FeelsLike),
		r.Description, r.Humidity, formatFloat(r.WindSpeed),
		question)
}

// timePrompt embeds the formatted timestamp and the original question.
func timePrompt(now, question string) string {
	return fmt.Sprintf("Current date and time: %s. Answer the user's question: '%s'", now, question)
}

// formatFloat renders metrics without padding: 15.3 stays "15.3" and
// 15 stays "15".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// renderWeatherError maps the lookup failure taxonomy to the wording
// shown to the user. The model is never consulted for these.
func renderWeatherError(err error) string {
	var authErr *weather.AuthError
	if errors.As(err, &authErr) {
		return "❌ Weather API key is invalid or not activated yet. Please check your API key."
	}
	var notFound *weather.NotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("❌ City '%s' not found. Please check the spelling.", notFound.City)
	}
	var statusErr *weather.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("❌ Weather API error: %s", statusErr.Status)
	}
	var netErr *weather.NetworkError
	if errors.As(err, &netErr) {
		return fmt.Sprintf("❌ Network error fetching weather data: %v", netErr.Err)
	}
	var parseErr *weather.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("❌ Error parsing weather data: %v", parseErr)
	}
	return fmt.Sprintf("❌ Weather API error: %v", err)
}
