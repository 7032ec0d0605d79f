package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleBody = `{
	"name": "London",
	"sys": {"country": "GB"},
	"main": {"temp": 15.3, "feels_like": 14.1, "humidity": 72},
	"weather": [{"description": "scattered clouds"}],
	"wind": {"speed": 4.6}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
}

func TestCurrentSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "London" || q.Get("appid") != "test-key" || q.Get("units") != "metric" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(sampleBody))
	})

	reading, err := client.Current(context.Background(), "London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.City != "London" || reading.Country != "GB" {
		t.Fatalf("unexpected location: %+v", reading)
	}
	if reading.Temperature != 15.3 || reading.FeelsLike != 14.1 {
		t.Fatalf("unexpected temperatures: %+v", reading)
	}
	if reading.Humidity != 72 {
		t.Fatalf("unexpected humidity: %d", reading.Humidity)
	}
	if reading.Description != "Scattered Clouds" {
		t.Fatalf("expected title-cased description, got %q", reading.Description)
	}
	if reading.WindSpeed != 4.6 {
		t.Fatalf("unexpected wind speed: %v", reading.WindSpeed)
	}
}

func TestCurrentTrimsCityInQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "London" {
			t.Errorf("expected trimmed city in query, got %q", got)
		}
		_, _ = w.Write([]byte(sampleBody))
	})

	if _, err := client.Current(context.Background(), "  London  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCurrentAuthError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Current(context.Background(), "London")
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

func TestCurrentNotFoundKeepsOriginalCity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	// The argument comes back untrimmed and untouched, not title-cased.
	_, err := client.Current(context.Background(), " atlantis ")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.City != " atlantis " {
		t.Fatalf("expected original city preserved, got %q", notFound.City)
	}
}

func TestCurrentOtherStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Current(context.Background(), "London")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status code: %d", statusErr.Code)
	}
}

func TestCurrentNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := New(Config{APIKey: "test-key", BaseURL: srv.URL})
	srv.Close()

	_, err := client.Current(context.Background(), "London")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

type recordingLogger struct {
	infos []string
}

func (l *recordingLogger) Info(msg string, _ any) { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Warn(string, any)       {}
func (l *recordingLogger) Debug(string, any)      {}
func (l *recordingLogger) Error(string, any)      {}

func TestCurrentLogsLookupBeforeCall(t *testing.T) {
	rec := &recordingLogger{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	client := New(Config{APIKey: "test-key", BaseURL: srv.URL, Logger: rec})

	// The diagnostic fires even when the lookup fails.
	_, _ = client.Current(context.Background(), "nowhere")
	if len(rec.infos) != 1 || rec.infos[0] != "fetching weather" {
		t.Fatalf("expected one lookup diagnostic, got %#v", rec.infos)
	}
}

func TestCurrentParseErrors(t *testing.T) {
	// A 200 body missing any object the reading needs must come back
	// as a ParseError naming it, never as a zero-valued Reading.
	cases := map[string]struct {
		body  string
		field string
	}{
		"malformed json": {`{"name": `, ""},
		"missing name": {
			`{"main": {"temp": 1}, "weather": [{"description": "mist"}]}`, "name"},
		"missing sys": {
			`{"name": "London", "main": {"temp": 1}, "weather": [{"description": "mist"}], "wind": {"speed": 2}}`, "sys"},
		"missing main": {
			`{"name": "London", "sys": {"country": "GB"}, "weather": [{"description": "mist"}]}`, "main"},
		"empty weather": {
			`{"name": "London", "sys": {"country": "GB"}, "main": {"temp": 1}, "weather": [], "wind": {"speed": 2}}`, "weather"},
		"missing wind": {
			`{"name": "London", "sys": {"country": "GB"}, "main": {"temp": 1}, "weather": [{"description": "mist"}]}`, "wind"},
	}
	for name, tc := range cases {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(tc.body))
		})

		_, err := client.Current(context.Background(), "London")
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("%s: expected ParseError, got %v", name, err)
		}
		if parseErr.Field != tc.field {
			t.Fatalf("%s: expected field %q, got %q", name, tc.field, parseErr.Field)
		}
	}
}
