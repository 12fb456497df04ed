package configs

import (
	"strings"
	"testing"

	"go-weather/pkg/msg"
)

func TestMessageCatalogueCoversLogKeys(t *testing.T) {
	if err := msg.Init("messages.yml"); err != nil {
		t.Fatalf("failed to load messages: %v", err)
	}

	keys := []string{
		"app.start", "app.started", "app.stopped", "app.config-loaded",
		"app.req-end", "app.req-fail", "app.rate-limited", "app.rate-limit-exceeded", "app.panic-recovered",
		"app.error.bind", "app.error.upstream", "app.error.config", "app.error.start",
		"forecast.aggregated", "forecast.city-not-found",
		"forecast.error.fetch", "forecast.error.aggregate", "forecast.error.city-required",
		"forecast.error.city-too-long", "forecast.error.city-not-found",
		"geolocation.not-found", "geolocation.error.lookup",
		"geolocation.error.invalid-coordinates", "geolocation.error.not-found",
		"http.request", "http.response", "http.response-body", "http.response-error",
	}
	for _, key := range keys {
		if got := msg.GetMessage(key); strings.HasPrefix(got, "Message not found") {
			t.Errorf("missing catalogue entry %s", key)
		}
	}

	if got := msg.GetMessage("forecast.aggregated", "Aarhus", 40, 6); got != "Condensed forecast for Aarhus from 40 samples to 6 days" {
		t.Errorf("unexpected aggregated message %q", got)
	}
}
