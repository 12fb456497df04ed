package api

import (
	"context"
	_ "embed"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"go-weather/internal/domain/model"
	"go-weather/pkg/http"
)

//go:embed testdata/reverse_geocode_aarhus.json
var reverseGeocodeFixture []byte

func TestReverseGeocode(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path != reverseGeocodePath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("latitude") != "56.1629" || query.Get("longitude") != "10.2039" || query.Get("localityLanguage") != "en" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(reverseGeocodeFixture)
	}))
	defer server.Close()

	gateway := NewGeolocationGateway(server.URL, "", http.ClientOptions{})

	response, err := gateway.ReverseGeocode(context.Background(), 56.1629, 10.2039)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.City != "Aarhus" || response.Locality != "Aarhus C" || response.CountryCode != "DK" {
		t.Errorf("unexpected response %+v", response)
	}
}

func TestReverseGeocodeRejectedCoordinates(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":400,"description":"Latitude must be between -90 and 90"}`))
	}))
	defer server.Close()

	gateway := NewGeolocationGateway(server.URL, "en", http.ClientOptions{})

	_, err := gateway.ReverseGeocode(context.Background(), 91, 0)

	var gatewayErr *GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected *GatewayError, got %v", err)
	}
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("expected ErrUpstreamUnavailable, got %v", gatewayErr.Kind)
	}
	if gatewayErr.Message != "Latitude must be between -90 and 90" {
		t.Errorf("unexpected message %q", gatewayErr.Message)
	}
}

func TestGeolocationGatewayHealth(t *testing.T) {
	health := NewGeolocationGateway("https://api.bigdatacloud.net", "da", http.ClientOptions{}).Health()
	if health.Status != model.StatusUp || health.Details["locality_language"] != "da" {
		t.Errorf("unexpected health %+v", health)
	}
}
