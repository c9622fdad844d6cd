package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drpriyanshi/companion-tui/internal/util"
)

func TestFromConfigModes(t *testing.T) {
	if _, err := FromConfig(util.Config{LocationMode: "off"}).Locate(context.Background()); err != ErrUnsupported {
		t.Fatalf("off mode should be unsupported, got %v", err)
	}
	pos, err := FromConfig(util.Config{LocationMode: "static", Latitude: 28.6, Longitude: 77.2}).Locate(context.Background())
	if err != nil {
		t.Fatalf("static locate: %v", err)
	}
	if pos.Latitude != 28.6 || pos.Longitude != 77.2 {
		t.Fatalf("unexpected static position: %+v", pos)
	}
}

func TestIPLocator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","lat":19.07,"lon":72.87,"city":"Mumbai","country":"India"}`))
	}))
	defer srv.Close()
	pos, err := NewIPLocator(srv.URL).Locate(context.Background())
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if pos.Latitude != 19.07 || pos.Longitude != 72.87 {
		t.Fatalf("unexpected position: %+v", pos)
	}
	if pos.Address != "Mumbai, India" {
		t.Fatalf("unexpected address: %q", pos.Address)
	}
}

func TestIPLocatorFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"fail"}`))
	}))
	defer srv.Close()
	if _, err := NewIPLocator(srv.URL).Locate(context.Background()); err == nil {
		t.Fatal("expected error for failed lookup")
	}
}

func TestIPLocatorRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewIPLocator("http://127.0.0.1:0").Locate(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
