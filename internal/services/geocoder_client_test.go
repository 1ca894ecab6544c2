package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNominatimSearchParsesBestHit(t *testing.T) {
	var gotUA, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"35.7147651","lon":"139.7966553","display_name":"Sensoji, Asakusa, Tokyo","class":"tourism","type":"attraction"}]`))
	}))
	defer server.Close()

	client := &NominatimClient{HTTP: server.Client(), BaseURL: server.URL, UserAgent: "tripmate-test/1.0"}
	hit, err := client.Search(context.Background(), "센소지, 도쿄")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if hit == nil {
		t.Fatal("expected a hit")
	}
	if gotUA != "tripmate-test/1.0" {
		t.Fatalf("user agent not sent, got %q", gotUA)
	}
	if gotQuery != "센소지, 도쿄" {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
	if hit.Lat != 35.7147651 || hit.Lng != 139.7966553 {
		t.Fatalf("unexpected coordinates: %v, %v", hit.Lat, hit.Lng)
	}
	if hit.Address != "Sensoji, Asakusa, Tokyo" {
		t.Fatalf("unexpected address: %q", hit.Address)
	}
	if len(hit.Types) != 2 || hit.Types[0] != "tourism" || hit.Types[1] != "tourism:attraction" {
		t.Fatalf("unexpected types: %v", hit.Types)
	}
}

func TestNominatimSearchEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := &NominatimClient{HTTP: server.Client(), BaseURL: server.URL, UserAgent: "tripmate-test/1.0"}
	hit, err := client.Search(context.Background(), "존재하지 않는 장소")
	if err != nil {
		t.Fatalf("empty result is not an error, got %v", err)
	}
	if hit != nil {
		t.Fatalf("expected nil hit, got %+v", hit)
	}
}

func TestNominatimSearchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := &NominatimClient{HTTP: server.Client(), BaseURL: server.URL, UserAgent: "tripmate-test/1.0"}
	if _, err := client.Search(context.Background(), "센소지"); err == nil {
		t.Fatal("expected an error on non-200 status")
	}
}
