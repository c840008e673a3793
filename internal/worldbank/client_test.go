package worldbank

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"indicomp/internal/catalog"
	"indicomp/internal/models"
)

const countriesPayload = `[
  {"page":1,"pages":1,"per_page":"300","total":4},
  [
    {"id":"DEU","iso2Code":"DE","name":"Germany","region":{"id":"ECS"},"incomeLevel":{"id":"HIC"},"capitalCity":"Berlin"},
    {"id":"ARB","iso2Code":"1A","name":"Arab World","region":{"id":"NA"},"incomeLevel":{"id":"NA"},"capitalCity":""},
    {"id":"CAN","iso2Code":"CA","name":"Canada","region":{"id":"NAC"},"incomeLevel":{"id":"HIC"},"capitalCity":"Ottawa"},
    {"id":"XXX","iso2Code":"XX","name":"Nowhere","region":{"id":"ECS"},"incomeLevel":{"id":"NA"},"capitalCity":"Capital"}
  ]
]`

const gdpPayload = `[
  {"page":1,"pages":1,"per_page":10,"total":3},
  [
    {"date":"2024","value":null},
    {"date":"2023","value":48717.99},
    {"date":"2022","value":46000.1}
  ]
]`

const nullPayload = `[
  {"page":1,"pages":1,"per_page":10,"total":2},
  [{"date":"2024","value":null},{"date":"2023","value":null}]
]`

var fixedNow = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

type fakeAPI struct {
	mu       sync.Mutex
	queries  []string
	requests atomic.Int32
	failAll  bool
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)

	f.mu.Lock()
	f.queries = append(f.queries, r.URL.String())
	f.mu.Unlock()

	if f.failAll {
		http.Error(w, "down", http.StatusServiceUnavailable)

		return
	}

	switch {
	case r.URL.Path == "/v2/country":
		_, _ = w.Write([]byte(countriesPayload))
	case strings.HasSuffix(r.URL.Path, "/indicator/NY.GDP.PCAP.CD"):
		_, _ = w.Write([]byte(gdpPayload))
	case strings.HasSuffix(r.URL.Path, "/indicator/SP.POP.TOTL"):
		_, _ = w.Write([]byte(nullPayload))
	case strings.HasSuffix(r.URL.Path, "/indicator/SP.DYN.LE00.IN"):
		_, _ = w.Write([]byte(`[{"message":[{"id":"120","value":"Invalid value"}]}]`))
	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	return NewClient(Options{
		BaseURL: srv.URL + "/v2",
		Timeout: 2 * time.Second,
		Now:     fixedNow,
	})
}

func TestListEntities_FiltersAndSorts(t *testing.T) {
	client := newTestClient(t, &fakeAPI{})

	names, err := client.ListEntities(context.Background(), models.CountryScope())
	if err != nil {
		t.Fatalf("ListEntities failed: %v", err)
	}

	want := []string{"Canada", "Germany"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestListEntities_CachesWithinTTL(t *testing.T) {
	api := &fakeAPI{}
	client := newTestClient(t, api)

	for i := 0; i < 3; i++ {
		if _, err := client.ListEntities(context.Background(), models.CountryScope()); err != nil {
			t.Fatalf("ListEntities failed: %v", err)
		}
	}

	if got := api.requests.Load(); got != 1 {
		t.Errorf("made %d requests, want 1", got)
	}
}

func TestListEntities_RefreshesAfterTTL(t *testing.T) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	now := fixedNow()
	client := NewClient(Options{
		BaseURL: srv.URL + "/v2",
		Now:     func() time.Time { return now },
	})

	if _, err := client.ListEntities(context.Background(), models.CountryScope()); err != nil {
		t.Fatalf("ListEntities failed: %v", err)
	}

	now = now.Add(DefaultCacheTTL)

	if _, err := client.ListEntities(context.Background(), models.CountryScope()); err != nil {
		t.Fatalf("ListEntities failed: %v", err)
	}

	if got := api.requests.Load(); got != 2 {
		t.Errorf("made %d requests, want 2", got)
	}
}

func TestListEntities_Errors(t *testing.T) {
	tests := []struct {
		handler http.HandlerFunc
		wantErr error
		name    string
	}{
		{
			name:    "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			wantErr: ErrUnexpectedStatusCode,
		},
		{
			name:    "not json",
			handler: func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("<html>")) },
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "one element",
			handler: func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`[{"page":1}]`)) },
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "empty records",
			handler: func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`[{"page":1},[]]`)) },
			wantErr: ErrEmptyPayload,
		},
		{
			name:    "null records",
			handler: func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`[{"page":1},null]`)) },
			wantErr: ErrEmptyPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(Options{BaseURL: srv.URL, Now: fixedNow})

			_, err := client.ListEntities(context.Background(), models.CountryScope())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestListEntities_RegionScopeUnsupported(t *testing.T) {
	client := newTestClient(t, &fakeAPI{})

	_, err := client.ListEntities(context.Background(), models.RegionScope("India"))
	if !errors.Is(err, catalog.ErrScopeUnsupported) {
		t.Errorf("err = %v, want ErrScopeUnsupported", err)
	}
}

func TestFallbackCatalog_WithUnreachableRemote(t *testing.T) {
	client := NewClient(Options{BaseURL: "http://127.0.0.1:1/v2", Timeout: time.Second, Now: fixedNow})
	fc := catalog.NewFallbackCatalog(client, catalog.NewStaticCatalog(), nil)

	listing, err := fc.List(context.Background(), models.CountryScope())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if !listing.Fallback || len(listing.Names) == 0 {
		t.Errorf("listing = %+v, want non-empty fallback", listing)
	}
}

func TestFetchIndicatorValue(t *testing.T) {
	api := &fakeAPI{}
	client := newTestClient(t, api)
	ctx := context.Background()

	v := client.FetchIndicatorValue(ctx, "DE", "NY.GDP.PCAP.CD")
	if !v.Valid || v.Number != 48717.99 {
		t.Errorf("GDP = %+v, want 48717.99", v)
	}

	if v := client.FetchIndicatorValue(ctx, "DE", "SP.POP.TOTL"); v.Valid {
		t.Errorf("all-null window = %+v, want missing", v)
	}

	if v := client.FetchIndicatorValue(ctx, "DE", "SP.DYN.LE00.IN"); v.Valid {
		t.Errorf("error payload = %+v, want missing", v)
	}

	if v := client.FetchIndicatorValue(ctx, "DE", "UNKNOWN"); v.Valid {
		t.Errorf("404 = %+v, want missing", v)
	}

	api.mu.Lock()
	first := api.queries[0]
	api.mu.Unlock()

	if !strings.Contains(first, "/country/de/indicator/NY.GDP.PCAP.CD") {
		t.Errorf("unexpected path %s", first)
	}

	if !strings.Contains(first, "date=2020%3A2024") || !strings.Contains(first, "per_page=10") {
		t.Errorf("unexpected query %s", first)
	}
}

func TestFetchEntityData(t *testing.T) {
	client := newTestClient(t, &fakeAPI{})
	ctx := context.Background()

	if data, ok := client.FetchEntityData(ctx, "Atlantis", []string{catalog.GDPPerCapita}); ok || data != nil {
		t.Errorf("Atlantis = %v, %v; want no data", data, ok)
	}

	indicators := []string{catalog.GDPPerCapita, catalog.Population, "Not an indicator"}

	data, ok := client.FetchEntityData(ctx, "Canada", indicators)
	if !ok {
		t.Fatal("Canada should resolve")
	}

	if len(data) != len(indicators) {
		t.Fatalf("got %d entries, want %d", len(data), len(indicators))
	}

	if !data[catalog.GDPPerCapita].Valid {
		t.Error("GDP should be numeric")
	}

	if data[catalog.Population].Valid || data["Not an indicator"].Valid {
		t.Error("population and unknown indicator should be missing")
	}
}

func TestFetchEntityData_RemoteDown(t *testing.T) {
	client := newTestClient(t, &fakeAPI{failAll: true})

	data, ok := client.FetchEntityData(context.Background(), "Canada", []string{catalog.Population})
	if !ok {
		t.Fatal("mapped country should still return a map")
	}

	if v, present := data[catalog.Population]; !present || v.Valid {
		t.Errorf("population = %+v (present=%v), want missing entry", v, present)
	}
}

func TestWindow(t *testing.T) {
	from, to := window(fixedNow(), 5)
	if from != 2020 || to != 2024 {
		t.Errorf("window = %d:%d, want 2020:2024", from, to)
	}
}

func TestEntityCache_ConcurrentReaders(t *testing.T) {
	cache := newEntityCache(time.Hour)
	now := fixedNow()
	cache.put([]string{"A", "B"}, now)

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			if i%2 == 0 {
				cache.put([]string{"A", "B", "C"}, now)

				return
			}

			names, ok := cache.get(now)
			if !ok || (len(names) != 2 && len(names) != 3) {
				t.Errorf("reader saw %v", names)
			}
		}(i)
	}

	wg.Wait()
}
