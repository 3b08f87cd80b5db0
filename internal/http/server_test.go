package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"satnica/internal/core"
	"satnica/internal/notify"
	"satnica/internal/services"
	"satnica/internal/store"
	"satnica/internal/store/memory"
)

type fakeNotifier struct{ alerts []notify.Alert }

func (f *fakeNotifier) Send(_ context.Context, a notify.Alert) error {
	f.alerts = append(f.alerts, a)
	return nil
}

type brokenStore struct{ *memory.Store }

func (brokenStore) Insert(context.Context, core.WorkRecord) (core.WorkRecord, error) {
	return core.WorkRecord{}, &store.StorageError{Op: "insert", Err: errors.New("backend unavailable")}
}

func newTestServer(st store.RecordStore) *Server {
	return NewServer(":0", services.NewEntryService(st, &fakeNotifier{}))
}

func doJSON(t *testing.T, srv *Server, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(memory.New())
	for _, path := range []string{"/healthz", "/readyz"} {
		rr := doJSON(t, srv, http.MethodGet, path, "", "")
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, rr.Code)
		}
	}
}

func TestSubmitEntrySuccess(t *testing.T) {
	srv := newTestServer(memory.New())

	rr := doJSON(t, srv, http.MethodPost, "/api/records", "u1",
		`{"date":"2024-03-01","hourly_rate":10,"hours_worked":8,"holiday_or_night":true}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var res submitEntryResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Record.ID == "" {
		t.Fatalf("record id missing: %+v", res.Record)
	}
	if res.Record.HourlyRate != 15 || res.Record.Earnings != 120 {
		t.Fatalf("rate/earnings = %v/%v, want 15/120", res.Record.HourlyRate, res.Record.Earnings)
	}
	if res.Classification != core.Above || res.Average != 0 {
		t.Fatalf("classification = %v average = %v", res.Classification, res.Average)
	}
}

func TestSubmitEntryValidation(t *testing.T) {
	srv := newTestServer(memory.New())

	cases := []struct {
		name, userID, body string
		wantStatus         int
	}{
		{"zero hours", "u1", `{"date":"2024-03-01","hourly_rate":10,"hours_worked":0}`, 422},
		{"zero rate", "u1", `{"date":"2024-03-01","hourly_rate":0,"hours_worked":8}`, 422},
		{"bad date", "u1", `{"date":"01.03.2024","hourly_rate":10,"hours_worked":8}`, 422},
		{"missing user", "", `{"date":"2024-03-01","hourly_rate":10,"hours_worked":8}`, 422},
		{"malformed body", "u1", `{not json`, 400},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, srv, http.MethodPost, "/api/records", tc.userID, tc.body)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tc.wantStatus, rr.Body.String())
			}
		})
	}

	// Nothing persisted by any of the rejected submissions.
	rr := doJSON(t, srv, http.MethodGet, "/api/records", "u1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list status = %d", rr.Code)
	}
	var records []recordResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no persisted records, got %d", len(records))
	}
}

func TestSubmitEntryStorageFailure(t *testing.T) {
	srv := newTestServer(brokenStore{memory.New()})

	rr := doJSON(t, srv, http.MethodPost, "/api/records", "u1",
		`{"date":"2024-03-01","hourly_rate":10,"hours_worked":8}`)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rr.Code)
	}
}

func TestListRecordsOrderedByDate(t *testing.T) {
	srv := newTestServer(memory.New())

	for _, body := range []string{
		`{"date":"2024-02-10","hourly_rate":10,"hours_worked":8}`,
		`{"date":"2024-01-03","hourly_rate":10,"hours_worked":4}`,
	} {
		if rr := doJSON(t, srv, http.MethodPost, "/api/records", "u1", body); rr.Code != http.StatusCreated {
			t.Fatalf("seed status = %d", rr.Code)
		}
	}

	rr := doJSON(t, srv, http.MethodGet, "/api/records", "u1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var records []recordResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 2 || records[0].Date != "2024-01-03" || records[1].Date != "2024-02-10" {
		t.Fatalf("unexpected order: %+v", records)
	}
}

func TestMonthlySummariesEndpoint(t *testing.T) {
	srv := newTestServer(memory.New())

	for _, body := range []string{
		`{"date":"2024-01-05","hourly_rate":10,"hours_worked":4}`,
		`{"date":"2024-01-20","hourly_rate":10,"hours_worked":6}`,
		`{"date":"2024-02-01","hourly_rate":10,"hours_worked":3}`,
	} {
		if rr := doJSON(t, srv, http.MethodPost, "/api/records", "u1", body); rr.Code != http.StatusCreated {
			t.Fatalf("seed status = %d", rr.Code)
		}
	}

	rr := doJSON(t, srv, http.MethodGet, "/api/summaries/monthly", "u1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var summaries []monthlySummaryResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].MonthYear != "1-2024" || summaries[0].TotalHours != 10 || summaries[0].TotalEarnings != 100 {
		t.Fatalf("january = %+v", summaries[0])
	}
	if summaries[1].MonthYear != "2-2024" || summaries[1].TotalHours != 3 || summaries[1].TotalEarnings != 30 {
		t.Fatalf("february = %+v", summaries[1])
	}
}
