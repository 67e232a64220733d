package accommodation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/stayhub-app/rating-service/internal/repository/ports"
)

func TestGetInfo(t *testing.T) {
	accommodationID := uuid.New()
	hostID := uuid.New()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/api/v1/accommodations/"+accommodationID.String() {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"` + accommodationID.String() + `","host_id":"` + hostID.String() + `","name":"Seaside Villa"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "svc-token", 100)
	info, err := client.GetInfo(context.Background(), accommodationID)
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if info.HostID != hostID || info.Name != "Seaside Villa" {
		t.Fatalf("unexpected info %+v", info)
	}
	if gotAuth != "Bearer svc-token" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
}

func TestGetInfoStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, ports.ErrAccommodationNotFound},
		{"unauthorized", http.StatusUnauthorized, ports.ErrAccommodationService},
		{"forbidden", http.StatusForbidden, ports.ErrAccommodationService},
		{"server error", http.StatusInternalServerError, ports.ErrAccommodationService},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			client := NewClient(server.URL, "", 100)
			_, err := client.GetInfo(context.Background(), uuid.New())
			if !errors.Is(err, tc.want) {
				t.Fatalf("status %d: err = %v, want %v", tc.status, err, tc.want)
			}
		})
	}
}

func TestGetInfoTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "", 100)
	_, err := client.GetInfo(context.Background(), uuid.New())
	if !errors.Is(err, ports.ErrAccommodationService) {
		t.Fatalf("err = %v, want ErrAccommodationService", err)
	}
}
