package storage

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/crisisvoices/backend/internal/config"
)

func TestS3Storage_SaveAndDelete(t *testing.T) {
	var (
		mu   sync.Mutex
		reqs []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		reqs = append(reqs, r.Method+" "+r.URL.Path)
		mu.Unlock()
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, err := NewS3Storage(context.Background(), config.StorageConfig{
		Endpoint:        srv.URL,
		Region:          "auto",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		Bucket:          "stories-bucket",
		PublicURL:       "https://cdn.example.org/",
	})
	if err != nil {
		t.Fatal(err)
	}

	url, err := s.SaveFile(context.Background(), bytes.NewReader([]byte("img")), "", "image/png")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(url, "https://cdn.example.org/stories/") || !strings.HasSuffix(url, ".png") {
		t.Errorf("url = %q", url)
	}

	if err := s.DeleteFile(context.Background(), url); err != nil {
		t.Fatal(err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(reqs) != 2 {
		t.Fatalf("requests = %v", reqs)
	}
	key := strings.TrimPrefix(url, "https://cdn.example.org/")
	if reqs[0] != "PUT /stories-bucket/"+key || reqs[1] != "DELETE /stories-bucket/"+key {
		t.Errorf("requests = %v, want PUT and DELETE of %s", reqs, key)
	}
}
