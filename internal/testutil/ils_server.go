package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// ILSFixture describes the catalog served by NewILSServer.
type ILSFixture struct {
	// APIKey, when set, must be sent as the apikey query parameter;
	// other requests get 403.
	APIKey string
	// Members lists detail paths in order. An empty string is a member with
	// a null link.
	Members []string
	// Details maps a detail path to its raw JSON body.
	Details map[string]string
	// ListStatuses are answered to the first list requests before the list
	// itself is served.
	ListStatuses []int
}

// ILSServer is a fake ILS over httptest.
type ILSServer struct {
	*httptest.Server
	fixture ILSFixture

	mu         sync.Mutex
	listCalls  int
	requestLog []string
}

// NewILSServer starts a fake ILS whose list endpoint is at MembersURL.
func NewILSServer(t *testing.T, fixture ILSFixture) *ILSServer {
	t.Helper()
	s := &ILSServer{fixture: fixture}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// MembersURL is the list endpoint.
func (s *ILSServer) MembersURL() string {
	return s.URL + "/members"
}

// Requests returns the path and query of every request received.
func (s *ILSServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestLog...)
}

func (s *ILSServer) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requestLog = append(s.requestLog, r.URL.RequestURI())
	s.mu.Unlock()

	if s.fixture.APIKey != "" && r.URL.Query().Get("apikey") != s.fixture.APIKey {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if r.URL.Path == "/members" {
		s.serveList(w)
		return
	}

	body, ok := s.fixture.Details[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	_, _ = w.Write([]byte(body))
}

func (s *ILSServer) serveList(w http.ResponseWriter) {
	s.mu.Lock()
	call := s.listCalls
	s.listCalls++
	s.mu.Unlock()

	if call < len(s.fixture.ListStatuses) {
		w.WriteHeader(s.fixture.ListStatuses[call])
		return
	}

	members := make([]map[string]any, len(s.fixture.Members))
	for i, path := range s.fixture.Members {
		if path == "" {
			members[i] = map[string]any{"link": nil}
			continue
		}
		members[i] = map[string]any{"link": s.URL + "/" + strings.TrimPrefix(path, "/")}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"member":             members,
		"total_record_count": len(members),
	})
}

// BibDetail builds a detail body. Pass nil for a null leaf.
func BibDetail(title, author, isbn, date, callNumber any) string {
	b, _ := json.Marshal(map[string]any{
		"bib_data": map[string]any{
			"title":               title,
			"author":              author,
			"isbn":                isbn,
			"date_of_publication": date,
		},
		"holding_data": map[string]any{"call_number": callNumber},
	})
	return string(b)
}
