package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// ScopusProfile builds an author-retrieval-response body. An empty orcid
// omits coredata.orcid.
func ScopusProfile(indexedName, orcid string) string {
	coredata := map[string]any{}
	if orcid != "" {
		coredata["orcid"] = orcid
	}
	body := map[string]any{
		"author-retrieval-response": []any{
			map[string]any{
				"author-profile": map[string]any{
					"preferred-name": map[string]any{"indexed-name": indexedName},
				},
				"coredata": coredata,
			},
		},
	}
	data, _ := json.Marshal(body)
	return string(data)
}

// EmploymentRecord builds an ORCID record body with one affiliation group per
// organization reference. Each reference is "SOURCE identifier".
func EmploymentRecord(refs ...string) string {
	groups := make([]any, 0, len(refs))
	for _, ref := range refs {
		source, identifier, _ := strings.Cut(ref, " ")
		groups = append(groups, map[string]any{
			"summaries": []any{
				map[string]any{
					"employment-summary": map[string]any{
						"organization": map[string]any{
							"name": "Organization " + identifier,
							"disambiguated-organization": map[string]any{
								"disambiguation-source":                 source,
								"disambiguated-organization-identifier": identifier,
							},
						},
					},
				},
			},
		})
	}
	body := map[string]any{
		"activities-summary": map[string]any{
			"employments": map[string]any{"affiliation-group": groups},
		},
	}
	data, _ := json.Marshal(body)
	return string(data)
}

// Response is a canned HTTP reply.
type Response struct {
	Status int
	Body   string
}

type fakeServer struct {
	server *httptest.Server

	mu        sync.Mutex
	responses map[string]Response
	requests  []string
}

func newFakeServer(t testing.TB, key func(*http.Request) string) *fakeServer {
	t.Helper()
	fake := &fakeServer{responses: map[string]Response{}}
	fake.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := key(r)
		fake.mu.Lock()
		fake.requests = append(fake.requests, id)
		resp, ok := fake.responses[id]
		fake.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		status := resp.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(resp.Body))
	}))
	t.Cleanup(fake.server.Close)
	return fake
}

func (f *fakeServer) set(id string, resp Response) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[id] = resp
}

func (f *fakeServer) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

// FakeScopus serves author retrieval responses keyed by author_id. Unknown
// ids get 404.
type FakeScopus struct {
	*fakeServer
}

// NewFakeScopus starts a fake Scopus server closed at test cleanup.
func NewFakeScopus(t testing.TB) *FakeScopus {
	return &FakeScopus{newFakeServer(t, func(r *http.Request) string {
		return r.URL.Query().Get("author_id")
	})}
}

// URL returns the server base URL.
func (f *FakeScopus) URL() string { return f.server.URL }

// Profile registers a successful profile for authorID.
func (f *FakeScopus) Profile(authorID, indexedName, orcid string) {
	f.set(authorID, Response{Body: ScopusProfile(indexedName, orcid)})
}

// Status registers a bare HTTP status for authorID.
func (f *FakeScopus) Status(authorID string, status int) {
	f.set(authorID, Response{Status: status, Body: `{"service-error":{}}`})
}

// Raw registers an arbitrary response for authorID.
func (f *FakeScopus) Raw(authorID string, resp Response) {
	f.set(authorID, resp)
}

// Requests returns the author ids requested so far, in order.
func (f *FakeScopus) Requests() []string { return f.seen() }

// FakeORCID serves public records keyed by bare iD. Unknown iDs get 404.
type FakeORCID struct {
	*fakeServer
}

// NewFakeORCID starts a fake ORCID server closed at test cleanup.
func NewFakeORCID(t testing.TB) *FakeORCID {
	return &FakeORCID{newFakeServer(t, func(r *http.Request) string {
		return r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	})}
}

// URL returns the server base URL.
func (f *FakeORCID) URL() string { return f.server.URL }

// Record registers a record body for the bare iD.
func (f *FakeORCID) Record(id, body string) {
	f.set(id, Response{Body: body})
}

// Status registers a bare HTTP status for the iD.
func (f *FakeORCID) Status(id string, status int) {
	f.set(id, Response{Status: status})
}

// Requests returns the iDs requested so far, in order.
func (f *FakeORCID) Requests() []string { return f.seen() }
