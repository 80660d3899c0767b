package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giapha-vn/giapha/pkg/config"
	"github.com/giapha-vn/giapha/pkg/server/dto"
	"github.com/giapha-vn/giapha/pkg/snapstore"
	"github.com/giapha-vn/giapha/pkg/types"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host: "localhost",
			Port: 8080,
			Mode: "test",
		},
	}
}

func intp(v int) *int { return &v }

func testSnapshot() *types.Snapshot {
	return &types.Snapshot{
		Version: "1.0",
		Persons: []*types.Person{
			{ID: "u", Name: "Minh", Gender: types.GenderMale, BirthYear: intp(1995), Families: []string{"noi"}},
			{ID: "f", Name: "Hùng", Gender: types.GenderMale, BirthYear: intp(1965), Families: []string{"noi"}},
			{ID: "c", Name: "Cường", Gender: types.GenderMale, BirthYear: intp(1970)},
		},
		Relations: []*types.Relation{
			{ID: "r1", Type: types.RelationParent, PersonAID: "f", PersonBID: "u", ParentID: "f", ChildID: "u"},
			{ID: "r2", Type: types.RelationSibling, PersonAID: "f", PersonBID: "c", FamilyID: "noi"},
		},
		UserID:   "u",
		Metadata: types.SnapshotMetadata{AppName: "giapha", AppVersion: "1.0.0"},
	}
}

func testServer(t *testing.T) (*Server, snapstore.Store) {
	t.Helper()
	store := snapstore.NewMemoryStore()
	srv := New(testConfig(), store, nil)
	srv.Setup()
	return srv, store
}

func seedTree(t *testing.T, store snapstore.Store, id string) {
	t.Helper()
	if err := store.Save(context.Background(), id, testSnapshot()); err != nil {
		t.Fatalf("failed to seed tree: %v", err)
	}
}

func TestNew(t *testing.T) {
	srv := New(testConfig(), snapstore.NewMemoryStore(), nil)
	if srv == nil {
		t.Fatal("expected non-nil server")
	}
	srv.Setup()

	if srv.router == nil {
		t.Error("expected router to be initialized")
	}
	if srv.server == nil {
		t.Error("expected http.Server to be initialized")
	}
	if srv.server.Addr != "localhost:8080" {
		t.Errorf("expected addr localhost:8080, got %s", srv.server.Addr)
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv, _ := testServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, w.Code)
		}
	}
}

func TestCreateAndGetTree(t *testing.T) {
	srv, _ := testServer(t)

	body, _ := json.Marshal(testSnapshot())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trees", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var created dto.TreeCreated
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an assigned tree id")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/trees/"+created.ID, nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var snap types.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if snap.UserID != "u" {
		t.Errorf("expected userId u, got %q", snap.UserID)
	}
}

func TestCreateTreeRejectsInvalidSnapshot(t *testing.T) {
	srv, _ := testServer(t)

	// Relation with identical endpoints fails envelope validation.
	snap := testSnapshot()
	snap.Relations = append(snap.Relations, &types.Relation{
		ID: "bad", Type: types.RelationSpouse, PersonAID: "u", PersonBID: "u",
	})
	body, _ := json.Marshal(snap)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/trees", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestAddressingEndpoint(t *testing.T) {
	srv, store := testServer(t)
	seedTree(t, store, "tree-1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trees/tree-1/addressing/c", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.AddressingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Addressing.Title != "Chú" {
		t.Errorf("expected title Chú, got %q", resp.Addressing.Title)
	}
	if resp.Addressing.Lineage != types.LineagePaternal {
		t.Errorf("expected paternal lineage, got %q", resp.Addressing.Lineage)
	}
}

func TestAddressingReferenceOverride(t *testing.T) {
	srv, store := testServer(t)
	seedTree(t, store, "tree-1")

	// From f's point of view, u is his child.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/trees/tree-1/addressing/u?reference=f", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	var resp dto.AddressingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Addressing.Title != "Con" {
		t.Errorf("expected title Con, got %q", resp.Addressing.Title)
	}
}

func TestAddressAllEndpoint(t *testing.T) {
	srv, store := testServer(t)
	seedTree(t, store, "tree-1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trees/tree-1/addressing", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp dto.AddressAllResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Results) != 3 {
		t.Errorf("expected 3 results, got %d", len(resp.Results))
	}
	if resp.Results["u"].Title != "Tôi" {
		t.Errorf("expected identity title for the reference person, got %q", resp.Results["u"].Title)
	}
}

func TestPathEndpoint(t *testing.T) {
	srv, store := testServer(t)
	seedTree(t, store, "tree-1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trees/tree-1/path?from=u&to=c", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	var resp dto.PathResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Found {
		t.Fatal("expected path to be found")
	}
	if len(resp.Path) != 2 || resp.Path[0] != "r1" || resp.Path[1] != "r2" {
		t.Errorf("unexpected path: %v", resp.Path)
	}

	// Missing query params are rejected.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/trees/tree-1/path?from=u", nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestClustersEndpoint(t *testing.T) {
	srv, store := testServer(t)
	seedTree(t, store, "tree-1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trees/tree-1/clusters", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	var resp dto.ClustersResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	members := resp.Clusters["noi"]
	if len(members) != 3 {
		t.Errorf("expected 3 members in cluster noi, got %v", members)
	}
}

func TestUnknownTreeReturns404(t *testing.T) {
	srv, _ := testServer(t)

	for _, path := range []string{
		"/api/v1/trees/nope",
		"/api/v1/trees/nope/addressing/u",
		"/api/v1/trees/nope/path?from=a&to=b",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected status 404, got %d", path, w.Code)
		}
	}
}

func TestDeleteTree(t *testing.T) {
	srv, store := testServer(t)
	seedTree(t, store, "tree-1")

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/trees/tree-1", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/trees/tree-1", nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404 after delete, got %d", w.Code)
	}
}
