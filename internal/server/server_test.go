package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/boardkit/boardkit/pkg/board"
	"github.com/boardkit/boardkit/pkg/cache"
	"github.com/boardkit/boardkit/pkg/core/geom"
	"github.com/boardkit/boardkit/pkg/core/guides"
	"github.com/boardkit/boardkit/pkg/core/scene"
	"github.com/boardkit/boardkit/pkg/pipeline"
	"github.com/boardkit/boardkit/pkg/store"
)

func testServer(t *testing.T) (*Server, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	logger := log.New(io.Discard)
	srv := New(Config{
		Store:  st,
		Runner: pipeline.NewRunner(cache.NewMemoryCache(), nil, logger),
		Logger: logger,
	})
	return srv, st
}

func sampleBoard() board.Board {
	return board.Board{
		Name:   "sample",
		Canvas: board.Canvas{Width: 120, Height: 50},
		Objects: []board.Object{
			{
				ID:      "frame",
				Name:    "frame",
				Kind:    scene.KindContainer,
				Rect:    geom.NewRect(0, 0, 60, 20),
				Visible: true,
			},
			{
				ID:       "a",
				Name:     "a",
				Kind:     scene.KindLeaf,
				ParentID: "frame",
				Rect:     geom.NewRect(4, 4, 10, 5),
				Visible:  true,
			},
			{
				ID:      "b",
				Name:    "b",
				Kind:    scene.KindLeaf,
				Rect:    geom.NewRect(70, 4, 10, 5),
				Visible: true,
			},
		},
	}
}

func doRequest(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t)
	rec := doRequest(t, srv, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestBoardCRUD(t *testing.T) {
	srv, _ := testServer(t)

	// Missing board is a 404 with an error envelope.
	rec := doRequest(t, srv, http.MethodGet, "/api/boards/main", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET missing: status = %d, want 404", rec.Code)
	}
	var errResp errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	if errResp.Error.Code != "BOARD_NOT_FOUND" {
		t.Errorf("error code = %q, want BOARD_NOT_FOUND", errResp.Error.Code)
	}

	// Store, fetch, list, delete.
	rec = doRequest(t, srv, http.MethodPut, "/api/boards/main", sampleBoard())
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, srv, http.MethodGet, "/api/boards/main", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET: status = %d", rec.Code)
	}
	var got board.Board
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal board: %v", err)
	}
	if len(got.Objects) != 3 || got.Name != "sample" {
		t.Errorf("fetched board = %+v", got)
	}

	rec = doRequest(t, srv, http.MethodGet, "/api/boards/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("LIST: status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"main"`) {
		t.Errorf("list body = %s", rec.Body.String())
	}

	rec = doRequest(t, srv, http.MethodDelete, "/api/boards/main", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("DELETE: status = %d", rec.Code)
	}
	rec = doRequest(t, srv, http.MethodGet, "/api/boards/main", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET after delete: status = %d", rec.Code)
	}
}

func TestPutBoardRejectsBadInput(t *testing.T) {
	srv, _ := testServer(t)

	// Unusable board ID.
	rec := doRequest(t, srv, http.MethodPut, "/api/boards/..", sampleBoard())
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want 400", rec.Code)
	}

	// Child referencing a missing parent.
	b := sampleBoard()
	b.Objects[1].ParentID = "ghost"
	rec = doRequest(t, srv, http.MethodPut, "/api/boards/main", b)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing parent: status = %d, want 404", rec.Code)
	}

	// Malformed JSON.
	req := httptest.NewRequest(http.MethodPut, "/api/boards/main", strings.NewReader("{nope"))
	rec2 := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec2, req)
	if rec2.Code != http.StatusBadRequest {
		t.Errorf("malformed json: status = %d, want 400", rec2.Code)
	}
}

func TestPipelineEndpoint(t *testing.T) {
	srv, _ := testServer(t)
	doRequest(t, srv, http.MethodPut, "/api/boards/main", sampleBoard())

	rec := doRequest(t, srv, http.MethodPost, "/api/boards/main/pipeline",
		pipeline.Options{Formats: []string{pipeline.FormatSVG, pipeline.FormatJSON}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp pipelineResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.BoardHash == "" {
		t.Error("board_hash is empty")
	}
	if len(resp.Artifacts[pipeline.FormatSVG]) == 0 {
		t.Error("no svg artifact")
	}
	if len(resp.Board.Objects) != 3 {
		t.Errorf("board has %d objects, want 3", len(resp.Board.Objects))
	}
}

func TestPipelineEmptyBodyUsesDefaults(t *testing.T) {
	srv, _ := testServer(t)
	doRequest(t, srv, http.MethodPut, "/api/boards/main", sampleBoard())

	req := httptest.NewRequest(http.MethodPost, "/api/boards/main/pipeline", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"svg"`) {
		t.Errorf("default format missing from body: %s", rec.Body.String())
	}
}

func TestRenderEndpoint(t *testing.T) {
	srv, _ := testServer(t)
	doRequest(t, srv, http.MethodPut, "/api/boards/main", sampleBoard())

	rec := doRequest(t, srv, http.MethodGet, "/api/boards/main/render?format=svg", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg") {
		t.Error("body is not an SVG document")
	}

	rec = doRequest(t, srv, http.MethodGet, "/api/boards/main/render?format=gif", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown format: status = %d, want 400", rec.Code)
	}
}

func TestHitTestEndpoint(t *testing.T) {
	srv, _ := testServer(t)
	doRequest(t, srv, http.MethodPut, "/api/boards/main", sampleBoard())

	// Point inside the nested child resolves to the deepest object.
	rec := doRequest(t, srv, http.MethodGet, "/api/boards/main/objects/at?x=5&y=5", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"a"`) {
		t.Errorf("hit = %s, want object a", rec.Body.String())
	}

	// Empty canvas region.
	rec = doRequest(t, srv, http.MethodGet, "/api/boards/main/objects/at?x=110&y=45", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("miss: status = %d, want 404", rec.Code)
	}

	// Non-numeric coordinates.
	rec = doRequest(t, srv, http.MethodGet, "/api/boards/main/objects/at?x=no&y=5", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad coords: status = %d, want 400", rec.Code)
	}
}

func TestReparentEndpoint(t *testing.T) {
	srv, st := testServer(t)
	doRequest(t, srv, http.MethodPut, "/api/boards/main", sampleBoard())

	rec := doRequest(t, srv, http.MethodPost, "/api/boards/main/objects/b/parent",
		reparentRequest{ParentID: "frame", Index: 0})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	stored, err := st.Get(t.Context(), "main")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	var moved *board.Object
	for i := range stored.Objects {
		if stored.Objects[i].ID == "b" {
			moved = &stored.Objects[i]
		}
	}
	if moved == nil || moved.ParentID != "frame" {
		t.Fatalf("object b not reparented: %+v", moved)
	}

	// Reparenting a container into its own child is rejected.
	rec = doRequest(t, srv, http.MethodPost, "/api/boards/main/objects/frame/parent",
		reparentRequest{ParentID: "a"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("into leaf child: status = %d, want 400", rec.Code)
	}

	// Unknown object.
	rec = doRequest(t, srv, http.MethodPost, "/api/boards/main/objects/ghost/parent",
		reparentRequest{ParentID: "frame"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown object: status = %d, want 404", rec.Code)
	}
}

func TestSnapEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	// Left edge of the moving rect is 2 cells from another object's left
	// edge, inside the default tolerance of 3.
	req := snapRequest{
		Moving:       geom.NewRect(12, 40, 8, 6),
		Others:       []geom.Rect{geom.NewRect(10, 10, 6, 4)},
		CanvasWidth:  200,
		CanvasHeight: 100,
	}
	rec := doRequest(t, srv, http.MethodPost, "/api/snap", req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result guides.SnapResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if !result.SnappedX || result.X != 10 {
		t.Errorf("X = %d (snapped %v), want 10", result.X, result.SnappedX)
	}
	if len(result.Guides) == 0 {
		t.Error("no guide lines returned")
	}

	// A request-scoped config can disable snapping.
	off := guides.Config{Enabled: false}
	req.Config = &off
	rec = doRequest(t, srv, http.MethodPost, "/api/snap", req)
	var disabled guides.SnapResult
	if err := json.Unmarshal(rec.Body.Bytes(), &disabled); err != nil {
		t.Fatalf("unmarshal disabled result: %v", err)
	}
	if disabled.SnappedX || disabled.X != 12 {
		t.Errorf("disabled snap moved X to %d", disabled.X)
	}
}
