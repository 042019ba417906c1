package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tbourn/go-memo-backend/internal/domain"
	"github.com/tbourn/go-memo-backend/internal/repo"
	"github.com/tbourn/go-memo-backend/internal/services"
)

// ---------- test wiring ----------

func newTestStore(t *testing.T) repo.Driver {
	t.Helper()
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repo.OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	d, err := repo.NewSQLiteDriver(db)
	if err != nil {
		t.Fatalf("driver: %v", err)
	}
	t.Cleanup(func() { _ = d.Close(context.Background()) })
	return d
}

func newMemoRouter(t *testing.T, store repo.Driver) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	coll := repo.NewCollection[domain.Memo, *domain.Memo](store, domain.MemoCollection)
	svc := services.NewResource[domain.Memo, *domain.Memo, domain.MemoInput]("memo", coll)
	NewResource[*domain.Memo, domain.MemoInput]("memo", svc).Register(r.Group("/"), "/memos")

	items := repo.NewCollection[domain.Item, *domain.Item](store, domain.ItemCollection)
	isvc := services.NewResource[domain.Item, *domain.Item, domain.ItemInput]("item", items)
	NewResource[*domain.Item, domain.ItemInput]("item", isvc).Register(r.Group("/"), "/items")
	return r
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorBody      `json:"error"`
}

func do(t *testing.T, r http.Handler, method, path, body string) (int, apiResponse) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env apiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: bad json %q: %v", method, path, w.Body.String(), err)
	}
	return w.Code, env
}

func memoOf(t *testing.T, env apiResponse) domain.MemoView {
	t.Helper()
	var v domain.MemoView
	if err := json.Unmarshal(env.Data, &v); err != nil {
		t.Fatalf("decode memo: %v", err)
	}
	return v
}

// ---------- scenarios ----------

func TestMemo_CreateGetDeleteScenario(t *testing.T) {
	r := newMemoRouter(t, newTestStore(t))

	code, env := do(t, r, http.MethodPost, "/memos", `{"title":"T","content":"C"}`)
	if code != http.StatusOK || !env.Success {
		t.Fatalf("create: %d %+v", code, env)
	}
	m := memoOf(t, env)
	if m.Title != "T" || m.Content != "C" || len(m.ID) != 24 {
		t.Fatalf("created: %+v", m)
	}
	if m.CreatedAt == 0 || m.CreatedAt != m.UpdatedAt {
		t.Fatalf("timestamps: %d %d", m.CreatedAt, m.UpdatedAt)
	}

	code, env = do(t, r, http.MethodGet, "/memos/"+m.ID, "")
	if code != http.StatusOK || memoOf(t, env).Title != "T" {
		t.Fatalf("get: %d %s", code, env.Data)
	}

	code, env = do(t, r, http.MethodDelete, "/memos/"+m.ID, "")
	if code != http.StatusOK || !env.Success || string(env.Data) != "null" {
		t.Fatalf("delete: %d %+v", code, env)
	}

	code, env = do(t, r, http.MethodGet, "/memos/"+m.ID, "")
	if code != http.StatusNotFound || env.Success || env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Fatalf("get after delete: %d %+v", code, env)
	}

	code, env = do(t, r, http.MethodDelete, "/memos/"+m.ID, "")
	if code != http.StatusNotFound || env.Error.Code != "NOT_FOUND" {
		t.Fatalf("second delete: %d %+v", code, env)
	}
}

func TestMemo_ListAndUpdate(t *testing.T) {
	r := newMemoRouter(t, newTestStore(t))

	code, env := do(t, r, http.MethodGet, "/memos", "")
	if code != http.StatusOK || string(env.Data) != "[]" {
		t.Fatalf("empty list: %d %s", code, env.Data)
	}

	_, env = do(t, r, http.MethodPost, "/memos", `{"title":"first"}`)
	first := memoOf(t, env)
	if first.Content != "" {
		t.Fatalf("missing content should default to empty: %+v", first)
	}
	do(t, r, http.MethodPost, "/memos", `{"title":"second","content":"x"}`)

	_, env = do(t, r, http.MethodGet, "/memos", "")
	var list []domain.MemoView
	if err := json.Unmarshal(env.Data, &list); err != nil || len(list) != 2 {
		t.Fatalf("list: %v %s", err, env.Data)
	}

	code, env = do(t, r, http.MethodPut, "/memos/"+first.ID, `{"title":"renamed","content":"body"}`)
	if code != http.StatusOK {
		t.Fatalf("update: %d %+v", code, env)
	}
	up := memoOf(t, env)
	if up.ID != first.ID || up.Title != "renamed" || up.Content != "body" {
		t.Fatalf("updated: %+v", up)
	}
	if up.CreatedAt != first.CreatedAt || up.UpdatedAt < first.UpdatedAt {
		t.Fatalf("timestamps: before %+v after %+v", first, up)
	}

	code, env = do(t, r, http.MethodPut, "/memos/"+primitive.NewObjectID().Hex(), `{"title":"t"}`)
	if code != http.StatusNotFound || env.Error.Code != "NOT_FOUND" {
		t.Fatalf("update absent: %d %+v", code, env)
	}
}

func TestMemo_ClientErrors(t *testing.T) {
	r := newMemoRouter(t, newTestStore(t))
	long := strings.Repeat("x", 141)
	huge := strings.Repeat("y", 1401)

	cases := []struct {
		name, method, path, body string
		status                   int
		code                     string
		fields                   []string
	}{
		{"empty title", http.MethodPost, "/memos", `{"title":"","content":"c"}`, 400, "VALIDATION_ERROR", []string{"title"}},
		{"missing title", http.MethodPost, "/memos", `{"content":"c"}`, 400, "VALIDATION_ERROR", []string{"title"}},
		{"long title", http.MethodPost, "/memos", `{"title":"` + long + `"}`, 400, "VALIDATION_ERROR", []string{"title"}},
		{"long content", http.MethodPost, "/memos", `{"title":"t","content":"` + huge + `"}`, 400, "VALIDATION_ERROR", []string{"content"}},
		{"both", http.MethodPost, "/memos", `{"title":"` + long + `","content":"` + huge + `"}`, 400, "VALIDATION_ERROR", []string{"title", "content"}},
		{"malformed json", http.MethodPost, "/memos", `{"title":`, 400, "BAD_REQUEST", nil},
		{"wrong type", http.MethodPost, "/memos", `{"title":5}`, 400, "BAD_REQUEST", nil},
		{"bad id get", http.MethodGet, "/memos/not-a-hex-id", "", 400, "BAD_REQUEST", nil},
		{"bad id delete", http.MethodDelete, "/memos/123", "", 400, "BAD_REQUEST", nil},
		{"bad id update", http.MethodPut, "/memos/not-a-hex-id", `{"title":"t"}`, 400, "BAD_REQUEST", nil},
		{"invalid body wins over bad id", http.MethodPut, "/memos/not-a-hex-id", `{"title":""}`, 400, "VALIDATION_ERROR", []string{"title"}},
		{"absent id", http.MethodGet, "/memos/" + primitive.NewObjectID().Hex(), "", 404, "NOT_FOUND", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, env := do(t, r, tc.method, tc.path, tc.body)
			if code != tc.status || env.Success || env.Error == nil || env.Error.Code != tc.code {
				t.Fatalf("got %d %+v", code, env)
			}
			if len(env.Error.Details) != len(tc.fields) {
				t.Fatalf("details = %v, want fields %v", env.Error.Details, tc.fields)
			}
			for _, f := range tc.fields {
				if env.Error.Details[f] == "" {
					t.Fatalf("details missing %q: %v", f, env.Error.Details)
				}
			}
		})
	}
}

func TestMemo_ClientSuppliedIDAndTimestampsIgnored(t *testing.T) {
	r := newMemoRouter(t, newTestStore(t))
	supplied := primitive.NewObjectID().Hex()

	code, env := do(t, r, http.MethodPost, "/memos",
		`{"_id":"`+supplied+`","title":"t","created_at":1,"updated_at":2}`)
	if code != http.StatusOK {
		t.Fatalf("create: %d %+v", code, env)
	}
	m := memoOf(t, env)
	if m.ID == supplied || m.CreatedAt == 1 || m.UpdatedAt == 2 {
		t.Fatalf("client metadata leaked into record: %+v", m)
	}
}

func TestItem_UsesMessageField(t *testing.T) {
	r := newMemoRouter(t, newTestStore(t))

	code, env := do(t, r, http.MethodPost, "/items", `{"title":"t","message":"hello"}`)
	if code != http.StatusOK {
		t.Fatalf("create item: %d %+v", code, env)
	}
	var it domain.ItemView
	if err := json.Unmarshal(env.Data, &it); err != nil || it.Message != "hello" {
		t.Fatalf("item: %v %s", err, env.Data)
	}

	code, env = do(t, r, http.MethodPost, "/items", `{"title":"t","message":"`+strings.Repeat("m", 1401)+`"}`)
	if code != http.StatusBadRequest || env.Error.Details["message"] == "" {
		t.Fatalf("item validation: %d %+v", code, env)
	}

	// Items and memos live in separate collections.
	_, env = do(t, r, http.MethodGet, "/memos", "")
	if string(env.Data) != "[]" {
		t.Fatalf("memos should be empty: %s", env.Data)
	}
}

// lostInsertStore accepts inserts but never finds them again.
type lostInsertStore struct{ repo.Driver }

func (lostInsertStore) InsertOne(context.Context, string, any) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func (lostInsertStore) FindOne(context.Context, string, primitive.ObjectID) (bson.Raw, error) {
	return nil, nil
}

func (lostInsertStore) Find(context.Context, string) ([]bson.Raw, error) {
	return nil, errors.New("connection refused")
}

func TestMemo_StoreFaultsAreInternal(t *testing.T) {
	r := newMemoRouter(t, lostInsertStore{})

	code, env := do(t, r, http.MethodPost, "/memos", `{"title":"t"}`)
	if code != http.StatusInternalServerError || env.Error.Code != "INTERNAL_SERVER_ERROR" {
		t.Fatalf("lost insert: %d %+v", code, env)
	}
	if env.Error.Details != nil {
		t.Fatalf("internal errors carry no details: %+v", env.Error)
	}

	code, env = do(t, r, http.MethodGet, "/memos", "")
	if code != http.StatusInternalServerError || strings.Contains(env.Error.Message, "refused") {
		t.Fatalf("list: %d %+v", code, env)
	}
}

func TestHealthAndRoot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := newTestStore(t)
	r.GET("/", Root)
	r.GET("/health", Health)
	r.GET("/ready", Ready(store))
	r.GET("/ready-down", Ready(downStore{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK || w.Body.String() != "hello world" {
		t.Fatalf("root: %d %q", w.Code, w.Body.String())
	}

	code, env := do(t, r, http.MethodGet, "/health", "")
	if code != http.StatusOK || !bytes.Contains(env.Data, []byte(`"ok"`)) {
		t.Fatalf("health: %d %s", code, env.Data)
	}
	code, env = do(t, r, http.MethodGet, "/ready", "")
	if code != http.StatusOK || !bytes.Contains(env.Data, []byte(`"ready"`)) {
		t.Fatalf("ready: %d %s", code, env.Data)
	}
	code, env = do(t, r, http.MethodGet, "/ready-down", "")
	if code != http.StatusServiceUnavailable || env.Error.Code != "SERVICE_UNAVAILABLE" {
		t.Fatalf("ready down: %d %+v", code, env)
	}
}

type downStore struct{}

func (downStore) Ping(context.Context) error { return errors.New("no reachable servers") }
