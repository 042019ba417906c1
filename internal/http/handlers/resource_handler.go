// Resource HTTP handlers.
//
// This file exposes the REST surface shared by every document-backed
// resource (memos, items):
//   - POST   /{resource}        (create)
//   - GET    /{resource}        (list)
//   - GET    /{resource}/{id}   (get)
//   - PUT    /{resource}/{id}   (update)
//   - DELETE /{resource}/{id}   (delete)
//
// Handlers are transport-thin: they decode the body, call the resource
// service, and translate results into envelopes.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-memo-backend/internal/http/middleware"
)

// Viewer is a persisted record that can render its wire shape.
type Viewer interface {
	View() any
	WireID() string
}

// ResourceService defines the operations consumed by Resource.
//
// Implementations should be safe for concurrent use and must return
// *services.Error values so mapError can classify them.
type ResourceService[P Viewer, In any] interface {
	Create(ctx context.Context, in In) (P, error)
	List(ctx context.Context) ([]P, error)
	Get(ctx context.Context, id string) (P, error)
	Update(ctx context.Context, id string, in In) (P, error)
	Delete(ctx context.Context, id string) error
}

// Resource serves one resource type.
type Resource[P Viewer, In any] struct {
	name string
	svc  ResourceService[P, In]
}

// NewResource binds svc to handlers that log under the resource name.
func NewResource[P Viewer, In any](name string, svc ResourceService[P, In]) *Resource[P, In] {
	return &Resource[P, In]{name: name, svc: svc}
}

// Register mounts the five routes under path on g.
func (h *Resource[P, In]) Register(g *gin.RouterGroup, path string) {
	g.POST(path, h.Create)
	g.GET(path, h.List)
	g.GET(path+"/:id", h.Get)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}

// bind decodes the JSON body into in. Malformed JSON is a BAD_REQUEST, not a
// validation error.
func (h *Resource[P, In]) bind(c *gin.Context, in *In) bool {
	err := c.ShouldBindJSON(in)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "request body too large", nil, err)
		return false
	}
	fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body", nil, err)
	return false
}

// Create godoc
// @ID          createMemo
// @Summary     Create a memo
// @Description Validates the payload, stores a new memo and returns the stored copy.
// @Tags        Memos
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.MemoInput  true  "Memo payload"
//
// @Success     200  {object}  handlers.Envelope{data=domain.MemoView}
// @Failure     400  {object}  handlers.ErrorEnvelope  "Validation error or malformed JSON"
// @Failure     500  {object}  handlers.ErrorEnvelope  "Internal error"
// @Router      /memos [post]
func (h *Resource[P, In]) Create(c *gin.Context) {
	var in In
	if !h.bind(c, &in) {
		return
	}
	rec, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.LoggerFrom(c).Info().Str("id", rec.WireID()).Msg(h.name + " created")
	ok(c, rec.View())
}

// List godoc
// @ID          listMemos
// @Summary     List memos
// @Description Returns every memo. No pagination or filtering.
// @Tags        Memos
// @Produce     json
//
// @Success     200  {object}  handlers.Envelope{data=[]domain.MemoView}
// @Failure     500  {object}  handlers.ErrorEnvelope  "Internal error"
// @Router      /memos [get]
func (h *Resource[P, In]) List(c *gin.Context) {
	recs, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]any, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.View())
	}
	middleware.LoggerFrom(c).Debug().Int("count", len(out)).Msg(h.name + "s listed")
	ok(c, out)
}

// Get godoc
// @ID          getMemo
// @Summary     Get a memo
// @Tags        Memos
// @Produce     json
//
// @Param       id  path  string  true  "Memo ID (24 hex characters)"  example(65f1c0ffee0ddba11ca7f00d)
//
// @Success     200  {object}  handlers.Envelope{data=domain.MemoView}
// @Failure     400  {object}  handlers.ErrorEnvelope  "Malformed id"
// @Failure     404  {object}  handlers.ErrorEnvelope  "Memo not found"
// @Failure     500  {object}  handlers.ErrorEnvelope  "Internal error"
// @Router      /memos/{id} [get]
func (h *Resource[P, In]) Get(c *gin.Context) {
	rec, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, rec.View())
}

// Update godoc
// @ID          updateMemo
// @Summary     Update a memo
// @Description Replaces title and content and refreshes updated_at. Returns the updated memo.
// @Tags        Memos
// @Accept      json
// @Produce     json
//
// @Param       id    path  string            true  "Memo ID (24 hex characters)"  example(65f1c0ffee0ddba11ca7f00d)
// @Param       body  body  domain.MemoInput  true  "Memo payload"
//
// @Success     200  {object}  handlers.Envelope{data=domain.MemoView}
// @Failure     400  {object}  handlers.ErrorEnvelope  "Validation error, malformed JSON or malformed id"
// @Failure     404  {object}  handlers.ErrorEnvelope  "Memo not found"
// @Failure     500  {object}  handlers.ErrorEnvelope  "Internal error"
// @Router      /memos/{id} [put]
func (h *Resource[P, In]) Update(c *gin.Context) {
	var in In
	if !h.bind(c, &in) {
		return
	}
	id := c.Param("id")
	rec, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.LoggerFrom(c).Info().Str("id", id).Msg(h.name + " updated")
	ok(c, rec.View())
}

// Delete godoc
// @ID          deleteMemo
// @Summary     Delete a memo
// @Tags        Memos
// @Produce     json
//
// @Param       id  path  string  true  "Memo ID (24 hex characters)"  example(65f1c0ffee0ddba11ca7f00d)
//
// @Success     200  {object}  handlers.Envelope  "data is null"
// @Failure     400  {object}  handlers.ErrorEnvelope  "Malformed id"
// @Failure     404  {object}  handlers.ErrorEnvelope  "Memo not found"
// @Failure     500  {object}  handlers.ErrorEnvelope  "Internal error"
// @Router      /memos/{id} [delete]
func (h *Resource[P, In]) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middleware.LoggerFrom(c).Info().Str("id", id).Msg(h.name + " deleted")
	ok(c, nil)
}
