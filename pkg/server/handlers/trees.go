package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/giapha-vn/giapha/pkg/server/dto"
	"github.com/giapha-vn/giapha/pkg/snapstore"
	"github.com/giapha-vn/giapha/pkg/types"
)

// TreeHandler handles snapshot storage requests.
type TreeHandler struct {
	store snapstore.Store
}

// NewTreeHandler creates a new tree handler.
func NewTreeHandler(store snapstore.Store) *TreeHandler {
	return &TreeHandler{store: store}
}

// CreateTree handles POST /api/v1/trees. The body is a snapshot envelope;
// a tree id is assigned unless ?id= names one to overwrite.
func (h *TreeHandler) CreateTree(c *gin.Context) {
	snap := &types.Snapshot{}
	if err := c.ShouldBindJSON(snap); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if err := snap.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_snapshot", err.Error())
		return
	}

	id := c.Query("id")
	if id == "" {
		id = uuid.NewString()
	}

	if err := h.store.Save(c.Request.Context(), id, snap); err != nil {
		writeError(c, http.StatusInternalServerError, "store_failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, dto.TreeCreated{ID: id})
}

// GetTree handles GET /api/v1/trees/:id
func (h *TreeHandler) GetTree(c *gin.Context) {
	snap, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, snapstore.ErrNotFound) {
		writeError(c, http.StatusNotFound, "not_found", "no tree with that id")
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "store_failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ListTrees handles GET /api/v1/trees
func (h *TreeHandler) ListTrees(c *gin.Context) {
	ids, err := h.store.List(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "store_failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.TreeList{Trees: ids})
}

// DeleteTree handles DELETE /api/v1/trees/:id
func (h *TreeHandler) DeleteTree(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, http.StatusInternalServerError, "store_failed", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError writes the shared error body.
func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, dto.ErrorResponse{Error: code, Message: message})
}
