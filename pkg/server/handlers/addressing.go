package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giapha-vn/giapha"
	"github.com/giapha-vn/giapha/pkg/server/dto"
	"github.com/giapha-vn/giapha/pkg/snapstore"
)

// AddressingHandler answers kinship queries against stored trees. The
// engine client is rebuilt per request from the stored snapshot; the
// engine itself is stateless beyond its cached graph.
type AddressingHandler struct {
	store  snapstore.Store
	logger *slog.Logger
}

// NewAddressingHandler creates a new addressing handler.
func NewAddressingHandler(store snapstore.Store, logger *slog.Logger) *AddressingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AddressingHandler{store: store, logger: logger}
}

// engineFor loads the tree named in the route and wraps it in a client.
// The reference person may be overridden per request with ?reference= or
// the X-Reference-ID header.
func (h *AddressingHandler) engineFor(c *gin.Context) (giapha.Engine, bool) {
	snap, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, snapstore.ErrNotFound) {
		writeError(c, http.StatusNotFound, "not_found", "no tree with that id")
		return nil, false
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "store_failed", err.Error())
		return nil, false
	}

	client, err := giapha.NewClient(snap, nil, h.logger)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "engine_failed", err.Error())
		return nil, false
	}
	return client, true
}

// reference picks the per-request reference person override.
func reference(c *gin.Context) string {
	if ref := c.Query("reference"); ref != "" {
		return ref
	}
	return c.GetHeader("X-Reference-ID")
}

// Addressing handles GET /api/v1/trees/:id/addressing/:target
func (h *AddressingHandler) Addressing(c *gin.Context) {
	engine, ok := h.engineFor(c)
	if !ok {
		return
	}

	ref := reference(c)
	info, err := engine.CalculateAddressing(ref, c.Param("target"))
	if errors.Is(err, giapha.ErrNoReference) {
		writeError(c, http.StatusBadRequest, "no_reference", "no reference person: set userId on the tree or pass ?reference=")
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "engine_failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.AddressingResponse{
		ReferenceID: ref,
		TargetID:    c.Param("target"),
		Addressing:  *info,
	})
}

// AddressAll handles GET /api/v1/trees/:id/addressing
func (h *AddressingHandler) AddressAll(c *gin.Context) {
	engine, ok := h.engineFor(c)
	if !ok {
		return
	}

	ref := reference(c)
	results, err := engine.AddressAll(ref)
	if errors.Is(err, giapha.ErrNoReference) {
		writeError(c, http.StatusBadRequest, "no_reference", "no reference person: set userId on the tree or pass ?reference=")
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "engine_failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.AddressAllResponse{ReferenceID: ref, Results: results})
}

// Path handles GET /api/v1/trees/:id/path?from=&to=
func (h *AddressingHandler) Path(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		writeError(c, http.StatusBadRequest, "invalid_request", "from and to query parameters are required")
		return
	}

	engine, ok := h.engineFor(c)
	if !ok {
		return
	}

	path := engine.FindRelationPath(from, to)
	c.JSON(http.StatusOK, dto.PathResponse{
		From:  from,
		To:    to,
		Found: path != nil,
		Path:  path,
	})
}

// Clusters handles GET /api/v1/trees/:id/clusters
func (h *AddressingHandler) Clusters(c *gin.Context) {
	engine, ok := h.engineFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ClustersResponse{Clusters: engine.Clusters()})
}
