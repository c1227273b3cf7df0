package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/motivation-page/internal/adapters/http/dto"
	"github.com/jsamuelsen/motivation-page/internal/app"
	"github.com/jsamuelsen/motivation-page/internal/domain"
)

// APIHandler serves the JSON API under /api/v1.
type APIHandler struct {
	pages   *app.PageService
	entries *app.EntryService
	now     func() time.Time
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(pages *app.PageService, entries *app.EntryService) *APIHandler {
	return &APIHandler{
		pages:   pages,
		entries: entries,
		now:     time.Now,
	}
}

// Selection handles GET /api/v1/selection.
// An optional date=YYYY-MM-DD query selects a day other than today.
func (h *APIHandler) Selection(c *gin.Context) {
	date := h.now()

	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	selection, err := h.pages.Selection(c.Request.Context(), date)
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSelectionResponse(selection, nil))
}

// ListEntries handles GET /api/v1/entries.
// An optional kind=quote|poem query narrows the response to one
// collection.
func (h *APIHandler) ListEntries(c *gin.Context) {
	store, err := h.entries.List(c.Request.Context())
	if err != nil {
		RespondWithError(c, err)
		return
	}

	resp := dto.NewEntryListResponse(store)

	switch c.Query("kind") {
	case "":
	case string(domain.KindQuote):
		resp.Poems = []dto.EntryResponse{}
	case string(domain.KindPoem):
		resp.Quotes = []dto.EntryResponse{}
	default:
		RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "kind must be quote or poem")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateEntry handles POST /api/v1/entries.
func (h *APIHandler) CreateEntry(c *gin.Context) {
	var req dto.AddEntryRequest

	if err := dto.BindAndValidate(c, &req); err != nil {
		if errors.Is(err, dto.ErrBinding) {
			RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "request body must be valid JSON")
			return
		}

		RespondWithValidationErrors(c, dto.ValidationErrors(err))
		return
	}

	kind := domain.EntryKind(req.Kind)
	entry, err := h.entries.AddEntry(c.Request.Context(), app.NewEntryInput{
		Kind:    kind,
		Text:    req.Text,
		Author:  req.Author,
		History: req.History,
	})
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewEntryResponse(kind, *entry))
}

// Picture handles GET /api/v1/picture.
// Unlike the HTML page, a provider failure here is visible: the caller
// gets a 503 envelope instead of a silently missing section.
func (h *APIHandler) Picture(c *gin.Context) {
	picture, err := h.pages.Picture(c.Request.Context())
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPictureResponse(picture))
}

// RegisterAPIRoutes registers the JSON API routes on the given group.
func (h *APIHandler) RegisterAPIRoutes(rg *gin.RouterGroup) {
	rg.GET("/selection", h.Selection)
	rg.GET("/entries", h.ListEntries)
	rg.POST("/entries", h.CreateEntry)
	rg.GET("/picture", h.Picture)
}
