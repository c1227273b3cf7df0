package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/motivation-page/internal/adapters/http/dto"
	"github.com/jsamuelsen/motivation-page/internal/app"
	"github.com/jsamuelsen/motivation-page/internal/domain"
	"github.com/jsamuelsen/motivation-page/internal/platform/logging"
	"github.com/jsamuelsen/motivation-page/internal/platform/metrics"
)

// dateDisplayFormat renders dates like "August 29, 2026".
const dateDisplayFormat = "January 02, 2006"

// Notice is a one-shot message shown at the top of a page, carried
// across the post-redirect-get cycle as query parameters.
type Notice struct {
	Message  string
	Category string
}

// PagesHandler serves the HTML pages.
type PagesHandler struct {
	pages   *app.PageService
	entries *app.EntryService
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewPagesHandler creates a new pages handler.
func NewPagesHandler(pages *app.PageService, entries *app.EntryService, m *metrics.Metrics, logger *slog.Logger) *PagesHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &PagesHandler{
		pages:   pages,
		entries: entries,
		metrics: m,
		logger:  logger,
	}
}

// pictureView is the template-facing shape of the daily picture.
// It exists so templates never dereference pointers.
type pictureView struct {
	URL         string
	LinkURL     string
	Title       string
	Explanation string
	Copyright   string
	IsVideo     bool
}

// newPictureView flattens a domain picture for rendering.
// Returns nil when there is no picture or the picture has no URL, in
// which case the page omits the picture sections entirely.
func newPictureView(p *domain.Picture) *pictureView {
	if p == nil || p.URL == nil || *p.URL == "" {
		return nil
	}

	view := &pictureView{
		URL:     *p.URL,
		LinkURL: p.BestURL(),
		Title:   "NASA APOD",
		IsVideo: p.IsVideo(),
	}
	if p.Title != nil && *p.Title != "" {
		view.Title = *p.Title
	}
	if p.Explanation != nil {
		view.Explanation = *p.Explanation
	}
	if p.Copyright != nil {
		view.Copyright = *p.Copyright
	}

	return view
}

// indexData feeds the index template.
type indexData struct {
	Title   string
	Notice  *Notice
	Today   string
	Quote   *domain.Entry
	Poem    *domain.Entry
	Picture *pictureView
}

// Index serves the daily page: the date's selection plus the picture
// of the day when the provider delivered one.
func (h *PagesHandler) Index(c *gin.Context) {
	selection, picture, err := h.pages.Today(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.PageViews.WithLabelValues("index").Inc()
	}

	c.HTML(http.StatusOK, "index", indexData{
		Title:   "Daily Motivation",
		Notice:  noticeFromQuery(c),
		Today:   selection.Date.Format(dateDisplayFormat),
		Quote:   selection.Quote,
		Poem:    selection.Poem,
		Picture: newPictureView(picture),
	})
}

// addData feeds the add template.
type addData struct {
	Title      string
	Notice     *Notice
	QuoteCount int
	PoemCount  int
}

// AddPage serves the entry submission form with collection counts.
func (h *PagesHandler) AddPage(c *gin.Context) {
	store, err := h.entries.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.PageViews.WithLabelValues("add").Inc()
	}

	c.HTML(http.StatusOK, "add", addData{
		Title:      "Add Entry",
		Notice:     noticeFromQuery(c),
		QuoteCount: len(store.Quotes),
		PoemCount:  len(store.Poems),
	})
}

// AddEntry handles the form POST from the add page.
// Validation failures and successes both land back on the add page with
// a notice; only infrastructure failures render an error page.
func (h *PagesHandler) AddEntry(c *gin.Context) {
	var form dto.AddEntryForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithNotice(c, "/add", "Text and author are required", "error")
		return
	}

	input := app.NewEntryInput{
		Kind:    form.Kind(),
		Text:    form.Text,
		Author:  form.Author,
		History: form.History,
	}

	_, err := h.entries.AddEntry(c.Request.Context(), input)
	switch {
	case err == nil:
		redirectWithNotice(c, "/add", fmt.Sprintf("Added new %s!", input.Kind), "success")
	case domain.IsValidation(err):
		redirectWithNotice(c, "/add", "Text and author are required", "error")
	default:
		h.renderError(c, err)
	}
}

// previewData feeds the preview template.
type previewData struct {
	Title  string
	Notice *Notice
}

// Preview serves the regeneration launch page.
func (h *PagesHandler) Preview(c *gin.Context) {
	c.HTML(http.StatusOK, "preview", previewData{
		Title:  "Regenerate Page",
		Notice: noticeFromQuery(c),
	})
}

// Regenerate triggers the static site build and reports the outcome as
// a notice on the index page. A failed build is a notice, not an error
// page; the admin reads the message and tries again.
func (h *PagesHandler) Regenerate(c *gin.Context) {
	err := h.pages.Regenerate(c.Request.Context())
	if err != nil {
		redirectWithNotice(c, "/", fmt.Sprintf("Error regenerating page: %v", err), "error")
		return
	}

	redirectWithNotice(c, "/", "Static page regenerated successfully!", "success")
}

// RegisterPageRoutes registers the HTML routes on the engine root.
func (h *PagesHandler) RegisterPageRoutes(engine *gin.Engine) {
	engine.GET("/", h.Index)
	engine.GET("/add", h.AddPage)
	engine.POST("/add-entry", h.AddEntry)
	engine.GET("/preview", h.Preview)
	engine.GET("/regenerate", h.Regenerate)
}

// renderError writes a plain error page for hard failures.
// The underlying cause is logged, not shown.
func (h *PagesHandler) renderError(c *gin.Context, err error) {
	logging.FromContext(c.Request.Context()).Error("page request failed",
		slog.String("path", c.Request.URL.Path),
		slog.Any("error", err),
	)

	c.String(http.StatusInternalServerError, "Something went wrong. Check the server logs.")
}

// noticeFromQuery reads the one-shot notice from the query string.
// Returns nil when there is none; unknown categories render as errors
// so a mangled URL cannot dress a message up as a success.
func noticeFromQuery(c *gin.Context) *Notice {
	message := c.Query("notice")
	if message == "" {
		return nil
	}

	category := c.Query("category")
	if category != "success" {
		category = "error"
	}

	return &Notice{Message: message, Category: category}
}

// redirectWithNotice sends a see-other redirect carrying the notice.
func redirectWithNotice(c *gin.Context, target, message, category string) {
	q := url.Values{}
	q.Set("notice", message)
	q.Set("category", category)

	c.Redirect(http.StatusSeeOther, target+"?"+q.Encode())
}
