package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/motivation-page/internal/domain"
)

func strptr(s string) *string { return &s }

func TestIndex_RendersSelection(t *testing.T) {
	env := newTestEnv(t)
	env.store.data.Append(domain.KindQuote, domain.Entry{
		ID: "q1", Text: "Carpe diem", Author: "Horace",
	})
	env.store.data.Append(domain.KindPoem, domain.Entry{
		ID: "p1", Text: "first line\nsecond line", Author: "A Poet",
	})

	w := env.get("/")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "August 29, 2026")
	assert.Contains(t, body, "Carpe diem")
	assert.Contains(t, body, "Horace")
	assert.Contains(t, body, "first line<br>second line")
}

func TestIndex_EscapesUserText(t *testing.T) {
	env := newTestEnv(t)
	env.store.data.Append(domain.KindQuote, domain.Entry{
		ID: "q1", Text: "<script>alert(1)</script>", Author: "Mallory",
	})

	w := env.get("/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
}

func TestIndex_PictureSection(t *testing.T) {
	t.Run("image", func(t *testing.T) {
		env := newTestEnv(t)
		env.pictures.picture = &domain.Picture{
			URL:       strptr("https://apod.nasa.gov/today.jpg"),
			HDURL:     strptr("https://apod.nasa.gov/today_hd.jpg"),
			Title:     strptr("A Nebula"),
			MediaType: strptr("image"),
			Copyright: strptr("Jane Doe"),
		}

		body := env.get("/").Body.String()

		assert.Contains(t, body, "apod-section")
		assert.Contains(t, body, `<img src="https://apod.nasa.gov/today.jpg"`)
		assert.Contains(t, body, `href="https://apod.nasa.gov/today_hd.jpg"`)
		assert.Contains(t, body, "A Nebula")
		assert.Contains(t, body, "Image Credit: Jane Doe")
		assert.NotContains(t, body, "<iframe")
	})

	t.Run("video renders an iframe", func(t *testing.T) {
		env := newTestEnv(t)
		env.pictures.picture = &domain.Picture{
			URL:       strptr("https://example.com/embed/v1"),
			MediaType: strptr("video"),
		}

		body := env.get("/").Body.String()

		assert.Contains(t, body, `<iframe src="https://example.com/embed/v1"`)
		assert.NotContains(t, body, "<img src=")
	})

	t.Run("provider failure omits the section", func(t *testing.T) {
		env := newTestEnv(t)
		env.pictures.err = domain.NewUnavailableError("apod", "timeout")
		env.store.data.Append(domain.KindQuote, domain.Entry{ID: "q1", Text: "still here", Author: "a"})

		w := env.get("/")

		require.Equal(t, http.StatusOK, w.Code, "the page renders without a picture")
		body := w.Body.String()
		assert.NotContains(t, body, "apod-section")
		assert.NotContains(t, body, "apod-description")
		assert.Contains(t, body, "still here")
	})

	t.Run("picture without url omits the section", func(t *testing.T) {
		env := newTestEnv(t)
		env.pictures.picture = &domain.Picture{Title: strptr("metadata only")}

		body := env.get("/").Body.String()

		assert.NotContains(t, body, "apod-section")
	})
}

func TestIndex_EmptyStore(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No poem available")
}

func TestIndex_CorruptStore(t *testing.T) {
	env := newTestEnv(t)
	env.store.loadErr = domain.NewCorruptStoreError("entries.json", "bad json")

	w := env.get("/")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "entries.json", "paths stay out of responses")
}

func TestAddPage_ShowsCounts(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 3; i++ {
		env.store.data.Append(domain.KindQuote, domain.Entry{ID: "q", Text: "t", Author: "a"})
	}
	env.store.data.Append(domain.KindPoem, domain.Entry{ID: "p", Text: "t", Author: "a"})

	w := env.get("/add")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<div class="stat-value">3</div>`)
	assert.Contains(t, body, `<div class="stat-value">1</div>`)
}

func TestAddPage_ShowsNoticeFromQuery(t *testing.T) {
	env := newTestEnv(t)

	body := env.get("/add?notice=Added+new+quote%21&category=success").Body.String()

	assert.Contains(t, body, `<div class="flash success">Added new quote!</div>`)
}

func TestAddPage_UnknownCategoryRendersAsError(t *testing.T) {
	env := newTestEnv(t)

	body := env.get("/add?notice=whatever&category=sparkly").Body.String()

	assert.Contains(t, body, `<div class="flash error">whatever</div>`)
}

func postForm(env *testEnv, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestAddEntry_Success(t *testing.T) {
	env := newTestEnv(t)

	w := postForm(env, "/add-entry", url.Values{
		"type":   {"quote"},
		"text":   {"  Onward.  "},
		"author": {"Someone"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	loc := w.Header().Get("Location")
	assert.Contains(t, loc, "/add?")
	assert.Contains(t, loc, "category=success")

	require.Len(t, env.store.data.Quotes, 1)
	saved := env.store.data.Quotes[0]
	assert.Equal(t, "Onward.", saved.Text)
	assert.True(t, strings.HasPrefix(saved.ID, "q"))
	assert.Len(t, saved.ID, 9)
}

func TestAddEntry_PoemGoesToPoems(t *testing.T) {
	env := newTestEnv(t)

	w := postForm(env, "/add-entry", url.Values{
		"type":    {"poem"},
		"text":    {"line one\nline two"},
		"author":  {"A Poet"},
		"history": {"some context"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Len(t, env.store.data.Poems, 1)
	assert.Empty(t, env.store.data.Quotes)
	assert.Equal(t, "line one\nline two", env.store.data.Poems[0].Text)
	assert.Equal(t, "some context", env.store.data.Poems[0].History)
}

func TestAddEntry_ValidationFailure(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"blank text", url.Values{"type": {"quote"}, "text": {"   "}, "author": {"a"}}},
		{"blank author", url.Values{"type": {"quote"}, "text": {"t"}, "author": {" \t "}}},
		{"missing fields", url.Values{"type": {"quote"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			w := postForm(env, "/add-entry", tt.form)

			require.Equal(t, http.StatusSeeOther, w.Code)
			loc := w.Header().Get("Location")
			assert.Contains(t, loc, "category=error")
			assert.Contains(t, loc, url.QueryEscape("Text and author are required"))
			assert.Empty(t, env.store.data.Quotes)
			assert.Empty(t, env.store.data.Poems)
		})
	}
}

func TestPreview(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/preview")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/regenerate"`)
}

func TestRegenerate(t *testing.T) {
	t.Run("success redirects home with notice", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.get("/regenerate")

		require.Equal(t, http.StatusSeeOther, w.Code)
		loc := w.Header().Get("Location")
		assert.True(t, strings.HasPrefix(loc, "/?"), "redirects to index, got %s", loc)
		assert.Contains(t, loc, "category=success")
		assert.Equal(t, 1, env.builder.calls)
	})

	t.Run("failure carries the error in the notice", func(t *testing.T) {
		env := newTestEnv(t)
		env.builder.err = domain.NewRegenerationError("exit status 1", assert.AnError)

		w := env.get("/regenerate")

		require.Equal(t, http.StatusSeeOther, w.Code)
		loc := w.Header().Get("Location")
		assert.Contains(t, loc, "category=error")
		assert.Contains(t, loc, url.QueryEscape("Error regenerating page"))
	})
}
