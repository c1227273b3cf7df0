package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/motivation-page/internal/adapters/http/templates"
	"github.com/jsamuelsen/motivation-page/internal/app"
	"github.com/jsamuelsen/motivation-page/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore is an in-memory entry store for handler tests.
type fakeStore struct {
	data    *domain.Store
	loadErr error
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: domain.NewStore()}
}

func (f *fakeStore) Load(_ context.Context) (*domain.Store, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return &domain.Store{
		Quotes: append([]domain.Entry{}, f.data.Quotes...),
		Poems:  append([]domain.Entry{}, f.data.Poems...),
	}, nil
}

func (f *fakeStore) Save(_ context.Context, s *domain.Store) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data = s
	return nil
}

// fakePictures is a canned picture client.
type fakePictures struct {
	picture *domain.Picture
	err     error
}

func (f *fakePictures) FetchToday(_ context.Context) (*domain.Picture, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.picture, nil
}

// fakeBuilder is a canned site builder.
type fakeBuilder struct {
	err   error
	calls int
}

func (f *fakeBuilder) Regenerate(_ context.Context) error {
	f.calls++
	return f.err
}

// testEnv bundles the fakes behind a wired router.
type testEnv struct {
	store    *fakeStore
	pictures *fakePictures
	builder  *fakeBuilder
	router   *gin.Engine
}

func testDate() time.Time {
	return time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		store:    newFakeStore(),
		pictures: &fakePictures{},
		builder:  &fakeBuilder{},
	}

	pageSvc := app.NewPageService(app.PageServiceConfig{
		Store:   env.store,
		Picture: env.pictures,
		Builder: env.builder,
		Now:     testDate,
	})
	entrySvc := app.NewEntryService(app.EntryServiceConfig{Store: env.store})

	tmpl, err := templates.New()
	require.NoError(t, err)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	pages := NewPagesHandler(pageSvc, entrySvc, nil, nil)
	pages.RegisterPageRoutes(router)

	api := NewAPIHandler(pageSvc, entrySvc)
	api.now = testDate
	api.RegisterAPIRoutes(router.Group("/api/v1"))

	env.router = router
	return env
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}
