package dto

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/motivation-page/internal/domain"
)

func TestValidate_AddEntryRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     AddEntryRequest
		wantErr bool
		field   string
	}{
		{
			name: "valid quote",
			req:  AddEntryRequest{Kind: "quote", Text: "some text", Author: "someone"},
		},
		{
			name: "valid poem with history",
			req:  AddEntryRequest{Kind: "poem", Text: "line one\nline two", Author: "a poet", History: "written in 1920"},
		},
		{
			name:    "unknown kind",
			req:     AddEntryRequest{Kind: "haiku", Text: "t", Author: "a"},
			wantErr: true,
			field:   "kind",
		},
		{
			name:    "missing text",
			req:     AddEntryRequest{Kind: "quote", Author: "a"},
			wantErr: true,
			field:   "text",
		},
		{
			name:    "whitespace-only author",
			req:     AddEntryRequest{Kind: "quote", Text: "t", Author: "   "},
			wantErr: true,
			field:   "author",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.req)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			fields := ValidationErrors(err)
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestAddEntryForm_Kind(t *testing.T) {
	assert.Equal(t, domain.KindQuote, (&AddEntryForm{Type: "quote"}).Kind())
	assert.Equal(t, domain.KindPoem, (&AddEntryForm{Type: "poem"}).Kind())
	assert.Equal(t, domain.KindPoem, (&AddEntryForm{Type: ""}).Kind())
}

func TestNewEntryListResponse(t *testing.T) {
	s := domain.NewStore()
	s.Append(domain.KindQuote, domain.Entry{ID: "q1", Text: "t", Author: "a"})
	s.Append(domain.KindPoem, domain.Entry{ID: "p1", Text: "t2", Author: "b", History: "h"})

	resp := NewEntryListResponse(s)

	require.Len(t, resp.Quotes, 1)
	require.Len(t, resp.Poems, 1)
	assert.Equal(t, "quote", resp.Quotes[0].Kind)
	assert.Equal(t, "poem", resp.Poems[0].Kind)
	assert.Equal(t, "h", resp.Poems[0].History)
}

func TestNewSelectionResponse(t *testing.T) {
	date := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

	t.Run("full selection", func(t *testing.T) {
		mediaType := "image"
		url := "https://example.com/pic.jpg"
		sel := &domain.DailySelection{
			Date:  date,
			Quote: &domain.Entry{ID: "q1", Text: "t", Author: "a"},
			Poem:  &domain.Entry{ID: "p1", Text: "t2", Author: "b"},
		}

		resp := NewSelectionResponse(sel, &domain.Picture{URL: &url, MediaType: &mediaType})

		assert.Equal(t, "2025-03-14", resp.Date)
		require.NotNil(t, resp.Quote)
		assert.Equal(t, "q1", resp.Quote.ID)
		require.NotNil(t, resp.Poem)
		assert.Equal(t, "p1", resp.Poem.ID)
		require.NotNil(t, resp.Picture)
		assert.Equal(t, url, *resp.Picture.URL)
	})

	t.Run("empty store and no picture", func(t *testing.T) {
		resp := NewSelectionResponse(&domain.DailySelection{Date: date}, nil)

		assert.Nil(t, resp.Quote)
		assert.Nil(t, resp.Poem)
		assert.Nil(t, resp.Picture)
	})
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeBadRequest, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromCode(tt.code))
		})
	}
}
