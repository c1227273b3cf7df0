package dto

import (
	"time"

	"github.com/jsamuelsen/motivation-page/internal/domain"
)

// AddEntryRequest is the JSON API payload for creating an entry.
type AddEntryRequest struct {
	Kind    string `json:"kind" validate:"required,oneof=quote poem"`
	Text    string `json:"text" validate:"required,notblank"`
	Author  string `json:"author" validate:"required,notblank"`
	History string `json:"history"`
}

// AddEntryForm is the HTML form payload for creating an entry.
// Field names match the add page's inputs.
type AddEntryForm struct {
	Type    string `form:"type"`
	Text    string `form:"text"`
	Author  string `form:"author"`
	History string `form:"history"`
}

// Kind maps the form's type select to a domain kind.
// Anything that is not "quote" counts as a poem, matching the two-option
// select on the form.
func (f *AddEntryForm) Kind() domain.EntryKind {
	if f.Type == "quote" {
		return domain.KindQuote
	}
	return domain.KindPoem
}

// EntryResponse is the JSON representation of a stored entry.
type EntryResponse struct {
	ID      string   `json:"id"`
	Kind    string   `json:"kind"`
	Text    string   `json:"text"`
	Author  string   `json:"author"`
	History string   `json:"history,omitempty"`
	Images  []string `json:"images,omitempty"`
}

// NewEntryResponse converts a domain entry to its API shape.
func NewEntryResponse(kind domain.EntryKind, e domain.Entry) EntryResponse {
	return EntryResponse{
		ID:      e.ID,
		Kind:    string(kind),
		Text:    e.Text,
		Author:  e.Author,
		History: e.History,
		Images:  e.Images,
	}
}

// EntryListResponse is the JSON API shape for the full collection.
type EntryListResponse struct {
	Quotes []EntryResponse `json:"quotes"`
	Poems  []EntryResponse `json:"poems"`
}

// NewEntryListResponse converts the full store to its API shape.
func NewEntryListResponse(s *domain.Store) EntryListResponse {
	resp := EntryListResponse{
		Quotes: make([]EntryResponse, 0, len(s.Quotes)),
		Poems:  make([]EntryResponse, 0, len(s.Poems)),
	}
	for _, e := range s.Quotes {
		resp.Quotes = append(resp.Quotes, NewEntryResponse(domain.KindQuote, e))
	}
	for _, e := range s.Poems {
		resp.Poems = append(resp.Poems, NewEntryResponse(domain.KindPoem, e))
	}
	return resp
}

// PictureResponse is the JSON representation of the daily picture.
type PictureResponse struct {
	URL         *string `json:"url"`
	HDURL       *string `json:"hdurl,omitempty"`
	Title       *string `json:"title"`
	Explanation *string `json:"explanation,omitempty"`
	MediaType   *string `json:"mediaType"`
	Copyright   *string `json:"copyright,omitempty"`
}

// NewPictureResponse converts a domain picture to its API shape.
// Returns nil for a nil picture so the selection response omits it.
func NewPictureResponse(p *domain.Picture) *PictureResponse {
	if p == nil {
		return nil
	}
	return &PictureResponse{
		URL:         p.URL,
		HDURL:       p.HDURL,
		Title:       p.Title,
		Explanation: p.Explanation,
		MediaType:   p.MediaType,
		Copyright:   p.Copyright,
	}
}

// SelectionResponse is the JSON API shape of one day's selection.
type SelectionResponse struct {
	Date    string           `json:"date"`
	Quote   *EntryResponse   `json:"quote"`
	Poem    *EntryResponse   `json:"poem"`
	Picture *PictureResponse `json:"picture,omitempty"`
}

// NewSelectionResponse converts a daily selection and optional picture
// to the API shape.
func NewSelectionResponse(sel *domain.DailySelection, pic *domain.Picture) SelectionResponse {
	resp := SelectionResponse{
		Date:    sel.Date.Format(time.DateOnly),
		Picture: NewPictureResponse(pic),
	}
	if sel.Quote != nil {
		q := NewEntryResponse(domain.KindQuote, *sel.Quote)
		resp.Quote = &q
	}
	if sel.Poem != nil {
		p := NewEntryResponse(domain.KindPoem, *sel.Poem)
		resp.Poem = &p
	}
	return resp
}
