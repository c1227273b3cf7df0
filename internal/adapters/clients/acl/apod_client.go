// Package acl is the anti-corruption layer between external provider
// payloads and domain types. Provider wire formats stop here; the rest
// of the application only ever sees domain.Picture.
package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jsamuelsen/motivation-page/internal/adapters/clients"
	"github.com/jsamuelsen/motivation-page/internal/domain"
)

// serviceName identifies the provider in errors and logs.
const serviceName = "apod"

// apodPath is the picture-of-the-day endpoint on the provider.
const apodPath = "/planetary/apod"

// APODClient fetches the astronomy picture of the day.
// Every failure maps to domain.ErrUnavailable; callers treat that as
// "no picture today" and render without one.
type APODClient struct {
	client *clients.Client
	apiKey string
}

// NewAPODClient creates a new picture-of-the-day client.
func NewAPODClient(client *clients.Client, apiKey string) *APODClient {
	return &APODClient{
		client: client,
		apiKey: apiKey,
	}
}

// apodResponse is the provider's wire format.
// All fields are optional; the provider omits copyright for public
// domain images and hdurl for videos.
type apodResponse struct {
	URL         *string `json:"url"`
	HDURL       *string `json:"hdurl"`
	Title       *string `json:"title"`
	Explanation *string `json:"explanation"`
	MediaType   *string `json:"media_type"`
	Copyright   *string `json:"copyright"`
}

// FetchToday retrieves today's picture with metadata.
func (c *APODClient) FetchToday(ctx context.Context) (*domain.Picture, error) {
	query := url.Values{"api_key": []string{c.apiKey}}

	resp, err := c.client.Get(ctx, apodPath, query)
	if err != nil {
		return nil, domain.NewUnavailableError(serviceName, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUnavailableError(serviceName,
			fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	var payload apodResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.NewUnavailableError(serviceName,
			fmt.Sprintf("decoding response: %v", err))
	}

	return translatePicture(&payload), nil
}

// translatePicture converts the provider payload to the domain type.
// Absent fields stay nil so rendering can distinguish "not provided"
// from empty strings.
func translatePicture(p *apodResponse) *domain.Picture {
	return &domain.Picture{
		URL:         p.URL,
		HDURL:       p.HDURL,
		Title:       p.Title,
		Explanation: p.Explanation,
		MediaType:   p.MediaType,
		Copyright:   p.Copyright,
	}
}
