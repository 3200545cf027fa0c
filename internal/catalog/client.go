// Package catalog consumes the external game metadata provider (a RAWG-style
// REST API). It is a collaborator: calls are single-attempt, fallible, and
// failures surface to the caller rather than being retried.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gametracker/backend/internal/models"
)

// ErrUnavailable covers both a missing API key and an unreachable or
// erroring catalog backend.
var ErrUnavailable = errors.New("game catalog unavailable")

const (
	DefaultBaseURL = "https://api.rawg.io/api"

	// placeholderCover stands in when the catalog has no artwork.
	placeholderCover = "https://placehold.co/600x800.png"

	searchPageSize  = 12
	popularPageSize = 20
	genrePageSize   = 24
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// rawGame is the provider's wire shape for one game.
type rawGame struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	BackgroundImage string `json:"background_image"`
	DescriptionRaw  string `json:"description_raw"`
	Playtime        int    `json:"playtime"`
}

type rawPage struct {
	Results []rawGame `json:"results"`
	Next    string    `json:"next"`
}

// SearchResult is one page of games; NextPage is 0 when there are no more.
type SearchResult struct {
	Games    []models.Game `json:"games"`
	NextPage int           `json:"nextPage,omitempty"`
}

// Search returns games matching query. An empty query returns an empty page
// without touching the network.
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchResult, error) {
	if query == "" {
		return &SearchResult{Games: []models.Game{}}, nil
	}
	params := url.Values{
		"search":    {query},
		"page_size": {strconv.Itoa(searchPageSize)},
	}
	return c.page(ctx, "/games", params, page)
}

// Popular returns the catalog's most-added games.
func (c *Client) Popular(ctx context.Context, page int) (*SearchResult, error) {
	params := url.Values{
		"ordering":  {"-added"},
		"page_size": {strconv.Itoa(popularPageSize)},
	}
	return c.page(ctx, "/games", params, page)
}

// ByGenre returns one page of games for a genre slug.
func (c *Client) ByGenre(ctx context.Context, slug string, page int) (*SearchResult, error) {
	params := url.Values{
		"genres":    {slug},
		"page_size": {strconv.Itoa(genrePageSize)},
	}
	return c.page(ctx, "/games", params, page)
}

// Details fetches a single game by catalog id, including its summary.
func (c *Client) Details(ctx context.Context, id int) (*models.Game, error) {
	var raw rawGame
	if err := c.get(ctx, fmt.Sprintf("/games/%d", id), url.Values{}, &raw); err != nil {
		return nil, err
	}
	game := toGame(raw)
	return &game, nil
}

// Genres lists the catalog's genre taxonomy.
func (c *Client) Genres(ctx context.Context) ([]models.Genre, error) {
	var payload struct {
		Results []models.Genre `json:"results"`
	}
	if err := c.get(ctx, "/genres", url.Values{}, &payload); err != nil {
		return nil, err
	}
	if payload.Results == nil {
		payload.Results = []models.Genre{}
	}
	return payload.Results, nil
}

func (c *Client) page(ctx context.Context, path string, params url.Values, page int) (*SearchResult, error) {
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))

	var raw rawPage
	if err := c.get(ctx, path, params, &raw); err != nil {
		return nil, err
	}

	games := make([]models.Game, 0, len(raw.Results))
	for _, r := range raw.Results {
		games = append(games, toGame(r))
	}
	result := &SearchResult{Games: games}
	if raw.Next != "" {
		result.NextPage = page + 1
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.apiKey == "" {
		return fmt.Errorf("%w: no API key configured", ErrUnavailable)
	}
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "GameTrackerApp/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	return nil
}

func toGame(r rawGame) models.Game {
	cover := r.BackgroundImage
	if cover == "" {
		cover = placeholderCover
	}
	return models.Game{
		ID:         r.ID,
		Name:       r.Name,
		CoverImage: cover,
		Summary:    r.DescriptionRaw,
		Playtime:   r.Playtime,
	}
}
