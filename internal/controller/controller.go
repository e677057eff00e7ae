// Package controller owns the canonical query state and orchestrates fetches
// against the remote record store. It is the only place with ordering
// concerns: overlapping fetches are resolved by tagging every fetch with a
// generation id and committing a result only if its generation is still
// current when it completes. Superseded results are dropped silently.
package controller

import (
	"context"
	"log/slog"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/postdeck/postdeck/internal/apiclient"
	"github.com/postdeck/postdeck/internal/dialog"
	"github.com/postdeck/postdeck/internal/domain"
	"github.com/postdeck/postdeck/internal/middleware/metrics"
	"github.com/postdeck/postdeck/internal/query"
	"github.com/postdeck/postdeck/internal/view"
)

const (
	strategyDefault = "default"
	strategyTag     = "tag"
	strategySearch  = "search"
)

type Controller struct {
	mu      sync.Mutex
	client  *apiclient.Client
	state   query.State
	model   *view.Model
	dialogs *dialog.Machine
	loading bool
	gen     uuid.UUID
	url     string // query string of the last fetched view
}

func New(client *apiclient.Client) *Controller {
	return &Controller{
		client:  client,
		state:   query.Default(),
		model:   view.New(),
		dialogs: dialog.New(),
	}
}

// Snapshot is what the rendering layer reads.
type Snapshot struct {
	Posts   []domain.Post `json:"posts"`
	Total   int           `json:"total"`
	Loading bool          `json:"loading"`
	Tags    []domain.Tag  `json:"tags"`
	URL     string        `json:"url"`
	Query   QueryInfo     `json:"query"`
	Dialog  string        `json:"dialog"`
}

type QueryInfo struct {
	Skip      int    `json:"skip"`
	Limit     int    `json:"limit"`
	Search    string `json:"search"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
	Tag       string `json:"tag"`
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Posts:   c.model.Posts(),
		Total:   c.model.Total(),
		Loading: c.loading,
		Tags:    c.model.Tags(),
		URL:     c.url,
		Query: QueryInfo{
			Skip:      c.state.Skip,
			Limit:     c.state.Limit,
			Search:    c.state.Search,
			SortBy:    string(c.state.SortKey),
			SortOrder: string(c.state.SortOrder),
			Tag:       c.state.Tag,
		},
		Dialog: c.dialogs.State().String(),
	}
}

// strategyFor picks the retrieval strategy for fetch-triggering mutations.
// Search is deliberately absent: a search fetch only happens on SubmitSearch.
func strategyFor(s query.State) string {
	if s.TagActive() {
		return strategyTag
	}
	return strategyDefault
}

// beginFetchLocked marks a new fetch generation: the address-bar string is
// recomputed here, so it always reflects the last fetched view, not the last
// typed search text.
func (c *Controller) beginFetchLocked(strategy string) (uuid.UUID, query.State) {
	c.gen = uuid.New()
	c.loading = true
	c.url = query.QueryString(c.state)
	return c.gen, c.state
}

// fetch runs the posts request and the bulk author lookup concurrently, then
// joins and commits the result if this fetch is still the current generation.
// Loading indication is cleared exactly once, by the owning generation's
// terminal branch; a stale branch must not touch it.
func (c *Controller) fetch(ctx context.Context, gen uuid.UUID, s query.State, strategy string) {
	var (
		page       apiclient.PostPage
		authors    []domain.AuthorRef
		postsErr   error
		authorsErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		page, postsErr = c.fetchPage(ctx, s, strategy)
	}()
	go func() {
		defer wg.Done()
		authors, authorsErr = c.client.GetAuthors(ctx)
	}()
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		metrics.ObserveFetch(strategy, metrics.OutcomeStale)
		return
	}

	err := postsErr
	if err == nil {
		err = authorsErr
	}
	if err != nil {
		c.loading = false
		metrics.ObserveFetch(strategy, metrics.OutcomeError)
		slog.Error("fetch failed, keeping previous view", "strategy", strategy, "error", err)
		return
	}

	c.model.SetPosts(page.Posts, authors, page.Total)
	c.loading = false
	metrics.ObserveFetch(strategy, metrics.OutcomeCommitted)
}

func (c *Controller) fetchPage(ctx context.Context, s query.State, strategy string) (apiclient.PostPage, error) {
	switch strategy {
	case strategyTag:
		// The store paginates tag listings itself.
		return c.client.GetPostsByTag(ctx, s.Tag)
	case strategySearch:
		return c.client.SearchPosts(ctx, s.Search, s.Limit, s.Skip, string(s.SortKey), string(s.SortOrder))
	default:
		return c.client.GetPosts(ctx, s.Limit, s.Skip, string(s.SortKey), string(s.SortOrder))
	}
}

// refresh launches the fetch for the current state and waits for its
// terminal branch. Concurrent callers race on the generation tag; only the
// most recent one commits.
func (c *Controller) refresh(ctx context.Context, strategy string) {
	c.mu.Lock()
	gen, s := c.beginFetchLocked(strategy)
	c.mu.Unlock()
	c.fetch(ctx, gen, s, strategy)
}

// Navigate decodes an externally supplied query string (pasted URL,
// back/forward) into state and runs the regular fetch path.
func (c *Controller) Navigate(ctx context.Context, params url.Values) {
	c.mu.Lock()
	c.state = query.Decode(params)
	strategy := strategyFor(c.state)
	gen, s := c.beginFetchLocked(strategy)
	c.mu.Unlock()
	c.fetch(ctx, gen, s, strategy)
}

func (c *Controller) SetSkip(ctx context.Context, skip int) {
	c.mutate(ctx, func(s *query.State) bool { return s.SetSkip(skip) })
}

func (c *Controller) SetLimit(ctx context.Context, limit int) {
	c.mutate(ctx, func(s *query.State) bool { return s.SetLimit(limit) })
}

func (c *Controller) SetSort(ctx context.Context, key query.SortKey, order query.SortOrder) {
	c.mutate(ctx, func(s *query.State) bool { return s.SetSort(key, order) })
}

func (c *Controller) SetTag(ctx context.Context, tag string) {
	c.mutate(ctx, func(s *query.State) bool { return s.SetTag(tag) })
}

// SetSearch only records the text. No fetch, no URL change; both happen on
// SubmitSearch.
func (c *Controller) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SetSearch(text)
}

// SubmitSearch is the explicit user-confirmed search action. An empty search
// text falls back to the regular listing strategy.
func (c *Controller) SubmitSearch(ctx context.Context) {
	c.mu.Lock()
	strategy := strategySearch
	if c.state.Search == "" {
		strategy = strategyFor(c.state)
	}
	gen, s := c.beginFetchLocked(strategy)
	c.mu.Unlock()
	c.fetch(ctx, gen, s, strategy)
}

func (c *Controller) mutate(ctx context.Context, fn func(*query.State) bool) {
	c.mu.Lock()
	if !fn(&c.state) {
		c.mu.Unlock()
		return
	}
	strategy := strategyFor(c.state)
	gen, s := c.beginFetchLocked(strategy)
	c.mu.Unlock()
	c.fetch(ctx, gen, s, strategy)
}

// LoadTags fetches the tag reference data once per session. A failure is
// logged and leaves tags empty; the controller stays usable.
func (c *Controller) LoadTags(ctx context.Context) {
	c.mu.Lock()
	loaded := len(c.model.Tags()) > 0
	c.mu.Unlock()
	if loaded {
		return
	}

	tags, err := c.client.GetTags(ctx)
	if err != nil {
		slog.Error("tags fetch failed", "error", err)
		return
	}
	c.mu.Lock()
	c.model.SetTags(tags)
	c.mu.Unlock()
}
