package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/postdeck/postdeck/internal/apiclient"
	"github.com/postdeck/postdeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an httptest-backed stand-in for the remote record store. Tests
// can block individual endpoints to script response-ordering races.
type fakeStore struct {
	mu            sync.Mutex
	lastListQuery map[string]string
	listCalls     int
	searchCalls   int
	commentCalls  int
	failList      bool

	blockList    chan struct{} // when set, /posts waits for it
	listStarted  chan struct{} // closed on first /posts hit
	startOnce    sync.Once
	blockTag     map[string]chan struct{} // per-tag gates
	tagStarted   map[string]chan struct{}
	tagStartOnce map[string]*sync.Once
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		blockTag:     map[string]chan struct{}{},
		tagStarted:   map[string]chan struct{}{},
		tagStartOnce: map[string]*sync.Once{},
	}
}

func (f *fakeStore) ListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func (f *fakeStore) SearchCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchCalls
}

func (f *fakeStore) CommentCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commentCalls
}

func (f *fakeStore) LastListQuery() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastListQuery
}

func (f *fakeStore) gateTag(tag string) (started chan struct{}, release chan struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	started = make(chan struct{})
	release = make(chan struct{})
	f.tagStarted[tag] = started
	f.blockTag[tag] = release
	f.tagStartOnce[tag] = &sync.Once{}
	return started, release
}

func writePage(w http.ResponseWriter, posts []domain.Post, total int) {
	json.NewEncoder(w).Encode(map[string]any{"posts": posts, "total": total})
}

func (f *fakeStore) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		switch {
		case path == "/users":
			json.NewEncoder(w).Encode(map[string]any{"users": []domain.AuthorRef{
				{ID: 1, Username: "emilys"},
				{ID: 2, Username: "michaelw"},
			}})

		case path == "/posts/tags":
			json.NewEncoder(w).Encode([]domain.Tag{{Slug: "fiction", URL: "/posts/tag/fiction"}})

		case path == "/posts/search":
			f.mu.Lock()
			f.searchCalls++
			f.mu.Unlock()
			writePage(w, []domain.Post{{ID: 3, Title: "found", UserID: 1}}, 1)

		case strings.HasPrefix(path, "/posts/tag/"):
			tag := strings.TrimPrefix(path, "/posts/tag/")
			f.mu.Lock()
			started := f.tagStarted[tag]
			release := f.blockTag[tag]
			once := f.tagStartOnce[tag]
			f.mu.Unlock()
			if started != nil {
				once.Do(func() { close(started) })
				<-release
			}
			writePage(w, []domain.Post{{ID: 2, Title: "tagged " + tag, UserID: 2, Tags: []string{tag}}}, 1)

		case strings.HasPrefix(path, "/comments/post/"):
			f.mu.Lock()
			f.commentCalls++
			f.mu.Unlock()
			json.NewEncoder(w).Encode(map[string]any{"comments": []domain.Comment{
				{ID: 10, Body: "nice", PostID: 1, User: domain.CommentRef{ID: 2, Username: "michaelw"}},
			}})

		case path == "/posts" && r.Method == http.MethodGet:
			f.mu.Lock()
			f.listCalls++
			f.lastListQuery = map[string]string{}
			for k := range r.URL.Query() {
				f.lastListQuery[k] = r.URL.Query().Get(k)
			}
			fail := f.failList
			block := f.blockList
			started := f.listStarted
			f.mu.Unlock()

			if started != nil {
				f.startOnce.Do(func() { close(started) })
			}
			if block != nil {
				<-block
			}
			if fail {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			writePage(w, []domain.Post{{ID: 1, Title: "default", UserID: 1}}, 100)

		default:
			// writes land here; acknowledge them
			w.Write([]byte("{}"))
		}
	})
}

func newTestController(t *testing.T) (*Controller, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	server := httptest.NewServer(store.handler())
	t.Cleanup(server.Close)
	return New(apiclient.New(server.URL)), store
}

func TestDefaultListingScenario(t *testing.T) {
	ctrl, store := newTestController(t)
	ctx := context.Background()

	ctrl.Navigate(ctx, nil)

	snap := ctrl.Snapshot()
	assert.Equal(t, "", snap.URL, "reset state produces an empty query string")
	assert.False(t, snap.Loading)
	require.Len(t, snap.Posts, 1)
	assert.Equal(t, "default", snap.Posts[0].Title)
	require.NotNil(t, snap.Posts[0].Author, "author joined from the bulk lookup")
	assert.Equal(t, "emilys", snap.Posts[0].Author.Username)
	assert.Equal(t, "10", store.LastListQuery()["limit"])
	assert.Equal(t, "0", store.LastListQuery()["skip"])

	ctrl.SetLimit(ctx, 20)

	snap = ctrl.Snapshot()
	assert.Equal(t, "?limit=20", snap.URL)
	assert.Equal(t, "20", store.LastListQuery()["limit"])
	assert.Equal(t, "0", store.LastListQuery()["skip"])
}

func TestSearchTypingDoesNotFetch(t *testing.T) {
	ctrl, store := newTestController(t)
	ctx := context.Background()

	ctrl.Navigate(ctx, nil)
	callsBefore := store.ListCalls()
	urlBefore := ctrl.Snapshot().URL

	ctrl.SetSearch("love")

	snap := ctrl.Snapshot()
	assert.Equal(t, callsBefore, store.ListCalls(), "typing must not fetch")
	assert.Equal(t, 0, store.SearchCalls())
	assert.Equal(t, urlBefore, snap.URL, "typing must not change the URL")
	assert.Equal(t, "love", snap.Query.Search)

	ctrl.SubmitSearch(ctx)

	snap = ctrl.Snapshot()
	assert.Equal(t, 1, store.SearchCalls())
	assert.Equal(t, "?search=love", snap.URL)
	require.Len(t, snap.Posts, 1)
	assert.Equal(t, "found", snap.Posts[0].Title)
}

func TestSubmitWithEmptySearchFallsBackToListing(t *testing.T) {
	ctrl, store := newTestController(t)
	ctx := context.Background()

	ctrl.Navigate(ctx, nil)
	callsBefore := store.ListCalls()

	ctrl.SubmitSearch(ctx)

	assert.Equal(t, 0, store.SearchCalls())
	assert.Equal(t, callsBefore+1, store.ListCalls())
}

func TestTagRoundTrip(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()

	ctrl.Navigate(ctx, nil)

	ctrl.SetTag(ctx, "fiction")
	snap := ctrl.Snapshot()
	assert.Equal(t, "?tag=fiction", snap.URL)
	require.Len(t, snap.Posts, 1)
	assert.Equal(t, "tagged fiction", snap.Posts[0].Title)

	ctrl.SetTag(ctx, "all")
	snap = ctrl.Snapshot()
	assert.Equal(t, "", snap.URL, "sentinel tag reproduces the default listing")
	require.Len(t, snap.Posts, 1)
	assert.Equal(t, "default", snap.Posts[0].Title)
	assert.Equal(t, 100, snap.Total)
}

func TestStaleListingDiscardedAfterTagSwitch(t *testing.T) {
	// A default-listing fetch is in flight when the tag changes. The tag
	// fetch commits first; the late listing response must be dropped, with
	// no flash of stale data.
	ctrl, store := newTestController(t)
	ctx := context.Background()

	store.listStarted = make(chan struct{})
	store.blockList = make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctrl.Navigate(ctx, nil)
	}()

	<-store.listStarted
	assert.True(t, ctrl.Snapshot().Loading)

	ctrl.SetTag(ctx, "fiction")

	snap := ctrl.Snapshot()
	require.Len(t, snap.Posts, 1)
	assert.Equal(t, "tagged fiction", snap.Posts[0].Title)

	close(store.blockList) // stale listing response arrives late
	wg.Wait()

	snap = ctrl.Snapshot()
	require.Len(t, snap.Posts, 1)
	assert.Equal(t, "tagged fiction", snap.Posts[0].Title, "stale result must not overwrite")
	assert.False(t, snap.Loading, "loading cleared exactly once by the owning fetch")
	assert.Equal(t, "?tag=fiction", snap.URL)
}

func TestRapidTagSwitchKeepsLatest(t *testing.T) {
	// Tag A then tag B in quick succession, with A's response arriving after
	// B's: the committed view must be B's.
	ctrl, store := newTestController(t)
	ctx := context.Background()

	startedA, releaseA := store.gateTag("fiction")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctrl.SetTag(ctx, "fiction")
	}()

	<-startedA
	ctrl.SetTag(ctx, "history")

	snap := ctrl.Snapshot()
	require.Len(t, snap.Posts, 1)
	assert.Equal(t, "tagged history", snap.Posts[0].Title)

	close(releaseA)
	wg.Wait()

	snap = ctrl.Snapshot()
	assert.Equal(t, "tagged history", snap.Posts[0].Title, "view reflects B, never A")
	assert.False(t, snap.Loading)
}

func TestFetchErrorKeepsPreviousView(t *testing.T) {
	ctrl, store := newTestController(t)
	ctx := context.Background()

	ctrl.Navigate(ctx, nil)
	require.Len(t, ctrl.Snapshot().Posts, 1)

	store.mu.Lock()
	store.failList = true
	store.mu.Unlock()

	ctrl.SetSkip(ctx, 10)

	snap := ctrl.Snapshot()
	assert.False(t, snap.Loading, "loading cleared on the failure branch")
	require.Len(t, snap.Posts, 1, "previously displayed records unchanged")
	assert.Equal(t, "default", snap.Posts[0].Title)

	// the controller stays usable after a failed fetch
	store.mu.Lock()
	store.failList = false
	store.mu.Unlock()

	ctrl.SetSkip(ctx, 0)
	assert.Equal(t, "", ctrl.Snapshot().URL)
	assert.Equal(t, 100, ctrl.Snapshot().Total)
}

func TestLazyCommentsFetchedOnce(t *testing.T) {
	ctrl, store := newTestController(t)
	ctx := context.Background()

	ctrl.Navigate(ctx, nil)

	comments, err := ctrl.OpenComments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, 1, store.CommentCalls())

	comments, err = ctrl.OpenComments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, 1, store.CommentCalls(), "second open served from the index")
}

func TestOptimisticCreatePost(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()

	ctrl.Navigate(ctx, nil)
	totalBefore := ctrl.Snapshot().Total

	created := ctrl.CreatePost(ctx, domain.PostDraft{Title: "draft", Body: "text", UserID: 1})

	snap := ctrl.Snapshot()
	assert.Equal(t, totalBefore+1, snap.Total, "total incremented by exactly one")
	require.NotEmpty(t, snap.Posts)
	assert.Equal(t, created.ID, snap.Posts[0].ID, "new post visible without a round trip")
}

func TestFailedRemoteWriteIsNotRolledBack(t *testing.T) {
	// The store is gone entirely; the optimistic change must survive and the
	// failure is only reported.
	store := newFakeStore()
	server := httptest.NewServer(store.handler())
	ctrl := New(apiclient.New(server.URL))
	ctx := context.Background()

	ctrl.Navigate(ctx, nil)
	server.Close()

	assert.True(t, ctrl.DeletePost(ctx, 1), "optimistic delete applies locally")

	ok := ctrl.UpdatePost(ctx, 999, domain.PostDraft{Title: "x", Body: "y", UserID: 1})
	assert.False(t, ok, "update of a missing id is a no-op")

	created := ctrl.CreatePost(ctx, domain.PostDraft{Title: "kept", Body: "text", UserID: 1})

	// give the background write a moment to fail
	assert.Eventually(t, func() bool {
		snap := ctrl.Snapshot()
		for _, p := range snap.Posts {
			if p.ID == created.ID {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond, "optimistic post still present after failed write")
}

func TestNavigateDecodesExternalURL(t *testing.T) {
	ctrl, store := newTestController(t)
	ctx := context.Background()

	params := url.Values{"limit": {"20"}, "skip": {"20"}, "sortBy": {"reactions"}, "sortOrder": {"desc"}}
	ctrl.Navigate(ctx, params)

	snap := ctrl.Snapshot()
	assert.Equal(t, 20, snap.Query.Skip)
	assert.Equal(t, 20, snap.Query.Limit)
	assert.Equal(t, "reactions", snap.Query.SortBy)
	assert.Equal(t, "desc", snap.Query.SortOrder)
	assert.Equal(t, "20", store.LastListQuery()["limit"])
	assert.Equal(t, "reactions", store.LastListQuery()["sortBy"])
	assert.Equal(t, "desc", store.LastListQuery()["order"])

	// the canonical string reflects the decoded state
	decoded, err := url.ParseQuery(strings.TrimPrefix(snap.URL, "?"))
	require.NoError(t, err)
	assert.Equal(t, "20", decoded.Get("limit"))
	assert.Equal(t, "20", decoded.Get("skip"))
	assert.Equal(t, "reactions", decoded.Get("sortBy"))
	assert.Equal(t, "desc", decoded.Get("sortOrder"))
}
