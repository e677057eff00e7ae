package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeOmitsDefaults(t *testing.T) {
	t.Run("reset state encodes to empty string", func(t *testing.T) {
		assert.Equal(t, "", QueryString(Default()))
	})

	t.Run("only limit changed", func(t *testing.T) {
		s := Default()
		s.SetLimit(20)
		assert.Equal(t, "?limit=20", QueryString(s))
	})

	t.Run("all fields set", func(t *testing.T) {
		s := Default()
		s.SetSkip(20)
		s.SetLimit(20)
		s.SetSearch("his")
		s.SetSort(SortReactions, OrderDesc)
		s.SetTag("history")

		params := Encode(s)
		assert.Equal(t, "20", params.Get("skip"))
		assert.Equal(t, "20", params.Get("limit"))
		assert.Equal(t, "his", params.Get("search"))
		assert.Equal(t, "reactions", params.Get("sortBy"))
		assert.Equal(t, "desc", params.Get("sortOrder"))
		assert.Equal(t, "history", params.Get("tag"))
	})
}

func TestDecodeDefaults(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want State
	}{
		{"empty", "", Default()},
		{"nonsense numbers", "skip=abc&limit=xyz", Default()},
		{"negative values", "skip=-10&limit=-1", Default()},
		{"partial", "limit=20", State{Limit: 20, SortOrder: OrderAsc}},
		{"sort only", "sortBy=title&sortOrder=desc", State{Limit: DefaultLimit, SortKey: SortTitle, SortOrder: OrderDesc}},
		{"sentinel tag", "tag=all", Default()},
		{"sentinel sort", "sortBy=none", Default()},
		{"skip realigned to page boundary", "skip=25&limit=20", State{Skip: 20, Limit: 20, SortOrder: OrderAsc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := url.ParseQuery(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Decode(params))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// decode(encode(s)) must reproduce s for every reachable state.
	states := []State{
		Default(),
		{Skip: 20, Limit: 20, SortOrder: OrderAsc},
		{Limit: DefaultLimit, Search: "love", SortOrder: OrderAsc},
		{Limit: DefaultLimit, SortKey: SortID, SortOrder: OrderDesc},
		{Limit: 30, SortKey: SortReactions, SortOrder: OrderAsc, Tag: "fiction"},
		{Skip: 50, Limit: DefaultLimit, Search: "war", SortKey: SortTitle, SortOrder: OrderDesc, Tag: "history"},
	}

	for _, s := range states {
		assert.Equal(t, s, Decode(Encode(s)), "state %+v did not survive the round trip", s)
	}
}
