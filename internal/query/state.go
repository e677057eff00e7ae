package query

// Package query holds the canonical view state driving both the outbound
// fetches and the address-bar query string.

const DefaultLimit = 10

type SortKey string

const (
	SortNone      SortKey = ""
	SortID        SortKey = "id"
	SortTitle     SortKey = "title"
	SortReactions SortKey = "reactions"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// State is the single source of truth for pagination, search, sort and the
// active tag filter. Zero Skip with Limit=DefaultLimit and everything else
// empty is the "reset" state and encodes to an empty query string.
type State struct {
	Skip      int
	Limit     int
	Search    string
	SortKey   SortKey
	SortOrder SortOrder
	Tag       string
}

func Default() State {
	return State{Limit: DefaultLimit, SortOrder: OrderAsc}
}

// TagActive reports whether a concrete tag filter is in effect. The empty
// string and the "all" sentinel both mean "no tag filter".
func (s *State) TagActive() bool {
	return s.Tag != ""
}

// Every mutator reports whether the mutation is fetch-triggering. Changing
// skip, limit, sort or tag refetches immediately; changing the search text
// does not - a search only runs on an explicit submit.

func (s *State) SetSkip(skip int) bool {
	if skip < 0 {
		skip = 0
	}
	s.Skip = skip
	return true
}

// SetLimit clamps to a positive page size and realigns Skip down to a
// multiple of the new limit, keeping Skip a whole-page offset.
func (s *State) SetLimit(limit int) bool {
	if limit < 1 {
		limit = DefaultLimit
	}
	s.Limit = limit
	s.Skip = (s.Skip / limit) * limit
	return true
}

func (s *State) SetSearch(text string) bool {
	s.Search = text
	return false
}

func (s *State) SetSort(key SortKey, order SortOrder) bool {
	s.SortKey = normalizeSortKey(key)
	if order != OrderDesc {
		order = OrderAsc
	}
	s.SortOrder = order
	return true
}

func (s *State) SetTag(tag string) bool {
	s.Tag = normalizeTag(tag)
	return true
}

func normalizeSortKey(key SortKey) SortKey {
	switch key {
	case SortID, SortTitle, SortReactions:
		return key
	default:
		// "none" and anything unknown collapse to no sort
		return SortNone
	}
}

func normalizeTag(tag string) string {
	if tag == "all" {
		return ""
	}
	return tag
}
