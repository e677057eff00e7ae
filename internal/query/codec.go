package query

import (
	"net/url"
	"strconv"
)

// The codec maps State to and from the address-bar query string. Encode emits
// only non-default fields so the reset state produces an empty string; Decode
// fills defaults for absent or unparsable params. Decode(Encode(s)) == s for
// every reachable state.

const (
	paramSkip      = "skip"
	paramLimit     = "limit"
	paramSearch    = "search"
	paramSortBy    = "sortBy"
	paramSortOrder = "sortOrder"
	paramTag       = "tag"
)

func Encode(s State) url.Values {
	params := url.Values{}
	if s.Skip != 0 {
		params.Set(paramSkip, strconv.Itoa(s.Skip))
	}
	if s.Limit != DefaultLimit {
		params.Set(paramLimit, strconv.Itoa(s.Limit))
	}
	if s.Search != "" {
		params.Set(paramSearch, s.Search)
	}
	if s.SortKey != SortNone {
		params.Set(paramSortBy, string(s.SortKey))
	}
	if s.SortOrder != OrderAsc {
		params.Set(paramSortOrder, string(s.SortOrder))
	}
	if s.Tag != "" {
		params.Set(paramTag, s.Tag)
	}
	return params
}

// QueryString renders the encoded state with a leading "?", or the empty
// string for the reset state.
func QueryString(s State) string {
	encoded := Encode(s).Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}

func Decode(params url.Values) State {
	s := Default()
	s.Skip = parseNonNegative(params.Get(paramSkip), 0)
	s.Limit = parsePositive(params.Get(paramLimit), DefaultLimit)
	s.Skip = (s.Skip / s.Limit) * s.Limit
	s.Search = params.Get(paramSearch)
	s.SortKey = normalizeSortKey(SortKey(params.Get(paramSortBy)))
	if SortOrder(params.Get(paramSortOrder)) == OrderDesc {
		s.SortOrder = OrderDesc
	}
	s.Tag = normalizeTag(params.Get(paramTag))
	return s
}

func parseNonNegative(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
