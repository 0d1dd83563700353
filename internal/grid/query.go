package grid

import (
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Query parameters carrying table state between requests.
const (
	ParamSearch       = "search"
	ParamSort         = "sort"
	ParamHide         = "hide"
	ParamSelect       = "sel"
	ParamPage         = "page"
	ParamSize         = "size"
	ParamFilterPrefix = "f."
)

const maxPageSize = 100

// ParseState reads table state from a query string.
//
//	?search=log&sort=status:desc&f.status=<id>&f.status=<id>&hide=description&sel=<id>&page=2&size=20
//
// sort accepts repeated and comma separated "column:dir" entries; entries
// without a valid direction are dropped. page is 1-based on the wire.
func ParseState(q url.Values, defaultPageSize int) *State {
	s := NewState(defaultPageSize)

	s.Search = q.Get(ParamSearch)

	for _, raw := range q[ParamSort] {
		for _, part := range strings.Split(raw, ",") {
			column, dir, ok := strings.Cut(part, ":")
			if !ok || column == "" {
				continue
			}
			switch strings.ToLower(dir) {
			case "asc":
				s.Sorting = append(s.Sorting, SortSpec{Column: column})
			case "desc":
				s.Sorting = append(s.Sorting, SortSpec{Column: column, Desc: true})
			}
		}
	}

	for key, values := range q {
		column, ok := strings.CutPrefix(key, ParamFilterPrefix)
		if !ok || column == "" {
			continue
		}
		var kept []string
		for _, v := range values {
			if v != "" && !slices.Contains(kept, v) {
				kept = append(kept, v)
			}
		}
		if len(kept) > 0 {
			s.Filters[column] = kept
		}
	}

	for _, column := range q[ParamHide] {
		if column != "" {
			s.Hidden[column] = true
		}
	}
	for _, id := range q[ParamSelect] {
		if id != "" {
			s.Selected[id] = true
		}
	}

	if size, err := strconv.Atoi(q.Get(ParamSize)); err == nil && size > 0 {
		s.PageSize = min(size, maxPageSize)
	}
	if page, err := strconv.Atoi(q.Get(ParamPage)); err == nil && page > 1 {
		s.PageIndex = page - 1
	}

	return s
}

// Values encodes the state back into query parameters. Keys are written in
// a stable order so equal states produce equal query strings.
func (s *State) Values() url.Values {
	q := url.Values{}
	if s.Search != "" {
		q.Set(ParamSearch, s.Search)
	}
	for _, spec := range s.Sorting {
		dir := "asc"
		if spec.Desc {
			dir = "desc"
		}
		q.Add(ParamSort, spec.Column+":"+dir)
	}
	for _, column := range sortedKeys(s.Filters) {
		for _, v := range s.Filters[column] {
			q.Add(ParamFilterPrefix+column, v)
		}
	}
	for _, column := range sortedKeys(s.Hidden) {
		q.Add(ParamHide, column)
	}
	for _, id := range sortedKeys(s.Selected) {
		q.Add(ParamSelect, id)
	}
	if s.PageIndex > 0 {
		q.Set(ParamPage, strconv.Itoa(s.PageIndex+1))
	}
	if s.PageSize > 0 && s.PageSize != DefaultPageSize {
		q.Set(ParamSize, strconv.Itoa(s.PageSize))
	}
	return q
}

// Encode returns the state as a query string without the leading "?".
func (s *State) Encode() string {
	return s.Values().Encode()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
