package met

import (
	"strconv"
	"strings"

	"github.com/matzehuels/metcollection/pkg/integrations"
)

// Search filter keys understood by the collection API.
const (
	KeyQuery           = "q"
	KeyIsHighlight     = "isHighlight"
	KeyIsOnView        = "isOnView"
	KeyHasImages       = "hasImages"
	KeyTitle           = "title"
	KeyTags            = "tags"
	KeyArtistOrCulture = "artistOrCulture"
	KeyDepartmentID    = "departmentId"
	KeyDateBegin       = "dateBegin"
	KeyDateEnd         = "dateEnd"
	KeyMedium          = "medium"
	KeyGeoLocation     = "geoLocation"
)

// listSeparator joins multi-valued filters such as medium and geoLocation.
const listSeparator = "|"

// Kind identifies the type held by a [Value].
type Kind int

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindString
	KindStrings
)

// Value is a search filter value: absent, bool, int, string or []string.
// The zero Value is absent and is never sent.
type Value struct {
	kind Kind
	b    bool
	i    int
	s    string
	ss   []string
}

// None is the absent value. Filters holding None are omitted from requests.
var None = Value{}

// Bool returns a boolean filter value, sent as "true" or "false".
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int returns an integer filter value, sent in decimal.
func Int(v int) Value { return Value{kind: KindInt, i: v} }

// String returns a string filter value, sent as-is.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Strings returns a multi-valued filter, sent joined with "|".
// The slice is copied.
func Strings(v ...string) Value {
	return Value{kind: KindStrings, ss: append([]string{}, v...)}
}

// OptionalBool returns None for nil, otherwise Bool(*v).
func OptionalBool(v *bool) Value {
	if v == nil {
		return None
	}
	return Bool(*v)
}

// OptionalInt returns None for nil, otherwise Int(*v).
func OptionalInt(v *int) Value {
	if v == nil {
		return None
	}
	return Int(*v)
}

// Kind returns the value's type tag.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether the value is absent.
func (v Value) IsNone() bool { return v.kind == KindNone }

// Encode returns the wire form of v. ok is false for absent values.
func (v Value) Encode() (s string, ok bool) {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b), true
	case KindInt:
		return strconv.Itoa(v.i), true
	case KindString:
		return v.s, true
	case KindStrings:
		return strings.Join(v.ss, listSeparator), true
	default:
		return "", false
	}
}

// Filter is one named search option.
type Filter struct {
	Key   string
	Value Value
}

// SearchOptions is an ordered set of search filters. Filters are sent in the
// order they were first set; setting a key again replaces its value in place.
//
// The zero value is ready to use, and a nil *SearchOptions means no filters.
// SearchOptions is not safe for concurrent mutation.
type SearchOptions struct {
	filters []Filter
}

// NewSearchOptions returns an empty option set.
func NewSearchOptions() *SearchOptions {
	return &SearchOptions{}
}

// Set assigns value to key. Use this for filters without a named setter.
// Assigning [None] keeps the key's position but omits it from requests.
func (o *SearchOptions) Set(key string, value Value) *SearchOptions {
	for i := range o.filters {
		if o.filters[i].Key == key {
			o.filters[i].Value = value
			return o
		}
	}
	o.filters = append(o.filters, Filter{Key: key, Value: value})
	return o
}

// Get returns the value stored for key, or [None].
func (o *SearchOptions) Get(key string) Value {
	if o == nil {
		return None
	}
	for _, f := range o.filters {
		if f.Key == key {
			return f.Value
		}
	}
	return None
}

// Filters returns a copy of the filters in insertion order, absent ones included.
func (o *SearchOptions) Filters() []Filter {
	if o == nil {
		return nil
	}
	return append([]Filter(nil), o.filters...)
}

// Highlight limits results to curator-flagged highlights when true.
func (o *SearchOptions) Highlight(v bool) *SearchOptions { return o.Set(KeyIsHighlight, Bool(v)) }

// OnView limits results to objects currently in a gallery when true.
func (o *SearchOptions) OnView(v bool) *SearchOptions { return o.Set(KeyIsOnView, Bool(v)) }

// HasImages limits results to objects with images when true.
func (o *SearchOptions) HasImages(v bool) *SearchOptions { return o.Set(KeyHasImages, Bool(v)) }

// Title matches the query against titles only.
func (o *SearchOptions) Title(v bool) *SearchOptions { return o.Set(KeyTitle, Bool(v)) }

// Tags matches the query against subject tags only.
func (o *SearchOptions) Tags(v bool) *SearchOptions { return o.Set(KeyTags, Bool(v)) }

// ArtistOrCulture matches the query against artist name or culture only.
func (o *SearchOptions) ArtistOrCulture(v bool) *SearchOptions {
	return o.Set(KeyArtistOrCulture, Bool(v))
}

// Department limits results to one department.
func (o *SearchOptions) Department(id int) *SearchOptions { return o.Set(KeyDepartmentID, Int(id)) }

// DateBegin sets the lower bound of the object date range. The API ignores
// it unless DateEnd is also set.
func (o *SearchOptions) DateBegin(year int) *SearchOptions { return o.Set(KeyDateBegin, Int(year)) }

// DateEnd sets the upper bound of the object date range.
func (o *SearchOptions) DateEnd(year int) *SearchOptions { return o.Set(KeyDateEnd, Int(year)) }

// Medium filters by object type or material. With one argument the value is
// sent as a string; with several they are joined with "|".
func (o *SearchOptions) Medium(media ...string) *SearchOptions {
	return o.Set(KeyMedium, textValue(media))
}

// GeoLocation filters by place of origin, joined like [SearchOptions.Medium].
func (o *SearchOptions) GeoLocation(places ...string) *SearchOptions {
	return o.Set(KeyGeoLocation, textValue(places))
}

func textValue(v []string) Value {
	if len(v) == 1 {
		return String(v[0])
	}
	return Strings(v...)
}

// params returns the query parameters for a search: q first, then every
// present filter in insertion order. A "q" filter overrides the query.
func (o *SearchOptions) params(query string) []integrations.Param {
	params := []integrations.Param{{Key: KeyQuery, Value: query}}
	if o == nil {
		return params
	}
	for _, f := range o.filters {
		s, ok := f.Value.Encode()
		switch {
		case !ok:
		case f.Key == KeyQuery:
			params[0].Value = s
		default:
			params = append(params, integrations.Param{Key: f.Key, Value: s})
		}
	}
	return params
}

// EncodeSearch returns the form-encoded query string sent for a search.
func EncodeSearch(query string, opts *SearchOptions) string {
	return integrations.EncodeQuery(opts.params(query))
}
