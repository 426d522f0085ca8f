package derpi

import "io"

// SortField selects the field search results are ordered by.
type SortField string

const (
	SortCreationDate SortField = "created_at"
	SortUpdateDate   SortField = "updated_at"
	SortFirstSeen    SortField = "first_seen_at"
	SortScore        SortField = "score"
	SortWilsonScore  SortField = "wilson"
	SortRelevance    SortField = "relevance"
	SortWidth        SortField = "width"
	SortHeight       SortField = "height"
	SortComments     SortField = "comments"
	SortRandom       SortField = "random"
)

// SortOrder selects the direction search results are ordered in.
type SortOrder string

const (
	SortDescending SortOrder = "desc"
	SortAscending  SortOrder = "asc"
)

// Built-in site filters usable as FilterID values.
const (
	FilterEverything       = 56027
	FilterEighteenPlusR34  = 37432
	FilterEighteenPlusDark = 37429
	FilterMaximumSpoilers  = 37430
	FilterLegacyDefault    = 37431
	FilterDefault          = 100073
)

// SearchOptions configure a Search call. Zero values fall back to a
// match-all query sorted by creation date, newest first, on page zero, with
// the Client's filter.
type SearchOptions struct {
	Query     string
	SortField SortField
	SortOrder SortOrder
	Page      int
	FilterID  int
}

// SearchResults is one page of image search results together with the query
// state that produced it. Client.NextSearchPage replays that state with the
// page incremented.
type SearchResults struct {
	Images []Image `json:"search"`
	Total  int     `json:"total"`

	Query     string    `json:"-"`
	SortField SortField `json:"-"`
	SortOrder SortOrder `json:"-"`
	FilterID  int       `json:"-"`
	NextPage  int       `json:"-"`
}

// ReverseImageSearchOptions configure a ReverseImageSearch call. Exactly one
// of Image and URL must be set; Image uploads additionally require an API
// key (Key here or Options.APIKey on the Client).
type ReverseImageSearchOptions struct {
	// Image is the picture to search for, uploaded as multipart form data.
	Image io.Reader
	// URL is a remote picture for the site to scrape instead of an upload.
	URL string
	// Fuzziness is the match tolerance, clamped into [0.2, 0.5]. Zero
	// means 0.25.
	Fuzziness float64
	// Key overrides the Client's API key for this call.
	Key string
}

// ReverseImageSearchResults lists the images matching a reverse search.
type ReverseImageSearchResults struct {
	Images []Image `json:"search"`
	Total  int     `json:"total"`
}
