package derpi

import (
	"net/http"
	"net/url"
	"strings"
)

// endpoint names one logical operation's URL shape. The path holds at most
// one {} placeholder, filled positionally by build.
type endpoint struct {
	method string
	path   string
}

var (
	epUserBySlug      = endpoint{http.MethodGet, "/profiles/{}.json"}
	epTagBySlug       = endpoint{http.MethodGet, "/tags/{}.json"}
	epImageByID       = endpoint{http.MethodGet, "/images/{}.json"}
	epCommentsByImage = endpoint{http.MethodGet, "/images/{}/comments.json"}
	epSearch          = endpoint{http.MethodGet, "/search.json"}
	epReverseSearch   = endpoint{http.MethodPost, "/search/reverse.json"}
)

// build substitutes param into the first placeholder and attaches the query.
// Parameters are forwarded as-is; a malformed identifier surfaces as an HTTP
// error from the API, not a client-side validation failure.
func (e endpoint) build(param string, query url.Values) *url.URL {
	rel := &url.URL{Path: strings.Replace(e.path, "{}", param, 1)}
	if len(query) > 0 {
		rel.RawQuery = query.Encode()
	}
	return rel
}
