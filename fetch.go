package derpi

import (
	"context"
	"net/url"
	"strconv"
)

// TagOptions configure FetchTag and FetchTagByID. Nil means page zero with
// the Client's filter.
type TagOptions struct {
	Page     int
	FilterID int
}

// FetchImage retrieves an image by id. Duplicate images are handled
// transparently: the API redirects to the canonical image, so the returned
// id may differ from the requested one.
func (c *Client) FetchImage(ctx context.Context, id int) (*Image, error) {
	var img Image
	if err := c.fetchJSON(ctx, epImageByID, strconv.Itoa(id), nil, &img); err != nil {
		return nil, err
	}
	return &img, nil
}

// FetchUser retrieves a user profile by name.
func (c *Client) FetchUser(ctx context.Context, name string) (*User, error) {
	return c.fetchUserSlug(ctx, Slugify(name))
}

// FetchUserByID retrieves a user profile by numeric id. The API only
// exposes profiles by slug, so this probes for a slug that resolves to the
// requested id; see the package documentation for the cost.
func (c *Client) FetchUserByID(ctx context.Context, id int) (*User, error) {
	return resolveByID(ctx, c.resolutions, kindUser, id, c.fetchUserSlug, func(u *User) int { return u.ID })
}

func (c *Client) fetchUserSlug(ctx context.Context, slug string) (*User, error) {
	var user User
	if err := c.fetchJSON(ctx, epUserBySlug, slug, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FetchTag retrieves a page of tag details by tag name.
func (c *Client) FetchTag(ctx context.Context, name string, opts *TagOptions) (*Tag, error) {
	return c.fetchTagSlug(ctx, Slugify(name), opts)
}

// FetchTagByID retrieves a page of tag details by numeric id, probing for
// the tag's slug the same way FetchUserByID does.
func (c *Client) FetchTagByID(ctx context.Context, id int, opts *TagOptions) (*Tag, error) {
	fetch := func(ctx context.Context, slug string) (*Tag, error) {
		return c.fetchTagSlug(ctx, slug, opts)
	}
	return resolveByID(ctx, c.resolutions, kindTag, id, fetch, func(t *Tag) int { return t.ID })
}

func (c *Client) fetchTagSlug(ctx context.Context, slug string, opts *TagOptions) (*Tag, error) {
	page := 0
	filterID := c.filterID
	if opts != nil {
		page = opts.Page
		if opts.FilterID != 0 {
			filterID = opts.FilterID
		}
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("filter_id", strconv.Itoa(filterID))

	var tag Tag
	if err := c.fetchJSON(ctx, epTagBySlug, slug, query, &tag); err != nil {
		return nil, err
	}
	tag.NextPage = page + 1
	tag.FilterID = filterID
	return &tag, nil
}

// NextTagPage fetches the page after tag, replaying its filter. The result
// is a fresh value; tag is not modified.
func (c *Client) NextTagPage(ctx context.Context, tag *Tag) (*Tag, error) {
	return c.FetchTagByID(ctx, tag.ID, &TagOptions{Page: tag.NextPage, FilterID: tag.FilterID})
}

// Search runs an image search. Option defaults are documented on
// SearchOptions.
func (c *Client) Search(ctx context.Context, opts SearchOptions) (*SearchResults, error) {
	if opts.Query == "" {
		opts.Query = "*"
	}
	if opts.SortField == "" {
		opts.SortField = SortCreationDate
	}
	if opts.SortOrder == "" {
		opts.SortOrder = SortDescending
	}
	if opts.FilterID == 0 {
		opts.FilterID = c.filterID
	}

	query := url.Values{}
	query.Set("q", opts.Query)
	query.Set("sf", string(opts.SortField))
	query.Set("sd", string(opts.SortOrder))
	query.Set("page", strconv.Itoa(opts.Page))
	query.Set("filter_id", strconv.Itoa(opts.FilterID))

	var results SearchResults
	if err := c.fetchJSON(ctx, epSearch, "", query, &results); err != nil {
		return nil, err
	}
	results.Query = opts.Query
	results.SortField = opts.SortField
	results.SortOrder = opts.SortOrder
	results.FilterID = opts.FilterID
	results.NextPage = opts.Page + 1
	return &results, nil
}

// NextSearchPage fetches the page after results, replaying its query, sort
// and filter unchanged. The result is a fresh value; results is not
// modified.
func (c *Client) NextSearchPage(ctx context.Context, results *SearchResults) (*SearchResults, error) {
	return c.Search(ctx, SearchOptions{
		Query:     results.Query,
		SortField: results.SortField,
		SortOrder: results.SortOrder,
		Page:      results.NextPage,
		FilterID:  results.FilterID,
	})
}

// ReverseImageSearch finds images similar to an uploaded picture or a
// remote URL. Argument validation happens before any network traffic.
func (c *Client) ReverseImageSearch(ctx context.Context, opts ReverseImageSearchOptions) (*ReverseImageSearchResults, error) {
	key := opts.Key
	if key == "" {
		key = c.apiKey
	}
	if opts.Image == nil && opts.URL == "" {
		return nil, &InvalidArgumentError{Reason: "reverse image search needs an image or a source url"}
	}
	if opts.Image != nil && key == "" {
		return nil, &InvalidArgumentError{Reason: "reverse image search by upload needs an api key"}
	}

	fuzziness := opts.Fuzziness
	if fuzziness == 0 {
		fuzziness = 0.25
	}
	if fuzziness < 0.2 {
		fuzziness = 0.2
	}
	if fuzziness > 0.5 {
		fuzziness = 0.5
	}
	fuzz := strconv.FormatFloat(fuzziness, 'f', -1, 64)

	var results ReverseImageSearchResults
	if opts.Image != nil {
		fields := map[string]string{
			"key":       key,
			"fuzziness": fuzz,
		}
		if err := c.postForm(ctx, epReverseSearch, fields, "image", opts.Image, &results); err != nil {
			return nil, err
		}
		return &results, nil
	}

	fields := map[string]string{
		"scraper_url": opts.URL,
		"fuzziness":   fuzz,
	}
	if key != "" {
		fields["key"] = key
	}
	if err := c.postForm(ctx, epReverseSearch, fields, "", nil, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// FetchComments retrieves one page of the comments on an image.
func (c *Client) FetchComments(ctx context.Context, imageID, page int) (*ImageComments, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	var comments ImageComments
	if err := c.fetchJSON(ctx, epCommentsByImage, strconv.Itoa(imageID), query, &comments); err != nil {
		return nil, err
	}
	comments.NextPage = page + 1
	comments.ImageID = imageID
	return &comments, nil
}

// NextCommentsPage fetches the page after comments for the same image. The
// result is a fresh value; comments is not modified.
func (c *Client) NextCommentsPage(ctx context.Context, comments *ImageComments) (*ImageComments, error) {
	return c.FetchComments(ctx, comments.ImageID, comments.NextPage)
}
