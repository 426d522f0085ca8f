package derpi

import (
	"context"

	"github.com/BytewaveMLP/go-derpi/collection"
)

// TagCollection lazily resolves tag ids into Tag values through the Client
// that produced it, fetching each tag at most once.
type TagCollection = collection.Lazy[int, *Tag]

// ImageTags returns a lazy collection over the tags on img. No requests
// happen until the collection is consumed.
func (c *Client) ImageTags(img *Image) *TagCollection {
	return c.tagCollection(img.TagIDs)
}

// ImpliedTags returns a lazy collection over the tags implied by tag.
func (c *Client) ImpliedTags(tag *Tag) *TagCollection {
	return c.tagCollection(tag.ImpliedTagIDs)
}

func (c *Client) tagCollection(ids []int) *TagCollection {
	return collection.New(ids, func(ctx context.Context, id int) (*Tag, error) {
		return c.FetchTagByID(ctx, id, nil)
	})
}

// FetchUploader resolves the user that uploaded img. Guest uploads report
// the name "Background Pony" with no uploader id; since that is also a valid
// login name, only a nil UploaderID identifies a guest. Guests yield
// (nil, nil).
func (c *Client) FetchUploader(ctx context.Context, img *Image) (*User, error) {
	if img.UploaderID == nil {
		return nil, nil
	}
	return c.FetchUserByID(ctx, *img.UploaderID)
}

// FetchArtist resolves the artist tag on img, or (nil, nil) when the image
// has no artist: tag.
func (c *Client) FetchArtist(ctx context.Context, img *Image) (*Tag, error) {
	name := img.ArtistName()
	if name == "" {
		return nil, nil
	}
	return c.FetchTag(ctx, name, nil)
}

// FetchImageComments retrieves one page of the comments on img.
func (c *Client) FetchImageComments(ctx context.Context, img *Image, page int) (*ImageComments, error) {
	return c.FetchComments(ctx, img.ID, page)
}

// FetchAliasedTag resolves the canonical tag that tag is an alias of, or
// (nil, nil) when tag is not an alias.
func (c *Client) FetchAliasedTag(ctx context.Context, tag *Tag) (*Tag, error) {
	if tag.AliasedToID == nil {
		return nil, nil
	}
	return c.FetchTagByID(ctx, *tag.AliasedToID, nil)
}

// FetchLinkUser resolves the user side of a profile link.
func (c *Client) FetchLinkUser(ctx context.Context, link Link) (*User, error) {
	return c.FetchUserByID(ctx, link.UserID)
}

// FetchLinkTag resolves the tag side of a profile link.
func (c *Client) FetchLinkTag(ctx context.Context, link Link) (*Tag, error) {
	return c.FetchTagByID(ctx, link.TagID, nil)
}

// FetchCommentAuthor resolves the author of comment by name.
func (c *Client) FetchCommentAuthor(ctx context.Context, comment Comment) (*User, error) {
	return c.FetchUser(ctx, comment.Author)
}

// FetchCommentImage resolves the image comment was posted on.
func (c *Client) FetchCommentImage(ctx context.Context, comment Comment) (*Image, error) {
	return c.FetchImage(ctx, comment.ImageID)
}
