package derpi

import "strings"

// Image is a single image as returned by the API.
type Image struct {
	ID        int `json:"id"`
	Score     int `json:"score"`
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
	Favorites int `json:"faves"`

	// TagString holds the tags as one comma-separated string; use TagNames
	// or Client.ImageTags for structured access.
	TagString string `json:"tags"`
	// TagIDs are the raw tag ids; resolve them with Client.ImageTags.
	TagIDs []int `json:"tag_ids"`

	Width          int     `json:"width"`
	Height         int     `json:"height"`
	AspectRatio    float64 `json:"aspect_ratio"`
	FileName       string  `json:"file_name"`
	Description    string  `json:"description"`
	OriginalFormat string  `json:"original_format"`
	MIMEType       string  `json:"mime_type"`
	SHA512         string  `json:"sha512_hash"`
	OriginalSHA512 string  `json:"orig_sha512_hash"`
	SourceURL      URL     `json:"source_url"`

	Representations ImageRepresentations `json:"representations"`

	Rendered  bool `json:"is_rendered"`
	Optimized bool `json:"is_optimized"`

	CreatedAt   Timestamp `json:"created_at"`
	UpdatedAt   Timestamp `json:"updated_at"`
	FirstSeenAt Timestamp `json:"first_seen_at"`

	// UploaderName is set even for guest uploads ("Background Pony"), which
	// is also a valid login name. UploaderID disambiguates: it is nil for
	// guests.
	UploaderName string `json:"uploader"`
	UploaderID   *int   `json:"uploader_id"`
}

// TagNames splits TagString into individual tag names. Using this instead of
// resolving the tag collection saves one HTTP request per tag.
func (img *Image) TagNames() []string {
	if img.TagString == "" {
		return nil
	}
	return strings.Split(img.TagString, ", ")
}

// ArtistName returns the name under the first artist: tag, or "" when the
// image has no artist.
func (img *Image) ArtistName() string {
	for _, tag := range img.TagNames() {
		if name, ok := strings.CutPrefix(tag, "artist:"); ok {
			return name
		}
	}
	return ""
}

// ImageRepresentations holds the URLs of the rendered variants of an image.
type ImageRepresentations struct {
	ThumbnailTiny  URL `json:"thumb_tiny"`
	ThumbnailSmall URL `json:"thumb_small"`
	Thumbnail      URL `json:"thumb"`
	Small          URL `json:"small"`
	Medium         URL `json:"medium"`
	Large          URL `json:"large"`
	Tall           URL `json:"tall"`
	Full           URL `json:"full"`
}
