package derpi

// Comment is a single comment on an image. Author is a name and ImageID a
// raw id; resolve them with Client.FetchCommentAuthor and
// Client.FetchCommentImage.
type Comment struct {
	ID       int       `json:"id"`
	Body     string    `json:"body"`
	Deleted  bool      `json:"deleted"`
	Author   string    `json:"author"`
	ImageID  int       `json:"image_id"`
	PostedAt Timestamp `json:"posted_at"`
}

// ImageComments is one page of comments on an image. NextPage and ImageID
// echo the request that produced it; Client.NextCommentsPage replays them.
// Pages past the end come back with an empty Comments slice.
type ImageComments struct {
	Comments []Comment `json:"comments"`
	Total    int       `json:"total"`

	NextPage int `json:"-"`
	ImageID  int `json:"-"`
}
