package derpi

// User is a user profile.
type User struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Role        string    `json:"role"`
	Description string    `json:"description"`
	AvatarURL   URL       `json:"avatar_url"`
	CreatedAt   Timestamp `json:"created_at"`
	Comments    int       `json:"comment_count"`
	Uploads     int       `json:"uploads_count"`
	Posts       int       `json:"post_count"`
	Topics      int       `json:"topic_count"`
	Links       []Link    `json:"links"`
	Awards      []Award   `json:"awards"`
}

// Award is a badge on a user's profile.
type Award struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	// Label is empty when the award carries no description.
	Label     string    `json:"label"`
	ImageURL  URL       `json:"image_url"`
	AwardedOn Timestamp `json:"awarded_on"`
}

// Link is a verified association between a user and a tag (usually an
// artist tag). It holds raw ids; resolve them with Client.FetchLinkUser and
// Client.FetchLinkTag.
type Link struct {
	UserID    int       `json:"user_id"`
	TagID     int       `json:"tag_id"`
	State     string    `json:"state"`
	CreatedAt Timestamp `json:"created_at"`
}
