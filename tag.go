package derpi

// Tag is a page of tag details. The pagination fields echo the query that
// produced this page; Client.NextTagPage replays them.
type Tag struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Description     string `json:"description"`
	ImageCount      int    `json:"images"`
	Namespace       string `json:"namespace"`
	NameInNamespace string `json:"name_in_namespace"`
	Category        string `json:"category"`
	SpoilerImage    URL    `json:"spoiler_image_uri"`

	// ImpliedTagIDs are the raw ids of tags implied by this one; resolve
	// them with Client.ImpliedTags.
	ImpliedTagIDs []int `json:"implied_tag_ids"`
	// AliasedToID is the id of the canonical tag when this tag is an
	// alias, nil otherwise. Resolve it with Client.FetchAliasedTag.
	AliasedToID *int `json:"aliased_to_id"`

	NextPage int `json:"-"`
	FilterID int `json:"-"`
}
