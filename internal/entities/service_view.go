package entities

// ServiceView is the decorated public listing of a service: a URL slug
// derived from the Vietnamese name plus fallback icon/image/features for
// rows created before those fields were curated.
type ServiceView struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	ImageURL     string   `json:"image_url"`
	Features     []string `json:"features"`
	DisplayOrder int      `json:"display_order"`
}
