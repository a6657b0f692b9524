package models

// PolicyPage is one legal page (shipping, returns, privacy, ...). Enabled only
// gates visibility in the footer navigation; it never gates access.
type PolicyPage struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	LastUpdated string  `json:"last_updated"` // YYYY-MM-DD, stamped on every content edit
	Enabled     bool    `json:"enabled"`
	SEO         SEOMeta `json:"seo"`
}

type UpdatePolicyRequest struct {
	Content string `json:"content" binding:"required"`
}
