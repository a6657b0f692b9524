package models

// ═══════════════════════════════════════════════════════════
// Site Settings
// ═══════════════════════════════════════════════════════════

type ContactInfo struct {
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type SocialLinks struct {
	Instagram string `json:"instagram"`
	Pinterest string `json:"pinterest"`
	WhatsApp  string `json:"whatsapp"`
	TikTok    string `json:"tiktok"`
}

type NewsletterSettings struct {
	Title          string `json:"title"`
	SuccessMessage string `json:"success_message"`
}

type SiteSettings struct {
	Contact    ContactInfo        `json:"contact"`
	Social     SocialLinks        `json:"social"`
	Newsletter NewsletterSettings `json:"newsletter"`
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// Partial-update payloads: nil (or empty) fields retain the prior value.

type ContactUpdate struct {
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

type SocialUpdate struct {
	Instagram *string `json:"instagram"`
	Pinterest *string `json:"pinterest"`
	WhatsApp  *string `json:"whatsapp"`
	TikTok    *string `json:"tiktok"`
}

type NewsletterUpdate struct {
	Title          *string `json:"title"`
	SuccessMessage *string `json:"success_message"`
}

type UpdateSettingsRequest struct {
	Contact    *ContactUpdate    `json:"contact"`
	Social     *SocialUpdate     `json:"social"`
	Newsletter *NewsletterUpdate `json:"newsletter"`
}
