package store

import (
	"sync"
	"time"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/persistence"
)

// SettingsStore owns the site settings and the legal policy pages. Partial
// updates retain prior values for omitted or empty fields — never hardcoded
// fallbacks.
type SettingsStore struct {
	mu       sync.RWMutex
	settings models.SiteSettings
	policies []models.PolicyPage

	settingsWriter *snapshotWriter
	policiesWriter *snapshotWriter
}

func NewSettingsStore(adapter persistence.Adapter) *SettingsStore {
	return &SettingsStore{
		settingsWriter: newSnapshotWriter(adapter, persistence.KeySettings),
		policiesWriter: newSnapshotWriter(adapter, persistence.KeyPolicies),
	}
}

func (s *SettingsStore) Settings() models.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *SettingsStore) UpdateContact(u models.ContactUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	applyString(&s.settings.Contact.Email, u.Email)
	applyString(&s.settings.Contact.Address, u.Address)
	applyString(&s.settings.Contact.Phone, u.Phone)
	s.persistSettingsLocked()
}

func (s *SettingsStore) UpdateSocial(u models.SocialUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	applyString(&s.settings.Social.Instagram, u.Instagram)
	applyString(&s.settings.Social.Pinterest, u.Pinterest)
	applyString(&s.settings.Social.WhatsApp, u.WhatsApp)
	applyString(&s.settings.Social.TikTok, u.TikTok)
	s.persistSettingsLocked()
}

func (s *SettingsStore) UpdateNewsletter(u models.NewsletterUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	applyString(&s.settings.Newsletter.Title, u.Title)
	applyString(&s.settings.Newsletter.SuccessMessage, u.SuccessMessage)
	s.persistSettingsLocked()
}

// applyString overwrites dst only when the update actually supplies a value.
func applyString(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

// ═══════════════════════════════════════════════════════════
// Policy Pages
// ═══════════════════════════════════════════════════════════

// Policies returns a copy of all pages, enabled or not; the flag only drives
// footer visibility.
func (s *SettingsStore) Policies() []models.PolicyPage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PolicyPage, len(s.policies))
	copy(out, s.policies)
	return out
}

func (s *SettingsStore) Policy(id string) (models.PolicyPage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.policies {
		if p.ID == id {
			return p, true
		}
	}
	return models.PolicyPage{}, false
}

// UpdatePolicyContent replaces the body text and stamps LastUpdated with the
// current date. Unmatched IDs are a no-op; the return says whether it landed.
func (s *SettingsStore) UpdatePolicyContent(id, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.policies {
		if s.policies[i].ID == id {
			s.policies[i].Content = content
			s.policies[i].LastUpdated = time.Now().UTC().Format("2006-01-02")
			s.persistPoliciesLocked()
			return true
		}
	}
	return false
}

// TogglePolicy flips footer visibility. Purely cosmetic.
func (s *SettingsStore) TogglePolicy(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.policies {
		if s.policies[i].ID == id {
			s.policies[i].Enabled = !s.policies[i].Enabled
			s.persistPoliciesLocked()
			return true
		}
	}
	return false
}

// ReplaceSettings and ReplacePolicies swap whole snapshots (boot, import).
func (s *SettingsStore) ReplaceSettings(settings models.SiteSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.persistSettingsLocked()
}

func (s *SettingsStore) ReplacePolicies(policies []models.PolicyPage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policies = make([]models.PolicyPage, len(policies))
	copy(s.policies, policies)
	s.persistPoliciesLocked()
}

func (s *SettingsStore) persistSettingsLocked() {
	s.settingsWriter.write(s.settings)
}

func (s *SettingsStore) persistPoliciesLocked() {
	snapshot := make([]models.PolicyPage, len(s.policies))
	copy(snapshot, s.policies)
	s.policiesWriter.write(snapshot)
}
