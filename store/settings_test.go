package store

import (
	"testing"
	"time"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestSettings(t *testing.T) *SettingsStore {
	t.Helper()
	site := NewSettingsStore(persistence.NewMemoryAdapter())
	site.ReplaceSettings(DefaultSettings())
	site.ReplacePolicies(DefaultPolicies())
	return site
}

func TestUpdateContactRetainsOmittedFields(t *testing.T) {
	site := newTestSettings(t)
	before := site.Settings().Contact

	site.UpdateContact(models.ContactUpdate{Email: strPtr("atelier@montclaire.fr")})

	after := site.Settings().Contact
	assert.Equal(t, "atelier@montclaire.fr", after.Email)
	assert.Equal(t, before.Address, after.Address)
	assert.Equal(t, before.Phone, after.Phone)
}

func TestUpdateIgnoresEmptyStrings(t *testing.T) {
	site := newTestSettings(t)
	before := site.Settings().Social

	site.UpdateSocial(models.SocialUpdate{WhatsApp: strPtr(""), Instagram: strPtr("https://instagram.com/montclaire")})

	after := site.Settings().Social
	assert.Equal(t, before.WhatsApp, after.WhatsApp, "empty string must retain the prior value")
	assert.Equal(t, "https://instagram.com/montclaire", after.Instagram)
}

func TestUpdateNewsletter(t *testing.T) {
	site := newTestSettings(t)

	site.UpdateNewsletter(models.NewsletterUpdate{Title: strPtr("Join the Maison")})
	assert.Equal(t, "Join the Maison", site.Settings().Newsletter.Title)
	assert.NotEmpty(t, site.Settings().Newsletter.SuccessMessage)
}

func TestUpdatePolicyContentStampsDate(t *testing.T) {
	site := newTestSettings(t)

	require.True(t, site.UpdatePolicyContent("shipping", "We ship worldwide."))

	policy, ok := site.Policy("shipping")
	require.True(t, ok)
	assert.Equal(t, "We ship worldwide.", policy.Content)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), policy.LastUpdated)
}

func TestUpdatePolicyUnknownIDIsNoOp(t *testing.T) {
	site := newTestSettings(t)
	before := site.Policies()

	assert.False(t, site.UpdatePolicyContent("cookies", "nope"))
	assert.Equal(t, before, site.Policies())
}

func TestTogglePolicyNeverGatesAccess(t *testing.T) {
	site := newTestSettings(t)

	policy, ok := site.Policy("terms")
	require.True(t, ok)
	wasEnabled := policy.Enabled

	require.True(t, site.TogglePolicy("terms"))
	policy, ok = site.Policy("terms")
	require.True(t, ok, "a disabled policy stays readable")
	assert.Equal(t, !wasEnabled, policy.Enabled)
	assert.NotEmpty(t, policy.Content)

	assert.False(t, site.TogglePolicy("unknown"))
}
