package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerme/offerme-backend/internal/models"
)

func TestTemplateLedger(t *testing.T) {
	store := NewMemoryStore()

	received, err := store.HasReceivedTemplate("+97455555555")
	require.NoError(t, err)
	assert.False(t, received)

	require.NoError(t, store.LogTemplateSent("+97455555555"))

	received, err = store.HasReceivedTemplate("+97455555555")
	require.NoError(t, err)
	assert.True(t, received)

	// Upsert semantics: a second write is a no-op beyond the timestamp
	require.NoError(t, store.LogTemplateSent("+97455555555"))
	count, err := store.CountTemplateLogs()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestProfileMissingByDefault(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetProfile()
	assert.Error(t, err)
}

func TestProfileSaveReplacesWithoutMerge(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.SaveProfile(&models.BotProfile{
		CompanyName: "Offer ME",
		Description: "first",
	}))
	require.NoError(t, store.SaveProfile(&models.BotProfile{
		CompanyName: "Offer ME 2",
	}))

	profile, err := store.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, "Offer ME 2", profile.CompanyName)
	assert.Equal(t, "", profile.Description)
}

func TestProfileReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveProfile(&models.BotProfile{CompanyName: "Offer ME"}))

	profile, err := store.GetProfile()
	require.NoError(t, err)
	profile.CompanyName = "mutated"

	fresh, err := store.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, "Offer ME", fresh.CompanyName)
}

func TestLeadsSince(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.CreateLead(&models.Lead{Sender: "+97455555555", Message: "رقمي 5555"})
	require.NoError(t, err)
	_, err = store.CreateLead(&models.Lead{Sender: "+97466666666", Message: "اسمي سارة"})
	require.NoError(t, err)

	leads, err := store.GetLeadsSince(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "+97455555555", leads[0].Sender)

	leads, err = store.GetLeadsSince(time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, leads)

	count, err := store.CountLeads()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
