package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerme/offerme-backend/internal/models"
	"github.com/offerme/offerme-backend/internal/storage"
)

type sentEmail struct {
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentEmail
}

func (f *fakeMailer) Send(subject string, body string) error {
	f.sent = append(f.sent, sentEmail{subject: subject, body: body})
	return nil
}

func TestDigestSkipsWhenNoLeads(t *testing.T) {
	mailer := &fakeMailer{}
	job := NewDigestJob(storage.NewMemoryStore(), mailer)

	job.sendLeadDigest()

	assert.Empty(t, mailer.sent)
}

func TestDigestSummarizesRecentLeads(t *testing.T) {
	store := storage.NewMemoryStore()
	mailer := &fakeMailer{}
	job := NewDigestJob(store, mailer)

	_, err := store.CreateLead(&models.Lead{Sender: "+97455555555", Message: "رقمي 5555"})
	require.NoError(t, err)
	_, err = store.CreateLead(&models.Lead{Sender: "+97466666666", Message: "اسمي سارة"})
	require.NoError(t, err)

	job.sendLeadDigest()

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, digestSubject, mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "+97455555555")
	assert.Contains(t, mailer.sent[0].body, "اسمي سارة")
}
