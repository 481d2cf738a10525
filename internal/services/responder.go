package services

import (
	"context"
	"fmt"
	"log"

	"github.com/offerme/offerme-backend/internal/models"
	"github.com/offerme/offerme-backend/internal/storage"
)

// FallbackReply is sent to the customer when the completion API fails
const FallbackReply = "حدث خطأ في الرد الذكي."

// escalationSubject is the subject line of lead notification emails
const escalationSubject = "عميل محتمل من واتساب"

// MessageSender delivers outbound WhatsApp messages
type MessageSender interface {
	SendWhatsAppMessage(to string, body string) error
	SendWhatsAppTemplate(to string, contentSID string) error
}

// Completer generates a reply from a system instruction and a user context
type Completer interface {
	Complete(ctx context.Context, system string, user string) (string, error)
}

// Mailer sends a notification email to the fixed recipient
type Mailer interface {
	Send(subject string, body string) error
}

// Responder routes each inbound WhatsApp message: first contact gets the
// approved opening template, everyone else gets a completion-API reply, with
// lead escalation by email on the side.
type Responder struct {
	store              storage.Store
	sessions           *SessionStore
	messenger          MessageSender
	completer          Completer
	mailer             Mailer
	detector           *EscalationDetector
	templateContentSID string
}

// NewResponder creates a new inbound message responder
func NewResponder(
	store storage.Store,
	sessions *SessionStore,
	messenger MessageSender,
	completer Completer,
	mailer Mailer,
	detector *EscalationDetector,
	templateContentSID string,
) *Responder {
	return &Responder{
		store:              store,
		sessions:           sessions,
		messenger:          messenger,
		completer:          completer,
		mailer:             mailer,
		detector:           detector,
		templateContentSID: templateContentSID,
	}
}

// ProcessMessage handles one inbound message from a sender and returns the
// reply that was sent back, empty on the template branch. Gateway failures
// are logged and absorbed; only storage failures propagate.
func (r *Responder) ProcessMessage(ctx context.Context, sender string, body string) (string, error) {
	received, err := r.store.HasReceivedTemplate(sender)
	if err != nil {
		return "", fmt.Errorf("failed to check template ledger for %s: %w", sender, err)
	}

	// First contact: send the opening template and stop. No completion call
	// on this turn. The ledger is written even if the send fails, so the
	// sender is never greeted twice.
	if !received {
		if err := r.messenger.SendWhatsAppTemplate(sender, r.templateContentSID); err != nil {
			log.Printf("❌ Failed to send opening template to %s: %v", sender, err)
		}
		if err := r.store.LogTemplateSent(sender); err != nil {
			return "", fmt.Errorf("failed to log template send for %s: %w", sender, err)
		}
		log.Printf("📤 Opening template sent to %s", sender)
		return "", nil
	}

	// Flatten prior turns and the new message into a single user context
	fullContext := r.sessions.Context(sender) + "\n" + body

	reply, err := r.completer.Complete(ctx, r.systemPrompt(), fullContext)
	if err != nil {
		log.Printf("❌ Completion request failed for %s: %v", sender, err)
		reply = FallbackReply
	} else {
		r.sessions.Append(sender, body, reply)
	}

	// Escalation looks at the raw inbound message, not the reply, and fires
	// regardless of the completion outcome. Best effort: a failure here must
	// not abort the reply path.
	if r.detector.Match(body) {
		r.escalate(sender, body, reply)
	}

	if err := r.messenger.SendWhatsAppMessage(sender, reply); err != nil {
		log.Printf("❌ Failed to send WhatsApp reply to %s: %v", sender, err)
	}

	return reply, nil
}

// systemPrompt builds the assistant instruction from the stored company
// profile, falling back to the default pair when the profile is unreadable.
func (r *Responder) systemPrompt() string {
	profile, err := r.store.GetProfile()
	if err != nil {
		profile = models.DefaultProfile()
	}

	return fmt.Sprintf(
		"أنت مساعد ذكي تمثل شركة %s. %s تحدث مع العملاء بأسلوب احترافي وودود ومختصر. "+
			"إذا شعرت أن الزبون مهتم بالخدمة، اطلب منه معلوماته مثل الاسم ونوع العمل والرقم والإيميل. "+
			"لا تسأل عن البيانات إلا إذا كان الزبون مهتمًا بوضوح.",
		profile.CompanyName, profile.Description)
}

// escalate records the lead and notifies the fixed recipient by email
func (r *Responder) escalate(sender string, message string, reply string) {
	if _, err := r.store.CreateLead(&models.Lead{
		Sender:  sender,
		Message: message,
		Reply:   reply,
	}); err != nil {
		log.Printf("❌ Failed to record lead for %s: %v", sender, err)
	}

	emailBody := fmt.Sprintf("رقم الزبون: %s\n\nرسالة:\n%s\n\nرد البوت:\n%s", sender, message, reply)
	if err := r.mailer.Send(escalationSubject, emailBody); err != nil {
		log.Printf("❌ Failed to send escalation email for %s: %v", sender, err)
		return
	}
	log.Printf("📧 Escalation email sent for %s", sender)
}
