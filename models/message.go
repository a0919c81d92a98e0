package models

import "time"

type Channel string

const (
	ChannelSMS      Channel = "SMS"
	ChannelWhatsApp Channel = "WHATSAPP"
	ChannelEmail    Channel = "EMAIL"
)

func (ch Channel) Valid() bool {
	switch ch {
	case ChannelSMS, ChannelWhatsApp, ChannelEmail:
		return true
	}
	return false
}

type MessageStatus string

const (
	MessagePending MessageStatus = "PENDING"
	MessageSent    MessageStatus = "SENT"
	MessageFailed  MessageStatus = "FAILED"
)

// Body carries literal {{name}} tokens replaced at send time. This is
// plain string substitution, not a template language.
type MessageTemplate struct {
	ID        uint      `gorm:"primaryKey"           json:"id"`
	Name      string    `gorm:"uniqueIndex;size:120" json:"name"`
	Channel   Channel   `gorm:"size:20;not null"     json:"channel"`
	Subject   string    `gorm:"size:255"             json:"subject"` // email only
	Body      string    `gorm:"size:2000;not null"   json:"body"`
	Variables string    `gorm:"size:500"             json:"variables"` // comma-separated token names, informational
	IsActive  bool      `gorm:"default:true"         json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MessageLog struct {
	ID           uint          `gorm:"primaryKey"              json:"id"`
	CustomerID   uint          `gorm:"index"                   json:"customer_id"`
	TemplateID   *uint         `json:"template_id"`
	Channel      Channel       `gorm:"size:20"                 json:"channel"`
	Provider     string        `gorm:"size:60"                 json:"provider"`
	Recipient    string        `gorm:"size:180"                json:"recipient"`
	Subject      string        `gorm:"size:255"                json:"subject"`
	Body         string        `gorm:"size:2000"               json:"body"`
	Status       MessageStatus `gorm:"size:20;default:PENDING;index" json:"status"`
	ErrorText    string        `gorm:"size:1000"               json:"error_text"`
	ProviderMsgID string       `gorm:"size:120"                json:"provider_msg_id"`
	ScheduledFor *time.Time    `gorm:"index"                   json:"scheduled_for"`
	SentAt       *time.Time    `json:"sent_at"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Providers keep non-secret settings here; API secrets are read from the
// environment variable named in SecretEnv at call time. Resolved per send,
// never cached process-wide.
type ProviderConfig struct {
	ID         uint      `gorm:"primaryKey"        json:"id"`
	Channel    Channel   `gorm:"size:20;not null;index" json:"channel"`
	Provider   string    `gorm:"size:60;not null"  json:"provider"` // TWILIO, WHATSAPP_BUSINESS, SENDGRID
	AccountID  string    `gorm:"size:180"          json:"account_id"` // twilio SID / whatsapp phone number id
	Sender     string    `gorm:"size:180"          json:"sender"`     // from number / from email
	SecretEnv  string    `gorm:"size:120"          json:"secret_env"`
	BaseURL    string    `gorm:"size:255"          json:"base_url"` // override for testing; empty = provider default
	IsActive   bool      `gorm:"default:false"     json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
