package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"tailorshop-backend/models"

	"gorm.io/gorm"
)

// Provider is one external transport integration. Send returns the
// provider-side message id.
type Provider interface {
	Send(recipient, subject, body string) (string, error)
}

type ProviderFactory func(cfg models.ProviderConfig) (Provider, error)

type MessagingService struct {
	db      *gorm.DB
	factory ProviderFactory
}

func NewMessagingService(db *gorm.DB) *MessagingService {
	return &MessagingService{db: db, factory: NewProvider}
}

// NewMessagingServiceWithFactory lets tests swap the transport layer.
func NewMessagingServiceWithFactory(db *gorm.DB, f ProviderFactory) *MessagingService {
	return &MessagingService{db: db, factory: f}
}

type SendResult struct {
	LogID  uint                 `json:"log_id"`
	Status models.MessageStatus `json:"status"`
	Error  string               `json:"error,omitempty"`
}

type BulkResult struct {
	Sent    int          `json:"sent"`
	Failed  int          `json:"failed"`
	Results []SendResult `json:"results"`
}

// SendToCustomer renders the template for one customer and hands it to
// the active provider for the template's channel. The outcome is always a
// single log row: SENT or FAILED with the transport error text.
func (s *MessagingService) SendToCustomer(ctx context.Context, templateID, customerID uint, vars map[string]string) (SendResult, error) {
	var tpl models.MessageTemplate
	if err := s.db.WithContext(ctx).First(&tpl, templateID).Error; err != nil {
		return SendResult{}, fmt.Errorf("template %d: %w", templateID, err)
	}
	if !tpl.IsActive {
		return SendResult{}, fmt.Errorf("template %q is inactive", tpl.Name)
	}

	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, customerID).Error; err != nil {
		return SendResult{}, fmt.Errorf("customer %d: %w", customerID, err)
	}

	return s.deliver(ctx, tpl, customer, vars), nil
}

// BulkSend loops customers sequentially. A transport failure for one
// customer is logged and the loop continues; there is no rollback and no
// aggregate retry.
func (s *MessagingService) BulkSend(ctx context.Context, templateID uint, customerIDs []uint, vars map[string]string) (BulkResult, error) {
	var tpl models.MessageTemplate
	if err := s.db.WithContext(ctx).First(&tpl, templateID).Error; err != nil {
		return BulkResult{}, fmt.Errorf("template %d: %w", templateID, err)
	}
	if !tpl.IsActive {
		return BulkResult{}, fmt.Errorf("template %q is inactive", tpl.Name)
	}

	var out BulkResult
	for _, id := range customerIDs {
		var customer models.Customer
		if err := s.db.WithContext(ctx).First(&customer, id).Error; err != nil {
			out.Failed++
			out.Results = append(out.Results, SendResult{
				Status: models.MessageFailed,
				Error:  fmt.Sprintf("customer %d: %v", id, err),
			})
			continue
		}
		res := s.deliver(ctx, tpl, customer, vars)
		if res.Status == models.MessageSent {
			out.Sent++
		} else {
			out.Failed++
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

// ScanPending re-attempts PENDING rows whose scheduled_for has passed.
// Invoked manually; there is no timer loop.
func (s *MessagingService) ScanPending(ctx context.Context) (BulkResult, error) {
	var pending []models.MessageLog
	now := time.Now()
	if err := s.db.WithContext(ctx).
		Where("status = ? AND scheduled_for IS NOT NULL AND scheduled_for <= ?", models.MessagePending, now).
		Find(&pending).Error; err != nil {
		return BulkResult{}, err
	}

	var out BulkResult
	for i := range pending {
		log := &pending[i]
		cfg, err := s.activeConfig(ctx, log.Channel)
		if err != nil {
			s.markFailed(ctx, log, err)
			out.Failed++
			out.Results = append(out.Results, SendResult{LogID: log.ID, Status: models.MessageFailed, Error: err.Error()})
			continue
		}
		provider, err := s.factory(cfg)
		if err != nil {
			s.markFailed(ctx, log, err)
			out.Failed++
			out.Results = append(out.Results, SendResult{LogID: log.ID, Status: models.MessageFailed, Error: err.Error()})
			continue
		}
		msgID, err := provider.Send(log.Recipient, log.Subject, log.Body)
		if err != nil {
			s.markFailed(ctx, log, err)
			out.Failed++
			out.Results = append(out.Results, SendResult{LogID: log.ID, Status: models.MessageFailed, Error: err.Error()})
			continue
		}
		sentAt := time.Now()
		log.Status = models.MessageSent
		log.ProviderMsgID = msgID
		log.ErrorText = ""
		log.SentAt = &sentAt
		s.db.WithContext(ctx).Save(log)
		out.Sent++
		out.Results = append(out.Results, SendResult{LogID: log.ID, Status: models.MessageSent})
	}
	return out, nil
}

// Schedule records a PENDING log row to be picked up by ScanPending.
func (s *MessagingService) Schedule(ctx context.Context, templateID, customerID uint, vars map[string]string, at time.Time) (uint, error) {
	var tpl models.MessageTemplate
	if err := s.db.WithContext(ctx).First(&tpl, templateID).Error; err != nil {
		return 0, fmt.Errorf("template %d: %w", templateID, err)
	}
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, customerID).Error; err != nil {
		return 0, fmt.Errorf("customer %d: %w", customerID, err)
	}

	log := models.MessageLog{
		CustomerID:   customer.ID,
		TemplateID:   &tpl.ID,
		Channel:      tpl.Channel,
		Recipient:    recipientFor(tpl.Channel, customer),
		Subject:      RenderTemplate(tpl.Subject, withCustomerVars(vars, customer)),
		Body:         RenderTemplate(tpl.Body, withCustomerVars(vars, customer)),
		Status:       models.MessagePending,
		ScheduledFor: &at,
	}
	if err := s.db.WithContext(ctx).Create(&log).Error; err != nil {
		return 0, err
	}
	return log.ID, nil
}

func (s *MessagingService) deliver(ctx context.Context, tpl models.MessageTemplate, customer models.Customer, vars map[string]string) SendResult {
	merged := withCustomerVars(vars, customer)
	log := models.MessageLog{
		CustomerID: customer.ID,
		TemplateID: &tpl.ID,
		Channel:    tpl.Channel,
		Recipient:  recipientFor(tpl.Channel, customer),
		Subject:    RenderTemplate(tpl.Subject, merged),
		Body:       RenderTemplate(tpl.Body, merged),
		Status:     models.MessagePending,
	}

	cfg, err := s.activeConfig(ctx, tpl.Channel)
	if err == nil {
		log.Provider = cfg.Provider
	}

	var msgID string
	if err == nil {
		var provider Provider
		provider, err = s.factory(cfg)
		if err == nil {
			msgID, err = provider.Send(log.Recipient, log.Subject, log.Body)
		}
	}

	if err != nil {
		log.Status = models.MessageFailed
		log.ErrorText = err.Error()
	} else {
		sentAt := time.Now()
		log.Status = models.MessageSent
		log.ProviderMsgID = msgID
		log.SentAt = &sentAt
	}
	s.db.WithContext(ctx).Create(&log)

	return SendResult{LogID: log.ID, Status: log.Status, Error: log.ErrorText}
}

func (s *MessagingService) activeConfig(ctx context.Context, ch models.Channel) (models.ProviderConfig, error) {
	var cfg models.ProviderConfig
	err := s.db.WithContext(ctx).
		Where("channel = ? AND is_active = ?", ch, true).
		First(&cfg).Error
	if err != nil {
		return cfg, fmt.Errorf("no active provider for channel %s", ch)
	}
	return cfg, nil
}

func (s *MessagingService) markFailed(ctx context.Context, log *models.MessageLog, err error) {
	log.Status = models.MessageFailed
	log.ErrorText = err.Error()
	s.db.WithContext(ctx).Save(log)
}

func withCustomerVars(vars map[string]string, c models.Customer) map[string]string {
	merged := map[string]string{
		"customer_name":  c.Name,
		"customer_phone": c.Phone,
	}
	for k, v := range vars {
		merged[k] = v
	}
	return merged
}

func recipientFor(ch models.Channel, c models.Customer) string {
	if ch == models.ChannelEmail {
		return c.Email
	}
	return c.Phone
}

// ===== Provider implementations =====

var httpClient = &http.Client{Timeout: 15 * time.Second}

// NewProvider resolves the transport for a config row. Secrets come from
// the environment at call time, never from the database.
func NewProvider(cfg models.ProviderConfig) (Provider, error) {
	secret := os.Getenv(cfg.SecretEnv)
	if secret == "" {
		return nil, fmt.Errorf("secret env %s is not set", cfg.SecretEnv)
	}
	switch cfg.Provider {
	case "TWILIO":
		base := cfg.BaseURL
		if base == "" {
			base = "https://api.twilio.com"
		}
		return &twilioProvider{accountSID: cfg.AccountID, authToken: secret, from: cfg.Sender, baseURL: base}, nil
	case "WHATSAPP_BUSINESS":
		base := cfg.BaseURL
		if base == "" {
			base = "https://graph.facebook.com"
		}
		return &whatsappProvider{phoneNumberID: cfg.AccountID, accessToken: secret, baseURL: base}, nil
	case "SENDGRID":
		base := cfg.BaseURL
		if base == "" {
			base = "https://api.sendgrid.com"
		}
		return &sendgridProvider{apiKey: secret, from: cfg.Sender, baseURL: base}, nil
	}
	return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
}

type twilioProvider struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
}

func (p *twilioProvider) Send(recipient, _, body string) (string, error) {
	form := url.Values{}
	form.Set("To", recipient)
	form.Set("From", p.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", p.baseURL, p.accountSID)
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(p.accountSID, p.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("twilio: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed struct {
		Sid string `json:"sid"`
	}
	_ = json.Unmarshal(data, &parsed)
	return parsed.Sid, nil
}

type whatsappProvider struct {
	phoneNumberID string
	accessToken   string
	baseURL       string
}

func (p *whatsappProvider) Send(recipient, _, body string) (string, error) {
	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                recipient,
		"type":              "text",
		"text":              map[string]string{"body": body},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v17.0/%s/messages", p.baseURL, p.phoneNumberID)
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(string(raw)))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+p.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("whatsapp: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed struct {
		Messages []struct {
			ID string `json:"id"`
		} `json:"messages"`
	}
	_ = json.Unmarshal(data, &parsed)
	if len(parsed.Messages) > 0 {
		return parsed.Messages[0].ID, nil
	}
	return "", nil
}

type sendgridProvider struct {
	apiKey  string
	from    string
	baseURL string
}

func (p *sendgridProvider) Send(recipient, subject, body string) (string, error) {
	payload := map[string]interface{}{
		"personalizations": []map[string]interface{}{
			{"to": []map[string]string{{"email": recipient}}},
		},
		"from":    map[string]string{"email": p.from},
		"subject": subject,
		"content": []map[string]string{{"type": "text/plain", "value": body}},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, p.baseURL+"/v3/mail/send", strings.NewReader(string(raw)))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return resp.Header.Get("X-Message-Id"), nil
}
