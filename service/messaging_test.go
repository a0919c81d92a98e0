package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tailorshop-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubProvider struct {
	failRecipients map[string]bool
	sent           *[]string
}

func (p stubProvider) Send(recipient, _, _ string) (string, error) {
	if p.failRecipients[recipient] {
		return "", errors.New("carrier rejected the number")
	}
	if p.sent != nil {
		*p.sent = append(*p.sent, recipient)
	}
	return "msg-" + recipient, nil
}

func stubFactory(failRecipients map[string]bool, sent *[]string) ProviderFactory {
	return func(models.ProviderConfig) (Provider, error) {
		return stubProvider{failRecipients: failRecipients, sent: sent}, nil
	}
}

func seedMessaging(t *testing.T, db *gorm.DB) (models.MessageTemplate, []models.Customer) {
	t.Helper()

	tpl := models.MessageTemplate{
		Name:     "order-ready",
		Channel:  models.ChannelSMS,
		Body:     "Hi {{customer_name}}, your order is ready.",
		IsActive: true,
	}
	require.NoError(t, db.Create(&tpl).Error)

	require.NoError(t, db.Create(&models.ProviderConfig{
		Channel:  models.ChannelSMS,
		Provider: "TWILIO",
		IsActive: true,
	}).Error)

	customers := []models.Customer{
		{Name: "Asha", Phone: "+100", IsActive: true},
		{Name: "Ben", Phone: "+200", IsActive: true},
		{Name: "Clio", Phone: "+300", IsActive: true},
	}
	for i := range customers {
		require.NoError(t, db.Create(&customers[i]).Error)
	}
	return tpl, customers
}

func TestSendToCustomerWritesSentLog(t *testing.T) {
	db := newTestDB(t)
	tpl, customers := seedMessaging(t, db)

	svc := NewMessagingServiceWithFactory(db, stubFactory(nil, nil))
	res, err := svc.SendToCustomer(context.Background(), tpl.ID, customers[0].ID, nil)
	require.NoError(t, err)
	require.Equal(t, models.MessageSent, res.Status)

	var log models.MessageLog
	require.NoError(t, db.First(&log, res.LogID).Error)
	require.Equal(t, "Hi Asha, your order is ready.", log.Body)
	require.Equal(t, "+100", log.Recipient)
	require.Equal(t, "msg-+100", log.ProviderMsgID)
	require.NotNil(t, log.SentAt)
}

// One transport failure mid-batch must not stop the batch: three
// customers with #2 failing yield exactly three log rows, SENT/FAILED/SENT.
func TestBulkSendContinuesPastFailure(t *testing.T) {
	db := newTestDB(t)
	tpl, customers := seedMessaging(t, db)

	var delivered []string
	svc := NewMessagingServiceWithFactory(db, stubFactory(map[string]bool{"+200": true}, &delivered))

	res, err := svc.BulkSend(context.Background(), tpl.ID,
		[]uint{customers[0].ID, customers[1].ID, customers[2].ID}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, res.Sent)
	require.Equal(t, 1, res.Failed)
	require.Len(t, res.Results, 3)

	var logs []models.MessageLog
	require.NoError(t, db.Order("id").Find(&logs).Error)
	require.Len(t, logs, 3)
	require.Equal(t, models.MessageSent, logs[0].Status)
	require.Equal(t, models.MessageFailed, logs[1].Status)
	require.Contains(t, logs[1].ErrorText, "carrier rejected")
	require.Equal(t, models.MessageSent, logs[2].Status)

	// Customer #3 was still delivered after #2 failed.
	require.Equal(t, []string{"+100", "+300"}, delivered)
}

func TestSendWithoutActiveProviderLogsFailed(t *testing.T) {
	db := newTestDB(t)
	tpl, customers := seedMessaging(t, db)
	require.NoError(t, db.Model(&models.ProviderConfig{}).
		Where("channel = ?", models.ChannelSMS).
		Update("is_active", false).Error)

	svc := NewMessagingServiceWithFactory(db, stubFactory(nil, nil))
	res, err := svc.SendToCustomer(context.Background(), tpl.ID, customers[0].ID, nil)
	require.NoError(t, err)
	require.Equal(t, models.MessageFailed, res.Status)
	require.Contains(t, res.Error, "no active provider")
}

func TestScanPendingSendsDueMessages(t *testing.T) {
	db := newTestDB(t)
	tpl, customers := seedMessaging(t, db)

	svc := NewMessagingServiceWithFactory(db, stubFactory(nil, nil))

	past := time.Now().Add(-1 * time.Hour)
	dueID, err := svc.Schedule(context.Background(), tpl.ID, customers[0].ID, nil, past)
	require.NoError(t, err)

	future := time.Now().Add(24 * time.Hour)
	futureID, err := svc.Schedule(context.Background(), tpl.ID, customers[1].ID, nil, future)
	require.NoError(t, err)

	res, err := svc.ScanPending(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, res.Sent)
	require.Equal(t, 0, res.Failed)

	var due, notDue models.MessageLog
	require.NoError(t, db.First(&due, dueID).Error)
	require.Equal(t, models.MessageSent, due.Status)
	require.NoError(t, db.First(&notDue, futureID).Error)
	require.Equal(t, models.MessagePending, notDue.Status, "future messages stay pending")
}

func TestInactiveTemplateRejected(t *testing.T) {
	db := newTestDB(t)
	tpl, customers := seedMessaging(t, db)
	require.NoError(t, db.Model(&tpl).Update("is_active", false).Error)

	svc := NewMessagingServiceWithFactory(db, stubFactory(nil, nil))
	_, err := svc.SendToCustomer(context.Background(), tpl.ID, customers[0].ID, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "inactive")
}

// Exercises the real Twilio transport against a local server.
func TestTwilioProviderRoundTrip(t *testing.T) {
	var gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotBody = r.PostForm.Get("Body")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintln(w, `{"sid": "SM123"}`)
	}))
	defer server.Close()

	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	provider, err := NewProvider(models.ProviderConfig{
		Provider:  "TWILIO",
		AccountID: "AC42",
		Sender:    "+15550100",
		SecretEnv: "TWILIO_AUTH_TOKEN",
		BaseURL:   server.URL,
	})
	require.NoError(t, err)

	msgID, err := provider.Send("+15550199", "", "pickup time")
	require.NoError(t, err)
	require.Equal(t, "SM123", msgID)
	require.Equal(t, "/2010-04-01/Accounts/AC42/Messages.json", gotPath)
	require.Equal(t, "pickup time", gotBody)
}

func TestTwilioProviderErrorSurfacesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintln(w, `{"message": "invalid To number"}`)
	}))
	defer server.Close()

	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	provider, err := NewProvider(models.ProviderConfig{
		Provider:  "TWILIO",
		AccountID: "AC42",
		SecretEnv: "TWILIO_AUTH_TOKEN",
		BaseURL:   server.URL,
	})
	require.NoError(t, err)

	_, err = provider.Send("bad", "", "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid To number")
}

func TestNewProviderRequiresSecret(t *testing.T) {
	t.Setenv("EMPTY_SECRET", "")
	_, err := NewProvider(models.ProviderConfig{Provider: "TWILIO", SecretEnv: "EMPTY_SECRET"})
	require.Error(t, err)
}
