package service

import (
	"context"
	"testing"

	"tailorshop-backend/models"

	"github.com/stretchr/testify/require"
)

func TestAddVersionBumpsSequentially(t *testing.T) {
	db := newTestDB(t)
	doc := models.Document{Title: "Suit design v1", Category: "design", CreatedByID: 1}
	require.NoError(t, db.Create(&doc).Error)

	svc := NewDocumentService(db)
	v1, err := svc.AddVersion(context.Background(), doc.ID, "https://files/doc-1.pdf", "initial", 1)
	require.NoError(t, err)
	require.Equal(t, 1, v1.Version)

	v2, err := svc.AddVersion(context.Background(), doc.ID, "https://files/doc-2.pdf", "collar fixed", 1)
	require.NoError(t, err)
	require.Equal(t, 2, v2.Version)

	var reloaded models.Document
	require.NoError(t, db.First(&reloaded, doc.ID).Error)
	require.Equal(t, 2, reloaded.CurrentVersion)

	var count int64
	require.NoError(t, db.Model(&models.DocumentVersion{}).
		Where("document_id = ?", doc.ID).Count(&count).Error)
	require.Equal(t, int64(2), count, "versions are append-only")
}

func TestAddVersionUnknownDocument(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	_, err := svc.AddVersion(context.Background(), 42, "https://files/x.pdf", "", 1)
	require.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestApproveFlipsRequiresApproval(t *testing.T) {
	db := newTestDB(t)
	doc := models.Document{Title: "Q1 contract", Category: "contract", RequiresApproval: true}
	require.NoError(t, db.Create(&doc).Error)

	svc := NewDocumentService(db)
	approval, err := svc.Decide(context.Background(), doc.ID, models.DecisionApproved, 7, "looks good")
	require.NoError(t, err)
	require.Equal(t, models.DecisionApproved, approval.Decision)

	var reloaded models.Document
	require.NoError(t, db.First(&reloaded, doc.ID).Error)
	require.False(t, reloaded.RequiresApproval)
}

func TestRejectLeavesFlagOn(t *testing.T) {
	db := newTestDB(t)
	doc := models.Document{Title: "Q1 contract", Category: "contract", RequiresApproval: true}
	require.NoError(t, db.Create(&doc).Error)

	svc := NewDocumentService(db)
	_, err := svc.Decide(context.Background(), doc.ID, models.DecisionRejected, 7, "margins wrong")
	require.NoError(t, err)

	var reloaded models.Document
	require.NoError(t, db.First(&reloaded, doc.ID).Error)
	require.True(t, reloaded.RequiresApproval, "rejection must not clear the flag")

	// A later approval still lands; decisions accumulate.
	_, err = svc.Decide(context.Background(), doc.ID, models.DecisionApproved, 8, "fixed")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.DocumentApproval{}).
		Where("document_id = ?", doc.ID).Count(&count).Error)
	require.Equal(t, int64(2), count)

	require.NoError(t, db.First(&reloaded, doc.ID).Error)
	require.False(t, reloaded.RequiresApproval)
}

func TestDecideRejectsUnknownDecision(t *testing.T) {
	db := newTestDB(t)
	doc := models.Document{Title: "x"}
	require.NoError(t, db.Create(&doc).Error)

	svc := NewDocumentService(db)
	_, err := svc.Decide(context.Background(), doc.ID, models.DecisionStatus("MAYBE"), 1, "")
	require.Error(t, err)
}
