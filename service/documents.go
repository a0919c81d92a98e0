package service

import (
	"context"
	"errors"
	"fmt"

	"tailorshop-backend/models"

	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentService struct{ db *gorm.DB }

func NewDocumentService(db *gorm.DB) *DocumentService { return &DocumentService{db: db} }

// AddVersion appends a new version row and bumps the document's current
// version. Versions are never rewritten.
func (s *DocumentService) AddVersion(ctx context.Context, docID uint, fileURL, notes string, uploadedBy uint) (models.DocumentVersion, error) {
	var doc models.Document
	if err := s.db.WithContext(ctx).First(&doc, docID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DocumentVersion{}, ErrDocumentNotFound
		}
		return models.DocumentVersion{}, err
	}

	version := models.DocumentVersion{
		DocumentID:   doc.ID,
		Version:      doc.CurrentVersion + 1,
		FileURL:      fileURL,
		Notes:        notes,
		UploadedByID: uploadedBy,
	}
	if err := s.db.WithContext(ctx).Create(&version).Error; err != nil {
		return models.DocumentVersion{}, err
	}

	doc.CurrentVersion = version.Version
	if err := s.db.WithContext(ctx).Save(&doc).Error; err != nil {
		return models.DocumentVersion{}, err
	}
	return version, nil
}

// Decide appends an approval row. APPROVED flips requires_approval off;
// REJECTED leaves the flag as-is. Decisions are additive, last write wins.
func (s *DocumentService) Decide(ctx context.Context, docID uint, decision models.DecisionStatus, approverID uint, comment string) (models.DocumentApproval, error) {
	if decision != models.DecisionApproved && decision != models.DecisionRejected {
		return models.DocumentApproval{}, fmt.Errorf("unknown decision %q", decision)
	}

	var doc models.Document
	if err := s.db.WithContext(ctx).First(&doc, docID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DocumentApproval{}, ErrDocumentNotFound
		}
		return models.DocumentApproval{}, err
	}

	approval := models.DocumentApproval{
		DocumentID: doc.ID,
		ApproverID: approverID,
		Decision:   decision,
		Comment:    comment,
	}
	if err := s.db.WithContext(ctx).Create(&approval).Error; err != nil {
		return models.DocumentApproval{}, err
	}

	if decision == models.DecisionApproved && doc.RequiresApproval {
		doc.RequiresApproval = false
		if err := s.db.WithContext(ctx).Save(&doc).Error; err != nil {
			return models.DocumentApproval{}, err
		}
	}
	return approval, nil
}
