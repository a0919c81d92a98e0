package models

import "time"

type DecisionStatus string

const (
	DecisionApproved DecisionStatus = "APPROVED"
	DecisionRejected DecisionStatus = "REJECTED"
)

type Document struct {
	ID               uint              `gorm:"primaryKey"        json:"id"`
	Title            string            `gorm:"size:255;not null" json:"title"`
	Category         string            `gorm:"size:60;index"     json:"category"` // invoice, design, contract...
	CustomerID       *uint             `gorm:"index"             json:"customer_id"`
	OrderID          *uint             `gorm:"index"             json:"order_id"`
	RequiresApproval bool              `gorm:"default:false"     json:"requires_approval"`
	CurrentVersion   int               `gorm:"default:0"         json:"current_version"`
	Versions         []DocumentVersion `json:"versions,omitempty"`
	CreatedByID      uint              `json:"created_by_id"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// Versions are append-only; nothing is ever rewritten or removed.
type DocumentVersion struct {
	ID           uint      `gorm:"primaryKey"     json:"id"`
	DocumentID   uint      `gorm:"index;not null" json:"document_id"`
	Version      int       `gorm:"not null"       json:"version"`
	FileURL      string    `gorm:"size:500"       json:"file_url"`
	Notes        string    `gorm:"size:500"       json:"notes"`
	UploadedByID uint      `json:"uploaded_by_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// Approvals are additive; a single APPROVED row flips the document's
// requires_approval flag off. Last write wins.
type DocumentApproval struct {
	ID           uint           `gorm:"primaryKey"     json:"id"`
	DocumentID   uint           `gorm:"index;not null" json:"document_id"`
	ApproverID   uint           `gorm:"not null"       json:"approver_id"`
	Decision     DecisionStatus `gorm:"size:20;not null" json:"decision"`
	Comment      string         `gorm:"size:500"       json:"comment"`
	CreatedAt    time.Time      `json:"created_at"`
}
