package model

import "time"

// Contact represents an outreach contact (a person at a company).
// Status holds one of the ContactStatuses display labels; the stored string,
// emoji included, is the label's identity and is compared exactly.
type Contact struct {
	ID           int64
	Name         string
	Company      string
	Title        string
	Email        string
	LinkedInURL  string
	Status       string
	LastResponse string // MM/DD/YYYY, or empty when no response yet
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Application represents a job application.
type Application struct {
	ID              int64
	Title           string // position title
	Company         string
	ApplicationLink string
	Status          string // one of ApplicationStatuses
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Document represents an uploaded document (resume, cover letter, ...).
// FileContent is an opaque blob; the core never inspects it.
type Document struct {
	ID          int64
	Name        string
	Type        DocumentType
	Version     string // free text, not validated as semver
	FileContent []byte
	FileType    string // file extension, e.g. "pdf"
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DocumentLink associates a Document with a Contact or Application.
// The (DocumentID, RelatedType, RelatedID) triple is unique.
type DocumentLink struct {
	ID          int64
	DocumentID  int64
	RelatedType RelatedType
	RelatedID   int64
	CreatedAt   time.Time
}

// Reminder is a follow-up reminder tied to a Contact or Application.
// DueDate is a calendar date (MM/DD/YYYY) with no time component.
type Reminder struct {
	ID          int64
	Title       string
	RelatedType RelatedType
	RelatedID   int64
	Description string
	DueDate     string
	Status      ReminderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MessageTemplate is a stored message with {variable} placeholders.
type MessageTemplate struct {
	ID        int64
	Name      string
	Category  TemplateCategory
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
