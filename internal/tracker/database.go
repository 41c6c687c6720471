package tracker

import "jobtrack/internal/model"

// Database is the storage contract the service layer depends on.
// Lookup methods return (nil, nil) when no row matches — absence is a valid
// outcome, not an error. Find methods take an optional parameterized WHERE
// condition; an empty condition returns all rows in no guaranteed order.
// Save methods insert when the entity's ID is zero (assigning the new
// engine-generated id) and update in place otherwise; created_at is set once
// at insert and updated_at refreshed on every write. Delete methods return
// false when the entity has no identity or no row was removed.
type Database interface {
	// Contact operations

	GetContact(id int64) (*model.Contact, error)
	FindContacts(where string, args ...any) ([]*model.Contact, error)
	SaveContact(c *model.Contact) (int64, error)

	// DeleteContact removes the contact together with its reminders and
	// document links, in one transaction.
	DeleteContact(c *model.Contact) (bool, error)

	// Application operations

	GetApplication(id int64) (*model.Application, error)
	FindApplications(where string, args ...any) ([]*model.Application, error)
	SaveApplication(a *model.Application) (int64, error)

	// DeleteApplication removes the application together with its reminders
	// and document links, in one transaction.
	DeleteApplication(a *model.Application) (bool, error)

	// Document operations

	GetDocument(id int64) (*model.Document, error)
	FindDocuments(where string, args ...any) ([]*model.Document, error)
	SaveDocument(d *model.Document) (int64, error)

	// DeleteDocument removes the document and its link rows.
	DeleteDocument(d *model.Document) (bool, error)

	// Document link operations (the many-to-many ledger)

	// LinkDocument associates a document with a contact or application.
	// Idempotent: returns false without inserting when the pair is already linked.
	LinkDocument(documentID int64, relatedType model.RelatedType, relatedID int64) (bool, error)

	// UnlinkDocument removes the association. Returns false when no link existed.
	UnlinkDocument(documentID int64, relatedType model.RelatedType, relatedID int64) (bool, error)

	// FindLinks returns all link rows for a document (document → owners).
	FindLinks(documentID int64) ([]*model.DocumentLink, error)

	// FindDocumentsFor returns all documents linked to an owner (owner → documents).
	FindDocumentsFor(relatedType model.RelatedType, relatedID int64) ([]*model.Document, error)

	// ReplaceLinks deletes all links of relatedType for the document and
	// inserts the new set, in one transaction.
	ReplaceLinks(documentID int64, relatedType model.RelatedType, relatedIDs []int64) error

	// Reminder operations

	GetReminder(id int64) (*model.Reminder, error)
	FindReminders(where string, args ...any) ([]*model.Reminder, error)
	SaveReminder(r *model.Reminder) (int64, error)
	DeleteReminder(r *model.Reminder) (bool, error)

	// Message template operations

	GetTemplate(id int64) (*model.MessageTemplate, error)
	FindTemplates(where string, args ...any) ([]*model.MessageTemplate, error)
	SaveTemplate(t *model.MessageTemplate) (int64, error)
	DeleteTemplate(t *model.MessageTemplate) (bool, error)

	// Maintenance operations

	// CheckMigrations verifies the schema is at the latest migration version.
	CheckMigrations() error

	// Migrate applies all pending schema migrations.
	Migrate() error

	// BackupTo writes a complete copy of the database to destPath.
	BackupTo(destPath string) error

	// Close closes the underlying connection.
	Close() error
}
