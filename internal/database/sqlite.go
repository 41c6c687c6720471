package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"jobtrack/internal/database/migrations"
	"jobtrack/internal/model"
	"jobtrack/internal/tracker"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store implements the tracker.Database interface using SQLite.
// Each entity declares its column list once; rows are mapped with explicit
// Scan calls, no reflection.
type Store struct {
	db    *sql.DB
	clock tracker.Clock
	path  string
}

// NewStore opens a SQLite database at path and wraps it in a Store.
// path can be a file path or ":memory:" for an in-memory database.
// A nil clock falls back to the real time.
func NewStore(path string, clock tracker.Clock) (*Store, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db, clock, path), nil
}

// NewStoreFromDB wraps an existing database connection. The caller is
// responsible for ensuring the connection is properly configured.
func NewStoreFromDB(db *sql.DB, clock tracker.Clock, path string) *Store {
	if clock == nil {
		clock = tracker.RealClock{}
	}
	return &Store{db: db, clock: clock, path: path}
}

// OpenConnection opens and configures a SQLite connection with appropriate
// PRAGMAs. Exported for tools and tests that need a raw configured handle.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign key constraints (SQLite default is OFF for backward compatibility)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if path == ":memory:" {
		// Every pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}

	return db, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// Contact operations

const contactColumns = "id, name, company, title, email, linkedin_url, status, last_response, notes, created_at, updated_at"

func scanContact(s scanner) (*model.Contact, error) {
	var c model.Contact
	err := s.Scan(&c.ID, &c.Name, &c.Company, &c.Title, &c.Email, &c.LinkedInURL,
		&c.Status, &c.LastResponse, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) GetContact(id int64) (*model.Contact, error) {
	row := s.db.QueryRow("SELECT "+contactColumns+" FROM contacts WHERE id = ?", id)
	c, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("getting contact: %w", err)
	}
	return c, nil
}

func (s *Store) FindContacts(where string, args ...any) ([]*model.Contact, error) {
	rows, err := s.db.Query(selectQuery(contactColumns, "contacts", where), args...)
	if err != nil {
		return nil, fmt.Errorf("finding contacts: %w", err)
	}
	defer rows.Close()

	var result []*model.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (s *Store) SaveContact(c *model.Contact) (int64, error) {
	now := s.clock.Now()
	if c.ID == 0 {
		c.CreatedAt = now
		c.UpdatedAt = now
		res, err := s.db.Exec(`INSERT INTO contacts
			(name, company, title, email, linkedin_url, status, last_response, notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.Name, c.Company, c.Title, c.Email, c.LinkedInURL, c.Status, c.LastResponse, c.Notes, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return 0, fmt.Errorf("inserting contact: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading new contact id: %w", err)
		}
		c.ID = id
		return id, nil
	}

	c.UpdatedAt = now
	_, err := s.db.Exec(`UPDATE contacts SET
		name = ?, company = ?, title = ?, email = ?, linkedin_url = ?, status = ?, last_response = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		c.Name, c.Company, c.Title, c.Email, c.LinkedInURL, c.Status, c.LastResponse, c.Notes, c.UpdatedAt, c.ID)
	if err != nil {
		return 0, fmt.Errorf("updating contact: %w", err)
	}
	return c.ID, nil
}

// DeleteContact removes the contact, its reminders, and its document links
// in one transaction.
func (s *Store) DeleteContact(c *model.Contact) (bool, error) {
	return s.deleteOwner("contacts", model.RelatedContact, c.ID)
}

// Application operations

const applicationColumns = "id, title, company, application_link, status, notes, created_at, updated_at"

func scanApplication(s scanner) (*model.Application, error) {
	var a model.Application
	err := s.Scan(&a.ID, &a.Title, &a.Company, &a.ApplicationLink, &a.Status,
		&a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) GetApplication(id int64) (*model.Application, error) {
	row := s.db.QueryRow("SELECT "+applicationColumns+" FROM applications WHERE id = ?", id)
	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("getting application: %w", err)
	}
	return a, nil
}

func (s *Store) FindApplications(where string, args ...any) ([]*model.Application, error) {
	rows, err := s.db.Query(selectQuery(applicationColumns, "applications", where), args...)
	if err != nil {
		return nil, fmt.Errorf("finding applications: %w", err)
	}
	defer rows.Close()

	var result []*model.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning application: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (s *Store) SaveApplication(a *model.Application) (int64, error) {
	now := s.clock.Now()
	if a.ID == 0 {
		a.CreatedAt = now
		a.UpdatedAt = now
		res, err := s.db.Exec(`INSERT INTO applications
			(title, company, application_link, status, notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.Title, a.Company, a.ApplicationLink, a.Status, a.Notes, a.CreatedAt, a.UpdatedAt)
		if err != nil {
			return 0, fmt.Errorf("inserting application: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading new application id: %w", err)
		}
		a.ID = id
		return id, nil
	}

	a.UpdatedAt = now
	_, err := s.db.Exec(`UPDATE applications SET
		title = ?, company = ?, application_link = ?, status = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		a.Title, a.Company, a.ApplicationLink, a.Status, a.Notes, a.UpdatedAt, a.ID)
	if err != nil {
		return 0, fmt.Errorf("updating application: %w", err)
	}
	return a.ID, nil
}

func (s *Store) DeleteApplication(a *model.Application) (bool, error) {
	return s.deleteOwner("applications", model.RelatedApplication, a.ID)
}

// deleteOwner deletes a contact or application row plus the reminders and
// document links that reference it. The owner table name is one of two
// fixed strings, never caller input.
func (s *Store) deleteOwner(table string, relatedType model.RelatedType, id int64) (bool, error) {
	if id == 0 {
		return false, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM reminders WHERE related_type = ? AND related_id = ?", string(relatedType), id); err != nil {
		return false, fmt.Errorf("deleting reminders: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM document_links WHERE related_type = ? AND related_id = ?", string(relatedType), id); err != nil {
		return false, fmt.Errorf("deleting document links: %w", err)
	}

	res, err := tx.Exec("DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting %s row: %w", relatedType, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking delete result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing transaction: %w", err)
	}
	return n > 0, nil
}

// Document operations

const documentColumns = "id, name, type, version, file_content, file_type, notes, created_at, updated_at"

func scanDocument(s scanner) (*model.Document, error) {
	var (
		d   model.Document
		typ string
	)
	err := s.Scan(&d.ID, &d.Name, &typ, &d.Version, &d.FileContent,
		&d.FileType, &d.Notes, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	d.Type, err = model.ParseDocumentType(typ)
	if err != nil {
		return nil, fmt.Errorf("document %d: %w", d.ID, err)
	}
	return &d, nil
}

func (s *Store) GetDocument(id int64) (*model.Document, error) {
	row := s.db.QueryRow("SELECT "+documentColumns+" FROM documents WHERE id = ?", id)
	d, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return d, nil
}

func (s *Store) FindDocuments(where string, args ...any) ([]*model.Document, error) {
	rows, err := s.db.Query(selectQuery(documentColumns, "documents", where), args...)
	if err != nil {
		return nil, fmt.Errorf("finding documents: %w", err)
	}
	defer rows.Close()
	return collectDocuments(rows)
}

func collectDocuments(rows *sql.Rows) ([]*model.Document, error) {
	var result []*model.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

func (s *Store) SaveDocument(d *model.Document) (int64, error) {
	now := s.clock.Now()
	if d.ID == 0 {
		d.CreatedAt = now
		d.UpdatedAt = now
		res, err := s.db.Exec(`INSERT INTO documents
			(name, type, version, file_content, file_type, notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			d.Name, string(d.Type), d.Version, d.FileContent, d.FileType, d.Notes, d.CreatedAt, d.UpdatedAt)
		if err != nil {
			return 0, fmt.Errorf("inserting document: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading new document id: %w", err)
		}
		d.ID = id
		return id, nil
	}

	d.UpdatedAt = now
	_, err := s.db.Exec(`UPDATE documents SET
		name = ?, type = ?, version = ?, file_content = ?, file_type = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		d.Name, string(d.Type), d.Version, d.FileContent, d.FileType, d.Notes, d.UpdatedAt, d.ID)
	if err != nil {
		return 0, fmt.Errorf("updating document: %w", err)
	}
	return d.ID, nil
}

// DeleteDocument removes the document and its link rows in one transaction.
func (s *Store) DeleteDocument(d *model.Document) (bool, error) {
	if d.ID == 0 {
		return false, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM document_links WHERE document_id = ?", d.ID); err != nil {
		return false, fmt.Errorf("deleting document links: %w", err)
	}
	res, err := tx.Exec("DELETE FROM documents WHERE id = ?", d.ID)
	if err != nil {
		return false, fmt.Errorf("deleting document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking delete result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing transaction: %w", err)
	}
	return n > 0, nil
}

// Document link operations

func scanLink(s scanner) (*model.DocumentLink, error) {
	var (
		l  model.DocumentLink
		rt string
	)
	err := s.Scan(&l.ID, &l.DocumentID, &rt, &l.RelatedID, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	l.RelatedType, err = model.ParseRelatedType(rt)
	if err != nil {
		return nil, fmt.Errorf("document link %d: %w", l.ID, err)
	}
	return &l, nil
}

func (s *Store) LinkDocument(documentID int64, relatedType model.RelatedType, relatedID int64) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	var existing int64
	err = tx.QueryRow(`SELECT id FROM document_links
		WHERE document_id = ? AND related_type = ? AND related_id = ?`,
		documentID, string(relatedType), relatedID).Scan(&existing)
	if err == nil {
		return false, nil // already linked
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("checking for existing link: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO document_links (document_id, related_type, related_id, created_at)
		VALUES (?, ?, ?, ?)`,
		documentID, string(relatedType), relatedID, s.clock.Now())
	if err != nil {
		return false, fmt.Errorf("inserting link: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing transaction: %w", err)
	}
	return true, nil
}

func (s *Store) UnlinkDocument(documentID int64, relatedType model.RelatedType, relatedID int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM document_links
		WHERE document_id = ? AND related_type = ? AND related_id = ?`,
		documentID, string(relatedType), relatedID)
	if err != nil {
		return false, fmt.Errorf("deleting link: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking delete result: %w", err)
	}
	return n > 0, nil
}

func (s *Store) FindLinks(documentID int64) ([]*model.DocumentLink, error) {
	rows, err := s.db.Query(`SELECT id, document_id, related_type, related_id, created_at
		FROM document_links WHERE document_id = ? ORDER BY id`, documentID)
	if err != nil {
		return nil, fmt.Errorf("finding links: %w", err)
	}
	defer rows.Close()

	var result []*model.DocumentLink
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning link: %w", err)
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (s *Store) FindDocumentsFor(relatedType model.RelatedType, relatedID int64) ([]*model.Document, error) {
	rows, err := s.db.Query(`SELECT d.id, d.name, d.type, d.version, d.file_content, d.file_type, d.notes, d.created_at, d.updated_at
		FROM documents d
		JOIN document_links l ON d.id = l.document_id
		WHERE l.related_type = ? AND l.related_id = ?
		ORDER BY d.id`,
		string(relatedType), relatedID)
	if err != nil {
		return nil, fmt.Errorf("finding documents for owner: %w", err)
	}
	defer rows.Close()
	return collectDocuments(rows)
}

// ReplaceLinks swaps all links of one type for a document: delete the old
// set, insert the new one, atomically. Duplicate ids in the new set collapse
// to a single row.
func (s *Store) ReplaceLinks(documentID int64, relatedType model.RelatedType, relatedIDs []int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec("DELETE FROM document_links WHERE document_id = ? AND related_type = ?",
		documentID, string(relatedType))
	if err != nil {
		return fmt.Errorf("clearing existing links: %w", err)
	}

	now := s.clock.Now()
	seen := make(map[int64]bool, len(relatedIDs))
	for _, id := range relatedIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		_, err = tx.Exec(`INSERT INTO document_links (document_id, related_type, related_id, created_at)
			VALUES (?, ?, ?, ?)`,
			documentID, string(relatedType), id, now)
		if err != nil {
			return fmt.Errorf("inserting link to %s %d: %w", relatedType, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Reminder operations

const reminderColumns = "id, title, related_type, related_id, description, due_date, status, created_at, updated_at"

func scanReminder(s scanner) (*model.Reminder, error) {
	var (
		r      model.Reminder
		rt     string
		status string
	)
	err := s.Scan(&r.ID, &r.Title, &rt, &r.RelatedID, &r.Description,
		&r.DueDate, &status, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	r.RelatedType, err = model.ParseRelatedType(rt)
	if err != nil {
		return nil, fmt.Errorf("reminder %d: %w", r.ID, err)
	}
	r.Status, err = model.ParseReminderStatus(status)
	if err != nil {
		return nil, fmt.Errorf("reminder %d: %w", r.ID, err)
	}
	return &r, nil
}

func (s *Store) GetReminder(id int64) (*model.Reminder, error) {
	row := s.db.QueryRow("SELECT "+reminderColumns+" FROM reminders WHERE id = ?", id)
	r, err := scanReminder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("getting reminder: %w", err)
	}
	return r, nil
}

func (s *Store) FindReminders(where string, args ...any) ([]*model.Reminder, error) {
	rows, err := s.db.Query(selectQuery(reminderColumns, "reminders", where), args...)
	if err != nil {
		return nil, fmt.Errorf("finding reminders: %w", err)
	}
	defer rows.Close()

	var result []*model.Reminder
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning reminder: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *Store) SaveReminder(r *model.Reminder) (int64, error) {
	now := s.clock.Now()
	if r.ID == 0 {
		r.CreatedAt = now
		r.UpdatedAt = now
		res, err := s.db.Exec(`INSERT INTO reminders
			(title, related_type, related_id, description, due_date, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			r.Title, string(r.RelatedType), r.RelatedID, r.Description, r.DueDate, string(r.Status), r.CreatedAt, r.UpdatedAt)
		if err != nil {
			return 0, fmt.Errorf("inserting reminder: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading new reminder id: %w", err)
		}
		r.ID = id
		return id, nil
	}

	r.UpdatedAt = now
	_, err := s.db.Exec(`UPDATE reminders SET
		title = ?, related_type = ?, related_id = ?, description = ?, due_date = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		r.Title, string(r.RelatedType), r.RelatedID, r.Description, r.DueDate, string(r.Status), r.UpdatedAt, r.ID)
	if err != nil {
		return 0, fmt.Errorf("updating reminder: %w", err)
	}
	return r.ID, nil
}

func (s *Store) DeleteReminder(r *model.Reminder) (bool, error) {
	return s.deleteByID("reminders", r.ID)
}

// Message template operations

const templateColumns = "id, name, category, content, created_at, updated_at"

func scanTemplate(s scanner) (*model.MessageTemplate, error) {
	var (
		t        model.MessageTemplate
		category string
	)
	err := s.Scan(&t.ID, &t.Name, &category, &t.Content, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Category, err = model.ParseTemplateCategory(category)
	if err != nil {
		return nil, fmt.Errorf("template %d: %w", t.ID, err)
	}
	return &t, nil
}

func (s *Store) GetTemplate(id int64) (*model.MessageTemplate, error) {
	row := s.db.QueryRow("SELECT "+templateColumns+" FROM message_templates WHERE id = ?", id)
	t, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("getting template: %w", err)
	}
	return t, nil
}

func (s *Store) FindTemplates(where string, args ...any) ([]*model.MessageTemplate, error) {
	rows, err := s.db.Query(selectQuery(templateColumns, "message_templates", where), args...)
	if err != nil {
		return nil, fmt.Errorf("finding templates: %w", err)
	}
	defer rows.Close()

	var result []*model.MessageTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (s *Store) SaveTemplate(t *model.MessageTemplate) (int64, error) {
	now := s.clock.Now()
	if t.ID == 0 {
		t.CreatedAt = now
		t.UpdatedAt = now
		res, err := s.db.Exec(`INSERT INTO message_templates
			(name, category, content, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)`,
			t.Name, string(t.Category), t.Content, t.CreatedAt, t.UpdatedAt)
		if err != nil {
			return 0, fmt.Errorf("inserting template: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading new template id: %w", err)
		}
		t.ID = id
		return id, nil
	}

	t.UpdatedAt = now
	_, err := s.db.Exec(`UPDATE message_templates SET
		name = ?, category = ?, content = ?, updated_at = ?
		WHERE id = ?`,
		t.Name, string(t.Category), t.Content, t.UpdatedAt, t.ID)
	if err != nil {
		return 0, fmt.Errorf("updating template: %w", err)
	}
	return t.ID, nil
}

func (s *Store) DeleteTemplate(t *model.MessageTemplate) (bool, error) {
	return s.deleteByID("message_templates", t.ID)
}

// deleteByID deletes a single row from a fixed table name.
func (s *Store) deleteByID(table string, id int64) (bool, error) {
	if id == 0 {
		return false, nil
	}
	res, err := s.db.Exec("DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking delete result: %w", err)
	}
	return n > 0, nil
}

// selectQuery assembles a SELECT with an optional WHERE condition.
// The condition is a caller-supplied parameterized fragment; an empty
// condition selects all rows.
func selectQuery(columns, table, where string) string {
	q := "SELECT " + columns + " FROM " + table
	if strings.TrimSpace(where) != "" {
		q += " WHERE " + where
	}
	return q
}

// Path returns the database file path (or ":memory:" for in-memory databases).
func (s *Store) Path() string {
	return s.path
}

// CheckMigrations verifies the database schema is up-to-date.
func (s *Store) CheckMigrations() error {
	return migrations.CheckDBMigrationStatus(s.db)
}

// Migrate applies all pending schema migrations.
func (s *Store) Migrate() error {
	return migrations.MigrateUp(s.db)
}

// BackupTo creates a complete copy of the database at destPath using VACUUM INTO.
func (s *Store) BackupTo(destPath string) error {
	_, err := s.db.Exec("VACUUM INTO ?", destPath)
	if err != nil {
		return fmt.Errorf("backing up database: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Compile-time check that Store implements the tracker.Database interface
var _ tracker.Database = (*Store)(nil)
