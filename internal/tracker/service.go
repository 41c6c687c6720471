package tracker

import (
	"errors"
	"fmt"

	"jobtrack/internal/model"
)

// ErrNotFound is returned by operations that target a specific entity id
// when no such entity exists. Lookup methods that merely read return
// (nil, nil) instead; ErrNotFound is for mutations and renders where the
// caller named an id and nothing answered to it.
var ErrNotFound = errors.New("not found")

// Service coordinates the record store, the document-link ledger, the
// reminder engine, and the template renderer. All operations are synchronous
// and single-writer; on concurrent edits the last write wins, which is the
// accepted model for a single-user desktop tool.
type Service struct {
	db     Database
	logger Logger
	clock  Clock
}

// NewService creates a Service. A nil logger discards output and a nil
// clock falls back to the real time.
func NewService(db Database, logger Logger, clock Clock) *Service {
	if logger == nil {
		logger = NewNopLogger()
	}
	if clock == nil {
		clock = RealClock{}
	}
	return &Service{db: db, logger: logger, clock: clock}
}

// Contact operations

func (s *Service) GetContact(id int64) (*model.Contact, error) {
	return s.db.GetContact(id)
}

func (s *Service) FindContacts(where string, args ...any) ([]*model.Contact, error) {
	return s.db.FindContacts(where, args...)
}

// SaveContact inserts or updates a contact. Required-field validation is the
// caller's job; the service only screens the status label when one is set.
func (s *Service) SaveContact(c *model.Contact) (int64, error) {
	if c.Status != "" && !model.ValidContactStatus(c.Status) {
		return 0, fmt.Errorf("unknown contact status label: %q", c.Status)
	}
	id, err := s.db.SaveContact(c)
	if err != nil {
		return 0, err
	}
	s.logger.Info("contact saved", "id", id, "name", c.Name)
	return id, nil
}

// DeleteContact removes a contact along with its reminders and document
// links. Cleanup is explicit and transactional; nothing is left dangling.
func (s *Service) DeleteContact(id int64) (bool, error) {
	c, err := s.db.GetContact(id)
	if err != nil {
		return false, err
	}
	if c == nil {
		return false, nil
	}
	ok, err := s.db.DeleteContact(c)
	if err != nil {
		return false, err
	}
	if ok {
		s.logger.Info("contact deleted", "id", id)
	}
	return ok, nil
}

// Application operations

func (s *Service) GetApplication(id int64) (*model.Application, error) {
	return s.db.GetApplication(id)
}

func (s *Service) FindApplications(where string, args ...any) ([]*model.Application, error) {
	return s.db.FindApplications(where, args...)
}

func (s *Service) SaveApplication(a *model.Application) (int64, error) {
	if a.Status != "" && !model.ValidApplicationStatus(a.Status) {
		return 0, fmt.Errorf("unknown application status label: %q", a.Status)
	}
	id, err := s.db.SaveApplication(a)
	if err != nil {
		return 0, err
	}
	s.logger.Info("application saved", "id", id, "title", a.Title)
	return id, nil
}

// DeleteApplication removes an application along with its reminders and
// document links, mirroring DeleteContact.
func (s *Service) DeleteApplication(id int64) (bool, error) {
	a, err := s.db.GetApplication(id)
	if err != nil {
		return false, err
	}
	if a == nil {
		return false, nil
	}
	ok, err := s.db.DeleteApplication(a)
	if err != nil {
		return false, err
	}
	if ok {
		s.logger.Info("application deleted", "id", id)
	}
	return ok, nil
}

// Document operations

func (s *Service) GetDocument(id int64) (*model.Document, error) {
	return s.db.GetDocument(id)
}

func (s *Service) FindDocuments(where string, args ...any) ([]*model.Document, error) {
	return s.db.FindDocuments(where, args...)
}

func (s *Service) SaveDocument(d *model.Document) (int64, error) {
	id, err := s.db.SaveDocument(d)
	if err != nil {
		return 0, err
	}
	s.logger.Info("document saved", "id", id, "name", d.Name, "type", string(d.Type))
	return id, nil
}

func (s *Service) DeleteDocument(id int64) (bool, error) {
	d, err := s.db.GetDocument(id)
	if err != nil {
		return false, err
	}
	if d == nil {
		return false, nil
	}
	ok, err := s.db.DeleteDocument(d)
	if err != nil {
		return false, err
	}
	if ok {
		s.logger.Info("document deleted", "id", id)
	}
	return ok, nil
}

// Document link operations

// LinkDocument associates a document with an owner. Returns false when the
// pair was already linked (no duplicate row is created).
func (s *Service) LinkDocument(documentID int64, relatedType model.RelatedType, relatedID int64) (bool, error) {
	created, err := s.db.LinkDocument(documentID, relatedType, relatedID)
	if err != nil {
		return false, err
	}
	if created {
		s.logger.Debug("document linked", "document", documentID, "owner_type", string(relatedType), "owner", relatedID)
	}
	return created, nil
}

// UnlinkDocument removes the association. Returns false when nothing matched.
func (s *Service) UnlinkDocument(documentID int64, relatedType model.RelatedType, relatedID int64) (bool, error) {
	removed, err := s.db.UnlinkDocument(documentID, relatedType, relatedID)
	if err != nil {
		return false, err
	}
	if removed {
		s.logger.Debug("document unlinked", "document", documentID, "owner_type", string(relatedType), "owner", relatedID)
	}
	return removed, nil
}

// FindLinks returns the owners a document is linked to.
func (s *Service) FindLinks(documentID int64) ([]*model.DocumentLink, error) {
	return s.db.FindLinks(documentID)
}

// FindDocumentsFor returns the documents linked to an owner.
func (s *Service) FindDocumentsFor(relatedType model.RelatedType, relatedID int64) ([]*model.Document, error) {
	return s.db.FindDocumentsFor(relatedType, relatedID)
}

// ReplaceLinks swaps the full set of links of one type for a document.
func (s *Service) ReplaceLinks(documentID int64, relatedType model.RelatedType, relatedIDs []int64) error {
	if err := s.db.ReplaceLinks(documentID, relatedType, relatedIDs); err != nil {
		return err
	}
	s.logger.Info("document links replaced", "document", documentID, "owner_type", string(relatedType), "count", len(relatedIDs))
	return nil
}

// Template operations

func (s *Service) GetTemplate(id int64) (*model.MessageTemplate, error) {
	return s.db.GetTemplate(id)
}

func (s *Service) FindTemplates(where string, args ...any) ([]*model.MessageTemplate, error) {
	return s.db.FindTemplates(where, args...)
}

func (s *Service) SaveTemplate(t *model.MessageTemplate) (int64, error) {
	id, err := s.db.SaveTemplate(t)
	if err != nil {
		return 0, err
	}
	s.logger.Info("template saved", "id", id, "name", t.Name)
	return id, nil
}

func (s *Service) DeleteTemplate(id int64) (bool, error) {
	t, err := s.db.GetTemplate(id)
	if err != nil {
		return false, err
	}
	if t == nil {
		return false, nil
	}
	return s.db.DeleteTemplate(t)
}

// Render loads a stored template and substitutes the given variables.
// Returns ErrNotFound when no template has the given id.
func (s *Service) Render(templateID int64, vars map[string]string) (string, error) {
	t, err := s.db.GetTemplate(templateID)
	if err != nil {
		return "", err
	}
	if t == nil {
		return "", fmt.Errorf("template %d: %w", templateID, ErrNotFound)
	}
	return RenderTemplate(t.Content, vars)
}

// ownerName resolves the display name for a reminder's owner. A dangling
// owner (deleted after the reminder was created) resolves to "Unknown"
// rather than an error.
func (s *Service) ownerName(relatedType model.RelatedType, relatedID int64) (string, error) {
	switch relatedType {
	case model.RelatedContact:
		c, err := s.db.GetContact(relatedID)
		if err != nil {
			return "", err
		}
		if c == nil {
			return "Unknown", nil
		}
		return c.Name, nil
	case model.RelatedApplication:
		a, err := s.db.GetApplication(relatedID)
		if err != nil {
			return "", err
		}
		if a == nil {
			return "Unknown", nil
		}
		return a.Title + " at " + a.Company, nil
	}
	return "Unknown", nil
}

// ownerExists reports whether the contact or application a reminder points
// at is present.
func (s *Service) ownerExists(relatedType model.RelatedType, relatedID int64) (bool, error) {
	switch relatedType {
	case model.RelatedContact:
		c, err := s.db.GetContact(relatedID)
		return c != nil, err
	case model.RelatedApplication:
		a, err := s.db.GetApplication(relatedID)
		return a != nil, err
	}
	return false, fmt.Errorf("unknown related type: %q", relatedType)
}
