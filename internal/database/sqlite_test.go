package database

import (
	"path/filepath"
	"testing"
	"time"

	"jobtrack/internal/model"
)

// testClock is a settable clock for exercising timestamp behavior.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

// newTestDB creates a new in-memory database with schema applied.
func newTestDB(t *testing.T, clock *testClock) *Store {
	t.Helper()

	db, err := NewStore(":memory:", clock)
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}

	if _, err := db.db.Exec(Schema); err != nil {
		db.Close()
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func fixedClock() *testClock {
	return &testClock{now: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)}
}

func TestStore_Contacts(t *testing.T) {
	t.Run("returns nil when contact not found", func(t *testing.T) {
		db := newTestDB(t, fixedClock())

		c, err := db.GetContact(999)
		if err != nil {
			t.Fatalf("GetContact() error = %v", err)
		}
		if c != nil {
			t.Errorf("GetContact() = %+v, want nil", c)
		}
	})

	t.Run("insert assigns id and timestamps", func(t *testing.T) {
		clock := fixedClock()
		db := newTestDB(t, clock)

		c := &model.Contact{
			Name:    "Ann Example",
			Company: "Acme",
			Status:  model.ContactStatuses[0],
		}
		id, err := db.SaveContact(c)
		if err != nil {
			t.Fatalf("SaveContact() error = %v", err)
		}
		if id == 0 {
			t.Fatal("SaveContact() returned id 0")
		}
		if c.ID != id {
			t.Errorf("contact ID = %d, want %d", c.ID, id)
		}

		got, err := db.GetContact(id)
		if err != nil {
			t.Fatalf("GetContact() error = %v", err)
		}
		if got == nil {
			t.Fatal("GetContact() = nil after insert")
		}
		if got.Name != "Ann Example" || got.Company != "Acme" {
			t.Errorf("roundtrip mismatch: %+v", got)
		}
		if !got.CreatedAt.Equal(clock.now) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, clock.now)
		}
		if !got.UpdatedAt.Equal(clock.now) {
			t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, clock.now)
		}
	})

	t.Run("update preserves created_at and refreshes updated_at", func(t *testing.T) {
		clock := fixedClock()
		db := newTestDB(t, clock)

		c := &model.Contact{Name: "Bob", Status: model.ContactStatuses[0]}
		id, err := db.SaveContact(c)
		if err != nil {
			t.Fatalf("SaveContact() error = %v", err)
		}
		created := clock.now

		clock.now = clock.now.Add(48 * time.Hour)
		c.Company = "NewCo"
		if _, err := db.SaveContact(c); err != nil {
			t.Fatalf("SaveContact() update error = %v", err)
		}

		got, err := db.GetContact(id)
		if err != nil {
			t.Fatalf("GetContact() error = %v", err)
		}
		if got.Company != "NewCo" {
			t.Errorf("Company = %q, want %q", got.Company, "NewCo")
		}
		if !got.CreatedAt.Equal(created) {
			t.Errorf("CreatedAt changed on update: %v, want %v", got.CreatedAt, created)
		}
		if !got.UpdatedAt.Equal(clock.now) {
			t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, clock.now)
		}
	})

	t.Run("find with condition", func(t *testing.T) {
		db := newTestDB(t, fixedClock())

		for _, name := range []string{"Ann", "Bob"} {
			if _, err := db.SaveContact(&model.Contact{Name: name, Company: "Acme"}); err != nil {
				t.Fatalf("SaveContact(%s) error = %v", name, err)
			}
		}
		if _, err := db.SaveContact(&model.Contact{Name: "Carol", Company: "Other"}); err != nil {
			t.Fatalf("SaveContact(Carol) error = %v", err)
		}

		got, err := db.FindContacts("company = ?", "Acme")
		if err != nil {
			t.Fatalf("FindContacts() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("FindContacts() returned %d contacts, want 2", len(got))
		}
	})

	t.Run("delete with no identity is a no-op", func(t *testing.T) {
		db := newTestDB(t, fixedClock())

		deleted, err := db.DeleteContact(&model.Contact{})
		if err != nil {
			t.Fatalf("DeleteContact() error = %v", err)
		}
		if deleted {
			t.Error("DeleteContact() = true for zero id")
		}
	})
}

func TestStore_DeleteContact_cascades(t *testing.T) {
	db := newTestDB(t, fixedClock())

	c := &model.Contact{Name: "Ann"}
	contactID, err := db.SaveContact(c)
	if err != nil {
		t.Fatalf("SaveContact() error = %v", err)
	}

	r := &model.Reminder{
		Title:       "Follow up",
		RelatedType: model.RelatedContact,
		RelatedID:   contactID,
		DueDate:     "01/20/2024",
		Status:      model.ReminderPending,
	}
	reminderID, err := db.SaveReminder(r)
	if err != nil {
		t.Fatalf("SaveReminder() error = %v", err)
	}

	d := &model.Document{Name: "Resume v1", Type: model.DocResume}
	docID, err := db.SaveDocument(d)
	if err != nil {
		t.Fatalf("SaveDocument() error = %v", err)
	}
	if _, err := db.LinkDocument(docID, model.RelatedContact, contactID); err != nil {
		t.Fatalf("LinkDocument() error = %v", err)
	}

	deleted, err := db.DeleteContact(c)
	if err != nil {
		t.Fatalf("DeleteContact() error = %v", err)
	}
	if !deleted {
		t.Fatal("DeleteContact() = false")
	}

	if got, _ := db.GetContact(contactID); got != nil {
		t.Error("contact still present after delete")
	}
	if got, _ := db.GetReminder(reminderID); got != nil {
		t.Error("reminder still present after owner delete")
	}
	links, err := db.FindLinks(docID)
	if err != nil {
		t.Fatalf("FindLinks() error = %v", err)
	}
	if len(links) != 0 {
		t.Errorf("document links still present after owner delete: %d", len(links))
	}
	// The document itself survives; only the link rows go.
	if got, _ := db.GetDocument(docID); got == nil {
		t.Error("document deleted along with owner")
	}
}

func TestStore_DeleteApplication_cascades(t *testing.T) {
	db := newTestDB(t, fixedClock())

	a := &model.Application{Title: "Engineer", Company: "Acme"}
	appID, err := db.SaveApplication(a)
	if err != nil {
		t.Fatalf("SaveApplication() error = %v", err)
	}

	r := &model.Reminder{
		Title:       "Check status",
		RelatedType: model.RelatedApplication,
		RelatedID:   appID,
		DueDate:     "01/20/2024",
		Status:      model.ReminderPending,
	}
	reminderID, err := db.SaveReminder(r)
	if err != nil {
		t.Fatalf("SaveReminder() error = %v", err)
	}

	deleted, err := db.DeleteApplication(a)
	if err != nil {
		t.Fatalf("DeleteApplication() error = %v", err)
	}
	if !deleted {
		t.Fatal("DeleteApplication() = false")
	}
	if got, _ := db.GetReminder(reminderID); got != nil {
		t.Error("reminder still present after owner delete")
	}
}

func TestStore_Links(t *testing.T) {
	t.Run("link is idempotent", func(t *testing.T) {
		db := newTestDB(t, fixedClock())

		docID, contactID := seedDocAndContact(t, db)

		created, err := db.LinkDocument(docID, model.RelatedContact, contactID)
		if err != nil {
			t.Fatalf("LinkDocument() error = %v", err)
		}
		if !created {
			t.Error("first LinkDocument() = false, want true")
		}

		created, err = db.LinkDocument(docID, model.RelatedContact, contactID)
		if err != nil {
			t.Fatalf("second LinkDocument() error = %v", err)
		}
		if created {
			t.Error("second LinkDocument() = true, want false")
		}

		links, err := db.FindLinks(docID)
		if err != nil {
			t.Fatalf("FindLinks() error = %v", err)
		}
		if len(links) != 1 {
			t.Errorf("FindLinks() returned %d links, want 1", len(links))
		}
	})

	t.Run("unlink reports whether a link existed", func(t *testing.T) {
		db := newTestDB(t, fixedClock())

		docID, contactID := seedDocAndContact(t, db)

		removed, err := db.UnlinkDocument(docID, model.RelatedContact, contactID)
		if err != nil {
			t.Fatalf("UnlinkDocument() error = %v", err)
		}
		if removed {
			t.Error("UnlinkDocument() = true with no link present")
		}

		if _, err := db.LinkDocument(docID, model.RelatedContact, contactID); err != nil {
			t.Fatalf("LinkDocument() error = %v", err)
		}

		removed, err = db.UnlinkDocument(docID, model.RelatedContact, contactID)
		if err != nil {
			t.Fatalf("UnlinkDocument() error = %v", err)
		}
		if !removed {
			t.Error("UnlinkDocument() = false after linking")
		}
	})

	t.Run("documents for owner", func(t *testing.T) {
		db := newTestDB(t, fixedClock())

		contactID, err := db.SaveContact(&model.Contact{Name: "Ann"})
		if err != nil {
			t.Fatalf("SaveContact() error = %v", err)
		}

		var docIDs []int64
		for _, name := range []string{"Resume", "Cover letter"} {
			id, err := db.SaveDocument(&model.Document{Name: name, Type: model.DocOther})
			if err != nil {
				t.Fatalf("SaveDocument(%s) error = %v", name, err)
			}
			docIDs = append(docIDs, id)
			if _, err := db.LinkDocument(id, model.RelatedContact, contactID); err != nil {
				t.Fatalf("LinkDocument() error = %v", err)
			}
		}
		// An unlinked document should not appear.
		if _, err := db.SaveDocument(&model.Document{Name: "Portfolio", Type: model.DocPortfolio}); err != nil {
			t.Fatalf("SaveDocument() error = %v", err)
		}

		docs, err := db.FindDocumentsFor(model.RelatedContact, contactID)
		if err != nil {
			t.Fatalf("FindDocumentsFor() error = %v", err)
		}
		if len(docs) != 2 {
			t.Fatalf("FindDocumentsFor() returned %d documents, want 2", len(docs))
		}
		for i, d := range docs {
			if d.ID != docIDs[i] {
				t.Errorf("docs[%d].ID = %d, want %d", i, d.ID, docIDs[i])
			}
		}
	})
}

func TestStore_ReplaceLinks(t *testing.T) {
	t.Run("replaces the set", func(t *testing.T) {
		db := newTestDB(t, fixedClock())

		docID, err := db.SaveDocument(&model.Document{Name: "Resume", Type: model.DocResume})
		if err != nil {
			t.Fatalf("SaveDocument() error = %v", err)
		}

		var contactIDs []int64
		for _, name := range []string{"Ann", "Bob", "Carol"} {
			id, err := db.SaveContact(&model.Contact{Name: name})
			if err != nil {
				t.Fatalf("SaveContact(%s) error = %v", name, err)
			}
			contactIDs = append(contactIDs, id)
		}

		if err := db.ReplaceLinks(docID, model.RelatedContact, contactIDs[:2]); err != nil {
			t.Fatalf("ReplaceLinks() error = %v", err)
		}
		if err := db.ReplaceLinks(docID, model.RelatedContact, contactIDs[1:]); err != nil {
			t.Fatalf("second ReplaceLinks() error = %v", err)
		}

		links, err := db.FindLinks(docID)
		if err != nil {
			t.Fatalf("FindLinks() error = %v", err)
		}
		if len(links) != 2 {
			t.Fatalf("FindLinks() returned %d links, want 2", len(links))
		}
		got := map[int64]bool{}
		for _, l := range links {
			got[l.RelatedID] = true
		}
		if !got[contactIDs[1]] || !got[contactIDs[2]] {
			t.Errorf("link set = %v, want {%d, %d}", got, contactIDs[1], contactIDs[2])
		}
	})

	t.Run("empty set clears all links of that type", func(t *testing.T) {
		db := newTestDB(t, fixedClock())

		docID, contactID := seedDocAndContact(t, db)
		if _, err := db.LinkDocument(docID, model.RelatedContact, contactID); err != nil {
			t.Fatalf("LinkDocument() error = %v", err)
		}

		if err := db.ReplaceLinks(docID, model.RelatedContact, nil); err != nil {
			t.Fatalf("ReplaceLinks() error = %v", err)
		}

		links, err := db.FindLinks(docID)
		if err != nil {
			t.Fatalf("FindLinks() error = %v", err)
		}
		if len(links) != 0 {
			t.Errorf("FindLinks() returned %d links, want 0", len(links))
		}
	})

	t.Run("duplicate ids collapse to one row", func(t *testing.T) {
		db := newTestDB(t, fixedClock())

		docID, contactID := seedDocAndContact(t, db)

		if err := db.ReplaceLinks(docID, model.RelatedContact, []int64{contactID, contactID}); err != nil {
			t.Fatalf("ReplaceLinks() error = %v", err)
		}

		links, err := db.FindLinks(docID)
		if err != nil {
			t.Fatalf("FindLinks() error = %v", err)
		}
		if len(links) != 1 {
			t.Errorf("FindLinks() returned %d links, want 1", len(links))
		}
	})

	t.Run("only touches the named type", func(t *testing.T) {
		db := newTestDB(t, fixedClock())

		docID, contactID := seedDocAndContact(t, db)
		appID, err := db.SaveApplication(&model.Application{Title: "Engineer", Company: "Acme"})
		if err != nil {
			t.Fatalf("SaveApplication() error = %v", err)
		}

		if _, err := db.LinkDocument(docID, model.RelatedContact, contactID); err != nil {
			t.Fatalf("LinkDocument() error = %v", err)
		}
		if _, err := db.LinkDocument(docID, model.RelatedApplication, appID); err != nil {
			t.Fatalf("LinkDocument() error = %v", err)
		}

		if err := db.ReplaceLinks(docID, model.RelatedContact, nil); err != nil {
			t.Fatalf("ReplaceLinks() error = %v", err)
		}

		links, err := db.FindLinks(docID)
		if err != nil {
			t.Fatalf("FindLinks() error = %v", err)
		}
		if len(links) != 1 {
			t.Fatalf("FindLinks() returned %d links, want 1", len(links))
		}
		if links[0].RelatedType != model.RelatedApplication {
			t.Errorf("surviving link type = %s, want application", links[0].RelatedType)
		}
	})
}

func TestStore_DeleteDocument_removesLinks(t *testing.T) {
	db := newTestDB(t, fixedClock())

	docID, contactID := seedDocAndContact(t, db)
	if _, err := db.LinkDocument(docID, model.RelatedContact, contactID); err != nil {
		t.Fatalf("LinkDocument() error = %v", err)
	}

	d, err := db.GetDocument(docID)
	if err != nil {
		t.Fatalf("GetDocument() error = %v", err)
	}

	deleted, err := db.DeleteDocument(d)
	if err != nil {
		t.Fatalf("DeleteDocument() error = %v", err)
	}
	if !deleted {
		t.Fatal("DeleteDocument() = false")
	}

	var count int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM document_links WHERE document_id = ?", docID).Scan(&count); err != nil {
		t.Fatalf("counting links: %v", err)
	}
	if count != 0 {
		t.Errorf("link rows remaining = %d, want 0", count)
	}
	// The contact is untouched.
	if got, _ := db.GetContact(contactID); got == nil {
		t.Error("contact deleted along with document")
	}
}

func TestStore_Documents_blobRoundTrip(t *testing.T) {
	db := newTestDB(t, fixedClock())

	content := []byte("%PDF-1.4 fake resume bytes")
	d := &model.Document{
		Name:        "Resume 2024",
		Type:        model.DocResume,
		Version:     "v3",
		FileContent: content,
		FileType:    "pdf",
	}
	id, err := db.SaveDocument(d)
	if err != nil {
		t.Fatalf("SaveDocument() error = %v", err)
	}

	got, err := db.GetDocument(id)
	if err != nil {
		t.Fatalf("GetDocument() error = %v", err)
	}
	if string(got.FileContent) != string(content) {
		t.Errorf("FileContent mismatch: %q", got.FileContent)
	}
	if got.FileType != "pdf" {
		t.Errorf("FileType = %q, want %q", got.FileType, "pdf")
	}
	if got.Type != model.DocResume {
		t.Errorf("Type = %q, want %q", got.Type, model.DocResume)
	}
}

func TestStore_Reminders(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		db := newTestDB(t, fixedClock())

		contactID, err := db.SaveContact(&model.Contact{Name: "Ann"})
		if err != nil {
			t.Fatalf("SaveContact() error = %v", err)
		}

		r := &model.Reminder{
			Title:       "Follow up",
			RelatedType: model.RelatedContact,
			RelatedID:   contactID,
			Description: "Ask about the role",
			DueDate:     "01/20/2024",
			Status:      model.ReminderPending,
		}
		id, err := db.SaveReminder(r)
		if err != nil {
			t.Fatalf("SaveReminder() error = %v", err)
		}

		got, err := db.GetReminder(id)
		if err != nil {
			t.Fatalf("GetReminder() error = %v", err)
		}
		if got.Title != "Follow up" || got.DueDate != "01/20/2024" || got.Status != model.ReminderPending {
			t.Errorf("roundtrip mismatch: %+v", got)
		}
		if got.RelatedType != model.RelatedContact || got.RelatedID != contactID {
			t.Errorf("owner mismatch: %s #%d", got.RelatedType, got.RelatedID)
		}
	})

	t.Run("find by owner", func(t *testing.T) {
		db := newTestDB(t, fixedClock())

		contactID, err := db.SaveContact(&model.Contact{Name: "Ann"})
		if err != nil {
			t.Fatalf("SaveContact() error = %v", err)
		}

		for _, due := range []string{"01/20/2024", "01/25/2024"} {
			r := &model.Reminder{
				Title: "r", RelatedType: model.RelatedContact, RelatedID: contactID,
				DueDate: due, Status: model.ReminderPending,
			}
			if _, err := db.SaveReminder(r); err != nil {
				t.Fatalf("SaveReminder() error = %v", err)
			}
		}

		got, err := db.FindReminders("related_type = ? AND related_id = ?", string(model.RelatedContact), contactID)
		if err != nil {
			t.Fatalf("FindReminders() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("FindReminders() returned %d reminders, want 2", len(got))
		}
	})

	t.Run("rejects unknown stored status", func(t *testing.T) {
		db := newTestDB(t, fixedClock())

		res, err := db.db.Exec(`INSERT INTO reminders
			(title, related_type, related_id, description, due_date, status, created_at, updated_at)
			VALUES ('x', 'contact', 1, '', '01/20/2024', 'bogus', ?, ?)`,
			time.Now(), time.Now())
		if err != nil {
			t.Fatalf("seeding bad row: %v", err)
		}
		id, _ := res.LastInsertId()

		if _, err := db.GetReminder(id); err == nil {
			t.Error("GetReminder() accepted an unknown status")
		}
	})
}

func TestStore_Templates(t *testing.T) {
	db := newTestDB(t, fixedClock())

	tmpl := &model.MessageTemplate{
		Name:     "Intro",
		Category: model.CategoryIntroduction,
		Content:  "Hi {name}, I came across {company}.",
	}
	id, err := db.SaveTemplate(tmpl)
	if err != nil {
		t.Fatalf("SaveTemplate() error = %v", err)
	}

	got, err := db.GetTemplate(id)
	if err != nil {
		t.Fatalf("GetTemplate() error = %v", err)
	}
	if got.Content != tmpl.Content || got.Category != model.CategoryIntroduction {
		t.Errorf("roundtrip mismatch: %+v", got)
	}

	deleted, err := db.DeleteTemplate(got)
	if err != nil {
		t.Fatalf("DeleteTemplate() error = %v", err)
	}
	if !deleted {
		t.Error("DeleteTemplate() = false")
	}
	if got, _ := db.GetTemplate(id); got != nil {
		t.Error("template still present after delete")
	}
}

func TestStore_BackupTo(t *testing.T) {
	db := newTestDB(t, fixedClock())

	if _, err := db.SaveContact(&model.Contact{Name: "Ann"}); err != nil {
		t.Fatalf("SaveContact() error = %v", err)
	}

	dest := filepath.Join(t.TempDir(), "backup.db")
	if err := db.BackupTo(dest); err != nil {
		t.Fatalf("BackupTo() error = %v", err)
	}

	copyDB, err := NewStore(dest, fixedClock())
	if err != nil {
		t.Fatalf("opening backup: %v", err)
	}
	defer copyDB.Close()

	contacts, err := copyDB.FindContacts("")
	if err != nil {
		t.Fatalf("FindContacts() on backup error = %v", err)
	}
	if len(contacts) != 1 || contacts[0].Name != "Ann" {
		t.Errorf("backup contents = %+v, want the one saved contact", contacts)
	}
}

func TestStore_CheckMigrations_failsOnEmptyDB(t *testing.T) {
	db, err := NewStore(":memory:", fixedClock())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	defer db.Close()

	// No migrations were applied; the schema version check must refuse.
	if err := db.CheckMigrations(); err == nil {
		t.Error("CheckMigrations() = nil on an unmigrated database")
	}
}

func seedDocAndContact(t *testing.T, db *Store) (docID, contactID int64) {
	t.Helper()

	docID, err := db.SaveDocument(&model.Document{Name: "Resume", Type: model.DocResume})
	if err != nil {
		t.Fatalf("SaveDocument() error = %v", err)
	}
	contactID, err = db.SaveContact(&model.Contact{Name: "Ann"})
	if err != nil {
		t.Fatalf("SaveContact() error = %v", err)
	}
	return docID, contactID
}
