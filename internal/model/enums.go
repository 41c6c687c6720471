package model

import (
	"fmt"
	"slices"
)

// RelatedType identifies which table a DocumentLink or Reminder points into.
type RelatedType string

const (
	RelatedContact     RelatedType = "contact"
	RelatedApplication RelatedType = "application"
)

// ParseRelatedType converts a stored string into a RelatedType,
// rejecting anything outside the closed set.
func ParseRelatedType(s string) (RelatedType, error) {
	switch RelatedType(s) {
	case RelatedContact, RelatedApplication:
		return RelatedType(s), nil
	}
	return "", fmt.Errorf("unknown related type: %q", s)
}

// ReminderStatus is the stored lifecycle state of a Reminder.
// Overdue is not a status; it is derived at read time from DueDate.
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderCompleted ReminderStatus = "completed"
	ReminderSnoozed   ReminderStatus = "snoozed"
)

func ParseReminderStatus(s string) (ReminderStatus, error) {
	switch ReminderStatus(s) {
	case ReminderPending, ReminderCompleted, ReminderSnoozed:
		return ReminderStatus(s), nil
	}
	return "", fmt.Errorf("unknown reminder status: %q", s)
}

// DocumentType is the kind of stored document.
type DocumentType string

const (
	DocResume      DocumentType = "Resume"
	DocCoverLetter DocumentType = "Cover Letter"
	DocPortfolio   DocumentType = "Portfolio"
	DocReferences  DocumentType = "References"
	DocOther       DocumentType = "Other"
)

func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(s) {
	case DocResume, DocCoverLetter, DocPortfolio, DocReferences, DocOther:
		return DocumentType(s), nil
	}
	return "", fmt.Errorf("unknown document type: %q", s)
}

// TemplateCategory groups message templates.
type TemplateCategory string

const (
	CategoryIntroduction TemplateCategory = "Introduction"
	CategoryFollowUp     TemplateCategory = "Follow-up"
	CategoryThankYou     TemplateCategory = "Thank You"
	CategoryOther        TemplateCategory = "Other"
)

func ParseTemplateCategory(s string) (TemplateCategory, error) {
	switch TemplateCategory(s) {
	case CategoryIntroduction, CategoryFollowUp, CategoryThankYou, CategoryOther:
		return TemplateCategory(s), nil
	}
	return "", fmt.Errorf("unknown template category: %q", s)
}

// ContactStatuses are the display labels a Contact.Status may hold.
// The emoji prefix is part of the label, not decoration.
var ContactStatuses = []string{
	"🔵 Not Connected",
	"✅ Connected",
	"💬 Messaged",
	"🔄 Followed Up",
	"📅 Interviewing",
	"👻 Ghosted",
	"❌ Rejected",
	"🏆 Offer",
}

// ApplicationStatuses are the display labels an Application.Status may hold.
var ApplicationStatuses = []string{
	"📝 Not Applied",
	"✅ Applied",
	"🔍 Under Review",
	"📞 Phone Screen",
	"📅 Interviewing",
	"🏃‍♂️ Final Rounds",
	"⏳ Waiting for Decision",
	"👻 Ghosted",
	"❌ Rejected",
	"🏆 Offer",
	"💼 Accepted",
}

// ValidContactStatus reports whether s is one of the known contact labels.
func ValidContactStatus(s string) bool {
	return slices.Contains(ContactStatuses, s)
}

// ValidApplicationStatus reports whether s is one of the known application labels.
func ValidApplicationStatus(s string) bool {
	return slices.Contains(ApplicationStatuses, s)
}
