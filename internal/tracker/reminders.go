package tracker

import (
	"fmt"
	"sort"

	"jobtrack/internal/model"
)

// ReminderSummary is the read-side view of a reminder: the stored row plus
// the derived overdue flag and the resolved owner name. Overdue is computed
// on every read and never persisted.
type ReminderSummary struct {
	Reminder    *model.Reminder
	RelatedName string
	Overdue     bool
}

// CreateReminder validates and stores a new reminder. The owner must exist
// at creation time (referential integrity is not enforced afterwards).
// Status defaults to pending when unset.
func (s *Service) CreateReminder(r *model.Reminder) (int64, error) {
	if _, err := model.ParseRelatedType(string(r.RelatedType)); err != nil {
		return 0, err
	}
	if _, err := ParseDate(r.DueDate); err != nil {
		return 0, err
	}
	if r.Status == "" {
		r.Status = model.ReminderPending
	} else if _, err := model.ParseReminderStatus(string(r.Status)); err != nil {
		return 0, err
	}

	exists, err := s.ownerExists(r.RelatedType, r.RelatedID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("%s %d: %w", r.RelatedType, r.RelatedID, ErrNotFound)
	}

	id, err := s.db.SaveReminder(r)
	if err != nil {
		return 0, err
	}
	s.logger.Info("reminder created", "id", id, "due", r.DueDate, "owner_type", string(r.RelatedType), "owner", r.RelatedID)
	return id, nil
}

// MarkComplete sets a reminder's status to completed, regardless of its
// prior state or due date. Returns ErrNotFound for an unknown id; Snooze
// and Reopen report lookup failure the same way.
func (s *Service) MarkComplete(id int64) error {
	r, err := s.db.GetReminder(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("reminder %d: %w", id, ErrNotFound)
	}
	r.Status = model.ReminderCompleted
	if _, err := s.db.SaveReminder(r); err != nil {
		return err
	}
	s.logger.Info("reminder completed", "id", id)
	return nil
}

// Snooze sets a reminder's status to snoozed and replaces its due date.
func (s *Service) Snooze(id int64, newDate string) error {
	if _, err := ParseDate(newDate); err != nil {
		return err
	}
	r, err := s.db.GetReminder(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("reminder %d: %w", id, ErrNotFound)
	}
	r.Status = model.ReminderSnoozed
	r.DueDate = newDate
	if _, err := s.db.SaveReminder(r); err != nil {
		return err
	}
	s.logger.Info("reminder snoozed", "id", id, "due", newDate)
	return nil
}

// Reopen resets a snoozed or completed reminder back to pending.
func (s *Service) Reopen(id int64) error {
	r, err := s.db.GetReminder(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("reminder %d: %w", id, ErrNotFound)
	}
	r.Status = model.ReminderPending
	if _, err := s.db.SaveReminder(r); err != nil {
		return err
	}
	s.logger.Info("reminder reopened", "id", id)
	return nil
}

// DeleteReminder removes a reminder. Returns false for an unknown id.
func (s *Service) DeleteReminder(id int64) (bool, error) {
	r, err := s.db.GetReminder(id)
	if err != nil {
		return false, err
	}
	if r == nil {
		return false, nil
	}
	return s.db.DeleteReminder(r)
}

// IsOverdue reports whether r is a pending reminder whose due date is
// strictly before today. Completed and snoozed reminders are never overdue,
// whatever their due date. An unparseable due date is not overdue either —
// it is bad data, not a late reminder.
func (s *Service) IsOverdue(r *model.Reminder) bool {
	if r.Status != model.ReminderPending {
		return false
	}
	due, err := ParseDate(r.DueDate)
	if err != nil {
		return false
	}
	return due.Before(civilDate(s.clock.Now()))
}

// FindUpcoming returns open reminders (pending or snoozed) due within
// [today, today+horizonDays], inclusive on both ends, ordered by due date
// ascending then status. A snoozed reminder re-enters the list once its new
// due date drifts into the window; only completion removes it for good.
// Overdue reminders (due before today) are excluded; they are late, not
// upcoming.
func (s *Service) FindUpcoming(horizonDays int) ([]*ReminderSummary, error) {
	rows, err := s.db.FindReminders("status IN (?, ?)",
		string(model.ReminderPending), string(model.ReminderSnoozed))
	if err != nil {
		return nil, fmt.Errorf("loading open reminders: %w", err)
	}

	today := civilDate(s.clock.Now())
	limit := today.AddDate(0, 0, horizonDays)

	var kept []*model.Reminder
	for _, r := range rows {
		due, err := ParseDate(r.DueDate)
		if err != nil {
			s.logger.Warn("reminder has unparseable due date", "id", r.ID, "due", r.DueDate)
			continue
		}
		if due.Before(today) || due.After(limit) {
			continue
		}
		kept = append(kept, r)
	}

	sortByDue(kept)
	return s.summarize(kept)
}

// FindByRelated returns all reminders for one owner, any status.
func (s *Service) FindByRelated(relatedType model.RelatedType, relatedID int64) ([]*model.Reminder, error) {
	return s.db.FindReminders("related_type = ? AND related_id = ?", string(relatedType), relatedID)
}

// FindFiltered combines a status filter with a due-date range, both resolved
// against the clock at query time.
func (s *Service) FindFiltered(status StatusFilter, dates DateFilter) ([]*ReminderSummary, error) {
	var (
		rows []*model.Reminder
		err  error
	)
	if status == StatusAll || status == "" {
		rows, err = s.db.FindReminders("")
	} else {
		rows, err = s.db.FindReminders("status = ?", string(status))
	}
	if err != nil {
		return nil, fmt.Errorf("loading reminders: %w", err)
	}

	from, to, bounded, err := dates.bounds(s.clock.Now())
	if err != nil {
		return nil, err
	}

	var kept []*model.Reminder
	for _, r := range rows {
		if bounded {
			due, err := ParseDate(r.DueDate)
			if err != nil {
				s.logger.Warn("reminder has unparseable due date", "id", r.ID, "due", r.DueDate)
				continue
			}
			if due.Before(from) || due.After(to) {
				continue
			}
		}
		kept = append(kept, r)
	}

	sortByDue(kept)
	return s.summarize(kept)
}

// summarize attaches the derived overdue flag and owner name to each row.
func (s *Service) summarize(rows []*model.Reminder) ([]*ReminderSummary, error) {
	out := make([]*ReminderSummary, 0, len(rows))
	for _, r := range rows {
		name, err := s.ownerName(r.RelatedType, r.RelatedID)
		if err != nil {
			return nil, fmt.Errorf("resolving owner of reminder %d: %w", r.ID, err)
		}
		out = append(out, &ReminderSummary{
			Reminder:    r,
			RelatedName: name,
			Overdue:     s.IsOverdue(r),
		})
	}
	return out, nil
}

// sortByDue orders reminders by due date ascending, then status, then id for
// a stable display order. Unparseable dates sort last.
func sortByDue(rows []*model.Reminder) {
	sort.SliceStable(rows, func(i, j int) bool {
		di, erri := ParseDate(rows[i].DueDate)
		dj, errj := ParseDate(rows[j].DueDate)
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		if rows[i].Status != rows[j].Status {
			return rows[i].Status < rows[j].Status
		}
		return rows[i].ID < rows[j].ID
	})
}
