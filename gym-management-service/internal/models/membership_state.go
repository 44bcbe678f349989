package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrMembershipBanned = errors.New("membership is banned")

// ApplyPayment moves the membership to ACTIVE for one more period.
//
// A first payment starts the period at completedAt. A renewal extends from the later of
// the current end date and completedAt, so early renewals keep their remaining days and
// late renewals do not leave a gap. Banned memberships reject payments.
func (m *Membership) ApplyPayment(transactionID string, completedAt time.Time, period time.Duration) error {
	completedAt = completedAt.UTC()

	switch m.Status {
	case StatusPendingPayment:
		m.StartDate = completedAt
		m.EndDate = completedAt.Add(period)
	case StatusActive:
		m.EndDate = later(m.EndDate, completedAt).Add(period)
	case StatusExpired:
		m.StartDate = completedAt
		m.EndDate = later(m.EndDate, completedAt).Add(period)
	case StatusBanned:
		return ErrMembershipBanned
	default:
		return fmt.Errorf("unknown membership status %q", m.Status)
	}

	m.Status = StatusActive
	m.TransactionID = &transactionID
	if m.ActivatedAt == nil {
		m.ActivatedAt = &completedAt
	}
	return nil
}

// Expire reports whether an ACTIVE membership ended before now and marks it EXPIRED.
func (m *Membership) Expire(now time.Time) bool {
	if m.Status != StatusActive || !m.EndDate.Before(now) {
		return false
	}
	m.Status = StatusExpired
	return true
}

// Ban moves the membership to BANNED from any state.
func (m *Membership) Ban() {
	m.Status = StatusBanned
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
