package services

import (
	"errors"
	"strings"

	"scholar-portal/pkg/models"
)

// RejectionReasonPrompt is shown when a rejection is submitted without a reason.
const RejectionReasonPrompt = "Please provide a reason for rejection"

var ErrEmptyReason = errors.New("rejection reason is empty")

// ValidateReason accepts any reason that is not blank after trimming.
func ValidateReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyReason
	}
	return nil
}

// ReviewState is the coordinator's working copy of the pending list plus the
// two toggles of the review page. At most one card is expanded and at most
// one card shows the rejection form.
type ReviewState struct {
	Publications []models.Publication
	Expanded     string
	RejectTarget string
	RejectReason string
	Alert        string
}

// Toggle expands id, or collapses it when it is already expanded.
func (s *ReviewState) Toggle(id string) {
	if s.Expanded == id {
		s.Expanded = ""
		return
	}
	s.Expanded = id
}

func (s *ReviewState) BeginReject(id string) {
	s.RejectTarget = id
}

// Remove drops id from the working copy. Other entries keep their order.
func (s *ReviewState) Remove(id string) bool {
	kept := make([]models.Publication, 0, len(s.Publications))
	for _, p := range s.Publications {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	removed := len(kept) != len(s.Publications)
	s.Publications = kept
	return removed
}

// CompleteReject removes a rejected publication and resets the rejection form.
func (s *ReviewState) CompleteReject(id string) {
	s.Remove(id)
	s.RejectReason = ""
	s.RejectTarget = ""
}

// TakeAlert returns the pending alert and clears it.
func (s *ReviewState) TakeAlert() string {
	a := s.Alert
	s.Alert = ""
	return a
}

func (s *ReviewState) Clone() ReviewState {
	c := *s
	c.Publications = append([]models.Publication(nil), s.Publications...)
	return c
}
