package services

import (
	"context"
	"errors"

	"scholar-portal/pkg/models"

	"github.com/sirupsen/logrus"
)

// PatentFetchError is the only failure text the patent page shows.
const PatentFetchError = "Error fetching patents."

var ErrMissingIdentifier = errors.New("identifier is undefined")

type PatentLister interface {
	ListPatents(ctx context.Context, facultyID string) ([]models.Patent, error)
}

// PatentList is the patent page state: loading while the fetch runs, then
// either an error message or the list.
type PatentList struct {
	Loading bool
	Error   string
	Patents []models.Patent
}

// Load fetches the faculty member's patents. Loading is cleared on every path.
func (l *PatentList) Load(ctx context.Context, src PatentLister, facultyID string, log *logrus.Logger) {
	l.Loading = true
	defer func() { l.Loading = false }()

	if facultyID == "" {
		log.WithError(ErrMissingIdentifier).Error("Faculty ID is undefined")
		l.Error = PatentFetchError
		return
	}

	patents, err := src.ListPatents(ctx, facultyID)
	if err != nil {
		log.WithError(err).WithField("faculty_id", facultyID).Error("Error fetching patents")
		l.Error = PatentFetchError
		return
	}
	l.Error = ""
	l.Patents = patents
}
