package handlers

import (
	"net/http"
	"net/url"

	"scholar-portal/pkg/models"
	"scholar-portal/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type publicationCard struct {
	ID        string
	CiteAs    string
	Status    string
	Expanded  bool
	Rejecting bool
	Details   []models.Detail
}

type publicationsPage struct {
	page
	ViewID       string
	Alert        string
	RejectReason string
	Cards        []publicationCard
}

// PublicationsPage renders a review view. Without a live view id it mounts a
// new one from the publication service.
func (h *Handlers) PublicationsPage(c *gin.Context) {
	coordinatorID := sessionString(c, SessionCoordinatorID)
	viewID := c.Query("view")

	var state services.ReviewState
	var alert string
	found := viewID != "" && h.Views.Update(viewID, coordinatorID, func(s *services.ReviewState) {
		alert = s.TakeAlert()
		state = s.Clone()
	})
	if !found {
		pubs := h.loadPublications(c, coordinatorID)
		viewID = h.Views.Create(coordinatorID, pubs)
		state = services.ReviewState{Publications: pubs}
	}

	data := publicationsPage{
		page:         page{Title: "Publications Pending Approval", SignedIn: true},
		ViewID:       viewID,
		Alert:        alert,
		RejectReason: state.RejectReason,
	}
	for _, p := range state.Publications {
		card := publicationCard{
			ID:        p.ID,
			CiteAs:    p.CiteAs,
			Status:    p.Status,
			Expanded:  p.ID != "" && p.ID == state.Expanded,
			Rejecting: p.ID != "" && p.ID == state.RejectTarget,
		}
		if card.Expanded {
			card.Details = h.Cards.PublicationDetails(p)
		}
		data.Cards = append(data.Cards, card)
	}
	c.HTML(http.StatusOK, "publications.html", data)
}

// loadPublications never surfaces a failure to the coordinator; the page
// shows an empty list instead.
func (h *Handlers) loadPublications(c *gin.Context, coordinatorID string) []models.Publication {
	if coordinatorID == "" {
		h.Log.WithError(services.ErrMissingIdentifier).Error("Coordinator ID is undefined")
		return nil
	}
	pubs, err := h.Backend.ListPublications(backendContext(c), coordinatorID)
	if err != nil {
		h.Log.WithError(err).WithField("coordinatorid", coordinatorID).Error("Error fetching publications")
		return nil
	}
	return pubs
}

func (h *Handlers) TogglePublication(c *gin.Context) {
	h.updateView(c, func(s *services.ReviewState) { s.Toggle(c.Param("id")) })
}

func (h *Handlers) BeginReject(c *gin.Context) {
	h.updateView(c, func(s *services.ReviewState) { s.BeginReject(c.Param("id")) })
}

func (h *Handlers) ApprovePublication(c *gin.Context) {
	viewID, id := c.Param("view"), c.Param("id")
	owner := sessionString(c, SessionCoordinatorID)
	if !h.Views.Exists(viewID, owner) {
		c.Redirect(http.StatusSeeOther, "/publications")
		return
	}

	if err := h.Backend.ApprovePublication(backendContext(c), id); err != nil {
		h.Log.WithError(err).WithFields(logrus.Fields{"publication_id": id}).Error("Error approving publication")
	} else {
		h.Views.Update(viewID, owner, func(s *services.ReviewState) { s.Remove(id) })
	}
	redirectToView(c, viewID, "")
}

func (h *Handlers) RejectPublication(c *gin.Context) {
	viewID, id := c.Param("view"), c.Param("id")
	owner := sessionString(c, SessionCoordinatorID)

	var form struct {
		Reason string `form:"reason"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.Error(err)
	}

	valid := services.ValidateReason(form.Reason) == nil
	ok := h.Views.Update(viewID, owner, func(s *services.ReviewState) {
		s.RejectReason = form.Reason
		if !valid {
			s.Alert = services.RejectionReasonPrompt
		}
	})
	if !ok {
		c.Redirect(http.StatusSeeOther, "/publications")
		return
	}
	if !valid {
		redirectToView(c, viewID, id)
		return
	}

	if err := h.Backend.RejectPublication(backendContext(c), id, form.Reason); err != nil {
		h.Log.WithError(err).WithFields(logrus.Fields{"publication_id": id}).Error("Error rejecting publication")
	} else {
		h.Views.Update(viewID, owner, func(s *services.ReviewState) { s.CompleteReject(id) })
	}
	redirectToView(c, viewID, "")
}

func (h *Handlers) updateView(c *gin.Context, fn func(*services.ReviewState)) {
	viewID := c.Param("view")
	if !h.Views.Update(viewID, sessionString(c, SessionCoordinatorID), fn) {
		c.Redirect(http.StatusSeeOther, "/publications")
		return
	}
	redirectToView(c, viewID, c.Param("id"))
}

func redirectToView(c *gin.Context, viewID, anchorID string) {
	target := "/publications?" + url.Values{"view": {viewID}}.Encode()
	if anchorID != "" {
		target += "#pub-" + url.PathEscape(anchorID)
	}
	c.Redirect(http.StatusSeeOther, target)
}
