package handlers

import (
	"net/http"

	"scholar-portal/pkg/models"
	"scholar-portal/pkg/services"

	"github.com/gin-gonic/gin"
)

type patentCard struct {
	ID      string
	Details []models.Detail
}

type patentsPage struct {
	page
	Error string
	Cards []patentCard
}

func (h *Handlers) PatentsPage(c *gin.Context) {
	facultyID := sessionString(c, SessionFacultyID)
	var list services.PatentList
	list.Load(backendContext(c), h.Backend, facultyID, h.Log)

	data := patentsPage{
		page:  page{Title: "Your Patents", SignedIn: true},
		Error: list.Error,
	}
	// 502 only when the patent service was actually asked.
	status := http.StatusOK
	if list.Error != "" && facultyID != "" {
		status = http.StatusBadGateway
	}
	for _, p := range list.Patents {
		data.Cards = append(data.Cards, patentCard{ID: p.ID, Details: h.Cards.PatentDetails(p)})
	}
	c.HTML(status, "patents.html", data)
}
