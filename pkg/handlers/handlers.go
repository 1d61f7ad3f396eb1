package handlers

import (
	"context"
	"net/http"

	"scholar-portal/pkg/models"
	"scholar-portal/pkg/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// Session keys. The identifiers are written only by the sign-in handlers.
const (
	SessionCoordinatorID = "coordinatorid"
	SessionFacultyID     = "faculty_id"
	SessionAccessToken   = "access_token"
	SessionOAuthState    = "oauth_state"
)

//go:generate mockgen -source=handlers.go -destination=mock_backend_test.go -package=handlers

// Backend is the record service surface the pages depend on.
type Backend interface {
	ListPublications(ctx context.Context, coordinatorID string) ([]models.Publication, error)
	ApprovePublication(ctx context.Context, id string) error
	RejectPublication(ctx context.Context, id, reason string) error
	ListPatents(ctx context.Context, facultyID string) ([]models.Patent, error)
}

type Handlers struct {
	Backend  Backend
	Views    *services.ViewStore
	Cards    *services.CardBuilder
	OAuth    *oauth2.Config
	DevLogin bool
	Log      *logrus.Logger
}

type page struct {
	Title    string
	SignedIn bool
}

func sessionString(c *gin.Context, key string) string {
	s, _ := sessions.Default(c).Get(key).(string)
	return s
}

func signedIn(c *gin.Context) bool {
	return sessionString(c, SessionCoordinatorID) != "" || sessionString(c, SessionFacultyID) != ""
}

// backendContext carries the caller's token and request id to the record services.
func backendContext(c *gin.Context) context.Context {
	ctx := services.WithRequestID(c.Request.Context(), c.GetString(requestIDKey))
	return services.WithAccessToken(ctx, sessionString(c, SessionAccessToken))
}

func (h *Handlers) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":          "Scholar Portal",
		"SignedIn":       true,
		"HasCoordinator": sessionString(c, SessionCoordinatorID) != "",
		"HasFaculty":     sessionString(c, SessionFacultyID) != "",
	})
}
