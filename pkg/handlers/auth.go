package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

type loginPage struct {
	page
	SSO      bool
	DevLogin bool
	Error    string
}

func (h *Handlers) renderLogin(c *gin.Context, status int, msg string) {
	c.HTML(status, "login.html", loginPage{
		page:     page{Title: "Sign in"},
		SSO:      h.OAuth != nil,
		DevLogin: h.DevLogin,
		Error:    msg,
	})
}

func (h *Handlers) LoginPage(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, "")
}

func (h *Handlers) SSOLogin(c *gin.Context) {
	if h.OAuth == nil {
		c.Status(http.StatusNotFound)
		return
	}
	state := uuid.NewString()
	session := sessions.Default(c)
	session.Set(SessionOAuthState, state)
	if err := session.Save(); err != nil {
		h.Log.WithError(err).Error("Failed to save session")
		c.String(http.StatusInternalServerError, "Session error")
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, h.OAuth.AuthCodeURL(state, oauth2.AccessTypeOffline))
}

// AuthCallback finishes the SSO flow. The identity provider returns the
// coordinator and faculty identifiers as extra fields of the token response.
func (h *Handlers) AuthCallback(c *gin.Context) {
	if h.OAuth == nil {
		c.Status(http.StatusNotFound)
		return
	}
	session := sessions.Default(c)
	expected, _ := session.Get(SessionOAuthState).(string)
	if expected == "" || c.Query("state") != expected {
		c.String(http.StatusBadRequest, "Invalid OAuth state")
		return
	}

	token, err := h.OAuth.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		h.Log.WithError(err).Error("OAuth exchange failed")
		c.String(http.StatusInternalServerError, "OAuth Exchange Failed")
		return
	}

	coordinatorID := extraString(token, SessionCoordinatorID)
	facultyID := extraString(token, SessionFacultyID)
	if coordinatorID == "" && facultyID == "" {
		c.String(http.StatusForbidden, "No coordinator or faculty identity for this account")
		return
	}

	session.Delete(SessionOAuthState)
	setIdentity(session, coordinatorID, facultyID)
	session.Set(SessionAccessToken, token.AccessToken)
	if err := session.Save(); err != nil {
		h.Log.WithError(err).Error("Failed to save session")
		c.String(http.StatusInternalServerError, "Session error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// DevLoginSubmit signs in with identifiers typed into the login form. It is
// only routed when DEV_LOGIN is enabled.
func (h *Handlers) DevLoginSubmit(c *gin.Context) {
	if !h.DevLogin {
		c.Status(http.StatusNotFound)
		return
	}
	var form struct {
		CoordinatorID string `form:"coordinatorid"`
		FacultyID     string `form:"faculty_id"`
	}
	if err := c.ShouldBind(&form); err != nil {
		h.renderLogin(c, http.StatusBadRequest, "Invalid form")
		return
	}
	coordinatorID := strings.TrimSpace(form.CoordinatorID)
	facultyID := strings.TrimSpace(form.FacultyID)
	if coordinatorID == "" && facultyID == "" {
		h.renderLogin(c, http.StatusBadRequest, "Enter a coordinator or faculty ID")
		return
	}

	session := sessions.Default(c)
	setIdentity(session, coordinatorID, facultyID)
	session.Delete(SessionAccessToken)
	if err := session.Save(); err != nil {
		h.Log.WithError(err).Error("Failed to save session")
		c.String(http.StatusInternalServerError, "Session error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/login")
}

func setIdentity(session sessions.Session, coordinatorID, facultyID string) {
	session.Delete(SessionCoordinatorID)
	session.Delete(SessionFacultyID)
	if coordinatorID != "" {
		session.Set(SessionCoordinatorID, coordinatorID)
	}
	if facultyID != "" {
		session.Set(SessionFacultyID, facultyID)
	}
}

// extraString reads a token response field. Numeric ids decode as float64.
func extraString(token *oauth2.Token, key string) string {
	switch v := token.Extra(key).(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprint(v)
	}
}
