package handlers

import (
	"net/http"

	"scholar-portal/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

type RouterOptions struct {
	SessionName   string
	SessionSecret []byte
	SecureCookie  bool
}

func (h *Handlers) Router(opts RouterOptions) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(h.Log))

	// Session Setup
	store := cookie.NewStore(opts.SessionSecret)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 3600,
		HttpOnly: true,
		Secure:   opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(opts.SessionName, store))

	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", web.Static())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// --- Auth Routes ---
	r.GET("/login", h.LoginPage)
	r.GET("/login/sso", h.SSOLogin)
	r.POST("/login/dev", h.DevLoginSubmit)
	r.GET("/auth/callback", h.AuthCallback)
	r.GET("/logout", h.Logout)

	authorized := r.Group("/")
	authorized.Use(AuthRequired)
	{
		authorized.GET("/", h.Index)
		authorized.GET("/patents", h.PatentsPage)

		pubs := authorized.Group("/publications")
		{
			pubs.GET("", h.PublicationsPage)
			pubs.POST("/:view/toggle/:id", h.TogglePublication)
			pubs.POST("/:view/reject-target/:id", h.BeginReject)
			pubs.POST("/:view/approve/:id", h.ApprovePublication)
			pubs.POST("/:view/reject/:id", h.RejectPublication)
		}
	}

	return r, nil
}
