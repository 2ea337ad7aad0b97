package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"

	"storefront/api/internal/graph"
	"storefront/api/internal/middleware"
)

const sessionCookieName = "token"

// sessionCookieWriter lets resolvers attach or clear the session cookie on
// the response they are part of.
type sessionCookieWriter struct {
	c      *gin.Context
	maxAge int
	secure bool
}

func (w sessionCookieWriter) SetToken(token string) {
	w.c.SetSameSite(http.SameSiteLaxMode)
	w.c.SetCookie(sessionCookieName, token, w.maxAge, "/", "", w.secure, true)
}

func (w sessionCookieWriter) ClearToken() {
	w.c.SetSameSite(http.SameSiteLaxMode)
	w.c.SetCookie(sessionCookieName, "", -1, "/", "", w.secure, true)
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

func (h HandlerSet) GraphQL(c *gin.Context) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cw := sessionCookieWriter{
		c:      c,
		maxAge: int(h.cfg.Security.SessionTTL.Seconds()),
		secure: h.cfg.Environment == "production",
	}

	ctx := graph.WithCookies(c.Request.Context(), cw)
	ctx = graph.WithViewer(ctx, middleware.CurrentUser(c))

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})

	c.JSON(http.StatusOK, result)
}
