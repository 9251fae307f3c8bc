package middleware

import (
	"net/http"

	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	SessionCookie = "session"
	sessionKey    = "session"
)

type SessionParser interface {
	Parse(token string) (domain.Session, error)
}

// Session attaches the wallet session from the session cookie, if any. An
// invalid or expired token leaves the request anonymous.
func Session(parser SessionParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
			if sess, err := parser.Parse(token); err == nil {
				c.Set(sessionKey, sess)
			}
		}

		c.Next()
	}
}

func RequireSession() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if _, ok := SessionFrom(c); !ok {
			c.Set("error", domain.ErrSessionRequired.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"success": false, "error": domain.ErrSessionRequired.Error()},
			)
			return
		}

		c.Next()
	}
}

func SessionFrom(c *ginext.Context) (domain.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return domain.Session{}, false
	}
	sess, ok := v.(domain.Session)
	return sess, ok
}
