package auth

import (
	"net/http"
	"strings"
	"time"
)

// CookieOptions defines how the credential cookie is issued and cleared.
type CookieOptions struct {
	Name     string
	Path     string
	MaxAge   time.Duration
	Secure   bool
	HTTPOnly bool
	SameSite http.SameSite
}

// normalize applies safe defaults without breaking callers.
func (o CookieOptions) normalize() CookieOptions {
	if o.Name == "" {
		o.Name = "token"
	}
	if o.Path == "" {
		o.Path = "/"
	}
	if o.MaxAge <= 0 {
		o.MaxAge = 24 * time.Hour
	}
	if o.SameSite == http.SameSiteDefaultMode {
		o.SameSite = http.SameSiteStrictMode
	}
	o.HTTPOnly = true
	return o
}

// ExtractCredential returns the bearer credential from the request: the
// credential cookie first, the Authorization header as fallback. Empty
// string when neither is present.
func ExtractCredential(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return strings.TrimSpace(cookie.Value)
	}
	return extractBearerToken(r)
}

// extractBearerToken extracts a bearer token from the Authorization header.
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}

	return strings.TrimSpace(header[len(prefix):])
}

// SetCredentialCookie issues the credential cookie to the client.
func SetCredentialCookie(w http.ResponseWriter, token string, opts CookieOptions) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    token,
		Path:     opts.Path,
		MaxAge:   int(opts.MaxAge.Seconds()),
		HttpOnly: opts.HTTPOnly,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// ClearCredentialCookie expires the credential cookie on the client. It is
// called on every gate failure and on logout.
func ClearCredentialCookie(w http.ResponseWriter, opts CookieOptions) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    "",
		Path:     opts.Path,
		MaxAge:   -1,
		HttpOnly: opts.HTTPOnly,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}
