package session

import (
	"net/http" // Cookie SameSite mode
	"time"     // Time for token expiration

	"lostfound_portal/internal/domain" // Domain models
	"lostfound_portal/internal/store"  // Credential store

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
)

// CookieName is the cookie carrying the signed session token
const CookieName = "session"

// UserKey is the gin context key holding the authenticated user
const UserKey = "user"

// Claims carried by a session token
type Claims struct {
	UserID               uint `json:"user_id"` // Custom claim for user ID
	jwt.RegisteredClaims      // Standard JWT claims
}

// Manager issues and validates signed client-side session tokens. There is
// no server-side session table: logout clears the cookie, and a token
// stolen before logout stays valid until it expires.
type Manager struct {
	secret string        // Signing secret
	ttl    time.Duration // Token lifetime
}

// NewManager returns a session manager with the given secret and lifetime
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl}
}

// Issue creates a signed session token for a given user ID
func (m *Manager) Issue(userID uint) (string, error) {
	// Set token claims
	claims := Claims{
		UserID: userID, // Custom claim for user ID
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)), // Token expiry
			IssuedAt:  jwt.NewNumericDate(time.Now()),            // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(m.secret))                // Sign the token with the secret
}

// Parse validates a session token string and returns its claims
func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(m.secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}

// SetCookie writes the session cookie on the response. httpOnly keeps it
// away from page scripts.
func (m *Manager) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", false, true)
}

// ClearCookie removes the session cookie. Clearing an absent cookie is
// still a success, so logout is idempotent.
func (m *Manager) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// RequireAuth gates protected routes. It validates the session cookie,
// loads the user record and stores it in the context; on any failure the
// browser is redirected to the login page rather than handed a bare 401.
func (m *Manager) RequireAuth(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(CookieName) // Get session cookie
		if err != nil {
			// No cookie, redirect to login
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		claims, err := m.Parse(tokenStr) // Parse the session token
		if err != nil {
			// Invalid or expired token, redirect to login
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		user, err := users.FindByID(claims.UserID) // Resolve the session subject
		if err != nil {
			// User no longer exists, redirect to login
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(UserKey, user) // Store the user in context
		c.Next()             // Proceed to the next handler
	}
}

// CurrentUser returns the authenticated user placed in the context by
// RequireAuth, or nil outside a protected route.
func CurrentUser(c *gin.Context) *domain.User {
	if u, ok := c.Get(UserKey); ok {
		if user, ok := u.(*domain.User); ok {
			return user
		}
	}
	return nil
}
