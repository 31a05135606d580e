package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes

	"lostfound_portal/internal/session" // Session manager
	"lostfound_portal/internal/store"   // Data stores

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// SignupRequest represents the signup form
type SignupRequest struct {
	Name     string `form:"name" binding:"required"`        // Display name
	RollNo   string `form:"rollno" binding:"required"`      // Roll number
	Branch   string `form:"branch"`                         // Branch label
	Email    string `form:"email" binding:"required,email"` // Login email
	Password string `form:"password" binding:"required"`    // Plaintext password, hashed before storage
}

// LoginRequest represents the login form
type LoginRequest struct {
	Email    string `form:"email" binding:"required"`    // Login email
	Password string `form:"password" binding:"required"` // Plaintext password
}

// SignupFormHandler renders the signup form
func SignupFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "signup.html", gin.H{})
	}
}

// SignupHandler registers a new user and redirects to the login page
func SignupHandler(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			// If binding fails, re-render the form with a message
			c.HTML(http.StatusBadRequest, "signup.html", gin.H{"Error": "Please fill in all required fields."})
			return
		}
		// Create the user; the store hashes the password
		user, err := users.Register(req.Name, req.RollNo, req.Branch, req.Email, req.Password)
		if errors.Is(err, store.ErrDuplicateEmail) {
			// Duplicate email, re-render the form with a message
			c.HTML(http.StatusBadRequest, "signup.html", gin.H{"Error": "Email already exists!"})
			return
		} else if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"email": req.Email,   // Attempted email
				"error": err.Error(), // Error message
			}).Error("Signup failed") // Log signup failure
			c.HTML(http.StatusInternalServerError, "signup.html", gin.H{"Error": "Signup failed, please try again."})
			return
		}
		// Log successful signup
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,    // New user ID
			"email":   user.Email, // Registered email
		}).Info("User signed up") // Log signup success
		setFlash(c, "Signup successful! Please login.") // Notice for the login page
		c.Redirect(http.StatusFound, "/login")          // Redirect to login
	}
}

// LoginFormHandler renders the login form with any pending notice
func LoginFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"Notice": takeFlash(c)})
	}
}

// LoginHandler authenticates a user and establishes a session. Unknown
// email and wrong password produce the same message so the form never
// reveals which accounts exist.
func LoginHandler(users *store.UserStore, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			// If binding fails, re-render the form with a message
			c.HTML(http.StatusBadRequest, "login.html", gin.H{"Error": "Please enter your email and password."})
			return
		}
		// Look up the user and verify the password
		user, err := users.Authenticate(req.Email, req.Password)
		if errors.Is(err, store.ErrInvalidCredentials) {
			// Generic message for both unknown email and wrong password
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "Invalid credentials!"})
			return
		} else if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"email": req.Email,   // Attempted email
				"error": err.Error(), // Error message
			}).Error("Login failed") // Log login failure
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Login failed, please try again."})
			return
		}
		// Issue a session token
		token, err := sessions.Issue(user.ID)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Login failed, please try again."})
			return
		}
		sessions.SetCookie(c, token) // Set the session cookie
		// Log successful login
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID, // Authenticated user ID
		}).Info("User logged in") // Log login success
		setFlash(c, "Login Successful!")           // Notice for the dashboard
		c.Redirect(http.StatusFound, "/dashboard") // Redirect to dashboard
	}
}

// LogoutHandler clears the session and redirects home. Logout is
// idempotent: clearing an absent cookie is treated as already satisfied.
func LogoutHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := session.CurrentUser(c); user != nil {
			// Log the logout
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID, // User logging out
			}).Info("User logged out")
		}
		sessions.ClearCookie(c)                 // Clear the session cookie
		setFlash(c, "Logged out successfully!") // Notice for the home page
		c.Redirect(http.StatusFound, "/")       // Redirect to home
	}
}
