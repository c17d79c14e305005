package models

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username" binding:"required,min=3,max=50"`
	DOB       string `json:"dob,omitempty"` // YYYY-MM-DD, optional
	Gender    string `json:"gender,omitempty"`
	Mobile    string `json:"mobile,omitempty"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for user login.
// Identifier may be either the email address or the username.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
