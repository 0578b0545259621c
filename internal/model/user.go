package model

import "time"

// User is a registered account. Exactly one of the two role flags is set at
// registration; neither is ever changed afterwards through the API.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsCreator    bool      `json:"isCreator"`
	IsConsumer   bool      `json:"isConsumer"`
	IsStaff      bool      `json:"-"`
	IsSuperuser  bool      `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterRequest is the API request body for account registration.
// Role accepts "creator" or "consumer" (case-insensitive); anything else,
// including an empty string, is treated as "consumer".
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is the API request body for credential login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the API request body for refresh-token rotation.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// TokenPair is the minted bearer-credential pair returned by login,
// registration and refresh.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthResponse is the API response for register and login.
type AuthResponse struct {
	User    *UserResponse `json:"user,omitempty"`
	Access  string        `json:"access"`
	Refresh string        `json:"refresh"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	IsCreator  bool   `json:"isCreator"`
	IsConsumer bool   `json:"isConsumer"`
}
