package models

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthTokens is the login response.
type AuthTokens struct {
	AuthToken string `json:"auth_token"`
}

// RegisterData is the registration payload. Confirm is checked locally and
// never sent.
type RegisterData struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"-"`
	Type     Role   `json:"type"`
	Location string `json:"location,omitempty"`
}

// ProfileUpdate is a partial update of the current user. Nil fields are
// left untouched by the backend.
type ProfileUpdate struct {
	Username *string `json:"username,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
}

// LocationUpdate carries a GPS position.
type LocationUpdate struct {
	Latitude  float64
	Longitude float64
}
