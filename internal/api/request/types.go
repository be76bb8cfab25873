package request

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the request body for updating the
// authenticated user's profile. Absent fields are left unchanged.
type UpdateProfileRequest struct {
	DisplayName     *string `json:"display_name"`
	Avatar          *string `json:"avatar"`
	ThemePreference *string `json:"theme_preference"`
}

// SubmitScoreRequest is the request body for submitting a score.
// Score is a pointer so a missing field can be told apart from zero.
type SubmitScoreRequest struct {
	Score *int `json:"score"`
}
