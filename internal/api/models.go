package api

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UserResponse defines the public representation of a user. It carries
// identity fields only; the password hash never appears in any response.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	// AccessToken is the signed bearer token used for API authorization.
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the token's validity window in seconds.
	ExpiresIn int64 `json:"expires_in"`
}

// CreateTodoRequest defines the payload for creating a todo. An omitted
// completed field defaults to false.
type CreateTodoRequest struct {
	Title     string `json:"title"     validate:"required,max=500"`
	Completed bool   `json:"completed"`
}

// UpdateTodoRequest defines the payload for replacing a todo's mutable
// fields.
type UpdateTodoRequest struct {
	Title     string `json:"title"     validate:"required,max=500"`
	Completed bool   `json:"completed"`
}
