package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the acknowledgement envelope for fire-and-forget routes
// and the root greeting.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request / Response types ---

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createItemRequest struct {
	Name        string   `json:"name"  validate:"required"`
	Description *string  `json:"description,omitempty"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Tax         *float64 `json:"tax,omitempty"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type actionRequest struct {
	User string `json:"user"`
}
