package api

import "phonestock/internal/client/models"

// AuthResponse is the success shape of POST /login and POST /user.
// Token and User are both required; responses missing either are rejected
// at the boundary with a *ServerError instead of propagating zero values.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// SellRequest is the body of POST /delete. The upstream API expects the full
// item snapshot alongside the id.
type SellRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
}

// SellConfirmation is the confirmation object returned by POST /delete.
type SellConfirmation struct {
	Message string        `json:"message"`
	Item    *models.Phone `json:"item,omitempty"`
}

// errorResponse is the failure body shape shared by all endpoints.
type errorResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
