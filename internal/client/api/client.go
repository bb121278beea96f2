package api

import (
	"context"

	"phonestock/internal/client/models"
)

// Client defines the operations of the marketplace REST API consumed by the
// phonestock CLI.
//
// Contract:
//   - Login/Register: exchange credentials for a bearer token and user profile.
//   - VerifyToken: validate the currently held token and return the fresh
//     user profile from the server.
//   - Logout: invalidate the server-side session (best-effort for callers).
//   - ListPhones/GetPhone/CreatePhone/UpdatePhone/SellPhone: catalog access.
//   - ListSellouts: the sold-items history.
//
// Implementations hold the bearer token for outbound requests but never touch
// durable storage; persistence is the session layer's concern. All methods
// must honor context cancellation/timeouts.
type Client interface {
	SetToken(token string)
	ClearToken()
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Register(ctx context.Context, name, email, password, role string) (*AuthResponse, error)
	VerifyToken(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	ListPhones(ctx context.Context) ([]models.Phone, error)
	GetPhone(ctx context.Context, id string) (*models.Phone, error)
	CreatePhone(ctx context.Context, phone models.Phone) (*models.Phone, error)
	UpdatePhone(ctx context.Context, phone models.Phone) (*models.Phone, error)
	SellPhone(ctx context.Context, req SellRequest) (*SellConfirmation, error)
	ListSellouts(ctx context.Context) ([]models.Phone, error)
}
