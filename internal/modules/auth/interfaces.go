package auth

import (
	"context"

	"hotelier/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	// GetByEmail returns (nil, nil) when no user carries the email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
