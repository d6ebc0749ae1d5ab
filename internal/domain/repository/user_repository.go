package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
)

// UserRepository defines the interface for cashier account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
