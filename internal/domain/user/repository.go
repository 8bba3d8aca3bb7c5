package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error

	List(ctx context.Context, filter Filter) ([]*User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type Filter struct {
	Role     *string
	Page     int
	PageSize int
}
