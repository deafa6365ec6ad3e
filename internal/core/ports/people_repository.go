package ports

import (
	"context"

	"github.com/storefront/people-catalog/internal/core/domain"
)

// PeopleRepository persists people, their role extensions and credentials.
type PeopleRepository interface {
	// EmailExists reports whether a person already uses email (exact match).
	EmailExists(ctx context.Context, email string) (bool, error)

	// Create inserts the person, its role extension and its credential in a
	// single transaction and returns the generated id. passwordHash replaces
	// reg.Password in storage.
	Create(ctx context.Context, reg domain.Registration, passwordHash string) (int64, error)

	// Delete removes a person; dependents cascade.
	Delete(ctx context.Context, id int64) (int64, error)

	// Clear removes every person; dependents cascade.
	Clear(ctx context.Context) (int64, error)

	ListPeople(ctx context.Context) ([]domain.Person, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}
