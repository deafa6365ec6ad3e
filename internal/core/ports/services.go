package ports

import (
	"context"

	"github.com/storefront/people-catalog/internal/core/domain"
)

// RegisterCustomerInput carries a new customer. ShippingAddress and
// HasPremium are optional and default to "" and false.
type RegisterCustomerInput struct {
	Name            string
	Email           string
	Password        string
	Age             int
	Gender          domain.Gender
	HasPremium      bool
	ShippingAddress string
}

// RegisterEmployeeInput carries a new employee.
type RegisterEmployeeInput struct {
	Name       string
	Email      string
	Password   string
	Age        int
	Gender     domain.Gender
	Salary     float64
	Department domain.Department
}

// UpdateCustomerInput is a composite patch over people, customers and
// credentials.
type UpdateCustomerInput struct {
	Person     domain.PersonPatch
	Customer   domain.CustomerPatch
	Credential domain.CredentialPatch
}

// UpdateEmployeeInput is a composite patch over people, employees and
// credentials.
type UpdateEmployeeInput struct {
	Person     domain.PersonPatch
	Employee   domain.EmployeePatch
	Credential domain.CredentialPatch
}

// PeopleService covers registration and person-side mutations.
type PeopleService interface {
	// RegisterCustomer returns domain.ErrDuplicateEmail without side effects
	// when the email is taken.
	RegisterCustomer(ctx context.Context, in RegisterCustomerInput) (int64, error)
	RegisterEmployee(ctx context.Context, in RegisterEmployeeInput) (int64, error)
	UpdateCustomer(ctx context.Context, id int64, in UpdateCustomerInput) (*domain.CompositeResult, error)
	UpdateEmployee(ctx context.Context, id int64, in UpdateEmployeeInput) (*domain.CompositeResult, error)
	DeletePerson(ctx context.Context, id int64) (bool, error)
	ClearPeople(ctx context.Context) (bool, error)
}

// CatalogService covers category and item mutations.
type CatalogService interface {
	AddCategory(ctx context.Context, name string) (int64, error)
	EditCategory(ctx context.Context, id int64, name string) (bool, error)
	DeleteCategory(ctx context.Context, id int64) (bool, error)
	// AddItem returns domain.ErrCategoryNotFound or
	// domain.ErrInvalidParameters without writing.
	AddItem(ctx context.Context, in domain.NewItem) (int64, error)
	EditItem(ctx context.Context, id int64, patch domain.ItemPatch) (int64, error)
	DeleteItem(ctx context.Context, id int64) (bool, error)
}

// QueryService is the read side. A limit <= 0 applies the default bound.
type QueryService interface {
	People(ctx context.Context, limit int) ([]domain.Person, error)
	Customers(ctx context.Context, limit int) ([]domain.Customer, error)
	Employees(ctx context.Context, limit int) ([]domain.Employee, error)
	Items(ctx context.Context, limit int) ([]domain.Item, error)
	Categories(ctx context.Context, limit int) ([]domain.Category, error)
}
