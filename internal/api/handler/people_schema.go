package handler

import "github.com/storefront/people-catalog/internal/core/domain"

// --- Request types ---

type registerCustomerRequest struct {
	Name                 string         `json:"name"                 validate:"required"`
	Email                string         `json:"email"                validate:"required,email"`
	Password             string         `json:"password"             validate:"required"`
	Age                  int            `json:"age"                  validate:"required,gt=0"`
	Gender               *domain.Gender `json:"gender"               validate:"required,oneof=0 1"`
	HasPremiumMembership bool           `json:"hasPremiumMembership"`
	ShippingAddress      string         `json:"shippingAddress"`
}

type registerEmployeeRequest struct {
	Name       string            `json:"name"       validate:"required"`
	Email      string            `json:"email"      validate:"required,email"`
	Password   string            `json:"password"   validate:"required"`
	Age        int               `json:"age"        validate:"required,gt=0"`
	Gender     *domain.Gender    `json:"gender"     validate:"required,oneof=0 1"`
	Salary     float64           `json:"salary"     validate:"gte=0"`
	Department domain.Department `json:"department" validate:"required,min=1,max=6"`
}

// updateCustomerRequest is a sparse body: a missing key or null leaves the
// column untouched.
type updateCustomerRequest struct {
	domain.PersonPatch
	domain.CustomerPatch
	domain.CredentialPatch
}

type updateEmployeeRequest struct {
	domain.PersonPatch
	domain.EmployeePatch
	domain.CredentialPatch
}

// --- Response types ---

type personResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	JoinDate string `json:"joinDate"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

type customerResponse struct {
	personResponse
	ShippingAddress      string `json:"shippingAddress"`
	HasPremiumMembership bool   `json:"hasPremiumMembership"`
}

type employeeResponse struct {
	personResponse
	Salary     float64 `json:"salary"`
	Department string  `json:"department"`
}
