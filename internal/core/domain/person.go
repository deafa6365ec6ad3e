package domain

import "time"

// Gender is stored as its numeric value.
type Gender int

const (
	GenderMale   Gender = 0
	GenderFemale Gender = 1
)

// Valid reports whether g is a defined gender.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "unknown"
	}
}

// Department identifies the employee's department. Values start at 1.
type Department int

const (
	DepartmentIT         Department = 1
	DepartmentSales      Department = 2
	DepartmentHR         Department = 3
	DepartmentManagement Department = 4
	DepartmentAccounting Department = 5
	DepartmentQA         Department = 6
)

// Valid reports whether d is a defined department.
func (d Department) Valid() bool {
	return d >= DepartmentIT && d <= DepartmentQA
}

func (d Department) String() string {
	switch d {
	case DepartmentIT:
		return "IT"
	case DepartmentSales:
		return "Sales"
	case DepartmentHR:
		return "HR"
	case DepartmentManagement:
		return "Management"
	case DepartmentAccounting:
		return "Accounting"
	case DepartmentQA:
		return "QA"
	default:
		return "unknown"
	}
}

// Role names the extension a Person carries.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
)

// Person is the identity record shared by every role.
type Person struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinDate time.Time `json:"joinDate"`
	Age      int       `json:"age"`
	Gender   Gender    `json:"gender"`
}

// RoleExtension is the closed set of role-specific records keyed by the
// owning Person's id. Only CustomerProfile and EmployeeProfile implement it.
type RoleExtension interface {
	Role() Role
	validate() error
}

// CustomerProfile holds the customer-only columns.
type CustomerProfile struct {
	ShippingAddress      string `json:"shippingAddress"`
	HasPremiumMembership bool   `json:"hasPremiumMembership"`
}

func (CustomerProfile) Role() Role { return RoleCustomer }

func (CustomerProfile) validate() error { return nil }

// EmployeeProfile holds the employee-only columns.
type EmployeeProfile struct {
	Salary     float64    `json:"salary"`
	Department Department `json:"department"`
}

func (EmployeeProfile) Role() Role { return RoleEmployee }

func (p EmployeeProfile) validate() error {
	if p.Salary < 0 {
		return &ValidationError{Field: "salary", Reason: ReasonNegative}
	}
	if !p.Department.Valid() {
		return &ValidationError{Field: "department", Reason: ReasonInvalidValue}
	}
	return nil
}

// Customer is the read model of a Person joined with its CustomerProfile.
type Customer struct {
	Person
	CustomerProfile
}

// Employee is the read model of a Person joined with its EmployeeProfile.
type Employee struct {
	Person
	EmployeeProfile
}

// Registration is everything the registrar writes for one new person.
type Registration struct {
	Person    Person
	Extension RoleExtension
	Password  string
}

// Validate checks the base fields, the extension and the password before any
// write is attempted.
func (r Registration) Validate() error {
	switch {
	case r.Person.Name == "":
		return &ValidationError{Field: "name", Reason: ReasonEmpty}
	case r.Person.Email == "":
		return &ValidationError{Field: "email", Reason: ReasonEmpty}
	}
	if err := validatePassword("password", r.Password); err != nil {
		return err
	}
	switch {
	case r.Person.Age <= 0:
		return &ValidationError{Field: "age", Reason: ReasonNotPositive}
	case !r.Person.Gender.Valid():
		return &ValidationError{Field: "gender", Reason: ReasonInvalidValue}
	case r.Extension == nil:
		return &ValidationError{Field: "role", Reason: ReasonInvalidValue}
	}
	return r.Extension.validate()
}

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

func validatePassword(field, password string) error {
	switch {
	case password == "":
		return &ValidationError{Field: field, Reason: ReasonEmpty}
	case len(password) > MaxPasswordBytes:
		return &ValidationError{Field: field, Reason: ReasonTooLong}
	}
	return nil
}
