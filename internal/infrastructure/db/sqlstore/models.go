package sqlstore

import (
	"math"
	"time"

	"github.com/storefront/people-catalog/internal/core/domain"
)

// money rounds an amount to the two decimal places the salary and price
// columns hold, so every backend stores and returns the same value.
func money(v float64) float64 {
	return math.Round(v*100) / 100
}

type personRow struct {
	ID       int64     `gorm:"column:id;primaryKey"`
	Name     string    `gorm:"column:name"`
	Email    string    `gorm:"column:email"`
	JoinDate time.Time `gorm:"column:join_date"`
	Age      int       `gorm:"column:age"`
	Gender   int       `gorm:"column:gender"`
}

func (personRow) TableName() string { return string(domain.TablePeople) }

func (r personRow) toDomain() domain.Person {
	return domain.Person{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		JoinDate: r.JoinDate.UTC(),
		Age:      r.Age,
		Gender:   domain.Gender(r.Gender),
	}
}

type customerRow struct {
	ID                   int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	ShippingAddress      string `gorm:"column:shipping_address"`
	HasPremiumMembership bool   `gorm:"column:has_premium_membership"`
}

func (customerRow) TableName() string { return string(domain.TableCustomers) }

type employeeRow struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement:false"`
	Salary       float64 `gorm:"column:salary"`
	DepartmentID int     `gorm:"column:department_id"`
}

func (employeeRow) TableName() string { return string(domain.TableEmployees) }

type credentialRow struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	PasswordHash string `gorm:"column:password_hash"`
}

func (credentialRow) TableName() string { return string(domain.TableCredentials) }

type categoryRow struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (categoryRow) TableName() string { return string(domain.TableCategories) }

func (r categoryRow) toDomain() domain.Category {
	return domain.Category{ID: r.ID, Name: r.Name}
}

type itemRow struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name"`
	Price       float64 `gorm:"column:price"`
	Description string  `gorm:"column:description"`
	Quantity    int     `gorm:"column:quantity"`
	IsAvailable bool    `gorm:"column:is_available"`
	CategoryID  int64   `gorm:"column:category_id"`
}

func (itemRow) TableName() string { return string(domain.TableItems) }

func (r itemRow) toDomain() domain.Item {
	return domain.Item{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Quantity:    r.Quantity,
		IsAvailable: r.IsAvailable,
		CategoryID:  r.CategoryID,
	}
}

// customerView and employeeView are the scan targets of the joined reads.
type customerView struct {
	ID                   int64     `gorm:"column:id"`
	Name                 string    `gorm:"column:name"`
	Email                string    `gorm:"column:email"`
	JoinDate             time.Time `gorm:"column:join_date"`
	Age                  int       `gorm:"column:age"`
	Gender               int       `gorm:"column:gender"`
	ShippingAddress      string    `gorm:"column:shipping_address"`
	HasPremiumMembership bool      `gorm:"column:has_premium_membership"`
}

func (v customerView) toDomain() domain.Customer {
	return domain.Customer{
		Person: personRow{
			ID: v.ID, Name: v.Name, Email: v.Email, JoinDate: v.JoinDate, Age: v.Age, Gender: v.Gender,
		}.toDomain(),
		CustomerProfile: domain.CustomerProfile{
			ShippingAddress:      v.ShippingAddress,
			HasPremiumMembership: v.HasPremiumMembership,
		},
	}
}

type employeeView struct {
	ID           int64     `gorm:"column:id"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	JoinDate     time.Time `gorm:"column:join_date"`
	Age          int       `gorm:"column:age"`
	Gender       int       `gorm:"column:gender"`
	Salary       float64   `gorm:"column:salary"`
	DepartmentID int       `gorm:"column:department_id"`
}

func (v employeeView) toDomain() domain.Employee {
	return domain.Employee{
		Person: personRow{
			ID: v.ID, Name: v.Name, Email: v.Email, JoinDate: v.JoinDate, Age: v.Age, Gender: v.Gender,
		}.toDomain(),
		EmployeeProfile: domain.EmployeeProfile{
			Salary:     v.Salary,
			Department: domain.Department(v.DepartmentID),
		},
	}
}
