package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/storefront/people-catalog/internal/core/domain"
)

// PeopleRepository implements ports.PeopleRepository.
type PeopleRepository struct {
	db *gorm.DB
}

func NewPeopleRepository(s *Store) *PeopleRepository {
	return &PeopleRepository{db: s.db}
}

func (r *PeopleRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&personRow{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("email lookup: %w", err)
	}
	return count > 0, nil
}

func (r *PeopleRepository) Create(ctx context.Context, reg domain.Registration, passwordHash string) (int64, error) {
	person := personRow{
		Name:     reg.Person.Name,
		Email:    reg.Person.Email,
		JoinDate: reg.Person.JoinDate,
		Age:      reg.Person.Age,
		Gender:   int(reg.Person.Gender),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&person).Error; err != nil {
			return fmt.Errorf("insert person: %w", err)
		}
		extension, err := extensionRow(person.ID, reg.Extension)
		if err != nil {
			return err
		}
		if err := tx.Create(extension).Error; err != nil {
			return fmt.Errorf("insert %s: %w", reg.Extension.Role(), err)
		}
		if err := tx.Create(&credentialRow{ID: person.ID, PasswordHash: passwordHash}).Error; err != nil {
			return fmt.Errorf("insert credential: %w", err)
		}
		return nil
	})
	if err != nil {
		if isDuplicateKey(err) {
			return 0, domain.ErrDuplicateEmail
		}
		return 0, err
	}
	return person.ID, nil
}

func extensionRow(id int64, ext domain.RoleExtension) (any, error) {
	switch e := ext.(type) {
	case domain.CustomerProfile:
		return &customerRow{
			ID:                   id,
			ShippingAddress:      e.ShippingAddress,
			HasPremiumMembership: e.HasPremiumMembership,
		}, nil
	case domain.EmployeeProfile:
		return &employeeRow{
			ID:           id,
			Salary:       money(e.Salary),
			DepartmentID: int(e.Department),
		}, nil
	default:
		return nil, errors.New("unsupported role extension")
	}
}

func (r *PeopleRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&personRow{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete person: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *PeopleRepository) Clear(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Exec("DELETE FROM people")
	if res.Error != nil {
		return 0, fmt.Errorf("clear people: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *PeopleRepository) ListPeople(ctx context.Context) ([]domain.Person, error) {
	var rows []personRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	people := make([]domain.Person, 0, len(rows))
	for _, row := range rows {
		people = append(people, row.toDomain())
	}
	return people, nil
}

func (r *PeopleRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var rows []customerView
	err := r.db.WithContext(ctx).
		Table("customers AS c").
		Select("p.id, p.name, p.email, p.join_date, p.age, p.gender, c.shipping_address, c.has_premium_membership").
		Joins("JOIN people AS p ON p.id = c.id").
		Order("p.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, row.toDomain())
	}
	return customers, nil
}

func (r *PeopleRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var rows []employeeView
	err := r.db.WithContext(ctx).
		Table("employees AS e").
		Select("p.id, p.name, p.email, p.join_date, p.age, p.gender, e.salary, e.department_id").
		Joins("JOIN people AS p ON p.id = e.id").
		Order("p.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	employees := make([]domain.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, row.toDomain())
	}
	return employees, nil
}
