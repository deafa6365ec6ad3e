package sqlstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/storefront/people-catalog/internal/core/domain"
)

// patchColumns is the allow-list mapping patch field names to columns per
// table. Anything not listed is rejected before a statement is built.
var patchColumns = map[domain.Table]map[string]string{
	domain.TablePeople: {
		domain.FieldName:   "name",
		domain.FieldEmail:  "email",
		domain.FieldAge:    "age",
		domain.FieldGender: "gender",
	},
	domain.TableCustomers: {
		domain.FieldShippingAddress:      "shipping_address",
		domain.FieldHasPremiumMembership: "has_premium_membership",
	},
	domain.TableEmployees: {
		domain.FieldSalary:     "salary",
		domain.FieldDepartment: "department_id",
	},
	domain.TableCredentials: {
		domain.FieldPassword: "password_hash",
	},
	domain.TableCategories: {
		domain.FieldName: "name",
	},
	domain.TableItems: {
		domain.FieldName:        "name",
		domain.FieldPrice:       "price",
		domain.FieldDescription: "description",
		domain.FieldQuantity:    "quantity",
		domain.FieldIsAvailable: "is_available",
		domain.FieldCategoryID:  "category_id",
	},
}

// uniqueViolations maps a duplicate key on a table to its domain error.
var uniqueViolations = map[domain.Table]error{
	domain.TablePeople:     domain.ErrDuplicateEmail,
	domain.TableCategories: domain.ErrDuplicateCategory,
}

// ApplyPatch writes the present fields of set to the row with id as a single
// UPDATE inside one transaction and returns the affected row count.
func (s *Store) ApplyPatch(ctx context.Context, id int64, set domain.FieldSet) (int64, error) {
	updates, err := columnsFor(set)
	if err != nil {
		return 0, err
	}
	if len(updates) == 0 {
		return 0, nil
	}

	var rows int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Table(string(set.Table)).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		rows = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, translatePatchError(set.Table, err)
	}
	return rows, nil
}

func columnsFor(set domain.FieldSet) (map[string]any, error) {
	allowed, ok := patchColumns[set.Table]
	if !ok {
		return nil, fmt.Errorf("%w: table %q", domain.ErrUnknownField, set.Table)
	}
	updates := make(map[string]any, len(set.Fields))
	for _, f := range set.Fields {
		column, ok := allowed[f.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", domain.ErrUnknownField, set.Table, f.Name)
		}
		updates[column] = columnValue(f.Value)
	}
	return updates, nil
}

// columnValue unwraps the domain enums to their stored integer form and
// rounds amounts to cents.
func columnValue(v any) any {
	switch x := v.(type) {
	case domain.Gender:
		return int(x)
	case domain.Department:
		return int(x)
	case float64:
		return money(x)
	default:
		return v
	}
}

func translatePatchError(table domain.Table, err error) error {
	if isDuplicateKey(err) {
		if mapped, ok := uniqueViolations[table]; ok {
			return mapped
		}
	}
	if table == domain.TableItems && isForeignKeyViolation(err) {
		return domain.ErrCategoryNotFound
	}
	return fmt.Errorf("%w: update %s: %v", domain.ErrPersistence, table, err)
}
