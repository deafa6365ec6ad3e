package domain

// Table is the closed set of tables a patch may target.
type Table string

const (
	TablePeople      Table = "people"
	TableCustomers   Table = "customers"
	TableEmployees   Table = "employees"
	TableCredentials Table = "credentials"
	TableCategories  Table = "categories"
	TableItems       Table = "items"
)

// FieldKind selects the validation rule applied to a present field.
type FieldKind int

const (
	KindString  FieldKind = iota // non-empty
	KindInt                      // > 0
	KindDecimal                  // > 0
	KindBool                     // any
	KindEnum                     // defined value
	KindSecret                   // non-empty, at most MaxPasswordBytes
)

// Enum is implemented by the enumerations that can appear in a patch.
type Enum interface {
	Valid() bool
}

// Field is one present entry of a sparse field set.
type Field struct {
	Name  string
	Kind  FieldKind
	Value any
}

// Validate applies the rule of the field's kind.
func (f Field) Validate() error {
	switch f.Kind {
	case KindString:
		if s, _ := f.Value.(string); s == "" {
			return &ValidationError{Field: f.Name, Reason: ReasonEmpty}
		}
	case KindInt:
		var n int64
		switch v := f.Value.(type) {
		case int:
			n = int64(v)
		case int64:
			n = v
		}
		if n <= 0 {
			return &ValidationError{Field: f.Name, Reason: ReasonNotPositive}
		}
	case KindDecimal:
		if d, _ := f.Value.(float64); d <= 0 {
			return &ValidationError{Field: f.Name, Reason: ReasonNotPositive}
		}
	case KindEnum:
		if e, ok := f.Value.(Enum); !ok || !e.Valid() {
			return &ValidationError{Field: f.Name, Reason: ReasonInvalidValue}
		}
	case KindSecret:
		s, _ := f.Value.(string)
		return validatePassword(f.Name, s)
	}
	return nil
}

// FieldSet is the present fields of one patch against one table.
type FieldSet struct {
	Table  Table
	Fields []Field
}

// Empty reports whether no field is present.
func (s FieldSet) Empty() bool {
	return len(s.Fields) == 0
}

// Names lists the present field names in order.
func (s FieldSet) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Validate checks every field and returns the first violation.
func (s FieldSet) Validate() error {
	for _, f := range s.Fields {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the field with the given name, if present.
func (s FieldSet) Lookup(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Replace swaps the field named old for f, keeping its position.
func (s FieldSet) Replace(old string, f Field) FieldSet {
	out := FieldSet{Table: s.Table, Fields: make([]Field, len(s.Fields))}
	for i, cur := range s.Fields {
		if cur.Name == old {
			out.Fields[i] = f
			continue
		}
		out.Fields[i] = cur
	}
	return out
}

func appendField[T any](fields []Field, name string, kind FieldKind, o Optional[T]) []Field {
	if v, ok := o.Get(); ok {
		fields = append(fields, Field{Name: name, Kind: kind, Value: v})
	}
	return fields
}

// Logical field names. These are the only names the store maps to columns.
const (
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldAge                  = "age"
	FieldGender               = "gender"
	FieldShippingAddress      = "shippingAddress"
	FieldHasPremiumMembership = "hasPremiumMembership"
	FieldSalary               = "salary"
	FieldDepartment           = "department"
	FieldPassword             = "password"
	FieldPrice                = "price"
	FieldDescription          = "description"
	FieldQuantity             = "quantity"
	FieldIsAvailable          = "isAvailable"
	FieldCategory             = "category"
	FieldCategoryID           = "categoryId"
)

// PersonPatch is the sparse update of the base person record.
type PersonPatch struct {
	Name   Optional[string] `json:"name"`
	Email  Optional[string] `json:"email"`
	Age    Optional[int]    `json:"age"`
	Gender Optional[Gender] `json:"gender"`
}

func (p PersonPatch) FieldSet() FieldSet {
	var fields []Field
	fields = appendField(fields, FieldName, KindString, p.Name)
	fields = appendField(fields, FieldEmail, KindString, p.Email)
	fields = appendField(fields, FieldAge, KindInt, p.Age)
	fields = appendField(fields, FieldGender, KindEnum, p.Gender)
	return FieldSet{Table: TablePeople, Fields: fields}
}

// CustomerPatch is the sparse update of a customer extension.
type CustomerPatch struct {
	ShippingAddress      Optional[string] `json:"shippingAddress"`
	HasPremiumMembership Optional[bool]   `json:"hasPremiumMembership"`
}

func (p CustomerPatch) FieldSet() FieldSet {
	var fields []Field
	fields = appendField(fields, FieldShippingAddress, KindString, p.ShippingAddress)
	fields = appendField(fields, FieldHasPremiumMembership, KindBool, p.HasPremiumMembership)
	return FieldSet{Table: TableCustomers, Fields: fields}
}

// EmployeePatch is the sparse update of an employee extension.
type EmployeePatch struct {
	Salary     Optional[float64]    `json:"salary"`
	Department Optional[Department] `json:"department"`
}

func (p EmployeePatch) FieldSet() FieldSet {
	var fields []Field
	fields = appendField(fields, FieldSalary, KindDecimal, p.Salary)
	fields = appendField(fields, FieldDepartment, KindEnum, p.Department)
	return FieldSet{Table: TableEmployees, Fields: fields}
}

// CredentialPatch replaces the stored password.
type CredentialPatch struct {
	Password Optional[string] `json:"password"`
}

func (p CredentialPatch) FieldSet() FieldSet {
	return FieldSet{
		Table:  TableCredentials,
		Fields: appendField(nil, FieldPassword, KindSecret, p.Password),
	}
}

// ItemPatch is the sparse update of an item. Category is a category name and
// is resolved to an id before the write.
type ItemPatch struct {
	Name        Optional[string]  `json:"name"`
	Price       Optional[float64] `json:"price"`
	Description Optional[string]  `json:"description"`
	Quantity    Optional[int]     `json:"quantity"`
	IsAvailable Optional[bool]    `json:"isAvailable"`
	Category    Optional[string]  `json:"category"`
}

func (p ItemPatch) FieldSet() FieldSet {
	var fields []Field
	fields = appendField(fields, FieldName, KindString, p.Name)
	fields = appendField(fields, FieldPrice, KindDecimal, p.Price)
	fields = appendField(fields, FieldDescription, KindString, p.Description)
	fields = appendField(fields, FieldQuantity, KindInt, p.Quantity)
	fields = appendField(fields, FieldIsAvailable, KindBool, p.IsAvailable)
	fields = appendField(fields, FieldCategory, KindString, p.Category)
	return FieldSet{Table: TableItems, Fields: fields}
}

// TableResult is the outcome of one table's share of a composite patch.
type TableResult struct {
	Table        Table
	RowsAffected int64
	Err          error
}

// CompositeResult is the outcome of a patch spanning several tables.
type CompositeResult struct {
	Tables []TableResult
}

// Succeeded reports whether at least one table applied cleanly and changed
// rows. A failed sub-update does not make the whole result fail; inspect
// Tables for per-table outcomes.
func (r CompositeResult) Succeeded() bool {
	for _, t := range r.Tables {
		if t.Err == nil && t.RowsAffected > 0 {
			return true
		}
	}
	return false
}

// RowsAffected sums the rows changed across all tables.
func (r CompositeResult) RowsAffected() int64 {
	var n int64
	for _, t := range r.Tables {
		n += t.RowsAffected
	}
	return n
}
