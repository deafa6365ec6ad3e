package domain

import (
	"strconv"
	"time"
)

// Entity names used in audit events and cache keys.
type Entity string

const (
	EntityPerson   Entity = "person"
	EntityCustomer Entity = "customer"
	EntityEmployee Entity = "employee"
	EntityCategory Entity = "category"
	EntityItem     Entity = "item"
)

// MutationEvent records a successful write. Only field names are kept,
// never values.
type MutationEvent struct {
	ID         string
	Operation  string
	Entity     Entity
	EntityID   int64
	Fields     []string
	OccurredAt time.Time
}

// Key identifies the entity the event belongs to; events sharing a key are
// persisted in order.
func (e MutationEvent) Key() string {
	return string(e.Entity) + ":" + strconv.FormatInt(e.EntityID, 10)
}
