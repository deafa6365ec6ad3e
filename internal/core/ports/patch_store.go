package ports

import (
	"context"

	"github.com/storefront/people-catalog/internal/core/domain"
)

// PatchStore writes a validated field set to its table as one UPDATE
// statement inside one transaction. Only allow-listed columns are written.
type PatchStore interface {
	ApplyPatch(ctx context.Context, id int64, set domain.FieldSet) (int64, error)
}
