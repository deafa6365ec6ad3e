package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/people-catalog/internal/core/domain"
	"github.com/storefront/people-catalog/internal/core/ports"
)

// Registrar creates a person together with its role extension and credential.
type Registrar struct {
	repo   ports.PeopleRepository
	hasher ports.PasswordHasher
	log    zerolog.Logger
	now    func() time.Time
}

func NewRegistrar(repo ports.PeopleRepository, hasher ports.PasswordHasher, log zerolog.Logger) *Registrar {
	return &Registrar{repo: repo, hasher: hasher, log: log, now: time.Now}
}

// Register writes reg and returns the new person id.
//
//  1. Validate every field.
//  2. Reject a taken email before any write.
//  3. Hash the password.
//  4. Insert person, extension and credential in one transaction.
//
// A duplicate email detected by the store's unique constraint (a concurrent
// registration that passed step 2) is reported the same way as step 2.
func (r *Registrar) Register(ctx context.Context, reg domain.Registration) (int64, error) {
	if err := reg.Validate(); err != nil {
		return 0, err
	}
	role := reg.Extension.Role()

	exists, err := r.repo.EmailExists(ctx, reg.Person.Email)
	if err != nil {
		return 0, fmt.Errorf("register %s: check email: %w", role, err)
	}
	if exists {
		r.log.Warn().Str("role", string(role)).Msg("registration rejected: email already registered")
		return 0, domain.ErrDuplicateEmail
	}

	hash, err := r.hasher.Hash(reg.Password)
	if err != nil {
		return 0, fmt.Errorf("register %s: hash password: %w", role, err)
	}
	reg.Password = ""
	if reg.Person.JoinDate.IsZero() {
		reg.Person.JoinDate = r.now().UTC().Truncate(time.Microsecond)
	}

	id, err := r.repo.Create(ctx, reg, hash)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			r.log.Warn().Str("role", string(role)).Msg("registration rejected by unique constraint")
			return 0, domain.ErrDuplicateEmail
		}
		r.log.Error().Err(err).Str("role", string(role)).Msg("registration failed, transaction rolled back")
		return 0, fmt.Errorf("register %s: %w", role, err)
	}

	r.log.Info().Int64("id", id).Str("role", string(role)).Msg("person registered")
	return id, nil
}
