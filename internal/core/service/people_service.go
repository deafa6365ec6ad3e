package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storefront/people-catalog/internal/core/domain"
	"github.com/storefront/people-catalog/internal/core/ports"
)

// PeopleService implements ports.PeopleService.
type PeopleService struct {
	repo      ports.PeopleRepository
	registrar *Registrar
	engine    *PatchEngine
	rec       recorder
	log       zerolog.Logger
}

func NewPeopleService(
	repo ports.PeopleRepository,
	registrar *Registrar,
	engine *PatchEngine,
	audit ports.AuditSink,
	cache ports.QueryCache,
	log zerolog.Logger,
) *PeopleService {
	return &PeopleService{
		repo:      repo,
		registrar: registrar,
		engine:    engine,
		rec:       newRecorder(audit, cache, log),
		log:       log,
	}
}

func (s *PeopleService) RegisterCustomer(ctx context.Context, in ports.RegisterCustomerInput) (int64, error) {
	id, err := s.registrar.Register(ctx, domain.Registration{
		Person: domain.Person{
			Name:   in.Name,
			Email:  in.Email,
			Age:    in.Age,
			Gender: in.Gender,
		},
		Extension: domain.CustomerProfile{
			ShippingAddress:      in.ShippingAddress,
			HasPremiumMembership: in.HasPremium,
		},
		Password: in.Password,
	})
	if err != nil {
		return 0, err
	}

	s.rec.record(ctx, "registerCustomer", domain.EntityCustomer, id, nil, personCacheKeys)
	return id, nil
}

func (s *PeopleService) RegisterEmployee(ctx context.Context, in ports.RegisterEmployeeInput) (int64, error) {
	id, err := s.registrar.Register(ctx, domain.Registration{
		Person: domain.Person{
			Name:   in.Name,
			Email:  in.Email,
			Age:    in.Age,
			Gender: in.Gender,
		},
		Extension: domain.EmployeeProfile{
			Salary:     in.Salary,
			Department: in.Department,
		},
		Password: in.Password,
	})
	if err != nil {
		return 0, err
	}

	s.rec.record(ctx, "registerEmployee", domain.EntityEmployee, id, nil, personCacheKeys)
	return id, nil
}

func (s *PeopleService) UpdateCustomer(ctx context.Context, id int64, in ports.UpdateCustomerInput) (*domain.CompositeResult, error) {
	return s.update(ctx, "updateCustomer", domain.EntityCustomer, id,
		in.Person.FieldSet(), in.Customer.FieldSet(), in.Credential.FieldSet())
}

func (s *PeopleService) UpdateEmployee(ctx context.Context, id int64, in ports.UpdateEmployeeInput) (*domain.CompositeResult, error) {
	return s.update(ctx, "updateEmployee", domain.EntityEmployee, id,
		in.Person.FieldSet(), in.Employee.FieldSet(), in.Credential.FieldSet())
}

func (s *PeopleService) update(ctx context.Context, op string, entity domain.Entity, id int64, sets ...domain.FieldSet) (*domain.CompositeResult, error) {
	res, err := s.engine.PatchComposite(ctx, id, sets...)
	if err != nil {
		return res, err
	}
	if !res.Succeeded() {
		s.log.Warn().Int64("id", id).Str("entity", string(entity)).Msg("composite update changed nothing")
		return res, nil
	}

	var fields []string
	for _, set := range sets {
		fields = append(fields, set.Names()...)
	}
	s.rec.record(ctx, op, entity, id, fields, personCacheKeys)
	s.log.Info().Int64("id", id).Str("entity", string(entity)).Int64("rows", res.RowsAffected()).Msg("person updated")
	return res, nil
}

func (s *PeopleService) DeletePerson(ctx context.Context, id int64) (bool, error) {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete person %d: %w", id, err)
	}
	if rows == 0 {
		return false, nil
	}

	s.rec.record(ctx, "deletePerson", domain.EntityPerson, id, nil, personCacheKeys)
	s.log.Info().Int64("id", id).Msg("person deleted")
	return true, nil
}

// ClearPeople deletes every person; customers, employees and credentials
// go with them.
func (s *PeopleService) ClearPeople(ctx context.Context) (bool, error) {
	rows, err := s.repo.Clear(ctx)
	if err != nil {
		return false, fmt.Errorf("clear people: %w", err)
	}
	if rows == 0 {
		return false, nil
	}

	s.rec.record(ctx, "clearPeople", domain.EntityPerson, 0, nil, personCacheKeys)
	s.log.Info().Int64("rows", rows).Msg("person table cleared")
	return true, nil
}
