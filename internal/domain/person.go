package domain

import (
	"context"
	"database/sql"
	"errors"

	"github.com/questx-lab/person-api/internal/entity"
	"github.com/questx-lab/person-api/internal/model"
	"github.com/questx-lab/person-api/internal/repository"
	"github.com/questx-lab/person-api/pkg/dateutil"
	"github.com/questx-lab/person-api/pkg/errorx"
	"github.com/questx-lab/person-api/pkg/xcontext"
)

// PersonDomain owns timestamping and the skills encoding. Lookups by id return a nil
// person, and Delete returns false, when the id does not exist; errors are reserved for
// storage failures.
type PersonDomain interface {
	GetByID(ctx context.Context, id int64) (*model.Person, error)
	GetAll(ctx context.Context) ([]model.Person, error)
	GetPaged(ctx context.Context, pageNumber, pageSize int) ([]model.Person, error)
	SearchByName(ctx context.Context, name string) ([]model.Person, error)
	SearchByAgeRange(ctx context.Context, min, max int) ([]model.Person, error)
	Create(ctx context.Context, input *model.PersonInput) (*model.Person, error)
	Update(ctx context.Context, id int64, input *model.PersonInput) (*model.Person, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type personDomain struct {
	personRepo repository.PersonRepository
	clock      dateutil.Clock
}

func NewPersonDomain(personRepo repository.PersonRepository, clock dateutil.Clock) *personDomain {
	return &personDomain{
		personRepo: personRepo,
		clock:      clock,
	}
}

func (d *personDomain) GetByID(ctx context.Context, id int64) (*model.Person, error) {
	person, err := d.personRepo.GetByID(ctx, id)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get person %d: %v", id, err)
		return nil, errorx.Unknown
	}

	if person == nil {
		return nil, nil
	}

	result := model.ConvertPerson(person)
	return &result, nil
}

func (d *personDomain) GetAll(ctx context.Context) ([]model.Person, error) {
	persons, err := d.personRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get all persons: %v", err)
		return nil, errorx.Unknown
	}

	return model.ConvertPersons(persons), nil
}

func (d *personDomain) GetPaged(ctx context.Context, pageNumber, pageSize int) ([]model.Person, error) {
	persons, err := d.personRepo.GetPaged(ctx, pageNumber, pageSize)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get page %d of persons: %v", pageNumber, err)
		return nil, errorx.Unknown
	}

	return model.ConvertPersons(persons), nil
}

func (d *personDomain) SearchByName(ctx context.Context, name string) ([]model.Person, error) {
	persons, err := d.personRepo.GetByName(ctx, name)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot search persons by name: %v", err)
		return nil, errorx.Unknown
	}

	return model.ConvertPersons(persons), nil
}

func (d *personDomain) SearchByAgeRange(ctx context.Context, min, max int) ([]model.Person, error) {
	persons, err := d.personRepo.GetByAgeRange(ctx, min, max)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot search persons by age range: %v", err)
		return nil, errorx.Unknown
	}

	return model.ConvertPersons(persons), nil
}

func (d *personDomain) Create(ctx context.Context, input *model.PersonInput) (*model.Person, error) {
	skills, err := model.EncodeSkills(input.Skills)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot encode skills: %v", err)
		return nil, errorx.Unknown
	}

	person := &entity.Person{
		Name:        input.Name,
		Age:         derefInt(input.Age),
		DateOfBirth: dateOf(input.DateOfBirth),
		Skills:      skills,
		CreatedAt:   d.clock.Now(),
	}

	if err := d.personRepo.Add(ctx, person); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create person: %v", err)
		return nil, errorx.Unknown
	}

	result := model.ConvertPerson(person)
	return &result, nil
}

// Update replaces name, age, date of birth and skills of the person. The read and the
// write are not isolated, a concurrent update of the same person may be overwritten.
func (d *personDomain) Update(
	ctx context.Context, id int64, input *model.PersonInput,
) (*model.Person, error) {
	person, err := d.personRepo.GetByID(ctx, id)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get person %d: %v", id, err)
		return nil, errorx.Unknown
	}

	if person == nil {
		return nil, nil
	}

	skills, err := model.EncodeSkills(input.Skills)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot encode skills: %v", err)
		return nil, errorx.Unknown
	}

	person.Name = input.Name
	person.Age = derefInt(input.Age)
	person.DateOfBirth = dateOf(input.DateOfBirth)
	person.Skills = skills
	person.UpdatedAt = sql.NullTime{Time: d.clock.Now(), Valid: true}

	if err := d.personRepo.Update(ctx, person); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot update person %d: %v", id, err)
		return nil, errorx.Unknown
	}

	result := model.ConvertPerson(person)
	return &result, nil
}

// Delete checks existence before deleting, so a missing id reports false without
// touching the table.
func (d *personDomain) Delete(ctx context.Context, id int64) (bool, error) {
	exists, err := d.personRepo.Exists(ctx, id)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check existence of person %d: %v", id, err)
		return false, errorx.Unknown
	}

	if !exists {
		return false, nil
	}

	if err := d.personRepo.Delete(ctx, id); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete person %d: %v", id, err)
		return false, errorx.Unknown
	}

	return true, nil
}

func (d *personDomain) Count(ctx context.Context) (int64, error) {
	count, err := d.personRepo.Count(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count persons: %v", err)
		return 0, errorx.Unknown
	}

	return count, nil
}
