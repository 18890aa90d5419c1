package repository

import (
	"context"
	"math"
	"strings"

	"github.com/questx-lab/person-api/internal/entity"
	"github.com/questx-lab/person-api/pkg/xcontext"
)

type PersonRepository interface {
	Repository[entity.Person]

	GetPaged(ctx context.Context, pageNumber, pageSize int) ([]entity.Person, error)
	GetByName(ctx context.Context, name string) ([]entity.Person, error)
	GetByAgeRange(ctx context.Context, min, max int) ([]entity.Person, error)
}

type personRepository struct {
	repository[entity.Person]
}

func NewPersonRepository() *personRepository {
	return &personRepository{repository: newRepository[entity.Person]()}
}

// GetPaged returns the pageNumber-th window of pageSize persons in ascending id order.
// Both arguments must be positive.
func (r *personRepository) GetPaged(
	ctx context.Context, pageNumber, pageSize int,
) ([]entity.Person, error) {
	result := []entity.Person{}
	// An offset that does not fit an int is past any table.
	if pageNumber-1 > math.MaxInt/pageSize {
		return result, nil
	}

	err := xcontext.DB(ctx).
		Order("id ASC").
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// likeEscaper escapes LIKE wildcards with '!', which needs no quoting in any of the
// supported dialects, unlike backslash in MySQL.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// GetByName matches persons whose name contains name literally, ignoring case.
func (r *personRepository) GetByName(ctx context.Context, name string) ([]entity.Person, error) {
	result := []entity.Person{}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(name)) + "%"
	err := xcontext.DB(ctx).
		Where("LOWER(name) LIKE ? ESCAPE '!'", pattern).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *personRepository) GetByAgeRange(ctx context.Context, min, max int) ([]entity.Person, error) {
	result := []entity.Person{}
	err := xcontext.DB(ctx).
		Where("age >= ? AND age <= ?", min, max).
		Order("age ASC").
		Order("id ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
