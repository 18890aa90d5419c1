package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/questx-lab/person-api/internal/entity"
	"github.com/questx-lab/person-api/internal/repository"
)

var (
	Person1 = entity.Person{
		ID:          1,
		Name:        "John Doe",
		Age:         30,
		DateOfBirth: time.Date(1994, 5, 12, 0, 0, 0, 0, time.UTC),
		Skills:      `["Go","SQL"]`,
		CreatedAt:   time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
	}

	Person2 = entity.Person{
		ID:          2,
		Name:        "Johnny Cash",
		Age:         71,
		DateOfBirth: time.Date(1932, 2, 26, 0, 0, 0, 0, time.UTC),
		Skills:      `["Singing"]`,
		CreatedAt:   time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC),
		UpdatedAt:   sql.NullTime{Time: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC), Valid: true},
	}

	Person3 = entity.Person{
		ID:          3,
		Name:        "Jane Smith",
		Age:         25,
		DateOfBirth: time.Date(1999, 11, 3, 0, 0, 0, 0, time.UTC),
		Skills:      `[]`,
		CreatedAt:   time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC),
	}
)

func CreateFixtureDb(ctx context.Context) {
	InsertPersons(ctx)
}

func InsertPersons(ctx context.Context) {
	personRepo := repository.NewPersonRepository()

	for _, p := range []entity.Person{Person1, Person2, Person3} {
		person := p
		if err := personRepo.Add(ctx, &person); err != nil {
			panic(err)
		}
	}
}
