package repository_test

import (
	"context"
	"database/sql"
	"math"
	"testing"
	"time"

	"github.com/questx-lab/person-api/internal/entity"
	"github.com/questx-lab/person-api/internal/repository"
	"github.com/questx-lab/person-api/pkg/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PersonRepositoryTestSuite struct {
	suite.Suite

	ctx  context.Context
	repo repository.PersonRepository
}

func TestPersonRepositorySuite(t *testing.T) {
	suite.Run(t, new(PersonRepositoryTestSuite))
}

func (s *PersonRepositoryTestSuite) SetupTest() {
	s.ctx = testutil.MockContext()
	testutil.CreateFixtureDb(s.ctx)
	s.repo = repository.NewPersonRepository()
}

func (s *PersonRepositoryTestSuite) TestGetByID() {
	person, err := s.repo.GetByID(s.ctx, testutil.Person1.ID)
	s.Require().NoError(err)
	s.Require().NotNil(person)
	s.Equal(testutil.Person1.Name, person.Name)
	s.Equal(testutil.Person1.Skills, person.Skills)
	s.True(testutil.Person1.DateOfBirth.Equal(person.DateOfBirth))
	s.False(person.UpdatedAt.Valid)

	person, err = s.repo.GetByID(s.ctx, 999)
	s.Require().NoError(err)
	s.Nil(person)
}

func (s *PersonRepositoryTestSuite) TestGetAll() {
	persons, err := s.repo.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(persons, 3)
	s.Equal(testutil.Person1.ID, persons[0].ID)
	s.Equal(testutil.Person3.ID, persons[2].ID)
}

func (s *PersonRepositoryTestSuite) TestAdd() {
	person := &entity.Person{
		Name:        "Ada Lovelace",
		Age:         36,
		DateOfBirth: time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC),
		Skills:      `["Math"]`,
		CreatedAt:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	s.Require().NoError(s.repo.Add(s.ctx, person))
	s.Greater(person.ID, testutil.Person3.ID)

	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(4), count)
}

func (s *PersonRepositoryTestSuite) TestUpdate() {
	person, err := s.repo.GetByID(s.ctx, testutil.Person3.ID)
	s.Require().NoError(err)

	updatedAt := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	person.Name = "Jane Doe"
	person.Age = 26
	person.UpdatedAt = sql.NullTime{Time: updatedAt, Valid: true}
	s.Require().NoError(s.repo.Update(s.ctx, person))

	got, err := s.repo.GetByID(s.ctx, testutil.Person3.ID)
	s.Require().NoError(err)
	s.Equal("Jane Doe", got.Name)
	s.Equal(26, got.Age)
	s.True(got.UpdatedAt.Valid)
	s.True(updatedAt.Equal(got.UpdatedAt.Time))
	s.True(testutil.Person3.CreatedAt.Equal(got.CreatedAt))
}

func (s *PersonRepositoryTestSuite) TestUpdate_NotFound() {
	person := testutil.Person1
	person.ID = 999
	s.ErrorIs(s.repo.Update(s.ctx, &person), repository.ErrNotFound)
}

func (s *PersonRepositoryTestSuite) TestDeleteAndExists() {
	exists, err := s.repo.Exists(s.ctx, testutil.Person2.ID)
	s.Require().NoError(err)
	s.True(exists)

	s.Require().NoError(s.repo.Delete(s.ctx, testutil.Person2.ID))

	exists, err = s.repo.Exists(s.ctx, testutil.Person2.ID)
	s.Require().NoError(err)
	s.False(exists)

	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func (s *PersonRepositoryTestSuite) TestGetByName() {
	persons, err := s.repo.GetByName(s.ctx, "JOHN")
	s.Require().NoError(err)
	s.Require().Len(persons, 2)

	names := []string{persons[0].Name, persons[1].Name}
	s.ElementsMatch([]string{testutil.Person1.Name, testutil.Person2.Name}, names)

	persons, err = s.repo.GetByName(s.ctx, "nobody")
	s.Require().NoError(err)
	s.NotNil(persons)
	s.Empty(persons)
}

func (s *PersonRepositoryTestSuite) TestGetByName_LiteralWildcards() {
	percent := &entity.Person{
		Name:        "Mr 100% Sure",
		DateOfBirth: time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC),
		Skills:      `[]`,
	}
	underscore := &entity.Person{
		Name:        "snake_case!",
		DateOfBirth: time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC),
		Skills:      `[]`,
	}
	s.Require().NoError(s.repo.Add(s.ctx, percent))
	s.Require().NoError(s.repo.Add(s.ctx, underscore))

	tests := []struct {
		term    string
		wantIDs []int64
	}{
		{term: "%", wantIDs: []int64{percent.ID}},
		{term: "0% s", wantIDs: []int64{percent.ID}},
		{term: "_", wantIDs: []int64{underscore.ID}},
		{term: "!", wantIDs: []int64{underscore.ID}},
		{term: "e_c", wantIDs: []int64{underscore.ID}},
		{term: "j%n", wantIDs: []int64{}},
		{term: "j_hn", wantIDs: []int64{}},
	}

	for _, tt := range tests {
		persons, err := s.repo.GetByName(s.ctx, tt.term)
		s.Require().NoError(err, tt.term)

		ids := []int64{}
		for _, p := range persons {
			ids = append(ids, p.ID)
		}
		s.Equal(tt.wantIDs, ids, tt.term)
	}
}

func (s *PersonRepositoryTestSuite) TestGetByAgeRange() {
	persons, err := s.repo.GetByAgeRange(s.ctx, 20, 40)
	s.Require().NoError(err)
	s.Require().Len(persons, 2)
	s.Equal(testutil.Person3.ID, persons[0].ID)
	s.Equal(testutil.Person1.ID, persons[1].ID)

	persons, err = s.repo.GetByAgeRange(s.ctx, 71, 71)
	s.Require().NoError(err)
	s.Require().Len(persons, 1)
	s.Equal(testutil.Person2.ID, persons[0].ID)
}

func TestPersonRepository_GetPaged(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	repo := repository.NewPersonRepository()

	tests := []struct {
		name       string
		pageNumber int
		pageSize   int
		wantIDs    []int64
	}{
		{name: "first page", pageNumber: 1, pageSize: 2, wantIDs: []int64{1, 2}},
		{name: "last partial page", pageNumber: 2, pageSize: 2, wantIDs: []int64{3}},
		{name: "past the end", pageNumber: 3, pageSize: 2, wantIDs: []int64{}},
		{name: "page larger than table", pageNumber: 1, pageSize: 100, wantIDs: []int64{1, 2, 3}},
		{name: "offset overflows int", pageNumber: math.MaxInt, pageSize: 2, wantIDs: []int64{}},
		{name: "offset at overflow boundary", pageNumber: math.MaxInt/2 + 2, pageSize: 2, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			persons, err := repo.GetPaged(ctx, tt.pageNumber, tt.pageSize)
			require.NoError(t, err)

			ids := []int64{}
			for _, p := range persons {
				ids = append(ids, p.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}
