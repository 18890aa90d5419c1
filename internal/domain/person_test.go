package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/questx-lab/person-api/internal/model"
	"github.com/questx-lab/person-api/internal/repository"
	"github.com/questx-lab/person-api/pkg/dateutil"
	"github.com/questx-lab/person-api/pkg/errorx"
	"github.com/questx-lab/person-api/pkg/logger"
	"github.com/questx-lab/person-api/pkg/testutil"
	"github.com/questx-lab/person-api/pkg/xcontext"
	"github.com/stretchr/testify/require"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var now = time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

func newPersonDomain() *personDomain {
	return NewPersonDomain(repository.NewPersonRepository(), dateutil.NewFixedClock(now))
}

func intPtr(i int) *int {
	return &i
}

func datePtr(year int, month time.Month, day int) *model.Date {
	d := model.NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
	return &d
}

func Test_personDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	d := newPersonDomain()

	tests := []struct {
		name       string
		input      *model.PersonInput
		wantSkills []string
	}{
		{
			name: "with skills",
			input: &model.PersonInput{
				Name:        "Grace Hopper",
				Age:         intPtr(85),
				DateOfBirth: datePtr(1906, time.December, 9),
				Skills:      []string{"COBOL", "Compilers"},
			},
			wantSkills: []string{"COBOL", "Compilers"},
		},
		{
			name: "without skills",
			input: &model.PersonInput{
				Name:        "Alan Turing",
				Age:         intPtr(41),
				DateOfBirth: datePtr(1912, time.June, 23),
			},
			wantSkills: []string{},
		},
		{
			name: "age zero",
			input: &model.PersonInput{
				Name:        "Baby",
				Age:         intPtr(0),
				DateOfBirth: datePtr(2024, time.May, 1),
				Skills:      []string{},
			},
			wantSkills: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := d.Create(ctx, tt.input)
			require.NoError(t, err)
			require.NotZero(t, created.ID)
			require.True(t, now.Equal(created.CreatedAt))
			require.Nil(t, created.UpdatedAt)

			got, err := d.GetByID(ctx, created.ID)
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Equal(t, tt.input.Name, got.Name)
			require.Equal(t, *tt.input.Age, got.Age)
			require.Equal(t, tt.wantSkills, got.Skills)
			require.True(t, tt.input.DateOfBirth.Equal(got.DateOfBirth.Time))
			require.Nil(t, got.UpdatedAt)
		})
	}
}

func Test_personDomain_GetByID_NotFound(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	got, err := newPersonDomain().GetByID(ctx, 999)
	require.NoError(t, err)
	require.Nil(t, got)
}

func Test_personDomain_Update(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newPersonDomain()

	updated, err := d.Update(ctx, testutil.Person1.ID, &model.PersonInput{
		Name:        "John Updated",
		Age:         intPtr(31),
		DateOfBirth: datePtr(1993, time.May, 12),
		Skills:      []string{"Rust"},
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	got, err := d.GetByID(ctx, testutil.Person1.ID)
	require.NoError(t, err)
	require.Equal(t, "John Updated", got.Name)
	require.Equal(t, 31, got.Age)
	require.Equal(t, []string{"Rust"}, got.Skills)
	require.Equal(t, "1993-05-12", got.DateOfBirth.Format(dateutil.DateLayout))
	require.True(t, testutil.Person1.CreatedAt.Equal(got.CreatedAt))
	require.NotNil(t, got.UpdatedAt)
	require.True(t, now.Equal(*got.UpdatedAt))
}

func Test_personDomain_Update_NotFound(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	got, err := newPersonDomain().Update(ctx, 999, &model.PersonInput{
		Name:        "Nobody",
		Age:         intPtr(1),
		DateOfBirth: datePtr(2020, time.January, 1),
	})
	require.NoError(t, err)
	require.Nil(t, got)
}

func Test_personDomain_Delete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newPersonDomain()

	deleted, err := d.Delete(ctx, testutil.Person2.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = d.Delete(ctx, testutil.Person2.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	got, err := d.GetByID(ctx, testutil.Person2.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	count, err := d.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}

func Test_personDomain_Searches(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newPersonDomain()

	persons, err := d.SearchByName(ctx, "smith")
	require.NoError(t, err)
	require.Len(t, persons, 1)
	require.Equal(t, testutil.Person3.Name, persons[0].Name)
	require.Equal(t, []string{}, persons[0].Skills)

	persons, err = d.SearchByAgeRange(ctx, 60, 150)
	require.NoError(t, err)
	require.Len(t, persons, 1)
	require.Equal(t, testutil.Person2.ID, persons[0].ID)
	require.NotNil(t, persons[0].UpdatedAt)

	persons, err = d.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, persons, 3)

	persons, err = d.GetPaged(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, persons, 1)
	require.Equal(t, testutil.Person2.ID, persons[0].ID)
}

// newFailingContext returns a context whose database rejects every query.
func newFailingContext(t *testing.T) (context.Context, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	ctx := context.Background()
	ctx = xcontext.WithLogger(ctx, logger.NewNopLogger())
	ctx = xcontext.WithDB(ctx, db)
	return ctx, mock
}

func Test_personDomain_StorageFailure(t *testing.T) {
	errConn := errors.New("connection refused")

	tests := []struct {
		name string
		call func(ctx context.Context, d *personDomain) error
	}{
		{
			name: "get by id",
			call: func(ctx context.Context, d *personDomain) error {
				_, err := d.GetByID(ctx, 1)
				return err
			},
		},
		{
			name: "get paged",
			call: func(ctx context.Context, d *personDomain) error {
				_, err := d.GetPaged(ctx, 1, 10)
				return err
			},
		},
		{
			name: "delete",
			call: func(ctx context.Context, d *personDomain) error {
				_, err := d.Delete(ctx, 1)
				return err
			},
		},
		{
			name: "count",
			call: func(ctx context.Context, d *personDomain) error {
				_, err := d.Count(ctx)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, mock := newFailingContext(t)
			mock.ExpectQuery("SELECT").WillReturnError(errConn)

			err := tt.call(ctx, newPersonDomain())
			require.ErrorIs(t, err, errorx.Unknown)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
