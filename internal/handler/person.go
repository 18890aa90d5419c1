package handler

import (
	"context"
	"strings"

	"github.com/questx-lab/person-api/internal/domain"
	"github.com/questx-lab/person-api/internal/model"
	"github.com/questx-lab/person-api/pkg/errorx"
	"github.com/questx-lab/person-api/pkg/router"
	"github.com/questx-lab/person-api/pkg/xcontext"
)

const PersonsPath = "/api/persons"

type PersonHandler struct {
	personDomain domain.PersonDomain
}

func NewPersonHandler(personDomain domain.PersonDomain) *PersonHandler {
	return &PersonHandler{personDomain: personDomain}
}

// Register mounts the person endpoints under PersonsPath.
func (h *PersonHandler) Register(r *router.Router) {
	persons := r.Group(PersonsPath)
	router.GET(persons, "", h.GetList)
	router.POST(persons, "", h.Create)
	router.GET(persons, "/search", h.Search)
	router.GET(persons, "/age-range", h.GetByAgeRange)
	router.GET(persons, "/count", h.Count)
	router.GET(persons, "/:id", h.Get)
	router.PUT(persons, "/:id", h.Update)
	router.DELETE(persons, "/:id", h.Delete)
}

func (h *PersonHandler) GetList(
	ctx context.Context, req *model.GetListPersonRequest,
) (*model.GetListPersonResponse, error) {
	cfg := xcontext.Configs(ctx).ApiServer

	pageNumber := 1
	if req.PageNumber != nil {
		pageNumber = *req.PageNumber
	}

	pageSize := cfg.DefaultPageSize
	if req.PageSize != nil {
		pageSize = *req.PageSize
	}

	if pageSize > cfg.MaxPageSize {
		pageSize = cfg.MaxPageSize
	}

	if pageNumber <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Page number must be greater than 0").
			WithDetails(errorx.FieldError{Field: "pageNumber", Message: "must be at least 1"})
	}

	if pageSize <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Page size must be greater than 0").
			WithDetails(errorx.FieldError{Field: "pageSize", Message: "must be at least 1"})
	}

	persons, err := h.personDomain.GetPaged(ctx, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}

	total, err := h.personDomain.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &model.GetListPersonResponse{
		Persons:    persons,
		TotalCount: total,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}, nil
}

func (h *PersonHandler) Get(
	ctx context.Context, req *model.GetPersonRequest,
) (*model.GetPersonResponse, error) {
	person, err := h.personDomain.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if person == nil {
		return nil, errPersonNotFound(req.ID)
	}

	return person, nil
}

func (h *PersonHandler) Create(
	ctx context.Context, req *model.CreatePersonRequest,
) (*model.CreatePersonResponse, error) {
	person, err := h.personDomain.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return &model.CreatePersonResponse{
		Person:   *person,
		Location: model.PersonLocation(PersonsPath, person.ID),
	}, nil
}

func (h *PersonHandler) Update(
	ctx context.Context, req *model.UpdatePersonRequest,
) (*model.UpdatePersonResponse, error) {
	person, err := h.personDomain.Update(ctx, req.ID, &req.PersonInput)
	if err != nil {
		return nil, err
	}

	if person == nil {
		return nil, errPersonNotFound(req.ID)
	}

	return &model.UpdatePersonResponse{}, nil
}

func (h *PersonHandler) Delete(
	ctx context.Context, req *model.DeletePersonRequest,
) (*model.DeletePersonResponse, error) {
	deleted, err := h.personDomain.Delete(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if !deleted {
		return nil, errPersonNotFound(req.ID)
	}

	return &model.DeletePersonResponse{}, nil
}

func (h *PersonHandler) Search(
	ctx context.Context, req *model.SearchPersonRequest,
) (*model.SearchPersonResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errorx.New(errorx.BadRequest, "Search term must not be empty").
			WithDetails(errorx.FieldError{Field: "name", Message: "is required"})
	}

	persons, err := h.personDomain.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return &model.SearchPersonResponse{Persons: persons}, nil
}

func (h *PersonHandler) GetByAgeRange(
	ctx context.Context, req *model.GetPersonByAgeRangeRequest,
) (*model.GetPersonByAgeRangeResponse, error) {
	if *req.Min > *req.Max {
		return nil, errorx.New(errorx.BadRequest, "Minimum age must not be greater than maximum age").
			WithDetails(errorx.FieldError{Field: "min", Message: "must be at most max"})
	}

	persons, err := h.personDomain.SearchByAgeRange(ctx, *req.Min, *req.Max)
	if err != nil {
		return nil, err
	}

	return &model.GetPersonByAgeRangeResponse{Persons: persons}, nil
}

func (h *PersonHandler) Count(
	ctx context.Context, _ *model.CountPersonRequest,
) (*model.CountPersonResponse, error) {
	count, err := h.personDomain.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &model.CountPersonResponse{Count: count}, nil
}

func errPersonNotFound(id int64) error {
	return errorx.New(errorx.NotFound, "Person with id %d not found", id)
}
