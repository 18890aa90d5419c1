package model

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const (
	TotalCountHeader = "X-Total-Count"
	PageNumberHeader = "X-Page-Number"
	PageSizeHeader   = "X-Page-Size"
)

type Person struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Age         int        `json:"age"`
	DateOfBirth Date       `json:"dateOfBirth"`
	Skills      []string   `json:"skills"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// PersonInput is the body of both create and update requests.
type PersonInput struct {
	Name        string   `json:"name" binding:"required,min=2,max=200"`
	Age         *int     `json:"age" binding:"required,min=0,max=150"`
	DateOfBirth *Date    `json:"dateOfBirth" binding:"required"`
	Skills      []string `json:"skills" binding:"omitempty,max=20,dive,required,max=100"`
}

type GetPersonRequest struct {
	ID int64 `uri:"id"`
}

type GetPersonResponse = Person

type GetListPersonRequest struct {
	PageNumber *int `form:"pageNumber"`
	PageSize   *int `form:"pageSize"`
}

type GetListPersonResponse struct {
	Persons    []Person
	TotalCount int64
	PageNumber int
	PageSize   int
}

func (r *GetListPersonResponse) Respond(header http.Header) (int, any) {
	header.Set(TotalCountHeader, strconv.FormatInt(r.TotalCount, 10))
	header.Set(PageNumberHeader, strconv.Itoa(r.PageNumber))
	header.Set(PageSizeHeader, strconv.Itoa(r.PageSize))
	return http.StatusOK, r.Persons
}

type SearchPersonRequest struct {
	Name string `form:"name"`
}

type SearchPersonResponse struct {
	Persons []Person
}

func (r *SearchPersonResponse) Respond(http.Header) (int, any) {
	return http.StatusOK, r.Persons
}

type GetPersonByAgeRangeRequest struct {
	Min *int `form:"min" binding:"required,min=0,max=150"`
	Max *int `form:"max" binding:"required,min=0,max=150"`
}

type GetPersonByAgeRangeResponse = SearchPersonResponse

type CountPersonRequest struct{}

type CountPersonResponse struct {
	Count int64 `json:"count"`
}

type CreatePersonRequest = PersonInput

type CreatePersonResponse struct {
	Person   Person
	Location string
}

func (r *CreatePersonResponse) Respond(header http.Header) (int, any) {
	header.Set("Location", r.Location)
	return http.StatusCreated, r.Person
}

type UpdatePersonRequest struct {
	ID int64 `uri:"id" json:"-"`
	PersonInput
}

type UpdatePersonResponse struct{}

func (r *UpdatePersonResponse) Respond(http.Header) (int, any) {
	return http.StatusNoContent, nil
}

type DeletePersonRequest struct {
	ID int64 `uri:"id"`
}

type DeletePersonResponse = UpdatePersonResponse

func PersonLocation(basePath string, id int64) string {
	return fmt.Sprintf("%s/%d", basePath, id)
}
