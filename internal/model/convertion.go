package model

import (
	"encoding/json"
	"strings"

	"github.com/questx-lab/person-api/internal/entity"
)

// EncodeSkills serializes a skill list into the text stored in the skills column. A nil
// list is stored as an empty array.
func EncodeSkills(skills []string) (string, error) {
	if skills == nil {
		skills = []string{}
	}

	b, err := json.Marshal(skills)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// DecodeSkills never fails: empty, blank or malformed text decodes to an empty list.
func DecodeSkills(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}

	skills := []string{}
	if err := json.Unmarshal([]byte(s), &skills); err != nil || skills == nil {
		return []string{}
	}

	return skills
}

func ConvertPerson(p *entity.Person) Person {
	if p == nil {
		return Person{}
	}

	person := Person{
		ID:          p.ID,
		Name:        p.Name,
		Age:         p.Age,
		DateOfBirth: NewDate(p.DateOfBirth),
		Skills:      DecodeSkills(p.Skills),
		CreatedAt:   p.CreatedAt.UTC(),
	}

	if p.UpdatedAt.Valid {
		updatedAt := p.UpdatedAt.Time.UTC()
		person.UpdatedAt = &updatedAt
	}

	return person
}

func ConvertPersons(persons []entity.Person) []Person {
	result := make([]Person, 0, len(persons))
	for i := range persons {
		result = append(result, ConvertPerson(&persons[i]))
	}

	return result
}
