package entity

import (
	"database/sql"
	"time"
)

const (
	PersonNameMaxLength   = 200
	PersonSkillsMaxLength = 4000
)

// Person is the storage shape of a person. Skills holds the JSON encoding of the skill
// list, it is never decoded at this layer.
type Person struct {
	ID          int64        `gorm:"primaryKey;autoIncrement"`
	Name        string       `gorm:"size:200;not null;index:idx_persons_name"`
	Age         int          `gorm:"not null"`
	DateOfBirth time.Time    `gorm:"not null"`
	Skills      string       `gorm:"size:4000;not null"`
	CreatedAt   time.Time    `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   sql.NullTime `gorm:"autoUpdateTime:false"`
}

func (Person) TableName() string {
	return "persons"
}
