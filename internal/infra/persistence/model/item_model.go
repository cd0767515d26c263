package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemModel mirrors the 'items' table. The service only reads this table;
// rows are provisioned out of band.
type ItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time

	Reviews []ReviewModel `gorm:"foreignKey:ItemID"`
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
