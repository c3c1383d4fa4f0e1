// Package domain defines the persistence models of the scan backend. The
// scan histories themselves are deliberately not persisted (they live in
// bounded in-memory rings owned by the dispatchers); the only durable
// aggregate is the user directory that app deep links navigate into.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// User represents a record in the user directory. The mobile client reaches
// a user either by browsing the Users screen or by scanning a
// qrcodeapp://user/<id> deep link, which resolves to a UserDetail target
// carrying this record's ID.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Name: display name, normalized by the service layer.
//   - Email: contact address; unique per directory entry.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker (retains row for audit/history).
type User struct {
	ID        string         `json:"id"    gorm:"type:char(36);primaryKey"`
	Name      string         `json:"name"  gorm:"type:varchar(120);not null"`
	Email     string         `json:"email" gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"     gorm:"index"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }
