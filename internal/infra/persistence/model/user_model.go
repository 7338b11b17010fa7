// Package model holds the GORM persistence structs. Table and column names
// mirror the production schema, which the API layer reads as-is.
package model

import "time"

// UserModel mirrors the 'app_user' table.
type UserModel struct {
	ID               int64     `gorm:"column:user_id;primaryKey;autoIncrement"`
	Name             string    `gorm:"column:name;type:varchar(100)"`
	LastName         string    `gorm:"column:last_name;type:varchar(100)"`
	Username         string    `gorm:"column:username;type:varchar(150);unique;not null"`
	Email            string    `gorm:"column:email;type:varchar(255);unique;not null"`
	PasswordHash     string    `gorm:"column:password_hash;type:varchar(255);not null"`
	RegistrationDate time.Time `gorm:"column:registration_date"`
	ProfilePicURL    string    `gorm:"column:profile_pic_url;type:text"`
	Role             string    `gorm:"column:role;type:varchar(20);not null;index"`
	BirthDate        time.Time `gorm:"column:birth_date"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "app_user"
}
