package entity

// Role is a named access level. Which role names count as elevated
// (exempt from company scoping) is decided by policy.RolePolicy.
type Role struct {
	RoleID    int64  `gorm:"primaryKey"`
	UUID      string `gorm:"column:uuid;size:10;uniqueIndex;not null"`
	Name      string `gorm:"size:50;not null;uniqueIndex"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"not null"`
}

// User is a staff account able to log in and drive orders through the
// pipeline. Password holds a bcrypt hash.
type User struct {
	UserID    int64  `gorm:"primaryKey"`
	UUID      string `gorm:"column:uuid;size:10;uniqueIndex;not null"`
	Nick      string `gorm:"size:100"`
	Email     string `gorm:"size:100;not null;uniqueIndex"`
	Password  string `gorm:"size:200;not null"`
	Details   string
	IsActive  bool  `gorm:"not null;default:true"`
	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null;autoUpdateTime:false"`

	RoleID    int64    `gorm:"not null;index"`
	Role      *Role    `gorm:"foreignKey:RoleID;references:RoleID"`
	CompanyID int64    `gorm:"not null;index"`
	Company   *Company `gorm:"foreignKey:CompanyID;references:CompanyID"`
}
