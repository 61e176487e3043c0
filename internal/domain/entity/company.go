package entity

// Company is one tenant. Every stage, client and user hangs off a company,
// and service orders reach it indirectly through their client.
type Company struct {
	CompanyID int64  `gorm:"primaryKey"`
	UUID      string `gorm:"column:uuid;size:10;uniqueIndex;not null"`
	Name      string `gorm:"size:400;not null"`
	ShortName string `gorm:"size:100"`
	Slogan    string `gorm:"size:500"`
	Details   string
	IsActive  bool  `gorm:"not null;default:true"`
	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null;autoUpdateTime:false"`
}
