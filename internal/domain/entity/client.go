package entity

// Client is a person in their role as a customer of one company. Service
// orders belong to clients, which is how orders get their company scope.
type Client struct {
	ClientID       int64  `gorm:"primaryKey"`
	UUID           string `gorm:"column:uuid;size:10;uniqueIndex;not null"`
	ServicesNumber int    `gorm:"not null;default:0"`
	Details        string
	HasWhatsapp    bool  `gorm:"not null;default:false"`
	HasEmail       bool  `gorm:"not null;default:false"`
	NeedsSurvey    bool  `gorm:"not null;default:true"`
	IsActive       bool  `gorm:"not null;default:true"`
	CreatedAt      int64 `gorm:"not null"`
	UpdatedAt      int64 `gorm:"not null;autoUpdateTime:false"`

	CompanyID int64    `gorm:"not null;index"`
	Company   *Company `gorm:"foreignKey:CompanyID;references:CompanyID"`
	PersonID  int64    `gorm:"not null"`
	Person    *Person  `gorm:"foreignKey:PersonID;references:PersonID"`
}
