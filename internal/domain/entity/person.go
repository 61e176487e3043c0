package entity

// Person holds the PII behind clients and users. The string fields marked
// as ciphered are stored encrypted at rest and only decrypted when building
// API responses.
type Person struct {
	PersonID    int64  `gorm:"primaryKey"`
	UUID        string `gorm:"column:uuid;size:10;uniqueIndex;not null"`
	Names       string `gorm:"size:400"` // ciphered
	LastNames   string `gorm:"size:400"` // ciphered
	DNI         string `gorm:"column:dni;size:200"` // ciphered
	Phone       string `gorm:"size:200"` // ciphered
	MobilePhone string `gorm:"size:200"` // ciphered
	Email       string `gorm:"size:400"` // ciphered
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   int64  `gorm:"not null"`
	UpdatedAt   int64  `gorm:"not null;autoUpdateTime:false"`
}
