package entity

// Brand and Model describe the device being repaired. They are shared
// reference data, not company-scoped.
type Brand struct {
	BrandID   int64  `gorm:"primaryKey"`
	UUID      string `gorm:"column:uuid;size:10;uniqueIndex;not null"`
	Name      string `gorm:"size:150;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"not null"`
}

type Model struct {
	ModelID   int64  `gorm:"primaryKey"`
	UUID      string `gorm:"column:uuid;size:10;uniqueIndex;not null"`
	Name      string `gorm:"size:150;not null"`
	ShortName string `gorm:"size:50"`
	Img       string `gorm:"size:500"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"not null"`

	BrandID int64  `gorm:"not null;index"`
	Brand   *Brand `gorm:"foreignKey:BrandID;references:BrandID"`
}
