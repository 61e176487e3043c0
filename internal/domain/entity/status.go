package entity

// ServiceStatus is one named, ordered step in a company's repair pipeline
// ("Received", "Diagnosed", ...). StageOrder defines the traversal
// sequence within the company; inactive stages are skipped entirely.
type ServiceStatus struct {
	StatusID   int64   `gorm:"primaryKey"`
	UUID       string  `gorm:"column:uuid;size:10;uniqueIndex;not null"`
	Name       string  `gorm:"size:150;not null"`
	Details    string
	StageOrder int     `gorm:"not null"`
	Cost       float64 `gorm:"not null;default:0"`
	IsActive   bool    `gorm:"not null;default:true"`
	CreatedAt  int64   `gorm:"not null"`
	UpdatedAt  int64   `gorm:"not null;autoUpdateTime:false"`

	CompanyID int64    `gorm:"not null;index"`
	Company   *Company `gorm:"foreignKey:CompanyID;references:CompanyID"`
}

// StatusChange is one journal row marking an order's entry into a stage.
// Exactly one row per unfinished order has IsCompleted=false; it is the
// order's current position in the pipeline.
type StatusChange struct {
	StatusChangeID int64  `gorm:"primaryKey"`
	UUID           string `gorm:"column:uuid;size:10;uniqueIndex;not null"`
	Details        string
	SysDetail      string
	IsCompleted    bool  `gorm:"not null;default:false"`
	IsActive       bool  `gorm:"not null;default:true"`
	CreatedAt      int64 `gorm:"not null;index"`

	StatusID       int64          `gorm:"not null;index"`
	Status         *ServiceStatus `gorm:"foreignKey:StatusID;references:StatusID"`
	ServiceOrderID int64          `gorm:"not null;index"`
	ServiceOrder   *ServiceOrder  `gorm:"foreignKey:ServiceOrderID;references:ServiceOrderID"`
	UserID         int64          `gorm:"not null"`
	User           *User          `gorm:"foreignKey:UserID;references:UserID"`
}

// OrderState is the explicit, single-source answer to "where is this order
// in the pipeline". Stage is nil once the order is finished.
type OrderState struct {
	Finished bool
	Stage    *ServiceStatus
}
