package entity

// ServiceOrder is one repair ticket for one client's device. Number is the
// human-facing counter, allocated per company at creation time. The
// workflow engine is the only writer of IsFinished, and never unsets it.
// LockPatron and LockPass are device-unlock secrets, stored encrypted.
type ServiceOrder struct {
	ServiceOrderID     int64  `gorm:"primaryKey"`
	UUID               string `gorm:"column:uuid;size:10;uniqueIndex;not null"`
	Number             int64  `gorm:"not null;index:idx_order_company_number"`
	Observation        string `gorm:"not null"`
	LockPatron         string `gorm:"size:200"` // ciphered
	LockPass           string `gorm:"size:200"` // ciphered
	IsFinished         bool   `gorm:"not null;default:false"`
	ReceivedAt         int64  `gorm:"not null"`
	SerialNumber       string `gorm:"size:80"`
	Color              string `gorm:"size:20"`
	IsRepair           bool   `gorm:"not null;default:false"`
	TechSpecifications string `gorm:"size:400"`
	ProblemDescription string `gorm:"not null"`
	HasSurvey          bool   `gorm:"not null;default:false"`
	AdvancePayment     float64 `gorm:"not null;default:0"`
	IsActive           bool   `gorm:"not null;default:true"`
	CreatedAt          int64  `gorm:"not null"`
	UpdatedAt          int64  `gorm:"not null;autoUpdateTime:false"`

	ClientID int64   `gorm:"not null;index"`
	Client   *Client `gorm:"foreignKey:ClientID;references:ClientID"`
	ModelID  int64   `gorm:"not null"`
	Model    *Model  `gorm:"foreignKey:ModelID;references:ModelID"`
}
