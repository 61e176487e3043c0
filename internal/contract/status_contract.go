package contract

type CreateStatusRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=150"`
	Details string  `json:"details" validate:"omitempty,max=2000"`
	Order   int     `json:"order" validate:"required,gt=0"`
	Cost    float64 `json:"cost" validate:"gte=0"`
}

type StageResponse struct {
	ID        int64   `json:"statusId"`
	UUID      string  `json:"uuid"`
	Name      string  `json:"name"`
	Details   string  `json:"details,omitempty"`
	Order     int     `json:"order"`
	Cost      float64 `json:"cost"`
	IsActive  bool    `json:"isActive"`
	CreatedAt string  `json:"createdAt"`
}

type StatusEnvelope struct {
	OK     bool           `json:"ok"`
	Msg    string         `json:"msg"`
	Status *StageResponse `json:"serviceStatus"`
}

type StatusListResponse struct {
	OK       bool             `json:"ok"`
	Msg      string           `json:"msg"`
	Statuses []*StageResponse `json:"serviceStatuses"`
}
