package contract

type CreateOrderRequest struct {
	Observation        string  `json:"observation" validate:"required,max=2000"`
	ProblemDescription string  `json:"problemDescription" validate:"required,max=2000"`
	LockPatron         string  `json:"lockPatron" validate:"omitempty,max=100"`
	LockPass           string  `json:"lockPass" validate:"omitempty,max=100"`
	ReceivedAt         *int64  `json:"receivedAt" validate:"omitempty,gt=0"`
	SerialNumber       string  `json:"serialNumber" validate:"omitempty,max=80"`
	Color              string  `json:"color" validate:"omitempty,max=20"`
	IsRepair           bool    `json:"isRepair"`
	TechSpecifications string  `json:"techSpecifications" validate:"omitempty,max=400"`
	AdvancePayment     float64 `json:"advancePayment" validate:"gte=0"`
	ClientID           int64   `json:"clientId" validate:"required,gt=0"`
	ModelID            int64   `json:"modelId" validate:"required,gt=0"`
}

type UpdateOrderRequest struct {
	Observation        *string  `json:"observation" validate:"omitempty,min=1,max=2000"`
	ProblemDescription *string  `json:"problemDescription" validate:"omitempty,min=1,max=2000"`
	LockPatron         *string  `json:"lockPatron" validate:"omitempty,max=100"`
	LockPass           *string  `json:"lockPass" validate:"omitempty,max=100"`
	ReceivedAt         *int64   `json:"receivedAt" validate:"omitempty,gt=0"`
	SerialNumber       *string  `json:"serialNumber" validate:"omitempty,max=80"`
	Color              *string  `json:"color" validate:"omitempty,max=20"`
	IsRepair           *bool    `json:"isRepair"`
	TechSpecifications *string  `json:"techSpecifications" validate:"omitempty,max=400"`
	AdvancePayment     *float64 `json:"advancePayment" validate:"omitempty,gte=0"`
}

type PersonResponse struct {
	UUID        string `json:"uuid"`
	Names       string `json:"names"`
	LastNames   string `json:"lastNames"`
	DNI         string `json:"dni"`
	MobilePhone string `json:"mobilePhone"`
	Email       string `json:"email"`
}

type ClientResponse struct {
	ID          int64           `json:"clientId"`
	UUID        string          `json:"uuid"`
	HasWhatsapp bool            `json:"hasWhatsapp"`
	HasEmail    bool            `json:"hasEmail"`
	Person      *PersonResponse `json:"person,omitempty"`
}

type ModelResponse struct {
	ID        int64  `json:"modelId"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Img       string `json:"img,omitempty"`
	Brand     string `json:"brand,omitempty"`
}

type OrderResponse struct {
	ID                 int64           `json:"serviceOrderId"`
	UUID               string          `json:"uuid"`
	Number             int64           `json:"number"`
	Observation        string          `json:"observation"`
	LockPatron         string          `json:"lockPatron,omitempty"`
	LockPass           string          `json:"lockPass,omitempty"`
	IsFinished         bool            `json:"isFinished"`
	ReceivedAt         string          `json:"receivedAt"`
	SerialNumber       string          `json:"serialNumber,omitempty"`
	Color              string          `json:"color,omitempty"`
	IsRepair           bool            `json:"isRepair"`
	TechSpecifications string          `json:"techSpecifications,omitempty"`
	ProblemDescription string          `json:"problemDescription"`
	HasSurvey          bool            `json:"hasSurvey"`
	AdvancePayment     float64         `json:"advancePayment"`
	IsActive           bool            `json:"isActive"`
	CreatedAt          string          `json:"createdAt"`
	ClientID           int64           `json:"clientId"`
	ModelID            int64           `json:"modelId"`
	Client             *ClientResponse `json:"client,omitempty"`
	Model              *ModelResponse  `json:"model,omitempty"`
}

type CreateOrderResponse struct {
	OK           bool                  `json:"ok"`
	Msg          string                `json:"msg"`
	ServiceOrder *OrderResponse        `json:"serviceOrder"`
	Entry        *StatusChangeResponse `json:"entry"`
}

type OrderEnvelope struct {
	OK           bool           `json:"ok"`
	Msg          string         `json:"msg"`
	ServiceOrder *OrderResponse `json:"serviceOrder"`
}

type PendingOrdersResponse struct {
	OK      bool             `json:"ok"`
	Msg     string           `json:"msg"`
	Count   int64            `json:"count"`
	Pending []*OrderResponse `json:"pending"`
}
