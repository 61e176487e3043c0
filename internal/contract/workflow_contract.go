package contract

type AdvanceRequest struct {
	ServiceOrderID int64  `json:"serviceOrderId" validate:"required,gt=0"`
	Details        string `json:"details" validate:"omitempty,max=2000"`
}

type ActingUserResponse struct {
	ID   int64  `json:"userId"`
	Nick string `json:"nick"`
	Role string `json:"role,omitempty"`
}

type StatusChangeResponse struct {
	ID           int64               `json:"statusChangeId"`
	UUID         string              `json:"uuid"`
	Details      string              `json:"details,omitempty"`
	SysDetail    string              `json:"sysDetail"`
	IsCompleted  bool                `json:"isCompleted"`
	CreatedAt    string              `json:"createdAt"`
	Stage        *StageResponse      `json:"stage,omitempty"`
	User         *ActingUserResponse `json:"user,omitempty"`
	ServiceOrder *OrderResponse      `json:"serviceOrder,omitempty"`
}

// AdvanceResponse reports one pipeline step. Finished=true with a nil
// Entry means the pipeline is exhausted and the order has been closed out.
type AdvanceResponse struct {
	OK       bool                  `json:"ok"`
	Msg      string                `json:"msg"`
	Finished bool                  `json:"finished"`
	Entry    *StatusChangeResponse `json:"entry,omitempty"`
}

type FinishResponse struct {
	OK            bool   `json:"ok"`
	Msg           string `json:"msg"`
	ClosedEntries int64  `json:"closedEntries"`
}

type HistoryResponse struct {
	OK           bool                    `json:"ok"`
	Msg          string                  `json:"msg"`
	ServiceOrder *OrderResponse          `json:"serviceOrder"`
	History      []*StatusChangeResponse `json:"history"`
}

type OrdersAtPositionResponse struct {
	OK      bool                    `json:"ok"`
	Msg     string                  `json:"msg"`
	Count   int                     `json:"count"`
	Entries []*StatusChangeResponse `json:"entries"`
}
