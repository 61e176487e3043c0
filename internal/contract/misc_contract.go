package contract

// SimpleResponse is the bare `{ ok, msg }` envelope used when an operation
// has no payload to return.
type SimpleResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}

func NewSimpleResponse(msg string) *SimpleResponse {
	return &SimpleResponse{OK: true, Msg: msg}
}
