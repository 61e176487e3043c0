package contract

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

type UserResponse struct {
	ID        int64  `json:"userId"`
	UUID      string `json:"uuid"`
	Nick      string `json:"nick"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID int64  `json:"companyId"`
	CreatedAt string `json:"createdAt"`
}

type LoginResponse struct {
	OK    bool          `json:"ok"`
	Msg   string        `json:"msg"`
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}
