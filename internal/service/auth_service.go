package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"repairdesk/internal/contract"
	"repairdesk/internal/domain/sqlite/repository"
	"repairdesk/internal/utils"
	"repairdesk/internal/utils/apierror"
)

type AuthService struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthService(db *gorm.DB, validate *validator.Validate) *AuthService {
	return &AuthService{DB: db, Validate: validate}
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password answer identically so the endpoint leaks nothing
// about which accounts exist.
func (s *AuthService) Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	users := repository.NewUserRepository(s.DB)
	user, err := users.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("authenticating user [%s]: %v", req.Email, err)
		return nil, apierror.InternalServerError
	}
	if user == nil {
		return nil, apierror.CredentialsMismatchError
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apierror.CredentialsMismatchError
	}

	token, err := utils.IssueToken(user)
	if err != nil {
		log.Errorf("issuing token [user %d]: %v", user.UserID, err)
		return nil, apierror.InternalServerError
	}

	return &contract.LoginResponse{
		OK:    true,
		Msg:   "Authenticated",
		User:  toUserResponse(user),
		Token: token,
	}, nil
}
