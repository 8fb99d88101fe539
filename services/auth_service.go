package services

import (
	"errors"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

const otpTTL = 10 * time.Minute

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func authUserView(user *models.User) *AuthUser {
	return &AuthUser{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
}

func (s *AuthService) findByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// Register creates an inactive account and mails a 6-digit activation code.
func (s *AuthService) Register(input RegisterInput) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return NewValidationError("email is already registered")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return err
	}

	otp := utils.GenerateOTP(6)
	user := models.User{
		Username:               input.Username,
		Email:                  input.Email,
		Password:               hashed,
		Role:                   "user",
		IsActive:               false,
		ActivationOTP:          otp,
		ActivationOTPExpiresAt: time.Now().Add(otpTTL),
	}

	if err := s.db.Create(&user).Error; err != nil {
		return err
	}

	return utils.SendActivationEmail(user.Email, otp)
}

// VerifyOTP activates the account when the code matches and has not expired.
func (s *AuthService) VerifyOTP(email, otp string) (*AuthUser, error) {
	user, err := s.findByEmail(email)
	if err != nil {
		return nil, err
	}

	if user.ActivationOTP == "" || user.ActivationOTP != otp {
		return nil, NewValidationError("invalid OTP")
	}
	if time.Now().After(user.ActivationOTPExpiresAt) {
		return nil, NewValidationError("OTP expired")
	}

	user.IsActive = true
	user.ActivationOTP = ""
	user.ActivationOTPExpiresAt = time.Time{}
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}

	return authUserView(user), nil
}

func (s *AuthService) ResendOTP(email string) error {
	user, err := s.findByEmail(email)
	if err != nil {
		return err
	}
	if user.IsActive {
		return NewValidationError("account is already active")
	}

	otp := utils.GenerateOTP(6)
	user.ActivationOTP = otp
	user.ActivationOTPExpiresAt = time.Now().Add(otpTTL)
	if err := s.db.Save(user).Error; err != nil {
		return err
	}

	return utils.SendActivationEmail(user.Email, otp)
}

// Login checks the password, requires an activated account and issues an
// access/refresh pair. The refresh token is kept server-side for revocation.
func (s *AuthService) Login(input LoginInput) (*TokenPair, *AuthUser, error) {
	user, err := s.findByEmail(input.Email)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil, NewValidationError("invalid email or password")
		}
		return nil, nil, err
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, nil, NewValidationError("invalid email or password")
	}
	if !user.IsActive {
		return nil, nil, NewValidationError("account is not activated")
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, nil, err
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.db.Create(&models.RefreshToken{Token: refreshToken, UserID: user.ID}).Error; err != nil {
		return nil, nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, authUserView(user), nil
}

// Refresh validates the refresh token against both the signature and the
// stored row, then mints a new access token.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	userID, err := utils.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", NewValidationError("invalid refresh token")
	}

	var stored models.RefreshToken
	if err := s.db.Where("token = ?", refreshToken).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", NewValidationError("refresh token revoked")
		}
		return "", err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return "", NewNotFoundError("user not found")
	}

	return utils.GenerateAccessToken(user.ID, user.Role)
}

func (s *AuthService) Logout(refreshToken string) error {
	return s.db.Where("token = ?", refreshToken).Delete(&models.RefreshToken{}).Error
}

// RequestPasswordReset never reveals whether the address exists.
func (s *AuthService) RequestPasswordReset(email string) error {
	user, err := s.findByEmail(email)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return err
	}

	otp := utils.GenerateOTP(6)
	user.ResetOTP = otp
	user.ResetOTPExpiresAt = time.Now().Add(otpTTL)
	if err := s.db.Save(user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(user.Email, otp)
}

func (s *AuthService) ResetPassword(email, otp, newPassword string) error {
	user, err := s.findByEmail(email)
	if err != nil {
		return err
	}

	if user.ResetOTP == "" || user.ResetOTP != otp {
		return NewValidationError("invalid OTP")
	}
	if time.Now().After(user.ResetOTPExpiresAt) {
		return NewValidationError("OTP expired")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetOTP = ""
	user.ResetOTPExpiresAt = time.Time{}
	return s.db.Save(user).Error
}

// CreateFirstAdmin bootstraps the very first admin account; it refuses to run
// once any admin exists.
func (s *AuthService) CreateFirstAdmin(input RegisterInput) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return NewValidationError("admin already exists")
	}

	return s.createAdmin(input)
}

// CreateAdmin adds another admin; the admin gate in the middleware guards the
// route.
func (s *AuthService) CreateAdmin(input RegisterInput) error {
	return s.createAdmin(input)
}

func (s *AuthService) createAdmin(input RegisterInput) error {
	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
		Role:     "admin",
		IsActive: true,
	}
	return s.db.Create(&user).Error
}
