package services

import (
	"errors"

	"github.com/ASpurbo/meal-lens-ai-85-sub000/config"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/models"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/utils"
)

// ErrMFARequired signals that the password checked out but the user must
// supply the mailed code before a token is issued.
var ErrMFARequired = errors.New("mfa code required")

func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return err
	}

	// best-effort; registration already succeeded
	_ = utils.SendWelcomeEmail(email, fullName)
	return nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	if user.MFAEnabled {
		code := utils.GenerateRandomToken(6)
		user.MFACode = code
		if err := config.DB.Save(&user).Error; err != nil {
			return "", err
		}
		if err := utils.SendMFAEmail(user.Email, code); err != nil {
			return "", err
		}
		return "", ErrMFARequired
	}

	return utils.GenerateJWT(user.Email)
}

func VerifyMFA(email, code string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}
	if user.MFACode == "" || user.MFACode != code {
		return "", errors.New("invalid MFA code")
	}

	user.MFACode = ""
	if err := config.DB.Save(&user).Error; err != nil {
		return "", err
	}
	return utils.GenerateJWT(user.Email)
}
