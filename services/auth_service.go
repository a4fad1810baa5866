package services

import (
	"errors"

	"github.com/calo-work-stack/Calo-sub003/config"
	"github.com/calo-work-stack/Calo-sub003/models"
	"github.com/calo-work-stack/Calo-sub003/utils"
)

// RegisterUser creates the account row; macro defaults come from the column
// defaults so a fresh account gets sensible goals immediately.
func RegisterUser(email, password, fullName string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		FullName: fullName,
	}
	return config.DB.Create(&user).Error
}

// AuthenticateUser checks the credentials against an active account and
// returns the user row; the caller decides between MFA and a direct token.
func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	err := config.DB.
		Where("email = ? AND disabled = ?", email, false).
		First(&user).Error
	if err != nil {
		return nil, errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("incorrect password")
	}
	return &user, nil
}
