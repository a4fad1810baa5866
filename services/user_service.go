package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/calo-work-stack/Calo-sub003/config"
	"github.com/calo-work-stack/Calo-sub003/models"
	"github.com/calo-work-stack/Calo-sub003/utils"
)

type ProfileInput struct {
	FullName        string  `json:"full_name"`
	Birthday        string  `json:"birthday"` // sent as YYYY-MM-DD
	Height          float64 `json:"height"`
	Weight          float64 `json:"weight"`
	DefaultCalories float64 `json:"default_calories"`
	DefaultProtein  float64 `json:"default_protein"`
	DefaultCarbs    float64 `json:"default_carbs"`
	DefaultFat      float64 `json:"default_fat"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":                 user.ID,
		"email":              user.Email,
		"full_name":          user.FullName,
		"avatar_url":         user.AvatarURL,
		"birthday":           user.Birthday.Format("2006-01-02"),
		"height":             user.Height,
		"weight":             user.Weight,
		"default_calories":   user.DefaultCalories,
		"default_protein":    user.DefaultProtein,
		"default_carbs":      user.DefaultCarbs,
		"default_fat":        user.DefaultFat,
		"total_meals_logged": user.TotalMealsLogged,
		"total_days_tracked": user.TotalDaysTracked,
		"mfa_enabled":        user.MFAEnabled,
	}, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", input.Birthday)
		if err == nil {
			user.Birthday = birthday
		}
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.DefaultCalories > 0 {
		user.DefaultCalories = input.DefaultCalories
	}
	if input.DefaultProtein > 0 {
		user.DefaultProtein = input.DefaultProtein
	}
	if input.DefaultCarbs > 0 {
		user.DefaultCarbs = input.DefaultCarbs
	}
	if input.DefaultFat > 0 {
		user.DefaultFat = input.DefaultFat
	}

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func DeleteUser(email string) error {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}

// UploadProfilePicture stores the avatar image and records its URL on the
// profile.
func UploadProfilePicture(email, base64Img string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	url, err := utils.UploadBase64ImageToS3(base64Img, "avatars")
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %v", err)
	}

	user.AvatarURL = url
	if err := config.DB.Save(&user).Error; err != nil {
		return "", err
	}
	return url, nil
}
