package controllers

import (
	"net/http"
	"time"

	"github.com/calo-work-stack/Calo-sub003/config"
	"github.com/calo-work-stack/Calo-sub003/models"
	"github.com/calo-work-stack/Calo-sub003/services"
	"github.com/calo-work-stack/Calo-sub003/utils"

	"github.com/gin-gonic/gin"
)

const resetCodeTTL = 15 * time.Minute

type signUpInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

// POST /auth/register
func Register(c *gin.Context) {
	var in signUpInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.RegisterUser(in.Email, in.Password, in.FullName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "account created"})
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login. Accounts with MFA enabled get a mailed code instead of
// a token; the token comes back from /auth/verify-mfa.
func Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.AuthenticateUser(in.Email, in.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	if user.MFAEnabled {
		code := utils.GenerateNumericCode(6)
		user.MFACode = code
		config.DB.Save(user)

		if err := utils.SendMFAEmail(user.Email, code); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send verification code"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"mfa_required": true, "message": "verification code sent"})
		return
	}

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type mfaInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// POST /auth/verify-mfa
func VerifyMFA(c *gin.Context) {
	var in mfaInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.FindUserByEmail(in.Email)
	if err != nil || user.MFACode == "" || user.MFACode != in.Code {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid verification code"})
		return
	}

	// single use
	user.MFACode = ""
	config.DB.Save(user)

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// POST /auth/forgot-password. The reply is the same whether or not the
// account exists.
func ForgotPassword(c *gin.Context) {
	var in struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	const reply = "if the email is registered, a reset code is on its way"

	user, err := services.FindUserByEmail(in.Email)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"message": reply})
		return
	}

	user.ResetToken = utils.GenerateNumericCode(6)
	user.ResetTokenExp = time.Now().Add(resetCodeTTL)
	config.DB.Save(user)

	_ = utils.SendResetEmail(user.Email, user.ResetToken)
	c.JSON(http.StatusOK, gin.H{"message": reply})
}

// POST /auth/reset-password
func ResetPassword(c *gin.Context) {
	var in struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := config.DB.Where("reset_token = ?", in.Token).First(&user).Error
	if err != nil || time.Now().After(user.ResetTokenExp) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired code"})
		return
	}

	hashed, err := utils.HashPassword(in.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update password"})
		return
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	config.DB.Save(&user)

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
