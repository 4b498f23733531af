package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/isLah-15/CarDB-Render/config"
	"github.com/isLah-15/CarDB-Render/models"
	"github.com/isLah-15/CarDB-Render/services"
	"github.com/isLah-15/CarDB-Render/utils"
)

type RegisterInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
}

type VerifyInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateRoleInput struct {
	Role string `json:"role" binding:"required,oneof=customer admin"`
}

// Register creates an unverified account and emails a verification code.
// Registration succeeds once the row is persisted; email delivery is best
// effort and never fails the request.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	code := utils.GenerateVerificationCode()
	customer := models.Customer{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		Phone:            input.Phone,
		Password:         hashed,
		Role:             "customer",
		Address:          input.Address,
		VerificationCode: &code,
		IsVerified:       false,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	go func(email, name, code string) {
		plain := fmt.Sprintf("Hello %s, your verification code is: %s", name, code)
		html := fmt.Sprintf(
			"<div><h2>Hello %s,</h2><p>Your verification code is: <strong>%s</strong></p><p>Enter this code to verify your account.</p></div>",
			name, code)
		if err := services.SendEmail(email, name, "Verify your account", plain, html); err != nil {
			log.Printf("Failed to send registration email to %s: %v", email, err)
		}
	}(customer.Email, customer.LastName, code)

	c.JSON(http.StatusCreated, gin.H{"message": "User created. Verification code sent to email."})
}

// Verify compares the submitted code against the stored one; on match the
// account becomes verified and the code is cleared.
func Verify(c *gin.Context) {
	var input VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.Where("email = ?", input.Email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if customer.VerificationCode == nil || *customer.VerificationCode != input.Code {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid verification code")
		return
	}

	updates := map[string]interface{}{
		"verification_code": nil,
		"is_verified":       true,
	}
	if err := config.DB.Model(&customer).Updates(updates).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	go func(email, name string) {
		plain := fmt.Sprintf("Hello %s, your account has been verified. You can now log in and use all features.", name)
		html := fmt.Sprintf(
			"<div><h2>Hello %s,</h2><p>Your account has been <strong>successfully verified</strong>!</p><p>You can now log in and enjoy our services.</p></div>",
			name)
		if err := services.SendEmail(email, name, "Account Verified Successfully", plain, html); err != nil {
			log.Printf("Failed to send verification success email to %s: %v", email, err)
		}
	}(customer.Email, customer.LastName)

	c.JSON(http.StatusOK, gin.H{"message": "User verified successfully"})
}

// Login checks verification state and credentials, then issues a signed
// 24h token with the account's id, name and role.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.Where("email = ?", input.Email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if !customer.IsVerified {
		utils.RespondWithError(c, http.StatusForbidden, "Account not verified. Please verify your email.")
		return
	}

	if !utils.CheckPasswordHash(input.Password, customer.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(customer.ID, customer.FirstName, customer.LastName, customer.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"user_id":    customer.ID,
			"first_name": customer.FirstName,
			"last_name":  customer.LastName,
			"email":      customer.Email,
			"role":       customer.Role,
		},
	})
}

// GetUsers lists every account. Password hashes never serialize.
func GetUsers(c *gin.Context) {
	var users []models.Customer
	if err := config.DB.Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(users) == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "No users found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Users retrieved successfully", "data": users})
}

// UpdateUserRole applies a role-only patch, unlike the full-replace
// semantics of the generic contract.
func UpdateUserRole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if err := config.DB.Model(&customer).Update("role", input.Role).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "data": customer})
}

// DeleteUser removes an account; reservations and bookings cascade.
func DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := config.DB.Delete(&models.Customer{}, id)
	if res.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
