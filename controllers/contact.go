// controllers/contact.go
package controllers

import (
	"net/http"
	"strings"

	"belalbarber-backend/config"
	"belalbarber-backend/models"
	"belalbarber-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateContactInput defines the expected JSON structure for the contact form
type CreateContactInput struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Phone   string  `json:"phone" binding:"required"`
	Message string  `json:"message" binding:"required"`
}

// CreateContact stores an inbound contact-form message
func CreateContact(c *gin.Context) {
	var input CreateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Name, phone, and message are required")
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	if input.Email != nil && strings.TrimSpace(*input.Email) != "" && !utils.ValidateEmail(*input.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email address")
		return
	}

	contact := models.Contact{
		Name:    strings.TrimSpace(input.Name),
		Email:   trimmedOrNil(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
		Message: strings.TrimSpace(input.Message),
	}

	if err := config.DB.Create(&contact).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    contact,
		"message": "Contact form submitted successfully",
	})
}

// GetContacts lists all contact messages for the admin panel, newest first
func GetContacts(c *gin.Context) {
	var contacts []models.Contact
	if err := config.DB.Order("created_at desc").Find(&contacts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": contacts})
}
