package controllers

import (
	"errors"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campusbridge/placement-portal/src/lib"
	"github.com/campusbridge/placement-portal/src/models"
)

var validate = validator.New()

// International number, optional leading +, e.g. +14155552671
var contactPattern = regexp.MustCompile(`^\+?[1-9]\d{7,14}$`)

// RegisterStudent creates a user plus student profile after validating the
// submitted fields
func RegisterStudent(c *fiber.Ctx) error {

	var req struct {
		Username         string `json:"username"`
		Password         string `json:"password"`
		StudentName      string `json:"student_name"`
		StudentContact   string `json:"student_contact"`
		StudentEmail     string `json:"student_email"`
		StudentAddress   string `json:"student_address"`
		CourseJoinedDate string `json:"course_joined_date"`
		CourseDetails    string `json:"course_details"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid request body"))
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Username and password required."))
	}

	var existingUser models.User
	if err := lib.DB.Where("username = ?", req.Username).First(&existingUser).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Username already exists."))
	}

	// Course joined date must parse and must not be in the future
	joinedDate, err := time.Parse("2006-01-02", req.CourseJoinedDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid course joined date."))
	}
	if joinedDate.After(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Course joined date must not be in the future."))
	}

	if err := validate.Var(req.StudentEmail, "required,email"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Please enter a valid email address."))
	}

	if !contactPattern.MatchString(req.StudentContact) {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid contact number. Enter a valid international number (e.g., +14155552671)."))
	}

	var existingProfile models.StudentProfile
	if err := lib.DB.Where("student_email = ?", req.StudentEmail).First(&existingProfile).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Email already exists."))
	}
	if err := lib.DB.Where("student_contact = ?", req.StudentContact).First(&existingProfile).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Contact already exists."))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), 11)
	if err != nil {
		lib.Log.WithError(err).Error("failed to hash password")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	// User and profile are created together or not at all
	err = lib.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Username: req.Username,
			Email:    req.StudentEmail,
			Password: string(hashedPassword),
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile := models.StudentProfile{
			UserID:           user.ID,
			StudentName:      req.StudentName,
			StudentContact:   req.StudentContact,
			StudentEmail:     req.StudentEmail,
			StudentAddress:   req.StudentAddress,
			CourseJoinedDate: joinedDate,
			CourseDetails:    req.CourseDetails,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		lib.Log.WithError(err).Error("failed to register student")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Failed to register student"))
	}

	var candidateCount int64
	lib.DB.Model(&models.StudentProfile{}).Count(&candidateCount)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"candidates": candidateCount,
	})
}

// RegisterRecruiter creates a user plus recruiter profile in pending state.
// The payment outcome is supplied by the external gateway flow and recorded
// as data only.
func RegisterRecruiter(c *fiber.Ctx) error {

	var req struct {
		Email           string `json:"email"`
		Password        string `json:"password"`
		CompanyName     string `json:"company_name"`
		CompanyLinkedin string `json:"company_linkedin"`
		CompanyAddress  string `json:"company_address"`
		ContactPerson   string `json:"contact_person"`
		PhoneNumber     string `json:"phone_number"`
		PaymentID       string `json:"payment_id"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid request body"))
	}

	if err := validate.Var(req.Email, "required,email"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Please enter a valid email address."))
	}
	if req.Password == "" || req.CompanyName == "" || req.ContactPerson == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "All required fields must be filled."))
	}
	if !contactPattern.MatchString(req.PhoneNumber) {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid phone number."))
	}

	var existingUser models.User
	if err := lib.DB.Where("username = ?", req.Email).First(&existingUser).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "An account with this email already exists."))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), 11)
	if err != nil {
		lib.Log.WithError(err).Error("failed to hash password")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	paymentStatus := "pending"
	if req.PaymentID != "" {
		paymentStatus = "completed"
	}

	err = lib.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Username: req.Email,
			Email:    req.Email,
			Password: string(hashedPassword),
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		recruiter := models.RecruiterProfile{
			UserID:          user.ID,
			CompanyName:     req.CompanyName,
			CompanyLinkedin: req.CompanyLinkedin,
			CompanyAddress:  req.CompanyAddress,
			ContactPerson:   req.ContactPerson,
			PhoneNumber:     req.PhoneNumber,
			Email:           req.Email,
			PaymentStatus:   paymentStatus,
			PaymentID:       req.PaymentID,
			Status:          models.RecruiterStatusPending,
		}
		return tx.Create(&recruiter).Error
	})
	if err != nil {
		lib.Log.WithError(err).Error("failed to register recruiter")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Failed to register recruiter"))
	}

	return c.Status(fiber.StatusCreated).JSON(lib.MessageResponse(true, "Registration submitted, awaiting approval"))
}

// Login authenticates a user for the selected account type and returns a JWT
func Login(c *fiber.Ctx) error {

	var req struct {
		UserType string `json:"user_type"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid request body"))
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Email and password are required"))
	}

	var user models.User
	err := lib.DB.Where("username = ?", req.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid email or password"))
		}
		lib.Log.WithError(err).Error("failed to look up user")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid email or password"))
	}

	switch req.UserType {
	case "admin":
		if !user.IsAdmin {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid credentials for selected user type"))
		}
	case "student":
		if user.IsAdmin {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid credentials for selected user type"))
		}
		if _, err := user.GetStudentProfile(lib.DB); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid credentials for selected user type"))
		}
	case "recruiter":
		recruiter, err := user.GetRecruiterProfile(lib.DB)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid credentials for recruiter"))
		}
		if !recruiter.IsApproved() {
			return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse(false, "Your account is pending approval"))
		}
	default:
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid user type"))
	}

	token, err := lib.GenerateJWT(user.ID)
	if err != nil {
		lib.Log.WithError(err).Error("failed to generate token")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}

// GetCurrentUser returns the currently authenticated user's data
func GetCurrentUser(c *fiber.Ctx) error {
	user := c.Locals("user")
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse(false, "Not authenticated"))
	}
	return c.JSON(user)
}

// Logout clears the authentication cookie to log out the user
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt-placement",
		Value:    "",
		Expires:  time.Now().Add(-1 * time.Hour),
		HTTPOnly: true,
		SameSite: "Strict",
		Secure:   false,
		Path:     "/",
	})
	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse(true, "Logged out successfully"))
}
