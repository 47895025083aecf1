package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/campusbridge/placement-portal/src/lib"
	"github.com/campusbridge/placement-portal/src/models"
)

// ProtectRoute is a middleware that checks for a valid JWT token,
// authenticates the user, and attaches user data to the request context
func ProtectRoute(c *fiber.Ctx) error {

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - No token provided",
		})
	}

	// Expected format: "Bearer <token>"
	var token string
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		token = authHeader[7:]
	} else {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - Invalid token format",
		})
	}

	decoded, err := lib.VerifyJWT(token)
	if err != nil || decoded == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - Invalid token",
		})
	}

	userID, ok := decoded["userId"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - Invalid token",
		})
	}

	user, err := lib.FindUserByID(uint(userID))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	c.Locals("user", *user)

	return c.Next()
}

// RequireAdmin allows only administrator accounts through.
func RequireAdmin(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	if !user.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Access Denied - Administrator account required",
		})
	}
	return c.Next()
}

// RequireApprovedRecruiter loads the caller's recruiter profile, rejects
// missing or unapproved ones, and attaches the profile to the context.
func RequireApprovedRecruiter(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	recruiter, err := user.GetRecruiterProfile(lib.DB)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Access Denied - No recruiter profile found",
			})
		}
		lib.Log.WithError(err).Error("failed to load recruiter profile")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	if !recruiter.IsApproved() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Your account is pending approval",
		})
	}

	c.Locals("recruiter", *recruiter)
	return c.Next()
}

// RequireStudentProfile loads the caller's student profile and attaches it
// to the context, rejecting accounts without one.
func RequireStudentProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	student, err := user.GetStudentProfile(lib.DB)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "No student profile found. Please contact an administrator.",
			})
		}
		lib.Log.WithError(err).Error("failed to load student profile")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	c.Locals("student", *student)
	return c.Next()
}
