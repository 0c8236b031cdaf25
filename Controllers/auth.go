package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ChecklistPro/Models"
	"ChecklistPro/Validation"
	"ChecklistPro/middleware"
)

// AuthController handles login, logout and user management.
type AuthController struct {
	DB       *gorm.DB
	Validate *Validation.Validator
	Service  *DocumentService
}

// NewAuthController creates a new AuthController
func NewAuthController(db *gorm.DB, validate *Validation.Validator, service *DocumentService) *AuthController {
	return &AuthController{DB: db, Validate: validate, Service: service}
}

type registerInput struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Permission int    `json:"permission"`
}

// RegisterUser creates a new account.
func (c *AuthController) RegisterUser(ctx *fiber.Ctx) error {
	var input registerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lang := c.Service.Translator(ctx.Query("lang")).Language()
	if messages := c.Validate.Struct(input, lang); messages != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": messages})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := Models.User{
		Name:       input.Name,
		Email:      input.Email,
		Password:   hash,
		Permission: input.Permission,
	}
	if err := c.DB.Create(&user).Error; err != nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A user with this email already exists"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(user)
}

// Login verifies credentials and sets the jwt cookie.
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user Models.User
	if err := c.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Incorrect email or password"})
	}
	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(input.Password)); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Incorrect email or password"})
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    strconv.FormatUint(uint64(user.ID), 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.Secret())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not log in"})
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
	})

	return ctx.JSON(fiber.Map{"message": "success"})
}

// Logout expires the jwt cookie.
func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return ctx.JSON(fiber.Map{"message": "success"})
}

// User returns the authenticated account stored by the Verify middleware.
func (c *AuthController) User(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Logged In."})
	}
	return ctx.JSON(user)
}
