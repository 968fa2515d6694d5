package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ghorbari_backend/models"
	"ghorbari_backend/repository"
	"ghorbari_backend/services"
	"ghorbari_backend/utils"
)

type AuthHandler struct {
	Sellers repository.SellerRepository
	Buyers  repository.BuyerRepository
}

func NewAuthHandler(sellers repository.SellerRepository, buyers repository.BuyerRepository) *AuthHandler {
	return &AuthHandler{Sellers: sellers, Buyers: buyers}
}

// RegisterRequest defines the payload for registration.
type RegisterRequest struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
	Gender   string `json:"gender"`
	Country  string `json:"country"`
	Image    string `json:"image"`
}

// LoginRequest defines the payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ExistsRequest checks whether an account already uses the email or
// username.
type ExistsRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Register - POST /api/auth/:role/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	role := c.Params("role")
	if role != services.RoleSeller && role != services.RoleBuyer {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Unknown role"})
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	if req.Fullname == "" || req.Username == "" || req.Email == "" ||
		req.Phone == "" || req.Address == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are necessary"})
	}

	exists, err := h.exists(c, role, req.Email, req.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "User already exists"})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not hash password"})
	}

	if role == services.RoleSeller {
		seller := models.Seller{
			Fullname: req.Fullname,
			Username: req.Username,
			Email:    req.Email,
			Phone:    req.Phone,
			Address:  req.Address,
			Password: hashedPassword,
			Gender:   req.Gender,
			Country:  req.Country,
			Image:    req.Image,
		}
		if err := h.Sellers.Create(c.Context(), &seller); err != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "User already exists"})
		}
	} else {
		buyer := models.Buyer{
			Fullname: req.Fullname,
			Username: req.Username,
			Email:    req.Email,
			Phone:    req.Phone,
			Address:  req.Address,
			Password: hashedPassword,
			Gender:   req.Gender,
			Country:  req.Country,
			Image:    req.Image,
		}
		if err := h.Buyers.Create(c.Context(), &buyer); err != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "User already exists"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

// Login - POST /api/auth/:role/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	role := c.Params("role")
	if role != services.RoleSeller && role != services.RoleBuyer {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Unknown role"})
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	var (
		email    string
		fullname string
		image    string
		hash     string
	)
	if role == services.RoleSeller {
		seller, err := h.Sellers.FindByEmail(c.Context(), req.Email)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
		}
		email, fullname, image, hash = seller.Email, seller.Fullname, seller.Image, seller.Password
	} else {
		buyer, err := h.Buyers.FindByEmail(c.Context(), req.Email)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
		}
		email, fullname, image, hash = buyer.Email, buyer.Fullname, buyer.Image, buyer.Password
	}

	if !utils.CheckPasswordHash(req.Password, hash) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
	}

	token, err := utils.GenerateToken(email, role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not login"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"email":    email,
			"fullname": fullname,
			"role":     role,
			"image":    image,
		},
	})
}

// Exists - POST /api/auth/:role/exists
func (h *AuthHandler) Exists(c *fiber.Ctx) error {
	role := c.Params("role")
	if role != services.RoleSeller && role != services.RoleBuyer {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Unknown role"})
	}

	var req ExistsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	exists, err := h.exists(c, role, req.Email, req.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"user": exists})
}

func (h *AuthHandler) exists(c *fiber.Ctx, role, email, username string) (bool, error) {
	if role == services.RoleSeller {
		return h.Sellers.Exists(c.Context(), email, username)
	}
	return h.Buyers.Exists(c.Context(), email, username)
}
