package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"agrimarket/entities"
	"agrimarket/pkg/auth"
	"agrimarket/pkg/auth/controller"
	"agrimarket/pkg/auth/repository"
)

type authCtrl struct {
	users  repository.UserRepository
	secret string
}

func NewAuthController(users repository.UserRepository, secret string) controller.AuthController {
	return &authCtrl{users: users, secret: secret}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // farmer|supplier|lender
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email, password are required"})
	}
	role := entities.Role(req.Role)
	if role == "" {
		role = entities.RoleFarmer
	}
	switch role {
	case entities.RoleFarmer, entities.RoleSupplier, entities.RoleLender:
	default:
		// admin accounts are provisioned out of band
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role"})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	ctx := c.Request().Context()
	if _, err := h.users.FindByEmail(ctx, email); err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash error"})
	}
	u := &entities.User{Name: req.Name, Email: email, PasswordHash: string(hash), Role: role}
	if err := h.users.Create(ctx, u); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	u, err := h.users.FindByEmail(c.Request().Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	tok, err := auth.Sign(h.secret, u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "jwt error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": tok})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(uint)
	u, err := h.users.FindByID(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, u)
}
