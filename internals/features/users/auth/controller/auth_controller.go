package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"collegeschedule_backend/internals/features/users/auth/dto"
	"collegeschedule_backend/internals/features/users/auth/service"
	helper "collegeschedule_backend/internals/helpers"
)

const boardPath = "/admin/board"

type AuthController struct {
	Sessions *service.SessionService
	Validate *validator.Validate

	// OnLogout runs after a session is revoked, e.g. to drop per-user board state.
	OnLogout func(username string)
}

func NewAuthController(s *service.SessionService, v *validator.Validate) *AuthController {
	if v == nil {
		v = helper.Validator()
	}
	return &AuthController{Sessions: s, Validate: v}
}

func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) ||
		c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

func toResponse(s service.Session) dto.SessionResponse {
	return dto.SessionResponse{
		Username:        s.Username,
		IsAuthenticated: s.IsAuthenticated,
		ExpiresAt:       s.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// GET /admin/login
func (ac *AuthController) LoginPage(c *fiber.Ctx) error {
	if _, err := ac.Sessions.Parse(helper.ReqCtx(c), service.TokenFrom(c)); err == nil {
		return c.Redirect(boardPath, fiber.StatusSeeOther)
	}
	return c.Render("login", fiber.Map{"Title": "Sign in"})
}

// POST /admin/login (form or JSON)
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		if wantsJSON(c) {
			return helper.ValidationError(c, err)
		}
		return c.Status(fiber.StatusUnprocessableEntity).Render("login", fiber.Map{
			"Title": "Sign in", "Error": "Enter username and password", "LoginName": req.Username,
		})
	}

	sess, err := ac.Sessions.Login(req.Username, req.Password)
	if err != nil {
		log.Printf("[WARN] admin login failed for %q from %s", req.Username, c.IP())
		if wantsJSON(c) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Title": "Sign in", "Error": "Invalid username or password", "LoginName": req.Username,
		})
	}

	service.SetCookie(c, sess)
	log.Printf("[INFO] admin %q signed in", sess.Username)
	if wantsJSON(c) {
		return helper.JsonOK(c, "Signed in", fiber.Map{"session": toResponse(sess), "token": sess.Token})
	}
	return c.Redirect(boardPath, fiber.StatusSeeOther)
}

// POST /admin/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	sess, err := ac.Sessions.Parse(helper.ReqCtx(c), service.TokenFrom(c))
	switch {
	case err == nil:
		if err := ac.Sessions.Logout(helper.ReqCtx(c), sess); err != nil {
			log.Printf("[ERROR] blacklist session token: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign out")
		}
		log.Printf("[INFO] admin %q signed out", sess.Username)
		if ac.OnLogout != nil {
			ac.OnLogout(sess.Username)
		}
	case errors.Is(err, service.ErrNoSession), errors.Is(err, service.ErrSessionRevoked):
		// already signed out
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign out")
	}

	service.ClearCookie(c)
	if wantsJSON(c) {
		return helper.JsonOK(c, "Signed out", nil)
	}
	return c.Redirect("/admin/login", fiber.StatusSeeOther)
}

// GET /admin/session
func (ac *AuthController) Current(c *fiber.Ctx) error {
	sess, ok := service.FromCtx(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
	}
	return helper.JsonOK(c, "OK", toResponse(sess))
}
