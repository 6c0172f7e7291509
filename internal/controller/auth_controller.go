package controller

import (
	"strconv"
	"time"

	"pattern_edu_backend/internal/config"
	"pattern_edu_backend/internal/middleware"
	"pattern_edu_backend/internal/service"
	"pattern_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	Sessions    middleware.SessionStore
	Cfg         *config.Config
}

func NewAuthController(authService *service.AuthService, sessions middleware.SessionStore, cfg *config.Config) *AuthController {
	return &AuthController{
		AuthService: authService,
		Sessions:    sessions,
		Cfg:         cfg,
	}
}

// swagger:model SignupRequest
type SignupRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

// Signup godoc
// @Summary Register a new student account
// @Description Creates the auth identity and its profile row in a single transaction
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "signup payload"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.SignUp(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"success": true, "id": user.ID})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Authenticate and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"role":  user.Role,
		"home":  c.AuthService.RoleHome(user.Role),
	})
}

// swagger:model SetSessionRequest
type SetSessionRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

// SetSession godoc
// @Summary Re-establish the server-side session for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SetSessionRequest true "access token"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/auth/set-session [post]
func (c *AuthController) SetSession(ctx *gin.Context) {
	var req SetSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if _, err := c.AuthService.SetSession(ctx.Request.Context(), req.AccessToken); err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"success": true})
}

// Logout godoc
// @Summary Close the current session
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.AuthService.SignOut(ctx.Request.Context(), claims.SessionID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true})
}

// ForceLogout godoc
// @Summary Invalidate every session a user holds
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/auth/force-logout/{id} [post]
func (c *AuthController) ForceLogout(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	if err := c.AuthService.ForceLogout(ctx.Request.Context(), uint(userID)); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true})
}

// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword godoc
// @Summary Send a password reset link
// @Description Always reports success; does not reveal whether the email exists
// @Tags auth
// @Accept json
// @Produce json
// @Param body body ForgotPasswordRequest true "email"
// @Success 200 {object} util.Response{data=object}
// @Router /api/auth/forgot-password [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AuthService.ForgotPassword(ctx.Request.Context(), req.Email); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true})
}

// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// ResetPassword godoc
// @Summary Set a new password with a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body ResetPasswordRequest true "token and new password"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/auth/reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AuthService.ResetPassword(ctx.Request.Context(), req.Token, req.Password); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true})
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	user, err := c.AuthService.GetCurrentUser(claims)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"id":        user.ID,
		"authId":    user.AuthID,
		"email":     user.Email,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"role":      user.Role,
		"home":      c.AuthService.RoleHome(user.Role),
	})
}

// CheckSession godoc
// @Summary Auth-page gate check
// @Description Tells an auth page whether to send the visitor to their role home
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Router /api/auth/session [get]
func (c *AuthController) CheckSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Success(ctx, gin.H{"authenticated": false})
		return
	}

	sess, err := c.Sessions.Get(ctx.Request.Context(), claims.SessionID)
	if err != nil {
		util.Success(ctx, gin.H{"authenticated": false})
		return
	}

	decision := middleware.Decide(sess, time.Now(), c.Cfg.Session.IdleTimeout, middleware.PathAuthPage)
	if decision.InvalidateSession {
		c.Sessions.Delete(ctx.Request.Context(), sess.ID)
		util.Success(ctx, gin.H{"authenticated": false})
		return
	}

	util.Success(ctx, gin.H{
		"authenticated": true,
		"redirect":      c.AuthService.RoleHome(sess.Role),
	})
}
