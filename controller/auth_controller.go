package controller

import (
	"net/http"

	"github.com/mandilinkybl-pixel/madirate/model"
	"github.com/mandilinkybl-pixel/madirate/service"
	"github.com/mandilinkybl-pixel/madirate/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
)

// cookie lifetime matches the token's 30 minutes.
const sessionCookieMaxAge = 1800

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authSvc service.AuthService) *AuthController {
	return &AuthController{authService: authSvc}
}

func (ctrl *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", ctrl.login)
		authGroup.GET("/logout", ctrl.logout)
	}
}

func (ctrl *AuthController) login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{Success: false, Message: "Invalid request"})
		return
	}
	if err := zog.Struct(validator.LoginShape).Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{Success: false, Message: "UserId and Password are required"})
		return
	}

	token, err := ctrl.authService.Login(req.UserID, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.Response{Success: false, Message: "Invalid credentials"})
		return
	}

	c.SetCookie("auth_token", token, sessionCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, model.Response{Success: true, Message: "Login successful"})
}

func (ctrl *AuthController) logout(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, model.Response{Success: true, Message: "Logged out"})
}
