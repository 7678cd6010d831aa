package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/serviceflow/serviceflow-api/internal/modules/serializer"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
)

type AuthHandler struct {
	creds service.CredentialService
}

func NewAuthHandler(creds service.CredentialService) *AuthHandler {
	return &AuthHandler{creds: creds}
}

// LoginReq accepts the OAuth2 password form (username/password) or JSON (email/password).
type LoginReq struct {
	Username string `form:"username" json:"-"`
	Email    string `form:"-" json:"email"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (r LoginReq) login() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Exchange email and password for a bearer access token
//	@Tags			auth
//	@Accept			x-www-form-urlencoded,json
//	@Produce		json
//	@Param			username	formData	string	false	"User email"
//	@Param			password	formData	string	true	"Password"
//	@Success		200	{object}	serializer.Response{data=service.TokenOutput}
//	@Failure		401	{object}	serializer.Response
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req := LoginReq{}
	var err error
	if c.ContentType() == binding.MIMEJSON {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindWith(&req, binding.Form)
	}
	if err != nil || req.login() == "" {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.creds.Login(c.Request.Context(), req.login(), req.Password)
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}
