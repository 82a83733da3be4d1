package handler

import (
	"net/http"
	"os"
	"strings"

	"github.com/BlogSpace/blog-service/internal/dto"
	"github.com/BlogSpace/blog-service/pkg/utils"
	"github.com/gin-gonic/gin"
)

func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, dto.NewRedirectResponse(errNotAuthorized.Error(), registerEntrypoint))
		c.Abort()
		return
	}

	accessToken := strings.Split(header, " ")[1]
	if accessToken == "" {
		c.JSON(http.StatusUnauthorized, dto.NewRedirectResponse(errNotAuthorized.Error(), registerEntrypoint))
		c.Abort()
		return
	}

	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewRedirectResponse(errNotAuthorized.Error(), registerEntrypoint))
		c.Abort()
		return
	}

	c.Set("identity", identityFromClaims(claims))

	c.Next()
}
