package handler

import (
	"github.com/BlogSpace/blog-service/internal/model"
	"github.com/BlogSpace/blog-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// registerEntrypoint is where unauthenticated callers are sent; the UI
// collaborator performs the actual navigation.
const registerEntrypoint = "/api/auth/register"

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.POST("", h.authMiddleware, h.postsCreate)
			posts.GET("/my", h.authMiddleware, h.postsGetMy)
			posts.GET("/author/:userID", h.postsGetByAuthor)

			post := posts.Group("/:postID")
			{
				post.GET("", h.notRequiredAuthMiddleware, h.postsGetByID)
				post.PATCH("", h.authMiddleware, h.postsEdit)
				post.DELETE("", h.authMiddleware, h.postsDelete)
			}
		}
	}

	return r
}

func identityFromClaims(claims jwt.MapClaims) model.Identity {
	identity := model.Identity{Authenticated: true}

	if id, ok := claims["id"].(string); ok {
		identity.ID = id
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if picture, ok := claims["picture"].(string); ok {
		identity.Picture = picture
	}

	return identity
}

func (h *Handler) getIdentityFromRequest(c *gin.Context) model.Identity {
	identityReq, _ := c.Get("identity")

	identity, ok := identityReq.(model.Identity)
	if !ok {
		return model.Identity{}
	}

	return identity
}
