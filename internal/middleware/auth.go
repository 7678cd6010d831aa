package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/serviceflow/serviceflow-api/internal/config"
	"github.com/serviceflow/serviceflow-api/internal/modules/serializer"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
	"github.com/serviceflow/serviceflow-api/internal/pkg/utils/tokens"
)

// Context keys set by the auth middlewares.
const (
	UserKey    = "user"
	ProjectKey = "project"
)

func tagRootSpan(c *gin.Context, kv attribute.KeyValue) {
	rootSpan := trace.SpanFromContext(c.Request.Context())
	if rootSpan.SpanContext().IsValid() {
		rootSpan.SetAttributes(kv)
	}
}

// authenticateBearer returns false after aborting the request.
func authenticateBearer(c *gin.Context, creds service.CredentialService, optional bool) bool {
	ctx, span := otel.Tracer("middleware").Start(c.Request.Context(), "jwt_auth",
		trace.WithAttributes(attribute.String("middleware", "jwt_auth")))
	defer span.End()

	header := c.GetHeader("Authorization")
	if header == "" && optional {
		span.SetAttributes(attribute.Bool("authenticated", false))
		return true
	}

	raw, ok := tokens.ParseBearer(header)
	if !ok {
		span.SetAttributes(attribute.Bool("authenticated", false))
		c.Header("WWW-Authenticate", "Bearer")
		c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Not authenticated"))
		return false
	}

	user, err := creds.Authenticate(ctx, raw)
	if err != nil {
		span.SetAttributes(attribute.Bool("authenticated", false))
		if errors.Is(err, service.ErrInvalidToken) {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Could not validate credentials"))
			return false
		}
		span.RecordError(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return false
	}

	uid := strconv.FormatUint(uint64(user.ID), 10)
	tagRootSpan(c, attribute.String("user_id", uid))
	span.SetAttributes(
		attribute.String("user_id", uid),
		attribute.Bool("authenticated", true),
	)

	c.Set(UserKey, user)
	return true
}

// JWTAuth requires a valid management access token and stores the user under UserKey.
func JWTAuth(creds service.CredentialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authenticateBearer(c, creds, false) {
			c.Next()
		}
	}
}

// OptionalJWTAuth behaves like JWTAuth when an Authorization header is sent
// and lets anonymous requests through otherwise.
func OptionalJWTAuth(creds service.CredentialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authenticateBearer(c, creds, true) {
			c.Next()
		}
	}
}

// APIKeyAuth resolves the project from the configured API key header and
// stores it under ProjectKey.
func APIKeyAuth(cfg *config.Config, resolver service.AccessResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := otel.Tracer("middleware").Start(c.Request.Context(), "api_key_auth",
			trace.WithAttributes(attribute.String("middleware", "api_key_auth")))

		project, err := resolver.ResolveAPIKey(ctx, c.GetHeader(cfg.Auth.APIKeyHeader))
		if err != nil {
			span.SetAttributes(attribute.Bool("authenticated", false))
			if errors.Is(err, service.ErrUnauthenticated) {
				span.End()
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Invalid API Key"))
				return
			}
			span.RecordError(err)
			span.End()
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}

		pid := strconv.FormatUint(uint64(project.ID), 10)
		tagRootSpan(c, attribute.String("project_id", pid))
		span.SetAttributes(
			attribute.String("project_id", pid),
			attribute.Bool("authenticated", true),
		)
		span.End()

		c.Set(ProjectKey, project)
		c.Next()
	}
}
