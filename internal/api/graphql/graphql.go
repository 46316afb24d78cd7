package graphql

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"

	"github.com/propsetu/estate-backend/internal/api/middleware"
	"github.com/propsetu/estate-backend/internal/api/shared/executor"
	"github.com/propsetu/estate-backend/internal/logger"
)

// authRequiredFields lists the operations that refuse to run without a valid
// token. Role checks happen in the resolvers; this gate only establishes
// identity.
var authRequiredFields = map[string]bool{
	// mutations
	"approveProperty":      true,
	"rejectProperty":       true,
	"verifyProperty":       true,
	"createProperty":       true,
	"saveProperty":         true,
	"unsaveProperty":       true,
	"markNotificationRead": true,

	// queries
	"propertiesByStatus": true,
	"approvalHistory":    true,
	"myProperties":       true,
	"savedProperties":    true,
	"notifications":      true,
}

// Handler defines the interface for GraphQL API handlers
type Handler interface {
	// HandleGraphQL handles GraphQL requests
	HandleGraphQL(c *gin.Context)

	// HandlePlayground serves the GraphQL Playground
	HandlePlayground(c *gin.Context)
}

// gqlHandler implements the Handler interface using gqlgen
type gqlHandler struct {
	server     *handler.Server
	authConfig middleware.AuthConfig
}

// NewHandler creates a new GraphQL handler with gqlgen
func NewHandler(exec executor.Executor, authCfg middleware.AuthConfig) (Handler, error) {
	resolver := NewResolver(exec)

	config := Config{Resolvers: resolver}
	schema := NewExecutableSchema(config)

	srv := handler.NewDefaultServer(schema)
	srv.SetErrorPresenter(ErrorPresenter)
	srv.SetRecoverFunc(RecoverFunc)

	h := &gqlHandler{
		server:     srv,
		authConfig: authCfg,
	}

	srv.AroundOperations(h.authMiddleware)

	return h, nil
}

// authMiddleware authenticates GraphQL operations using the shared
// authentication logic. Tokens are validated whenever a header is present so
// that public queries can still personalize their results; operations in
// authRequiredFields refuse to run without one.
func (h *gqlHandler) authMiddleware(ctx context.Context, next graphql.OperationHandler) graphql.ResponseHandler {
	opctx := graphql.GetOperationContext(ctx)

	authHeader := ""
	if opctx.Headers != nil {
		authHeader = opctx.Headers.Get("Authorization")
	}

	var authErr error
	if authHeader != "" {
		result := middleware.Authenticate(authHeader, h.authConfig)
		if result.Success {
			if result.Claims != nil {
				ctx = withClaims(ctx, result.Claims)
			}
		} else {
			authErr = result.Error
		}
	}

	if name := firstProtectedField(opctx); name != "" && claimsFromContext(ctx) == nil {
		logger.WarnCtx(ctx, "GraphQL operation authentication failed",
			zap.Error(authErr),
			zap.String("operation", name),
		)
		return func(ctx context.Context) *graphql.Response {
			return graphql.ErrorResponse(ctx, "Authentication required for this operation")
		}
	}

	return next(ctx)
}

// firstProtectedField returns the first selected field that requires
// authentication, or "" when the operation is fully public
func firstProtectedField(opctx *graphql.OperationContext) string {
	if opctx.Operation == nil {
		return ""
	}
	for _, selection := range opctx.Operation.SelectionSet {
		if field, ok := selection.(*ast.Field); ok && authRequiredFields[field.Name] {
			return field.Name
		}
	}
	return ""
}

// HandleGraphQL processes GraphQL queries and mutations
func (h *gqlHandler) HandleGraphQL(c *gin.Context) {
	// Client info travels on the request context so transitions can record
	// who acted from where
	ctx := withClientInfo(c.Request.Context(), c.ClientIP(), c.Request.UserAgent())
	h.server.ServeHTTP(c.Writer, c.Request.WithContext(ctx))
}

// HandlePlayground serves the GraphQL Playground interface
func (h *gqlHandler) HandlePlayground(c *gin.Context) {
	playground.Handler("Estate GraphQL Playground", "/graphql").ServeHTTP(c.Writer, c.Request)
}

// SetupRoutes configures GraphQL API routes. Middleware passed in
// playgroundMW guards the interactive IDE; the query endpoint handles its
// own authentication per operation.
func SetupRoutes(router *gin.Engine, handler Handler, playgroundMW ...gin.HandlerFunc) {
	// GraphQL endpoint (POST for queries/mutations)
	router.POST("/graphql", handler.HandleGraphQL)

	// GraphQL Playground (GET for interactive IDE)
	router.GET("/graphql", append(playgroundMW, handler.HandlePlayground)...)
}
