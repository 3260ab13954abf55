package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pennywise/internal/auth"
	apperrors "pennywise/internal/errors"
	"pennywise/internal/handler"
)

// TokenHeader carries the raw signed token on authenticated requests.
const TokenHeader = "token"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	expenseHandler *handler.ExpenseHandler,
	insightHandler *handler.InsightHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "PennyWise API"})
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/signin", authHandler.Signin)

	// Secured routes: the token header carries the raw signed token and the
	// verified user id is stored under the default context key.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + TokenHeader,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.Verify(tokenString)
		},
		ErrorHandler: authErrorHandler,
	}))

	// Expense routes
	secured.GET("/expenses", expenseHandler.List)
	secured.POST("/expenses", expenseHandler.Create)
	secured.PUT("/expenses/:id", expenseHandler.Update)
	secured.DELETE("/expenses/:id", expenseHandler.Delete)

	// Insight routes
	secured.GET("/insights/statistics", insightHandler.Statistics)
	secured.GET("/insights/ai-analysis", insightHandler.AIAnalysis)
}

// authErrorHandler answers 401 for every auth failure; absent, expired and
// invalid tokens each get their own message.
func authErrorHandler(c echo.Context, err error) error {
	var message string
	switch {
	case c.Request().Header.Get(TokenHeader) == "":
		message = "Authentication token is required"
	case errors.Is(err, auth.ErrTokenExpired):
		message = "Token has expired. Please login again"
	default:
		message = "Invalid token. Please login again"
	}
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: message,
		Code:  "UNAUTHENTICATED",
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
