package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/remwaste/accent-analyzer/server/domain/repositories"
	"github.com/remwaste/accent-analyzer/server/internal/accent"
	"github.com/remwaste/accent-analyzer/server/internal/auth"
	"github.com/remwaste/accent-analyzer/server/internal/websocket"
	"github.com/remwaste/accent-analyzer/server/usecase"
)

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, service *usecase.AnalysisService, hub *websocket.Hub, logger *zap.Logger) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "accent-analyzer",
		})
	})

	// API v1 routes
	v1 := e.Group("/api/v1")

	v1.POST("/tokens", issueToken)

	v1.POST("/analyses", func(c echo.Context) error {
		return createAnalysis(c, service, logger)
	})
	v1.GET("/analyses/:id", func(c echo.Context) error {
		return getAnalysis(c, service)
	})
	v1.GET("/analyses", func(c echo.Context) error {
		return listAnalyses(c, service)
	})

	v1.GET("/accents", listAccents)

	// WebSocket endpoint for progress events, JWT-validated
	e.GET("/ws", func(c echo.Context) error {
		return websocketWithAuth(hub, c, logger)
	})
}

func issueToken(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
	}
	if req.ClientID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_fields",
			Message: "Client ID is required",
		})
	}

	token, err := auth.GenerateClientToken(req.ClientID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "token_generation_failed",
			Message: "Could not generate token",
		})
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// createAnalysis starts an analysis from either a video URL (JSON body) or
// an uploaded media file (multipart form). Providing both or neither is
// rejected.
func createAnalysis(c echo.Context, service *usecase.AnalysisService, logger *zap.Logger) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		if videoURL := c.FormValue("video_url"); strings.TrimSpace(videoURL) != "" {
			if _, err := c.FormFile("file"); err == nil {
				return c.JSON(http.StatusBadRequest, ErrorResponse{
					Error:   "ambiguous_input",
					Message: "Provide either a video URL or a file upload, not both",
				})
			}
			return analyzeURL(c, service, logger, videoURL)
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "missing_input",
				Message: "Provide a video URL or a file upload",
			})
		}

		src, err := fileHeader.Open()
		if err != nil {
			logger.Error("Failed to open uploaded file", zap.Error(err))
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_upload",
				Message: "Could not read the uploaded file",
			})
		}
		defer src.Close()

		logger.Info("Received upload",
			zap.String("filename", fileHeader.Filename),
			zap.Int64("size", fileHeader.Size))

		analysis, err := service.AnalyzeUpload(c.Request().Context(), fileHeader.Filename, src)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_upload",
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusCreated, analysis)
	}

	var req CreateAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
	}
	return analyzeURL(c, service, logger, req.VideoURL)
}

func analyzeURL(c echo.Context, service *usecase.AnalysisService, logger *zap.Logger, videoURL string) error {
	if strings.TrimSpace(videoURL) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_input",
			Message: "Provide a video URL or a file upload",
		})
	}

	analysis, err := service.AnalyzeURL(c.Request().Context(), videoURL)
	if err != nil {
		logger.Error("Failed to start URL analysis", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	}
	return c.JSON(http.StatusCreated, analysis)
}

func getAnalysis(c echo.Context, service *usecase.AnalysisService) error {
	analysis, err := service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrAnalysisNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Analysis not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Could not load analysis",
		})
	}
	return c.JSON(http.StatusOK, analysis)
}

func listAnalyses(c echo.Context, service *usecase.AnalysisService) error {
	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	analyses, err := service.List(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Could not list analyses",
		})
	}
	return c.JSON(http.StatusOK, analyses)
}

func listAccents(c echo.Context) error {
	labels := accent.SupportedAccents()
	accents := make([]AccentInfo, 0, len(labels))
	for _, label := range labels {
		accents = append(accents, AccentInfo{
			Name:        label,
			Description: accent.Description(label),
		})
	}
	return c.JSON(http.StatusOK, accents)
}

// websocketWithAuth validates the JWT passed as a query parameter before
// upgrading the connection
func websocketWithAuth(hub *websocket.Hub, c echo.Context, logger *zap.Logger) error {
	token := c.QueryParam("token")
	if token == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "missing_token",
			Message: "Token query parameter is required",
		})
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		logger.Warn("WebSocket authentication failed", zap.Error(err))
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "invalid_token",
			Message: "Invalid or expired token",
		})
	}

	logger.Info("WebSocket client authenticated", zap.String("clientID", claims.ClientID))
	return websocket.HandleWebSocket(hub, c, logger)
}
