package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"habitly-be/internal/middleware"
	"habitly-be/internal/service"
)

// QRCodeController generates a scannable QR code for the caller's public
// progress page, so a habit list can be shared from a phone screen.
type QRCodeController struct {
	authService service.AuthService
	frontendURL string
}

func NewQRCodeController(authService service.AuthService, frontendURL string) *QRCodeController {
	return &QRCodeController{
		authService: authService,
		frontendURL: frontendURL,
	}
}

// GenerateQRCode handles GET /api/v1/qrcode - QR code of the caller's progress link
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	user, err := qc.authService.Profile(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	progressURL := qc.frontendURL + "/u/" + user.Username

	// 256x256 pixels, medium error recovery
	qrCode, err := qrcode.New(progressURL, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code image",
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
