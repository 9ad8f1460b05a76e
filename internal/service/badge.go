package service

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// CreateBadgeQR encodes a badge payload for a user and writes the PNG to
// fileName. Kiosks scan the badge to identify who is clocking in.
func CreateBadgeQR(baseURL string, userID int, fileName string) error {
	content := fmt.Sprintf("%s/api/v1/user/%d", baseURL, userID)

	if err := qrcode.WriteFile(content, qrcode.Medium, 256, fileName); err != nil {
		return fmt.Errorf("error creating badge qr: %w", err)
	}
	return nil
}
