package middleware

import (
	"glosor/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AdminOnly guards admin panel actions. The password exchange itself is
// handled by the admin panel entry point; anything else behind this
// middleware is rejected until the chat has been granted access.
func AdminOnly(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if !authService.IsAdmin(userID) {
				logger.Warn("Admin action without access",
					zap.Int64("user_id", userID),
				)
				return c.Send("🔐 Admin access required. Open the admin panel and enter the password first.")
			}

			return next(c)
		}
	}
}
