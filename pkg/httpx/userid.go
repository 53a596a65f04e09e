package httpx

import (
	"github.com/6gunner/eshop/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// userIDHeader — заголовок с идентификатором пользователя
// (проставляется вышестоящим шлюзом после аутентификации).
const userIDHeader = "userId"

// UserIDMiddleware — кладёт userId из заголовка в контекст запроса.
// Запрос без заголовка не отклоняется: пользовательский уровень
// пропускного контроля для него просто пропускается.
func UserIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader(userIDHeader); userID != "" {
			c.Request = c.Request.WithContext(
				ctxmeta.WithUserID(c.Request.Context(), userID),
			)
		}
		c.Next()
	}
}

// UserID — идентификатор пользователя текущего запроса ("" — анонимный).
func UserID(c *gin.Context) string {
	uid, _ := ctxmeta.UserIDFromContext(c.Request.Context())
	return uid
}
