package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/GNaves/Tasks-API/pkg/translator"
)

// LanguageMiddleware stores the requested language for error translation.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Raw header value is enough here, unknown values fall back to en
		// inside the localizer.
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
