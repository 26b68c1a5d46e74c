package apierrors

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/GNaves/Tasks-API/pkg/translator"
)

// JsonErr is the error body every endpoint returns: a single translated
// message with no internal detail.
type JsonErr struct {
	Message string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return e.Message
}

// CreateError builds the JSON error body for a message key.
func CreateError(msgKey string, lang string) JsonErr {
	return JsonErr{Message: GetTransErrorMsg(msgKey, lang)}
}

// GetTransErrorMsg retrieves the translated error message, falling back to
// the key itself when no translation exists.
func GetTransErrorMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
