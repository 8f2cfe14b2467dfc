// Package i18n provides internationalization support for the cash packing service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,ru;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "Invalid email or password",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.conflict":             "Conflict",
			"error.validation.amount":    "amount: must be a non-negative integer",
			"error.validation.stock":     "stock: contains an invalid denomination or count",
			"error.unknown_currency":     "Currency is not supported",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.timeout":              "Request timeout",

			// Outcome messages
			"result.infeasible":      "Cannot fulfill the requested amount with the given stock",
			"result.budget_exceeded": "Search stopped early, showing best-effort variants",
			"success.optimized":      "Packing variants computed successfully",
			"success.stock_updated":  "Stock levels updated successfully",
		},
		"ru": {
			// Error messages
			"error.invalid_request":      "Некорректный запрос",
			"error.invalid_request_body": "Некорректное тело запроса",
			"error.internal_error":       "Произошла непредвиденная ошибка",
			"error.unauthorized":         "Не авторизован",
			"error.invalid_credentials":  "Неверный email или пароль",
			"error.api_key_required":     "Требуется API-ключ",
			"error.invalid_api_key":      "Неверный API-ключ",
			"error.forbidden":            "Доступ запрещён",
			"error.not_found":            "Не найдено",
			"error.rate_limit_exceeded":  "Слишком много запросов, попробуйте позже",
			"error.conflict":             "Конфликт",
			"error.validation.amount":    "amount: должно быть неотрицательным целым числом",
			"error.validation.stock":     "stock: содержит недопустимый номинал или количество",
			"error.unknown_currency":     "Валюта не поддерживается",
			"error.invalid_token":        "Неверный или просроченный токен",
			"error.token_required":       "Требуется токен аутентификации",
			"error.timeout":              "Превышено время ожидания запроса",

			// Outcome messages
			"result.infeasible":      "Невозможно выдать запрошенную сумму при заданных остатках",
			"result.budget_exceeded": "Поиск остановлен досрочно, показаны найденные варианты",
			"success.optimized":      "Варианты упаковки рассчитаны успешно",
			"success.stock_updated":  "Остатки обновлены успешно",
		},
		"de": {
			// Error messages
			"error.invalid_request":      "Ungültige Anfrage",
			"error.invalid_request_body": "Ungültiger Anfragetext",
			"error.internal_error":       "Ein unerwarteter Fehler ist aufgetreten",
			"error.unauthorized":         "Nicht autorisiert",
			"error.invalid_credentials":  "Ungültige E-Mail oder ungültiges Passwort",
			"error.api_key_required":     "API-Schlüssel erforderlich",
			"error.invalid_api_key":      "Ungültiger API-Schlüssel",
			"error.forbidden":            "Verboten",
			"error.not_found":            "Nicht gefunden",
			"error.rate_limit_exceeded":  "Zu viele Anfragen, bitte später erneut versuchen",
			"error.conflict":             "Konflikt",
			"error.validation.amount":    "amount: muss eine nicht negative Ganzzahl sein",
			"error.validation.stock":     "stock: enthält eine ungültige Stückelung oder Anzahl",
			"error.unknown_currency":     "Währung wird nicht unterstützt",
			"error.invalid_token":        "Ungültiges oder abgelaufenes Token",
			"error.token_required":       "Authentifizierungstoken erforderlich",
			"error.timeout":              "Zeitüberschreitung der Anfrage",

			// Outcome messages
			"result.infeasible":      "Der angeforderte Betrag kann mit dem Bestand nicht ausgegeben werden",
			"result.budget_exceeded": "Suche vorzeitig beendet, beste gefundene Varianten angezeigt",
			"success.optimized":      "Verpackungsvarianten erfolgreich berechnet",
			"success.stock_updated":  "Bestände erfolgreich aktualisiert",
		},
	}
}
