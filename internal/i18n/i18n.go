// Package i18n translates user-facing API messages (en, pt, nl).
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
		// Fallback to default locale
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

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the built-in translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInvalidRequest:     "Invalid request",
			ErrKeyInvalidRequestBody: "Invalid request body",
			ErrKeyInternalError:      "An unexpected error occurred",
			ErrKeyUnauthorized:       "Unauthorized",
			ErrKeyAPIKeyRequired:     "API key is required",
			ErrKeyInvalidAPIKey:      "Invalid API key",
			ErrKeyForbidden:          "Forbidden",
			ErrKeyNotFound:           "Not found",
			ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
			ErrKeyConflict:           "Conflict",
			ErrKeyInvalidToken:       "Invalid or expired token",
			ErrKeyTokenRequired:      "Authentication token is required",
			ErrKeyTimeout:            "Request timed out",
			ErrKeyUnknownProduct:     "Unknown product",
			ErrKeyDuplicateProduct:   "Duplicate product in catalog",
			ErrKeyInvalidQuantity:    "Quantity must be a positive integer",
			ErrKeyInvalidMass:        "mass_g must be a positive integer",
			ErrKeyEmptyOrder:         "Order has no requested lines",
			ErrKeyCatalogLoaded:      "Catalog is already loaded",
			ErrKeyCatalogNotLoaded:   "Catalog has not been loaded",
			ErrKeyLedgerUnavailable:  "Shipment history is not available",
			ErrKeyLogsUnavailable:    "Operations log is not available",

			ErrKeyIdempotencyInFlight: "A request with this Idempotency-Key is still in progress",
			ErrKeyIdempotencyMismatch: "Idempotency-Key was already used with a different request body",

			SuccessKeyCatalogLoaded:  "Catalog loaded",
			SuccessKeyRestocked:      "Restock applied",
			SuccessKeyOrderProcessed: "Order processed",
			SuccessKeyTokenIssued:    "Token issued",
		},
		"pt": {
			ErrKeyInvalidRequest:     "Requisição inválida",
			ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
			ErrKeyInternalError:      "Ocorreu um erro inesperado",
			ErrKeyUnauthorized:       "Não autorizado",
			ErrKeyAPIKeyRequired:     "Chave de API é obrigatória",
			ErrKeyInvalidAPIKey:      "Chave de API inválida",
			ErrKeyForbidden:          "Proibido",
			ErrKeyNotFound:           "Não encontrado",
			ErrKeyRateLimitExceeded:  "Muitas requisições, tente novamente mais tarde",
			ErrKeyConflict:           "Conflito",
			ErrKeyInvalidToken:       "Token inválido ou expirado",
			ErrKeyTokenRequired:      "Token de autenticação é obrigatório",
			ErrKeyTimeout:            "Tempo de requisição esgotado",
			ErrKeyUnknownProduct:     "Produto desconhecido",
			ErrKeyDuplicateProduct:   "Produto duplicado no catálogo",
			ErrKeyInvalidQuantity:    "A quantidade deve ser um inteiro positivo",
			ErrKeyInvalidMass:        "mass_g deve ser um inteiro positivo",
			ErrKeyEmptyOrder:         "O pedido não possui itens",
			ErrKeyCatalogLoaded:      "O catálogo já foi carregado",
			ErrKeyCatalogNotLoaded:   "O catálogo ainda não foi carregado",
			ErrKeyLedgerUnavailable:  "Histórico de remessas indisponível",
			ErrKeyLogsUnavailable:    "Log de operações indisponível",

			ErrKeyIdempotencyInFlight: "Uma requisição com esta Idempotency-Key ainda está em andamento",
			ErrKeyIdempotencyMismatch: "A Idempotency-Key já foi usada com outro corpo de requisição",

			SuccessKeyCatalogLoaded:  "Catálogo carregado",
			SuccessKeyRestocked:      "Reposição aplicada",
			SuccessKeyOrderProcessed: "Pedido processado",
			SuccessKeyTokenIssued:    "Token emitido",
		},
		"nl": {
			ErrKeyInvalidRequest:     "Ongeldig verzoek",
			ErrKeyInvalidRequestBody: "Ongeldige aanvraag body",
			ErrKeyInternalError:      "Er is een onverwachte fout opgetreden",
			ErrKeyUnauthorized:       "Niet geautoriseerd",
			ErrKeyAPIKeyRequired:     "API-sleutel is vereist",
			ErrKeyInvalidAPIKey:      "Ongeldige API-sleutel",
			ErrKeyForbidden:          "Verboden",
			ErrKeyNotFound:           "Niet gevonden",
			ErrKeyRateLimitExceeded:  "Te veel verzoeken, probeer het later opnieuw",
			ErrKeyConflict:           "Conflict",
			ErrKeyInvalidToken:       "Ongeldig of verlopen token",
			ErrKeyTokenRequired:      "Authenticatietoken is vereist",
			ErrKeyTimeout:            "Verzoek verlopen",
			ErrKeyUnknownProduct:     "Onbekend product",
			ErrKeyDuplicateProduct:   "Dubbel product in catalogus",
			ErrKeyInvalidQuantity:    "Hoeveelheid moet een positief geheel getal zijn",
			ErrKeyInvalidMass:        "mass_g moet een positief geheel getal zijn",
			ErrKeyEmptyOrder:         "Bestelling bevat geen regels",
			ErrKeyCatalogLoaded:      "Catalogus is al geladen",
			ErrKeyCatalogNotLoaded:   "Catalogus is nog niet geladen",
			ErrKeyLedgerUnavailable:  "Verzendgeschiedenis is niet beschikbaar",
			ErrKeyLogsUnavailable:    "Operatielogboek is niet beschikbaar",

			ErrKeyIdempotencyInFlight: "Een verzoek met deze Idempotency-Key wordt nog verwerkt",
			ErrKeyIdempotencyMismatch: "Idempotency-Key is al gebruikt met een andere body",

			SuccessKeyCatalogLoaded:  "Catalogus geladen",
			SuccessKeyRestocked:      "Aanvulling verwerkt",
			SuccessKeyOrderProcessed: "Bestelling verwerkt",
			SuccessKeyTokenIssued:    "Token uitgegeven",
		},
	}
}
