package widget

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. Key is a default English text.
const (
	MsgCountryCode     = "Country Code"
	MsgCountryName     = "Country Name"
	MsgCity            = "City"
	MsgIPAddress       = "IP Address"
	MsgLatitude        = "Latitude"
	MsgLongitude       = "Longitude"
	MsgFetchError      = "IP fetch error"
	MsgPositionDetails = "IP Position Details"
	MsgFetching        = "Fetching location info..."
	MsgNoFlag          = "No Flag"
	MsgNoDataUser      = "No data found for the user's IP address."
	MsgNoDataIP        = "No data found for IP address %s."
	MsgRevalidate      = "Revalidate IP info"
)

var translations = map[language.Tag]map[string]string{
	language.Russian: {
		MsgCountryCode:     "Код страны",
		MsgCountryName:     "Страна",
		MsgCity:            "Город",
		MsgIPAddress:       "IP-адрес",
		MsgLatitude:        "Широта",
		MsgLongitude:       "Долгота",
		MsgFetchError:      "Ошибка получения данных IP",
		MsgPositionDetails: "Местоположение IP",
		MsgFetching:        "Получение информации о местоположении...",
		MsgNoFlag:          "Нет флага",
		MsgNoDataUser:      "Нет данных для IP-адреса пользователя.",
		MsgNoDataIP:        "Нет данных для IP-адреса %s.",
		MsgRevalidate:      "Обновить информацию об IP",
	},
	language.German: {
		MsgCountryCode:     "Ländercode",
		MsgCountryName:     "Land",
		MsgCity:            "Stadt",
		MsgIPAddress:       "IP-Adresse",
		MsgLatitude:        "Breitengrad",
		MsgLongitude:       "Längengrad",
		MsgFetchError:      "Fehler beim Abrufen der IP-Daten",
		MsgPositionDetails: "IP-Standortdetails",
		MsgFetching:        "Standortinformationen werden abgerufen...",
		MsgNoFlag:          "Keine Flagge",
		MsgNoDataUser:      "Keine Daten für die IP-Adresse des Benutzers gefunden.",
		MsgNoDataIP:        "Keine Daten für IP-Adresse %s gefunden.",
		MsgRevalidate:      "IP-Informationen erneut prüfen",
	},
}

var messageCatalog = func() catalog.Catalog {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))

	for tag, messages := range translations {
		for key, msg := range messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}

	return builder
}()

type translator struct {
	printer *message.Printer
}

func (t translator) Translate(key string, args ...interface{}) string {
	return t.printer.Sprintf(key, args...)
}

// NewTranslator returns a translator for a given language. Unsupported
// languages fall back to English.
func NewTranslator(tag language.Tag) Translator {
	return translator{
		printer: message.NewPrinter(tag, message.Catalog(messageCatalog)),
	}
}

// SupportedLanguages lists languages which have translations. English
// is implicit: keys are English texts.
func SupportedLanguages() []language.Tag {
	return []language.Tag{language.English, language.Russian, language.German}
}
