// Package language holds the static set of languages supported by the
// dictionary API, keyed by ISO 639-1 code.
package language

// DefaultCode is the language used before the user picks one.
const DefaultCode = "en"

type Language struct {
	Code       string `yaml:"code"`
	Name       string `yaml:"name"`
	Flag       string `yaml:"flag"`
	NativeName string `yaml:"native_name,omitempty"`
}

// Supported is the immutable set of selectable languages. English comes
// first and doubles as the default.
var Supported = []Language{
	{Code: "en", Name: "English", Flag: "🇬🇧", NativeName: "English"},
	{Code: "es", Name: "Spanish", Flag: "🇪🇸", NativeName: "Español"},
	{Code: "fr", Name: "French", Flag: "🇫🇷", NativeName: "Français"},
	{Code: "de", Name: "German", Flag: "🇩🇪", NativeName: "Deutsch"},
	{Code: "it", Name: "Italian", Flag: "🇮🇹", NativeName: "Italiano"},
	{Code: "pt", Name: "Portuguese", Flag: "🇵🇹", NativeName: "Português"},
	{Code: "ru", Name: "Russian", Flag: "🇷🇺", NativeName: "Русский"},
	{Code: "ja", Name: "Japanese", Flag: "🇯🇵", NativeName: "日本語"},
	{Code: "ko", Name: "Korean", Flag: "🇰🇷", NativeName: "한국어"},
	{Code: "zh", Name: "Chinese", Flag: "🇨🇳", NativeName: "中文"},
	{Code: "ar", Name: "Arabic", Flag: "🇸🇦", NativeName: "العربية"},
	{Code: "hi", Name: "Hindi", Flag: "🇮🇳", NativeName: "हिन्दी"},
	{Code: "tr", Name: "Turkish", Flag: "🇹🇷", NativeName: "Türkçe"},
	{Code: "nl", Name: "Dutch", Flag: "🇳🇱", NativeName: "Nederlands"},
	{Code: "pl", Name: "Polish", Flag: "🇵🇱", NativeName: "Polski"},
}

// Default returns the default language, English.
func Default() Language {
	return Supported[0]
}

// ByCode returns the language for an ISO 639-1 code, or the default when the
// code is unknown.
func ByCode(code string) Language {
	for _, lang := range Supported {
		if lang.Code == code {
			return lang
		}
	}
	return Default()
}

// IsSupported reports whether code belongs to the supported set.
func IsSupported(code string) bool {
	for _, lang := range Supported {
		if lang.Code == code {
			return true
		}
	}
	return false
}
