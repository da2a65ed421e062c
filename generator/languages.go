package generator

// Language is a translator target.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TranslationLanguages are the targets offered by the translator, in display order.
var TranslationLanguages = []Language{
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "ar", Name: "Arabic"},
	{Code: "ko", Name: "Korean"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ru", Name: "Russian"},
	{Code: "en", Name: "English"},
	{Code: "pt-br", Name: "Portuguese (Brazil)"},
	{Code: "pt-pt", Name: "Portuguese (Portugal)"},
	{Code: "zh", Name: "Chinese"},
	{Code: "hi", Name: "Hindi"},
}

// LanguageName falls back to the code for unknown languages.
func LanguageName(code string) string {
	for _, l := range TranslationLanguages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

func IsTranslationLanguage(code string) bool {
	for _, l := range TranslationLanguages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// AllLanguageCodes returns every target code in display order.
func AllLanguageCodes() []string {
	codes := make([]string, len(TranslationLanguages))
	for i, l := range TranslationLanguages {
		codes[i] = l.Code
	}
	return codes
}
