package locale

import (
	"strings"
	"time"
)

const (
	EnglishUS = "en-US"
	Spanish   = "es"
)

// Language carries the locale-sensitive labels the calendar views need.
// The service owns no translation catalogs beyond these.
type Language struct {
	Tag       string
	DayLabels [7]string // indexed by time.Weekday, Sunday = 0
}

var languages = map[string]Language{
	EnglishUS: {
		Tag: EnglishUS,
		DayLabels: [7]string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
	},
	Spanish: {
		Tag: Spanish,
		DayLabels: [7]string{
			"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
		},
	},
}

// Resolve maps a language tag to a supported language, falling back to
// en-US for unknown or partial tags ("es-CL" resolves to "es").
func Resolve(tag string) Language {
	if lang, ok := languages[tag]; ok {
		return lang
	}
	if idx := strings.IndexByte(tag, '-'); idx > 0 {
		if lang, ok := languages[tag[:idx]]; ok {
			return lang
		}
	}
	return languages[EnglishUS]
}

func (l Language) DayLabel(day time.Weekday) string {
	return l.DayLabels[int(day)%7]
}

// FormatTime renders a timestamp's time of day as "HH:mm". Both supported
// locales use 24h clocks for slot labels.
func (l Language) FormatTime(t time.Time) string {
	return t.Format("15:04")
}
