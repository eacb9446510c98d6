package progress

import (
	"time"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLocale is used when the configured locale is not supported
const DefaultLocale = "en-US"

const (
	keyDaysAgo    = "relative.days_ago"
	keyHoursAgo   = "relative.hours_ago"
	keyMinutesAgo = "relative.minutes_ago"
	keyJustNow    = "relative.just_now"
)

var supportedLocales = []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}

var localeMatcher = language.NewMatcher(supportedLocales)

var labelCatalog = newLabelCatalog()

func newLabelCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))

	en := language.AmericanEnglish
	mustSet(b, en, keyDaysAgo, plural.Selectf(1, "%d", "=1", "%d day ago", plural.Other, "%d days ago"))
	mustSet(b, en, keyHoursAgo, plural.Selectf(1, "%d", "=1", "%d hour ago", plural.Other, "%d hours ago"))
	mustSet(b, en, keyMinutesAgo, plural.Selectf(1, "%d", "=1", "%d minute ago", plural.Other, "%d minutes ago"))
	mustSet(b, en, keyJustNow, catalog.String("Just now"))
	for key, label := range statusLabelsEN {
		mustSet(b, en, string(key), catalog.String(label))
	}

	pt := language.BrazilianPortuguese
	mustSet(b, pt, keyDaysAgo, plural.Selectf(1, "%d", "=1", "%d dia atrás", plural.Other, "%d dias atrás"))
	mustSet(b, pt, keyHoursAgo, plural.Selectf(1, "%d", "=1", "%d hora atrás", plural.Other, "%d horas atrás"))
	mustSet(b, pt, keyMinutesAgo, plural.Selectf(1, "%d", "=1", "%d minuto atrás", plural.Other, "%d minutos atrás"))
	mustSet(b, pt, keyJustNow, catalog.String("Agora mesmo"))
	for key, label := range statusLabelsPT {
		mustSet(b, pt, string(key), catalog.String(label))
	}

	return b
}

var statusLabelsEN = map[StatusKey]string{
	StatusRequested:   "Requested",
	StatusInReview:    "In Review",
	StatusApproved:    "Approved",
	StatusInProgress:  "In Progress",
	StatusCompleted:   "Completed",
	StatusUnspecified: "Unspecified",
}

var statusLabelsPT = map[StatusKey]string{
	StatusRequested:   "Solicitação",
	StatusInReview:    "Em análise",
	StatusApproved:    "Aprovado",
	StatusInProgress:  "Em andamento",
	StatusCompleted:   "Concluído",
	StatusUnspecified: "Não especificado",
}

func mustSet(b *catalog.Builder, tag language.Tag, key string, msg catalog.Message) {
	if err := b.Set(tag, key, msg); err != nil {
		panic(err)
	}
}

// Labeler renders localized status names and relative times
type Labeler struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLabeler picks the closest supported locale; unknown locales fall back to en-US.
func NewLabeler(locale string) *Labeler {
	tag := language.AmericanEnglish
	if requested, err := language.Parse(locale); err == nil {
		_, index, confidence := localeMatcher.Match(requested)
		if confidence != language.No {
			tag = supportedLocales[index]
		}
	}
	return &Labeler{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(labelCatalog)),
	}
}

// Locale returns the BCP 47 tag in use
func (l *Labeler) Locale() string {
	return l.tag.String()
}

// Status returns the localized display name of a status
func (l *Labeler) Status(key StatusKey) string {
	return l.printer.Sprintf(string(key))
}

// Relative formats t relative to now using whole days, then hours, then
// minutes. Times in the future read as "just now"; a zero time yields "".
func (l *Labeler) Relative(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}

	diff := now.Sub(t)
	days := int(diff / (24 * time.Hour))
	hours := int(diff / time.Hour)
	minutes := int(diff / time.Minute)

	switch {
	case days > 0:
		return l.printer.Sprintf(keyDaysAgo, days)
	case hours > 0:
		return l.printer.Sprintf(keyHoursAgo, hours)
	case minutes > 0:
		return l.printer.Sprintf(keyMinutesAgo, minutes)
	default:
		return l.printer.Sprintf(keyJustNow)
	}
}
