package domain

const (
	NewsTypeNews  = "news"
	NewsTypeEvent = "event"
)

const (
	ResourceTypeFile    = "file"
	ResourceTypeYoutube = "youtube"
)

const (
	ThemeBlue = "blue"
	ThemeRed  = "red"
	ThemeGray = "gray"
)

// Themes lists the selectable site themes.
var Themes = []string{ThemeBlue, ThemeRed, ThemeGray}

const DefaultTheme = ThemeBlue

func IsTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// Site setting keys
const (
	SettingAIAPIKey = "ai_api_key"
)

// Forms and Subjects feed the e-learning filters.
var Forms = []string{"Form 1", "Form 2", "Form 3", "Form 4"}

var Subjects = []string{
	"Mathematics", "English", "Kiswahili", "Biology", "Chemistry", "Physics",
	"History", "Geography", "CRE", "Business Studies", "Agriculture",
}

// Public page slice sizes
const (
	HomeNewsLimit      = 3
	HomeEventsLimit    = 3
	HomeGalleryLimit   = 6
	DashboardRecentMax = 5
)
