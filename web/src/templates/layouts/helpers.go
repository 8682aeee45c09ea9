package layouts

// AppName is appended to every page title.
const AppName = "Chatify"

// PageTitle returns "<title> - Chatify", or the bare app name.
func PageTitle(title string) string {
	if title == "" {
		return AppName
	}
	return title + " - " + AppName
}
