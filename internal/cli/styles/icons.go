package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "\uf0ac" // web
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher
	IconCheck     = "\uf00c" // check
	IconX         = "\uf00d" // x
	IconWarning   = "\uf071" // warning
	IconConfig    = "\ue615" // config
	IconFilter    = "\uf0b0" // filter
)
