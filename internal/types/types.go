package types

// GenerationRequest carries the user's description of the app to build.
// It is consumed once per invocation by the prompt builder.
type GenerationRequest struct {
	Description      string
	StylePreferences string
}

// Project identifies a generated app on disk.
type Project struct {
	Name      string // human-supplied app name
	Dir       string // directory holding the app, <output dir>/<slug>
	EntryFile string // absolute path of the app's index.html
}
