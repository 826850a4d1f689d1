package models

// Settings is the full set of user-chosen display preferences. The zero value
// is not usable directly; personalization.Defaults() produces a complete one.
type Settings struct {
	Theme           string `json:"theme"`
	PrimaryColor    string `json:"primaryColor"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
	FontFamily      string `json:"fontFamily"`
	FontSize        string `json:"fontSize"`
	BackgroundType  string `json:"backgroundType"`
	BackgroundValue string `json:"backgroundValue"`
	BackgroundBlur  int    `json:"backgroundBlur"`
}
