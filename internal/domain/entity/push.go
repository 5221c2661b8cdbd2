package entity

// PushPayload is one relay message for one device token. Data values are
// always strings.
type PushPayload struct {
	Token   string
	Title   string
	Body    string
	Data    map[string]string
	Android AndroidHints
	APNS    APNSHints
}

type AndroidHints struct {
	ChannelID             string
	Priority              string
	Icon                  string
	Color                 string
	DefaultSound          bool
	DefaultVibrateTimings bool
}

type APNSHints struct {
	Badge    int
	Sound    string
	Category string
}
