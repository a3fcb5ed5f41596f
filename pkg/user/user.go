package user

type User struct {
	Id          int
	Uid         string
	Username    string
	DisplayName string
	Settings    Settings
}

// Settings holds per-user preferences. Timezone is the IANA zone applied when
// scanning working hours and writing calendar events for this user.
type Settings struct {
	Timezone string
}
