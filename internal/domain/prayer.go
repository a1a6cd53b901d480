package domain

// PrayerTimes holds the daily prayer schedule for one location.
type PrayerTimes struct {
	Date     string `json:"date"`
	Hijri    string `json:"hijri_date"`
	Timezone string `json:"timezone"`
	Fajr     string `json:"fajr"`
	Sunrise  string `json:"sunrise"`
	Dhuhr    string `json:"dhuhr"`
	Asr      string `json:"asr"`
	Maghrib  string `json:"maghrib"`
	Isha     string `json:"isha"`
}
