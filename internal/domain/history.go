package domain

import "time"

// ReadingHistory is one user's progress in one surah. The pair
// (user_id, surah_number) is the table key, so re-reading a surah updates the
// existing entry instead of appending.
type ReadingHistory struct {
	UserID           string    `json:"user_id" dynamodbav:"user_id"`
	SurahNumber      int       `json:"surah_number" dynamodbav:"surah_number"`
	SurahName        string    `json:"surah_name" dynamodbav:"surah_name"`
	SurahEnglishName string    `json:"surah_english_name" dynamodbav:"surah_english_name"`
	SurahArabicName  string    `json:"surah_arabic_name" dynamodbav:"surah_arabic_name"`
	AyahNumber       int       `json:"ayah_number" dynamodbav:"ayah_number"`
	JuzNumber        *int      `json:"juz_number,omitempty" dynamodbav:"juz_number"`
	TotalAyahs       int       `json:"total_ayahs" dynamodbav:"total_ayahs"`
	Progress         float64   `json:"progress" dynamodbav:"progress"` // percent of the surah read
	LastReadAt       time.Time `json:"last_read_at" dynamodbav:"last_read_at"`
}

type SaveHistoryRequest struct {
	SurahNumber      int    `json:"surah_number" validate:"required,min=1,max=114"`
	SurahName        string `json:"surah_name" validate:"required"`
	SurahEnglishName string `json:"surah_english_name"`
	SurahArabicName  string `json:"surah_arabic_name"`
	AyahNumber       int    `json:"ayah_number" validate:"required,min=1"`
	JuzNumber        *int   `json:"juz_number"`
	TotalAyahs       int    `json:"total_ayahs" validate:"required,min=1"`
}
