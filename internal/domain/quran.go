package domain

// Surah is a chapter summary from the Quran content API.
type Surah struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"` // Arabic name
	EnglishName            string `json:"english_name"`
	EnglishNameTranslation string `json:"english_name_translation"`
	NumberOfAyahs          int    `json:"number_of_ayahs"`
	RevelationType         string `json:"revelation_type"`
}

type Ayah struct {
	Number      int    `json:"number"`
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
}

// SurahDetail combines the Arabic text of a surah with its English translation
// and the recitation audio URL.
type SurahDetail struct {
	Number         int    `json:"number"`
	NameEn         string `json:"name_en"`
	NameAr         string `json:"name_ar"`
	Meaning        string `json:"meaning"`
	Verses         int    `json:"verses"`
	RevelationType string `json:"revelation_type"`
	TranslationBy  string `json:"translation_by"`
	Ayat           []Ayah `json:"ayat"`
	AudioURL       string `json:"audio_url"`
}

type JuzAyah struct {
	SurahNumber   int    `json:"surah_number"`
	SurahName     string `json:"surah_name"`
	NumberInSurah int    `json:"number_in_surah"`
	Text          string `json:"text"`
}

type JuzDetail struct {
	Number int       `json:"number"`
	Ayahs  []JuzAyah `json:"ayahs"`
}
