package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/muslimtime-api/internal/domain"
)

// Client fetches Quran content from the alquran.cloud REST API.
type Client struct {
	baseURL  string
	audioCDN string
	http     *http.Client
}

func NewClient(baseURL, audioCDN string) *Client {
	return &Client{
		baseURL:  baseURL,
		audioCDN: audioCDN,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

type surahItem struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

type ayahItem struct {
	Number        int    `json:"number"`
	Text          string `json:"text"`
	NumberInSurah int    `json:"numberInSurah"`
	Surah         *struct {
		Number      int    `json:"number"`
		EnglishName string `json:"englishName"`
	} `json:"surah"`
}

type surahDetailPayload struct {
	Number                 int        `json:"number"`
	Name                   string     `json:"name"`
	EnglishName            string     `json:"englishName"`
	EnglishNameTranslation string     `json:"englishNameTranslation"`
	NumberOfAyahs          int        `json:"numberOfAyahs"`
	RevelationType         string     `json:"revelationType"`
	Ayahs                  []ayahItem `json:"ayahs"`
}

func (c *Client) ListSurahs(ctx context.Context) ([]domain.Surah, error) {
	var payload struct {
		Data []surahItem `json:"data"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/surah", &payload); err != nil {
		return nil, fmt.Errorf("list surahs: %w", err)
	}

	surahs := make([]domain.Surah, 0, len(payload.Data))
	for _, s := range payload.Data {
		surahs = append(surahs, domain.Surah{
			Number:                 s.Number,
			Name:                   s.Name,
			EnglishName:            s.EnglishName,
			EnglishNameTranslation: s.EnglishNameTranslation,
			NumberOfAyahs:          s.NumberOfAyahs,
			RevelationType:         s.RevelationType,
		})
	}
	return surahs, nil
}

// GetSurah fetches the Arabic text and the Ahmed Ali English translation of a
// surah, and attaches the recitation audio URL from the CDN.
func (c *Client) GetSurah(ctx context.Context, number int) (*domain.SurahDetail, error) {
	var arabic struct {
		Data surahDetailPayload `json:"data"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("%s/surah/%d", c.baseURL, number), &arabic); err != nil {
		return nil, fmt.Errorf("get surah %d: %w", number, err)
	}

	var english struct {
		Data surahDetailPayload `json:"data"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("%s/surah/%d/en.ahmedali", c.baseURL, number), &english); err != nil {
		return nil, fmt.Errorf("get surah %d translation: %w", number, err)
	}

	detail := &domain.SurahDetail{
		Number:         arabic.Data.Number,
		NameEn:         arabic.Data.EnglishName,
		NameAr:         arabic.Data.Name,
		Meaning:        arabic.Data.EnglishNameTranslation,
		Verses:         arabic.Data.NumberOfAyahs,
		RevelationType: arabic.Data.RevelationType,
		TranslationBy:  "Ahmed Ali",
		AudioURL:       fmt.Sprintf("%s/%d.mp3", c.audioCDN, number),
	}

	detail.Ayat = make([]domain.Ayah, 0, len(arabic.Data.Ayahs))
	for i, a := range arabic.Data.Ayahs {
		ayah := domain.Ayah{
			Number: a.NumberInSurah,
			Arabic: a.Text,
		}
		if i < len(english.Data.Ayahs) {
			ayah.Translation = english.Data.Ayahs[i].Text
		}
		detail.Ayat = append(detail.Ayat, ayah)
	}
	return detail, nil
}

func (c *Client) GetJuz(ctx context.Context, number int) (*domain.JuzDetail, error) {
	var payload struct {
		Data struct {
			Number int        `json:"number"`
			Ayahs  []ayahItem `json:"ayahs"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("%s/juz/%d/quran-uthmani", c.baseURL, number), &payload); err != nil {
		return nil, fmt.Errorf("get juz %d: %w", number, err)
	}

	juz := &domain.JuzDetail{Number: payload.Data.Number}
	juz.Ayahs = make([]domain.JuzAyah, 0, len(payload.Data.Ayahs))
	for _, a := range payload.Data.Ayahs {
		ja := domain.JuzAyah{
			NumberInSurah: a.NumberInSurah,
			Text:          a.Text,
		}
		if a.Surah != nil {
			ja.SurahNumber = a.Surah.Number
			ja.SurahName = a.Surah.EnglishName
		}
		juz.Ayahs = append(juz.Ayahs, ja)
	}
	return juz, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
