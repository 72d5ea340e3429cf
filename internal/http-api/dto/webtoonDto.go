package dto

import "webtoonnote/internal/http-api/models"

// ValidUpdateDays lists the accepted day-of-week codes in the catalog.
// THR (not THU) matches what the ingestion pipeline writes.
var ValidUpdateDays = []string{"MON", "TUE", "WED", "THR", "FRI", "SAT", "SUN"}

func IsValidUpdateDay(day string) bool {
	for _, d := range ValidUpdateDays {
		if d == day {
			return true
		}
	}
	return false
}

type WebtoonResponse struct {
	ID         string `json:"id"`
	WebtoonID  string `json:"webtoon_id"`
	Thumbnail  string `json:"thumbnail"`
	Title      string `json:"title"`
	UpdateDays string `json:"updateDays"`
	Authors    string `json:"authors"`
	Synopsis   string `json:"synopsis,omitempty"`
	Tags       string `json:"tags"`
}

func FromModelToWebtoonResponse(w *models.NormalizedWebtoon) *WebtoonResponse {
	return &WebtoonResponse{
		ID:         w.ID,
		WebtoonID:  w.ID,
		Thumbnail:  w.Thumbnail,
		Title:      w.Title,
		UpdateDays: w.UpdateDays,
		Authors:    w.Authors,
		Synopsis:   w.Synopsis,
		Tags:       w.Tags,
	}
}

type WebtoonListResponse struct {
	Count    int               `json:"count"`
	Webtoons []WebtoonResponse `json:"webtoons"`
}

func NewWebtoonListResponse(webtoons []models.NormalizedWebtoon) *WebtoonListResponse {
	items := make([]WebtoonResponse, 0, len(webtoons))
	for i := range webtoons {
		items = append(items, *FromModelToWebtoonResponse(&webtoons[i]))
	}
	return &WebtoonListResponse{Count: len(items), Webtoons: items}
}

type WebtoonTitleListResponse struct {
	Count  int      `json:"count"`
	Titles []string `json:"titles"`
}
