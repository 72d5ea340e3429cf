package models

// NormalizedWebtoon maps the precomputed catalog table. Rows are produced
// by the ingestion pipeline; this service only ever reads them.
type NormalizedWebtoon struct {
	ID         string `json:"id" gorm:"primaryKey;size:64"`
	Thumbnail  string `json:"thumbnail"`
	Title      string `json:"title" gorm:"not null;index"`
	UpdateDays string `json:"updateDays" gorm:"column:updateDays;size:3;index"`
	Authors    string `json:"authors"`
	Synopsis   string `json:"synopsis" gorm:"type:text"`
	Tags       string `json:"tags"`
}

func (NormalizedWebtoon) TableName() string {
	return "normalized_webtoon"
}
