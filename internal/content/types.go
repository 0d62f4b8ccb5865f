package content

// Chapter is one surah from the chapter-list reference collection.
type Chapter struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

// HijriDate is today's date in the Hijri calendar.
type HijriDate struct {
	Date        string   `json:"date"`
	Day         string   `json:"day"`
	Weekday     string   `json:"weekday"`
	Month       string   `json:"month"`
	MonthNumber int      `json:"monthNumber"`
	Year        string   `json:"year"`
	Holidays    []string `json:"holidays,omitempty"`
}

// TafsirEdition is one entry of the available-tafsirs reference list.
type TafsirEdition struct {
	Identifier  string `json:"identifier"`
	Language    string `json:"language"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
}
