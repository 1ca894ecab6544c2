package services

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"tripmate/internal/models/response_models"
)

const (
	// DestinationUndecided is returned when the chat only named a country or
	// continent; upstream re-prompts the user for a city-level answer.
	DestinationUndecided = "여행지 미정"

	defaultDuration = 3
	defaultBudget   = 1_000_000
)

type MetadataServiceInterface interface {
	ExtractTripMetadata(conversationText string) response_models.TripMetadata
}

type MetadataService struct{}

func NewMetadataService() MetadataServiceInterface {
	return &MetadataService{}
}

var (
	// Heading form first ("## 도쿄 3일 여행 일정"), then the looser inline form.
	// The name group is a single token on purpose: multi-word phrases capture
	// too much surrounding prose to be usable as a destination.
	headingDestPattern = regexp.MustCompile(`##\s*([가-힣A-Za-z0-9]+)\s*(\d+)일\s*(?:여행|일정|코스)`)
	looseDestPattern   = regexp.MustCompile(`([가-힣A-Za-z0-9]+)\s*(\d+)일\s*여행`)

	durationPattern = regexp.MustCompile(`(\d+)일`)

	// "N만원" wins over a bare 6+ digit won amount when both appear.
	budgetPattern = regexp.MustCompile(`(\d+)만원|(\d{6,})원`)
)

// Countries and continents are not plannable destinations; the assistant is
// re-prompted for a city when the chat only got this far.
var countryDenylist = []string{
	"일본", "중국", "미국", "한국", "대만", "베트남", "태국", "필리핀",
	"프랑스", "이탈리아", "스페인", "영국", "독일", "호주", "인도",
	"유럽", "아시아", "동남아", "북미", "남미", "아프리카",
}

var styleCategories = []struct {
	Tag      string
	Keywords []string
}{
	{Tag: "맛집", Keywords: []string{"맛집", "음식", "먹거리", "미식", "식도락"}},
	{Tag: "관광", Keywords: []string{"관광", "명소", "유적", "랜드마크"}},
	{Tag: "쇼핑", Keywords: []string{"쇼핑", "시장", "마켓", "아울렛"}},
	{Tag: "액티비티", Keywords: []string{"액티비티", "체험", "투어", "레저"}},
}

// ExtractTripMetadata scans the whole conversation text and returns a
// best-effort TripMetadata. It never fails; every field degrades to a default.
func (s *MetadataService) ExtractTripMetadata(conversationText string) response_models.TripMetadata {
	meta := response_models.TripMetadata{
		Destination: DestinationUndecided,
		Duration:    defaultDuration,
		Budget:      defaultBudget,
	}

	if dest := s.extractDestination(conversationText); dest != "" {
		meta.Destination = dest
	}
	if days := s.extractDuration(conversationText); days > 0 {
		meta.Duration = days
	}
	if budget, ok := s.extractBudget(conversationText); ok {
		meta.Budget = budget
	}
	meta.Styles = s.extractStyles(conversationText)

	return meta
}

func (s *MetadataService) extractDestination(text string) string {
	var name string
	if m := headingDestPattern.FindStringSubmatch(text); len(m) > 1 {
		name = m[1]
	} else if m := looseDestPattern.FindStringSubmatch(text); len(m) > 1 {
		name = m[1]
	}
	if name == "" {
		return ""
	}

	for _, country := range countryDenylist {
		if name == country {
			log.Printf("destination %q is a country/continent, leaving undecided", name)
			return DestinationUndecided
		}
	}
	return name
}

func (s *MetadataService) extractDuration(text string) int {
	m := durationPattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0
	}
	days, err := strconv.Atoi(m[1])
	if err != nil || days < 1 {
		return 0
	}
	return days
}

func (s *MetadataService) extractBudget(text string) (int, bool) {
	m := budgetPattern.FindStringSubmatch(text)
	if len(m) < 3 {
		return 0, false
	}
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return n * 10_000, true
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *MetadataService) extractStyles(text string) []string {
	var styles []string
	for _, cat := range styleCategories {
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) {
				styles = append(styles, cat.Tag)
				break
			}
		}
	}
	if len(styles) == 0 {
		styles = []string{"문화", "관광"}
	}
	return styles
}
