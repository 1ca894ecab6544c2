package services

import (
	"sort"
	"strings"

	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
)

type ItineraryMergerInterface interface {
	MergeItineraries(messages []request_models.ChatMessage, expectedDuration int) []response_models.DayItinerary
}

type ItineraryMerger struct {
	parser ItineraryParserInterface
}

func NewItineraryMerger(parser ItineraryParserInterface) ItineraryMergerInterface {
	return &ItineraryMerger{parser: parser}
}

// MergeItineraries parses every assistant message and keeps, for each day
// number, the version from the latest message that mentioned it. A later
// message replaces the whole day; activity lists are never merged element-wise.
func (m *ItineraryMerger) MergeItineraries(messages []request_models.ChatMessage, expectedDuration int) []response_models.DayItinerary {
	byDay := make(map[int]response_models.DayItinerary)

	for _, msg := range messages {
		if msg.Role != "assistant" {
			continue
		}
		text := strings.Join(msg.Parts, "\n")
		for _, day := range m.parser.ParseDays(text) {
			byDay[day.Day] = day
		}
	}

	if len(byDay) == 0 {
		return defaultItinerary(expectedDuration)
	}

	days := make([]response_models.DayItinerary, 0, len(byDay))
	for _, day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return days
}
