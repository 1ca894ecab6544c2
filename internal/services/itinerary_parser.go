package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tripmate/internal/models/response_models"
)

// Parser defaults: every activity starts from these and detail lines overwrite.
const (
	defaultTransport = "도보"
	defaultStay      = "1시간"
	defaultPrice     = "무료"
)

type ItineraryParserInterface interface {
	// ParseItineraryMessage parses one assistant message and falls back to a
	// synthesized placeholder itinerary when nothing parses.
	ParseItineraryMessage(text string, expectedDuration int) []response_models.DayItinerary
	// ParseDays is the raw pass: an empty result stays empty. The merger uses
	// this so a chatty message cannot clobber days from earlier messages.
	ParseDays(text string) []response_models.DayItinerary
}

type ItineraryParser struct{}

func NewItineraryParser() ItineraryParserInterface {
	return &ItineraryParser{}
}

// lineKind tags one trimmed input line for the state machine.
type lineKind int

const (
	lineOther lineKind = iota
	lineDayMarker
	lineTimed
	lineDetail
)

type classifiedLine struct {
	kind lineKind

	day int // lineDayMarker

	period string // lineTimed
	clock  string
	rest   string

	text string // lineDetail / lineOther
}

type parserState int

const (
	stateNoDay parserState = iota
	stateInDay
	stateInActivity
)

var (
	dayMarkerPattern = regexp.MustCompile(`^[*#\s]*(\d+)일차`)
	timedLinePattern = regexp.MustCompile(`^(오전|오후|저녁|밤|아침|새벽)\s*(\d{1,2}:\d{2})\s*[-–—]\s*(.+)$`)
)

func classifyLine(line string) classifiedLine {
	if m := dayMarkerPattern.FindStringSubmatch(line); len(m) > 1 {
		if day, err := strconv.Atoi(m[1]); err == nil && day >= 1 {
			return classifiedLine{kind: lineDayMarker, day: day}
		}
	}
	if m := timedLinePattern.FindStringSubmatch(line); len(m) > 3 {
		return classifiedLine{kind: lineTimed, period: m[1], clock: m[2], rest: m[3]}
	}
	if strings.Contains(line, "이동:") || strings.Contains(line, "소요:") ||
		strings.Contains(line, "비용:") || strings.Contains(line, "가격:") ||
		strings.Contains(line, "📸") || strings.Contains(line, "📷") {
		return classifiedLine{kind: lineDetail, text: line}
	}
	return classifiedLine{kind: lineOther, text: line}
}

// ParseItineraryMessage walks the lines of one assistant message and collects
// day itineraries. It never fails: when nothing parses it synthesizes a
// placeholder itinerary of expectedDuration days so callers always have
// something to render.
func (p *ItineraryParser) ParseItineraryMessage(text string, expectedDuration int) []response_models.DayItinerary {
	days := p.ParseDays(text)
	if len(days) == 0 {
		return defaultItinerary(expectedDuration)
	}
	return days
}

func (p *ItineraryParser) ParseDays(text string) []response_models.DayItinerary {
	var (
		days       []response_models.DayItinerary
		state      = stateNoDay
		currentDay response_models.DayItinerary
		current    *response_models.Activity
	)

	flushActivity := func() {
		if current != nil {
			currentDay.Activities = append(currentDay.Activities, *current)
			current = nil
		}
	}
	flushDay := func() {
		flushActivity()
		// A day marker with no activities before the next marker is a stray
		// header, not an itinerary day.
		if state != stateNoDay && len(currentDay.Activities) > 0 {
			days = append(days, currentDay)
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		cl := classifyLine(line)
		switch cl.kind {
		case lineDayMarker:
			flushDay()
			currentDay = newDayItinerary(cl.day)
			state = stateInDay

		case lineTimed:
			if state == stateNoDay {
				continue
			}
			flushActivity()
			act := newActivity(cl.period, cl.clock, cl.rest)
			current = &act
			state = stateInActivity

		case lineDetail:
			if state != stateInActivity {
				continue
			}
			applyDetail(current, cl.text)

		case lineOther:
			// Prose between fields is tolerated and dropped.
		}
	}
	flushDay()
	return days
}

func newDayItinerary(day int) response_models.DayItinerary {
	return response_models.DayItinerary{
		Day:   day,
		Title: fmt.Sprintf("Day %d", day),
		Date:  fmt.Sprintf("%d일차", day),
	}
}

// newActivity builds an activity from a timed line. The trailing text is split
// on the first "(" into title and parenthetical subtitle; a place name that
// itself contains "(" before its subtitle will mis-split, which matches how
// the assistant formats these lines in practice.
func newActivity(period, clock, rest string) response_models.Activity {
	title := strings.TrimSpace(rest)
	subtitle := ""
	if idx := strings.Index(rest, "("); idx >= 0 {
		title = strings.TrimSpace(rest[:idx])
		subtitle = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest[idx+1:]), ")"))
	}

	return response_models.Activity{
		Time:      period + " " + clock,
		Title:     title,
		Subtitle:  subtitle,
		Type:      classifyActivityType(title),
		Transport: defaultTransport,
		Duration:  defaultStay,
		Price:     defaultPrice,
	}
}

var activityTypeKeywords = []struct {
	Type     response_models.ActivityType
	Keywords []string
}{
	{Type: response_models.ActivityMeal, Keywords: []string{"식사", "맛집", "아침", "점심", "저녁", "브런치", "카페", "레스토랑"}},
	{Type: response_models.ActivityShopping, Keywords: []string{"쇼핑", "시장", "마켓", "백화점"}},
	{Type: response_models.ActivityExperience, Keywords: []string{"투어", "클래스", "체험", "공방"}},
}

// classifyActivityType checks the title only, in fixed priority order.
func classifyActivityType(title string) response_models.ActivityType {
	for _, group := range activityTypeKeywords {
		for _, kw := range group.Keywords {
			if strings.Contains(title, kw) {
				return group.Type
			}
		}
	}
	return response_models.ActivitySightseeing
}

func applyDetail(act *response_models.Activity, line string) {
	if v, ok := labeledValue(line, "이동:"); ok {
		act.Transport = v
	}
	if v, ok := labeledValue(line, "소요:"); ok {
		act.Duration = v
	}
	if v, ok := labeledValue(line, "비용:"); ok {
		act.Price = v
	} else if v, ok := labeledValue(line, "가격:"); ok {
		act.Price = v
	}
	if strings.Contains(line, "📸") || strings.Contains(line, "📷") {
		act.PhotoRecommended = true
	}
}

func labeledValue(line, label string) (string, bool) {
	idx := strings.Index(line, label)
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(line[idx+len(label):]), true
}

// defaultItinerary covers a message that contained no parseable itinerary.
func defaultItinerary(durationDays int) []response_models.DayItinerary {
	if durationDays < 1 {
		durationDays = 1
	}
	days := make([]response_models.DayItinerary, 0, durationDays)
	for d := 1; d <= durationDays; d++ {
		day := newDayItinerary(d)
		day.Activities = []response_models.Activity{
			{
				Time:      "오전 9:00",
				Title:     "여행 시작",
				Type:      response_models.ActivitySightseeing,
				Transport: defaultTransport,
				Duration:  defaultStay,
				Price:     defaultPrice,
			},
		}
		days = append(days, day)
	}
	return days
}
