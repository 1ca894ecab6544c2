package services

import (
	"testing"

	"tripmate/internal/models/response_models"
)

func TestParseSingleDaySingleActivity(t *testing.T) {
	parser := NewItineraryParser()
	text := "**1일차**\n오전 9:00 - 센소지 (아사쿠사 대표 명소)\n- 이동: 지하철\n- 소요: 2시간\n- 비용: 무료"

	days := parser.ParseItineraryMessage(text, 3)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if days[0].Day != 1 {
		t.Fatalf("expected day 1, got %d", days[0].Day)
	}
	if len(days[0].Activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(days[0].Activities))
	}

	act := days[0].Activities[0]
	if act.Time != "오전 9:00" {
		t.Fatalf("unexpected time: %q", act.Time)
	}
	if act.Title != "센소지" {
		t.Fatalf("unexpected title: %q", act.Title)
	}
	if act.Subtitle != "아사쿠사 대표 명소" {
		t.Fatalf("unexpected subtitle: %q", act.Subtitle)
	}
	if act.Transport != "지하철" {
		t.Fatalf("unexpected transport: %q", act.Transport)
	}
	if act.Duration != "2시간" {
		t.Fatalf("unexpected duration: %q", act.Duration)
	}
	if act.Price != "무료" {
		t.Fatalf("unexpected price: %q", act.Price)
	}
	if act.Type != response_models.ActivitySightseeing {
		t.Fatalf("unexpected type: %q", act.Type)
	}
}

func TestParseActivityDefaults(t *testing.T) {
	parser := NewItineraryParser()
	text := "1일차\n오후 2:00 - 시부야 스카이"

	days := parser.ParseItineraryMessage(text, 1)
	act := days[0].Activities[0]
	if act.Transport != "도보" {
		t.Fatalf("expected default transport, got %q", act.Transport)
	}
	if act.Duration != "1시간" {
		t.Fatalf("expected default duration, got %q", act.Duration)
	}
	if act.Price != "무료" {
		t.Fatalf("expected default price, got %q", act.Price)
	}
	if act.PhotoRecommended {
		t.Fatal("photo flag should default to false")
	}
	if act.Subtitle != "" {
		t.Fatalf("expected empty subtitle, got %q", act.Subtitle)
	}
}

func TestTimedLineSealsPreviousActivity(t *testing.T) {
	parser := NewItineraryParser()
	text := "1일차\n" +
		"오전 9:00 - 센소지 (아사쿠사)\n" +
		"- 이동: 지하철\n" +
		"오후 1:00 - 점심 식사 (라멘 골목)\n" +
		"- 비용: 1000엔\n"

	days := parser.ParseItineraryMessage(text, 1)
	if len(days[0].Activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(days[0].Activities))
	}

	first := days[0].Activities[0]
	second := days[0].Activities[1]
	if first.Transport != "지하철" {
		t.Fatalf("first activity transport: %q", first.Transport)
	}
	if first.Price != "무료" {
		t.Fatalf("detail line leaked into sealed activity: %q", first.Price)
	}
	if second.Price != "1000엔" {
		t.Fatalf("second activity price: %q", second.Price)
	}
	if second.Type != response_models.ActivityMeal {
		t.Fatalf("expected meal type, got %q", second.Type)
	}
}

func TestPhotoMarkerSetsFlag(t *testing.T) {
	parser := NewItineraryParser()
	text := "1일차\n오전 10:00 - 도쿄타워\n- 📸 전망대에서 인생샷"

	days := parser.ParseItineraryMessage(text, 1)
	if !days[0].Activities[0].PhotoRecommended {
		t.Fatal("expected photo flag to be set")
	}
}

func TestDashVariants(t *testing.T) {
	parser := NewItineraryParser()
	for _, text := range []string{
		"1일차\n오전 9:00 - 센소지",
		"1일차\n오전 9:00 – 센소지",
		"1일차\n오전 9:00 — 센소지",
	} {
		days := parser.ParseItineraryMessage(text, 1)
		if len(days[0].Activities) != 1 || days[0].Activities[0].Title != "센소지" {
			t.Fatalf("dash variant not recognized in %q", text)
		}
	}
}

func TestEmptyDayIsDropped(t *testing.T) {
	parser := NewItineraryParser()
	text := "1일차\n2일차\n오전 9:00 - 오사카성"

	days := parser.ParseItineraryMessage(text, 2)
	if len(days) != 1 {
		t.Fatalf("expected the empty day to be dropped, got %d days", len(days))
	}
	if days[0].Day != 2 {
		t.Fatalf("expected day 2, got %d", days[0].Day)
	}
}

func TestProseBetweenFieldsIgnored(t *testing.T) {
	parser := NewItineraryParser()
	text := "1일차\n" +
		"오전 9:00 - 센소지\n" +
		"정말 아름다운 곳이에요!\n" +
		"- 소요: 3시간\n"

	days := parser.ParseItineraryMessage(text, 1)
	act := days[0].Activities[0]
	if act.Duration != "3시간" {
		t.Fatalf("labeled detail after prose should still apply, got %q", act.Duration)
	}
}

func TestActivityTypePriority(t *testing.T) {
	cases := []struct {
		title string
		want  response_models.ActivityType
	}{
		{"츠키지 시장 맛집", response_models.ActivityMeal}, // meal checked before shopping
		{"도톤보리 쇼핑", response_models.ActivityShopping},
		{"기모노 체험 클래스", response_models.ActivityExperience},
		{"메이지 신궁", response_models.ActivitySightseeing},
	}
	for _, tc := range cases {
		if got := classifyActivityType(tc.title); got != tc.want {
			t.Fatalf("title %q: expected %q, got %q", tc.title, tc.want, got)
		}
	}
}

func TestUnparsableTextSynthesizesDefaultItinerary(t *testing.T) {
	parser := NewItineraryParser()

	days := parser.ParseItineraryMessage("즐거운 여행 되세요!", 3)
	if len(days) != 3 {
		t.Fatalf("expected 3 synthesized days, got %d", len(days))
	}
	for i, day := range days {
		if day.Day != i+1 {
			t.Fatalf("expected day %d, got %d", i+1, day.Day)
		}
		if len(day.Activities) != 1 {
			t.Fatalf("expected 1 placeholder activity, got %d", len(day.Activities))
		}
		if day.Activities[0].Title != "여행 시작" {
			t.Fatalf("unexpected placeholder title: %q", day.Activities[0].Title)
		}
	}
}

func TestParseDaysReturnsEmptyWithoutFallback(t *testing.T) {
	parser := NewItineraryParser()

	if days := parser.ParseDays("즐거운 여행 되세요!"); len(days) != 0 {
		t.Fatalf("raw parse should stay empty, got %d days", len(days))
	}
}

func TestClassifyLine(t *testing.T) {
	cases := []struct {
		line string
		want lineKind
	}{
		{"**2일차**", lineDayMarker},
		{"## 3일차 일정", lineDayMarker},
		{"오전 9:00 - 센소지", lineTimed},
		{"- 이동: 버스", lineDetail},
		{"- 📷 야경 포인트", lineDetail},
		{"그냥 설명 문장입니다", lineOther},
	}
	for _, tc := range cases {
		if got := classifyLine(tc.line); got.kind != tc.want {
			t.Fatalf("line %q: expected kind %d, got %d", tc.line, tc.want, got.kind)
		}
	}
}
