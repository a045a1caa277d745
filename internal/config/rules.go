package config

import (
	"fmt"
	"time"
)

// SavingLevel identifies one of the three saving-plan tiers
type SavingLevel string

const (
	LevelAggressive SavingLevel = "강한절약"
	LevelModerate   SavingLevel = "보통절약"
	LevelLight      SavingLevel = "약한절약"
)

// SavingLevels returns the tiers in their fixed presentation order
func SavingLevels() []SavingLevel {
	return []SavingLevel{LevelAggressive, LevelModerate, LevelLight}
}

// Weekday type labels attached to every classified transaction
const (
	WeekdayTypeWeekday = "평일"
	WeekdayTypeWeekend = "주말"
)

// TimeBucketOther is the fallback label when no interval matches
const TimeBucketOther = "기타"

// TimeBucket is a named clock-time interval at minute granularity.
// An End of "24:00" is a sentinel meaning end of the same calendar day.
type TimeBucket struct {
	Start string
	End   string
	Label string
}

// WeekendDays are the weekdays routed to the weekend bucket table
var WeekendDays = map[time.Weekday]bool{
	time.Saturday: true,
	time.Sunday:   true,
}

// WeekdayBuckets is evaluated in declared order; first match wins
var WeekdayBuckets = []TimeBucket{
	{"07:00", "09:00", "출근길_아침"},
	{"09:00", "12:00", "오전_업무시간"},
	{"12:00", "14:00", "점심시간"},
	{"14:00", "18:00", "오후_업무시간"},
	{"18:00", "21:00", "저녁_퇴근후"},
	{"21:00", "24:00", "밤_휴식시간"},
	{"00:00", "07:00", "새벽_심야"},
}

var WeekendBuckets = []TimeBucket{
	{"07:00", "10:00", "주말_아침"},
	{"10:00", "14:00", "주말_오전_활동"},
	{"14:00", "18:00", "주말_오후_활동"},
	{"18:00", "22:00", "주말_저녁"},
	{"22:00", "24:00", "주말_밤"},
	{"00:00", "07:00", "주말_새벽"},
}

// AmountRange maps an inclusive amount interval to a category hint.
// Ranges may overlap; a single amount can match several of them.
type AmountRange struct {
	Label string
	Low   int64
	High  int64
}

var AmountHints = []AmountRange{
	{"카페/간식", 3000, 8000},
	{"식비", 8000, 20000},
	{"배달음식", 15000, 35000},
	{"편의점/마트/잡화", 2000, 15000},
	{"교통/자동차", 1000, 50000},
	{"취미/여가", 10000, 100000},
	{"술/유흥", 20000, 200000},
	{"온라인쇼핑", 10000, 150000},
	{"구독서비스", 5000, 50000},
	{"의료/건강", 10000, 100000},
}

// KeywordHints maps a merchant/category substring to a category label
var KeywordHints = map[string]string{
	// 배달/외식
	"배달의민족": "배달음식", "요기요": "배달음식", "배민": "배달음식",
	"쿠팡이츠": "배달음식", "위메프오": "배달음식",

	// 카페/간식
	"스타벅스": "카페/간식", "이디야": "카페/간식", "커피": "카페/간식",
	"투썸": "카페/간식", "빽다방": "카페/간식", "메가커피": "카페/간식",

	// 편의점/마트
	"편의점": "편의점/마트/잡화", "CU": "편의점/마트/잡화",
	"GS25": "편의점/마트/잡화", "세븐일레븐": "편의점/마트/잡화",
	"이마트": "편의점/마트/잡화", "홈플러스": "편의점/마트/잡화",
	"롯데마트": "편의점/마트/잡화", "다이소": "편의점/마트/잡화",

	// 온라인쇼핑
	"쿠팡": "온라인쇼핑", "11번가": "온라인쇼핑", "G마켓": "온라인쇼핑",
	"옥션": "온라인쇼핑", "위메프": "온라인쇼핑", "티몬": "온라인쇼핑",

	// 엔터테인먼트/여가
	"CGV": "취미/여가", "롯데시네마": "취미/여가", "메가박스": "취미/여가",
	"넷플릭스": "구독서비스", "유튜브": "구독서비스", "디즈니플러스": "구독서비스",
	"스포티파이": "구독서비스", "멜론": "구독서비스",

	// 교통
	"택시": "교통/자동차", "카카오택시": "교통/자동차", "우버": "교통/자동차",
	"주유": "교통/자동차", "지하철": "교통", "버스": "교통",

	// 기타
	"여행": "여행/숙박", "호텔": "여행/숙박", "에어비앤비": "여행/숙박",
	"피트니스": "의료/건강/피트니스", "헬스장": "의료/건강/피트니스",
	"병원": "의료/건강", "약국": "의료/건강", "치과": "의료/건강",
	"통신비": "주거/통신", "인터넷": "주거/통신", "전기료": "주거/통신",
	"학원": "교육", "온라인강의": "교육",
	"미용실": "미용", "네일": "미용", "마사지": "미용",
}

// LevelRules is the resolved per-tier rule set: presentation, reduction
// bounds, category filters and selection limits
type LevelRules struct {
	DisplayName         string
	Description         string
	MinReduction        float64
	MaxReduction        float64
	IncludesFixedCosts  bool
	PriorityCategories  []string
	ExcludedCategories  map[string]bool
	MinQualifyingAmount int64
	MaxStrategies       int
}

var SavingLevelRules = map[SavingLevel]LevelRules{
	LevelAggressive: {
		DisplayName:         "🔥 강한 절약",
		Description:         "고정비를 포함한 전면적 지출 절약",
		MinReduction:        0.25,
		MaxReduction:        0.40,
		IncludesFixedCosts:  true,
		PriorityCategories:  []string{"구독서비스", "주거/통신", "배달음식", "온라인쇼핑", "취미/여가"},
		ExcludedCategories:  map[string]bool{},
		MinQualifyingAmount: 10000,
		MaxStrategies:       5,
	},
	LevelModerate: {
		DisplayName:         "💪 보통 절약",
		Description:         "주요 지출 카테고리 중심 절약",
		MinReduction:        0.15,
		MaxReduction:        0.25,
		IncludesFixedCosts:  false,
		PriorityCategories:  []string{"배달음식", "카페/간식", "온라인쇼핑", "택시", "취미/여가"},
		ExcludedCategories:  map[string]bool{"주거/통신": true, "의료/건강": true, "교육": true},
		MinQualifyingAmount: 10000,
		MaxStrategies:       3,
	},
	LevelLight: {
		DisplayName:         "🌱 약한 절약",
		Description:         "빈번하고 불필요한 소비 점진적 절약",
		MinReduction:        0.05,
		MaxReduction:        0.15,
		IncludesFixedCosts:  false,
		PriorityCategories:  []string{"카페/간식", "편의점/마트/잡화", "배달음식"},
		ExcludedCategories:  map[string]bool{"주거/통신": true, "의료/건강": true, "교육": true, "교통/자동차": true},
		MinQualifyingAmount: 5000,
		MaxStrategies:       3,
	},
}

// CategoryPriorityScores ranks categories by typical savings yield.
// Unscored categories rank at 0.
var CategoryPriorityScores = map[string]int{
	"배달음식":     9,
	"온라인쇼핑":    8,
	"카페/간식":    7,
	"취미/여가":    7,
	"구독서비스":    6,
	"편의점/마트/잡화": 5,
	"교통/자동차":   4,
	"주거/통신":    3,
	"의료/건강":    2,
	"교육":       1,
}

// FixedCostCategories require structural change to cut (subscriptions,
// housing/telecom); the aggressive tier applies its maximum bound to them
var FixedCostCategories = map[string]bool{
	"구독서비스": true,
	"주거/통신": true,
}

// FrequentCategories are habitual discretionary spends; past
// FrequentCountThreshold transactions the midpoint reduction applies
var FrequentCategories = map[string]bool{
	"배달음식":  true,
	"카페/간식": true,
}

const (
	FrequentCountThreshold       = 10
	LargeSpendThreshold    int64 = 100000
)

// SavingMethodTemplates hold per-(category, level) method text.
// Placeholders: {amount} {budget} are formatted with thousands separators;
// {current_count} {target_count} {reduce_count} {unused_count}
// {downgrade_count} are plain integers.
var SavingMethodTemplates = map[string]map[SavingLevel]string{
	"구독서비스": {
		LevelAggressive: "사용하지 않는 구독 {unused_count}개 해지 + 프리미엄 요금제 {downgrade_count}개 다운그레이드로 월 {amount}원 절약",
		LevelModerate:   "사용하지 않는 구독 {unused_count}개 해지하여 월 {amount}원 절약",
		LevelLight:      "가장 사용 빈도가 낮은 구독 1개 해지하여 월 {amount}원 절약",
	},
	"주거/통신": {
		LevelAggressive: "통신요금제 재검토 + 불필요한 옵션 해지로 월 {amount}원 절약",
		LevelModerate:   "통신요금제 다운그레이드로 월 {amount}원 절약",
		LevelLight:      "사용하지 않는 부가서비스 해지로 월 {amount}원 절약",
	},
	"배달음식": {
		LevelAggressive: "배달음식을 주 {current_count}회에서 {target_count}회로 줄이고 직접 요리로 월 {amount}원 절약",
		LevelModerate:   "배달음식 주문을 주 {reduce_count}회 줄여서 월 {amount}원 절약",
		LevelLight:      "배달음식 대신 간편식 이용으로 주 1회 줄여서 월 {amount}원 절약",
	},
	"카페/간식": {
		LevelAggressive: "카페 이용을 하루 {current_count}회에서 {target_count}회로 줄이고 홈카페 활용으로 월 {amount}원 절약",
		LevelModerate:   "카페 방문을 주 {reduce_count}회 줄여서 월 {amount}원 절약",
		LevelLight:      "간식 구매를 주 {reduce_count}회 줄여서 월 {amount}원 절약",
	},
	"온라인쇼핑": {
		LevelAggressive: "충동구매 금지 + 필수품목만 구매 리스트 작성으로 월 {amount}원 절약",
		LevelModerate:   "온라인쇼핑 빈도를 월 {current_count}회에서 {target_count}회로 줄여서 월 {amount}원 절약",
		LevelLight:      "쿠폰 적극 활용 + 할인 시기 구매로 월 {amount}원 절약",
	},
	"교통/자동차": {
		LevelAggressive: "택시 이용을 대중교통으로 완전 대체하여 월 {amount}원 절약",
		LevelModerate:   "택시 이용을 주 {reduce_count}회 줄이고 대중교통 활용으로 월 {amount}원 절약",
		LevelLight:      "가까운 거리는 도보/자전거 이용으로 월 {amount}원 절약",
	},
	"취미/여가": {
		LevelAggressive: "유료 여가활동을 무료/저렴한 대안으로 대체하여 월 {amount}원 절약",
		LevelModerate:   "여가 지출을 월 {budget}원 예산으로 제한하여 월 {amount}원 절약",
		LevelLight:      "할인 혜택 적극 활용으로 월 {amount}원 절약",
	},
	"편의점/마트/잡화": {
		LevelAggressive: "편의점 이용을 마트 대량구매로 대체하여 월 {amount}원 절약",
		LevelModerate:   "편의점 방문을 주 {reduce_count}회 줄여서 월 {amount}원 절약",
		LevelLight:      "필요한 것만 구매 리스트 작성으로 월 {amount}원 절약",
	},
}

// RiskRules are the thresholds for spending-risk pattern detection
type RiskRules struct {
	DawnBuckets           map[string]bool
	DawnCountThreshold    int
	HighAmountThreshold   int64
	DeliveryCategory      string
	DeliveryThreshold     int
	SubscriptionCategory  string
	SubscriptionThreshold int
	OverspendRatio        float64
}

var RiskPatternRules = RiskRules{
	DawnBuckets:           map[string]bool{"새벽_심야": true, "주말_새벽": true},
	DawnCountThreshold:    3,
	HighAmountThreshold:   100000,
	DeliveryCategory:      "배달음식",
	DeliveryThreshold:     3,
	SubscriptionCategory:  "구독서비스",
	SubscriptionThreshold: 5,
	OverspendRatio:        0.25,
}

// Categories is the canonical taxonomy every rule table must resolve to
var Categories = map[string]bool{
	"카페/간식": true, "식비": true, "배달음식": true, "편의점/마트/잡화": true,
	"교통/자동차": true, "교통": true, "취미/여가": true, "술/유흥": true,
	"온라인쇼핑": true, "구독서비스": true, "의료/건강": true, "의료/건강/피트니스": true,
	"여행/숙박": true, "주거/통신": true, "교육": true, "미용": true, "택시": true,
}

// ValidateRules cross-checks every rule table against the canonical
// taxonomy and verifies the bucket tables are well formed. A label that
// falls outside the taxonomy is a configuration defect, not something to
// drop silently at runtime.
func ValidateRules() error {
	for _, r := range AmountHints {
		if !Categories[r.Label] {
			return fmt.Errorf("amount hint label %q is not a known category", r.Label)
		}
		if r.Low > r.High {
			return fmt.Errorf("amount hint %q has inverted bounds [%d, %d]", r.Label, r.Low, r.High)
		}
	}

	for keyword, label := range KeywordHints {
		if !Categories[label] {
			return fmt.Errorf("keyword %q maps to unknown category %q", keyword, label)
		}
	}

	for category := range CategoryPriorityScores {
		if !Categories[category] {
			return fmt.Errorf("priority score references unknown category %q", category)
		}
	}

	for category := range SavingMethodTemplates {
		if !Categories[category] {
			return fmt.Errorf("method template references unknown category %q", category)
		}
	}

	for level, rules := range SavingLevelRules {
		if rules.MinReduction <= 0 || rules.MaxReduction < rules.MinReduction {
			return fmt.Errorf("level %s has invalid reduction bounds [%.2f, %.2f]",
				level, rules.MinReduction, rules.MaxReduction)
		}
		for category := range rules.ExcludedCategories {
			if !Categories[category] {
				return fmt.Errorf("level %s excludes unknown category %q", level, category)
			}
		}
		for _, category := range rules.PriorityCategories {
			if !Categories[category] {
				return fmt.Errorf("level %s prioritizes unknown category %q", level, category)
			}
		}
	}

	for _, table := range [][]TimeBucket{WeekdayBuckets, WeekendBuckets} {
		for _, b := range table {
			if _, err := ParseClock(b.Start); err != nil {
				return fmt.Errorf("bucket %q has invalid start %q: %w", b.Label, b.Start, err)
			}
			if _, err := ParseClock(b.End); err != nil {
				return fmt.Errorf("bucket %q has invalid end %q: %w", b.Label, b.End, err)
			}
		}
	}

	return nil
}

// ParseClock parses an "HH:MM" string to minutes after midnight. The
// sentinel "24:00" resolves to 23:59 so an interval ending there stays
// within the same calendar day.
func ParseClock(s string) (int, error) {
	if s == "24:00" {
		return 23*60 + 59, nil
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("malformed clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}
