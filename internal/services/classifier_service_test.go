package services

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"

	"fincoach/internal/config"
	"fincoach/internal/models"
)

type ClassifierServiceTestSuite struct {
	suite.Suite
	classifier ClassifierServiceInterface
}

func (s *ClassifierServiceTestSuite) SetupTest() {
	s.classifier = NewClassifierService()
}

func TestClassifierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClassifierServiceTestSuite))
}

func (s *ClassifierServiceTestSuite) TestClassify_WeekendCafePurchase() {
	// 2024-01-13 is a Saturday
	tx := models.RawTransaction{
		ID:       "tx-001",
		Date:     "2024-01-13",
		Time:     "11:00",
		Merchant: "스타벅스 강남점",
		Category: "카페",
		Amount:   5000,
	}

	got, err := s.classifier.Classify(tx)
	s.Require().NoError(err)

	s.True(got.IsWeekend)
	s.Equal("주말", got.WeekdayType)
	s.Equal("주말_오전_활동", got.TimeBucket)
	s.Contains(got.KeywordHints, "카페/간식")
	s.Contains(got.AmountHints, "카페/간식")
	s.Contains(got.AmountHints, "구독서비스")
	s.Equal(tx, got.RawTransaction)
}

func (s *ClassifierServiceTestSuite) TestClassify_WeekdayBuckets() {
	tests := []struct {
		name string
		time string
		want string
	}{
		{"commute", "08:30", "출근길_아침"},
		{"boundary belongs to earlier bucket", "09:00", "출근길_아침"},
		{"lunch", "12:30", "점심시간"},
		{"evening", "19:45", "저녁_퇴근후"},
		{"last minute of day", "23:59", "밤_휴식시간"},
		{"dawn", "03:10", "새벽_심야"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			// 2024-01-15 is a Monday
			got, err := s.classifier.Classify(models.RawTransaction{
				ID: "tx-002", Date: "2024-01-15", Time: tt.time,
				Merchant: "테스트가맹점", Amount: 10000,
			})
			s.Require().NoError(err)
			s.False(got.IsWeekend)
			s.Equal("평일", got.WeekdayType)
			s.Equal(tt.want, got.TimeBucket)
		})
	}
}

func (s *ClassifierServiceTestSuite) TestClassify_TimeWithSeconds() {
	got, err := s.classifier.Classify(models.RawTransaction{
		ID: "tx-003", Date: "2024-01-14", Time: "22:15:42",
		Merchant: "편의점", Amount: 3000,
	})
	s.Require().NoError(err)
	s.Equal("주말_밤", got.TimeBucket)
}

func (s *ClassifierServiceTestSuite) TestClassify_KeywordFromCategoryField() {
	got, err := s.classifier.Classify(models.RawTransaction{
		ID: "tx-004", Date: "2024-01-15", Time: "13:00",
		Merchant: "김밥천국", Category: "배달의민족 주문", Amount: 18000,
	})
	s.Require().NoError(err)
	s.Contains(got.KeywordHints, "배달음식")
}

func (s *ClassifierServiceTestSuite) TestClassify_NoHints() {
	got, err := s.classifier.Classify(models.RawTransaction{
		ID: "tx-005", Date: "2024-01-15", Time: "13:00",
		Merchant: "동네문방구", Amount: 700,
	})
	s.Require().NoError(err)
	s.Empty(got.KeywordHints)
	s.Empty(got.AmountHints)
}

func (s *ClassifierServiceTestSuite) TestClassify_MalformedDate() {
	_, err := s.classifier.Classify(models.RawTransaction{
		ID: "tx-006", Date: "15-01-2024", Time: "13:00",
		Merchant: "테스트", Amount: 1000,
	})
	s.ErrorIs(err, ErrMalformedDate)
}

func (s *ClassifierServiceTestSuite) TestClassify_MalformedTime() {
	_, err := s.classifier.Classify(models.RawTransaction{
		ID: "tx-007", Date: "2024-01-15", Time: "25:61",
		Merchant: "테스트", Amount: 1000,
	})
	s.ErrorIs(err, ErrMalformedTime)
}

func (s *ClassifierServiceTestSuite) TestClassifyBatch_PreservesOrder() {
	txs := []models.RawTransaction{
		{ID: "a", Date: "2024-01-15", Time: "08:00", Merchant: "스타벅스", Amount: 4500},
		{ID: "b", Date: "2024-01-16", Time: "12:30", Merchant: "김밥천국", Amount: 9000},
		{ID: "c", Date: "2024-01-17", Time: "23:00", Merchant: "CU", Amount: 3200},
	}

	got, err := s.classifier.ClassifyBatch(txs)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal("a", got[0].ID)
	s.Equal("b", got[1].ID)
	s.Equal("c", got[2].ID)
}

func (s *ClassifierServiceTestSuite) TestClassify_RandomizedInvariants() {
	faker := gofakeit.New(42)
	merchants := []string{"스타벅스", "배달의민족", "쿠팡", "CU", "동네식당", "넷플릭스", "김밥천국"}

	for i := 0; i < 200; i++ {
		tx := models.RawTransaction{
			ID:       fmt.Sprintf("tx-%d", i),
			Date:     fmt.Sprintf("2024-%02d-%02d", faker.Number(1, 12), faker.Number(1, 28)),
			Time:     fmt.Sprintf("%02d:%02d", faker.Number(0, 23), faker.Number(0, 59)),
			Merchant: merchants[faker.Number(0, len(merchants)-1)],
			Amount:   int64(faker.Number(100, 500000)),
		}

		got, err := s.classifier.Classify(tx)
		s.Require().NoError(err)

		s.NotEmpty(got.TimeBucket, "every valid clock time resolves to a bucket")
		s.NotEqual(config.TimeBucketOther, got.TimeBucket,
			"the shipped tables cover the full day")
		for _, hint := range got.KeywordHints {
			s.True(config.Categories[hint], "hint %q outside the taxonomy", hint)
		}
		for _, hint := range got.AmountHints {
			s.True(config.Categories[hint], "hint %q outside the taxonomy", hint)
		}
	}
}

func (s *ClassifierServiceTestSuite) TestClassifyBatch_ErrorNamesTransaction() {
	txs := []models.RawTransaction{
		{ID: "good", Date: "2024-01-15", Time: "08:00", Merchant: "스타벅스", Amount: 4500},
		{ID: "bad-record", Date: "not-a-date", Time: "08:00", Merchant: "김밥천국", Amount: 9000},
	}

	_, err := s.classifier.ClassifyBatch(txs)
	s.Require().Error(err)
	s.Contains(err.Error(), "bad-record")
}
