package service

import (
	"sort"

	"legaldocai-be/internal/constant"
	"legaldocai-be/internal/dto"
	"legaldocai-be/internal/entity"
	"legaldocai-be/internal/pkg/serverutils"
)

// IAnalyticsService projects a session's analytics into chart-ready
// series. Pure projection: no state, no network.
type IAnalyticsService interface {
	Overview() (*dto.AnalyticsOverview, error)
	Project(analytics entity.Analytics) *dto.AnalyticsOverview
}

type analyticsService struct {
	sessions ISessionService
}

func NewAnalyticsService(sessions ISessionService) IAnalyticsService {
	return &analyticsService{sessions: sessions}
}

func (s *analyticsService) Overview() (*dto.AnalyticsOverview, error) {
	session := s.sessions.Active()
	if session == nil {
		return nil, serverutils.NewNotFoundError(constant.MsgNoExtractedData)
	}
	return s.Project(session.Analytics), nil
}

func (s *analyticsService) Project(analytics entity.Analytics) *dto.AnalyticsOverview {
	clauses := toSeries(analytics.ClauseSummary)
	keywords := toSeries(analytics.KeywordFrequency)

	return &dto.AnalyticsOverview{
		TotalPages:   analytics.TotalPages,
		TotalNames:   analytics.TotalNames,
		TotalEmails:  analytics.TotalEmails,
		TotalPhones:  analytics.TotalPhones,
		TotalClauses: analytics.TotalClauses,
		EntityDistribution: []dto.ChartPoint{
			{Name: "Names", Value: analytics.TotalNames},
			{Name: "Emails", Value: analytics.TotalEmails},
			{Name: "Phones", Value: analytics.TotalPhones},
			{Name: "Clauses", Value: analytics.TotalClauses},
		},
		ClauseDistribution: clauses,
		ClauseEmpty:        len(clauses) == 0,
		KeywordFrequency:   keywords,
		KeywordEmpty:       len(keywords) == 0,
		LegalityScore:      analytics.LegalityScore,
		Summary:            analytics.Summary,
	}
}

// toSeries orders a label->count mapping deterministically: count
// descending, label ascending on ties.
func toSeries(m map[string]int) []dto.ChartPoint {
	series := []dto.ChartPoint{}
	for name, value := range m {
		series = append(series, dto.ChartPoint{Name: name, Value: value})
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].Value != series[j].Value {
			return series[i].Value > series[j].Value
		}
		return series[i].Name < series[j].Name
	})
	return series
}
