package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/tubestudy/tracker/internal/clock"
	"github.com/tubestudy/tracker/internal/domain"
)

// Stats periods.
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

const (
	subjectOther      = "Other"
	subjectOtherColor = "gray-500"
	analyticsDays     = 7
	monthlyDays       = 30
)

var subjectRules = []struct {
	name     string
	color    string
	keywords []string
}{
	{"Java / Backend", "red-500", []string{"spring", "java", "jpa", "서버", "backend"}},
	{"Frontend", "blue-500", []string{"react", "js", "css", "프론트", "frontend"}},
	{"CS", "green-500", []string{"알고리즘", "cs", "자료구조", "네트워크", "algorithm"}},
}

// SubjectStat is one subject's share of the study time in a period.
type SubjectStat struct {
	Name       string
	Seconds    float64
	Percentage float64
	Color      string
}

// DashboardStats summarizes study time over a period.
type DashboardStats struct {
	Period                  string
	TotalStudySeconds       float64
	TotalStudyTimeFormatted string
	TotalStudyHours         float64
	WeekGoalPercentage      float64
	Subjects                []SubjectStat
}

// CourseItem is one video in the course list.
type CourseItem struct {
	VideoID             string
	Title               string
	Channel             string
	Percentage          int
	StudyMinutes        int
	IsCompleted         bool
	LastSyncedAt        time.Time
	LastProgressTimeAgo string
	ContinueWatchURL    string
}

// ContinueWatching describes the most recently watched video.
type ContinueWatching struct {
	VideoID                   string
	Title                     string
	Channel                   string
	ThumbnailURL              string
	Percentage                int
	LastProgressTimeFormatted string
	TotalDurationFormatted    string
	ContinueWatchURL          string
}

// DailyStat is one day of the analytics series.
type DailyStat struct {
	Day              string
	DayOfWeek        string
	StudyTimeSeconds int64
	VideoCount       int
	HasStudied       bool
}

// Analytics holds long-range study patterns.
type Analytics struct {
	TotalStudyTimeSeconds   int64
	WeeklyStudyTimeSeconds  int64
	MonthlyStudyTimeSeconds int64
	DailyStats              []DailyStat
	MostProductiveDay       string
	MostProductiveHour      int
	TotalWatchedVideos      int
	AverageSessionDuration  float64
}

// DashboardService computes the read-only dashboard views.
type DashboardService struct {
	progress domain.ProgressRepository
	settings *SettingsService
	clock    clock.Clock
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(progress domain.ProgressRepository, settings *SettingsService, clk clock.Clock) *DashboardService {
	return &DashboardService{progress: progress, settings: settings, clock: clk}
}

// NormalizePeriod maps a period selector to a known period. Unknown values
// mean all time.
func NormalizePeriod(period string) string {
	switch p := strings.ToLower(strings.TrimSpace(period)); p {
	case PeriodToday, PeriodWeek, PeriodMonth:
		return p
	default:
		return PeriodAll
	}
}

// periodWindow returns the [start, end) window for a period. ok is false
// for the unbounded all-time period.
func periodWindow(period string, now time.Time) (start, end time.Time, ok bool) {
	today := startOfDay(now)
	switch period {
	case PeriodToday:
		return today, today.AddDate(0, 0, 1), true
	case PeriodWeek:
		offset := (int(today.Weekday()) + 6) % 7
		start = today.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7), true
	case PeriodMonth:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(0, 1, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// classifySubject assigns a title to the first subject whose keywords match.
func classifySubject(title string) (name, color string) {
	lower := strings.ToLower(title)
	for _, rule := range subjectRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.name, rule.color
			}
		}
	}
	return subjectOther, subjectOtherColor
}

// Stats sums study time over the period and breaks it down by subject.
func (s *DashboardService) Stats(ctx context.Context, period string) (*DashboardStats, error) {
	period = NormalizePeriod(period)

	var (
		records []domain.ProgressRecord
		err     error
	)
	if start, end, ok := periodWindow(period, s.clock.Now()); ok {
		records, err = s.progress.ListSyncedBetween(ctx, start, end)
	} else {
		records, err = s.progress.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	var total float64
	bySubject := make(map[string]*SubjectStat)
	for _, r := range records {
		total += r.StudyTimeSeconds
		name, color := classifySubject(r.Title)
		stat, ok := bySubject[name]
		if !ok {
			stat = &SubjectStat{Name: name, Color: color}
			bySubject[name] = stat
		}
		stat.Seconds += r.StudyTimeSeconds
	}

	subjects := make([]SubjectStat, 0, len(bySubject))
	for _, stat := range bySubject {
		if total > 0 {
			stat.Percentage = round2(stat.Seconds / total * 100)
		}
		subjects = append(subjects, *stat)
	}
	sort.Slice(subjects, func(i, j int) bool {
		if subjects[i].Percentage != subjects[j].Percentage {
			return subjects[i].Percentage > subjects[j].Percentage
		}
		return subjects[i].Name < subjects[j].Name
	})

	var goalPct float64
	if settings.WeeklyGoalHours > 0 {
		goalPct = round2(math.Min(100, total/float64(settings.WeeklyGoalHours*3600)*100))
	}

	return &DashboardStats{
		Period:                  period,
		TotalStudySeconds:       total,
		TotalStudyTimeFormatted: formatStudyTime(total),
		TotalStudyHours:         round2(total / 3600),
		WeekGoalPercentage:      goalPct,
		Subjects:                subjects,
	}, nil
}

// Courses lists every video, most recently synced first.
func (s *DashboardService) Courses(ctx context.Context) ([]CourseItem, error) {
	records, err := s.progress.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	now := s.clock.Now()
	items := make([]CourseItem, len(records))
	for i, r := range records {
		items[i] = CourseItem{
			VideoID:             r.VideoID,
			Title:               r.Title,
			Channel:             r.Channel,
			Percentage:          r.DisplayPercentage(),
			StudyMinutes:        int(math.Round(r.StudyTimeSeconds / 60)),
			IsCompleted:         r.IsCompleted,
			LastSyncedAt:        r.LastSyncedAt,
			LastProgressTimeAgo: formatTimeAgo(r.LastSyncedAt, now),
			ContinueWatchURL:    watchURL(r.VideoID, r.LastProgressSeconds),
		}
	}
	return items, nil
}

// ContinueWatching returns the most recently synced video, or nil when
// nothing has been watched yet.
func (s *DashboardService) ContinueWatching(ctx context.Context) (*ContinueWatching, error) {
	r, err := s.progress.MostRecent(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get most recent progress: %w", err)
	}

	return &ContinueWatching{
		VideoID:                   r.VideoID,
		Title:                     r.Title,
		Channel:                   r.Channel,
		ThumbnailURL:              thumbnailURL(r.VideoID),
		Percentage:                r.DisplayPercentage(),
		LastProgressTimeFormatted: formatClock(r.LastProgressSeconds),
		TotalDurationFormatted:    formatClock(r.TotalDurationSeconds),
		ContinueWatchURL:          watchURL(r.VideoID, r.LastProgressSeconds),
	}, nil
}

// Analytics computes totals, a seven-day series and productivity patterns.
// Study time is attributed to the moment a record was last synced.
func (s *DashboardService) Analytics(ctx context.Context) (*Analytics, error) {
	records, err := s.progress.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	now := s.clock.Now()
	loc := now.Location()
	today := startOfDay(now)
	weekStart := today.AddDate(0, 0, -(analyticsDays - 1))
	monthStart := today.AddDate(0, 0, -(monthlyDays - 1))

	daily := make([]DailyStat, analyticsDays)
	dayIndex := make(map[string]int, analyticsDays)
	dailySeconds := make([]float64, analyticsDays)
	for i := range daily {
		d := weekStart.AddDate(0, 0, i)
		daily[i] = DailyStat{Day: d.Format("2006-01-02"), DayOfWeek: d.Weekday().String()}
		dayIndex[daily[i].Day] = i
	}

	var (
		total, weekly, monthly float64
		byWeekday              [7]float64
		byHour                 [24]float64
	)
	for _, r := range records {
		t := r.LastSyncedAt.In(loc)
		total += r.StudyTimeSeconds
		if !t.Before(weekStart) {
			weekly += r.StudyTimeSeconds
		}
		if !t.Before(monthStart) {
			monthly += r.StudyTimeSeconds
		}
		if i, ok := dayIndex[t.Format("2006-01-02")]; ok {
			dailySeconds[i] += r.StudyTimeSeconds
			daily[i].VideoCount++
			daily[i].HasStudied = true
		}
		byWeekday[t.Weekday()] += r.StudyTimeSeconds
		byHour[t.Hour()] += r.StudyTimeSeconds
	}
	for i := range daily {
		daily[i].StudyTimeSeconds = int64(math.Round(dailySeconds[i]))
	}

	a := &Analytics{
		TotalStudyTimeSeconds:   int64(math.Round(total)),
		WeeklyStudyTimeSeconds:  int64(math.Round(weekly)),
		MonthlyStudyTimeSeconds: int64(math.Round(monthly)),
		DailyStats:              daily,
		TotalWatchedVideos:      len(records),
	}
	if len(records) > 0 {
		a.AverageSessionDuration = round2(total / float64(len(records)))
	}

	var best float64
	for i := range 7 {
		// Monday first, so ties resolve to the earlier weekday.
		wd := time.Weekday((i + 1) % 7)
		if byWeekday[wd] > best {
			best = byWeekday[wd]
			a.MostProductiveDay = wd.String()
		}
	}
	best = 0
	for h, secs := range byHour {
		if secs > best {
			best = secs
			a.MostProductiveHour = h
		}
	}
	return a, nil
}
