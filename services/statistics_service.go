package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/calo-work-stack/Calo-sub003/models"

	"gorm.io/gorm"
)

// ErrStatisticsFailed is the only error the monthly report computation
// surfaces; the underlying data-layer error is logged, not returned.
var ErrStatisticsFailed = errors.New("failed to calculate statistics")

// Fallback daily targets when neither a goal row nor a profile default exists.
const (
	defaultCaloriesGoal = 2000.0
	defaultProteinGoal  = 150.0
	defaultCarbsGoal    = 250.0
	defaultFatGoal      = 65.0

	waterDailyGoalMl = 2000.0
)

// StatsDataSource is the read surface the engine consumes. Everything is
// fetched up front; the computation itself does no I/O.
type StatsDataSource interface {
	MealsByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.Meal, error)
	GoalsByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.DailyGoal, error)
	WaterByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.WaterIntake, error)
	EventsByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.CalendarEvent, error)
	UserProfile(ctx context.Context, userID uint) (*models.User, error)
}

type StatisticsService struct {
	data StatsDataSource
}

func NewStatisticsService(data StatsDataSource) *StatisticsService {
	return &StatisticsService{data: data}
}

// ---------- report types ----------

type EventSummary struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DayRecord is the per-date aggregate every downstream calculator works on.
// Exactly one exists per calendar day in the requested window; days without
// data keep zero actuals and QualityScore 0.
type DayRecord struct {
	Date           time.Time      `json:"date"`
	CaloriesGoal   float64        `json:"calories_goal"`
	CaloriesActual float64        `json:"calories_actual"`
	ProteinGoal    float64        `json:"protein_goal"`
	ProteinActual  float64        `json:"protein_actual"`
	CarbsGoal      float64        `json:"carbs_goal"`
	CarbsActual    float64        `json:"carbs_actual"`
	FatGoal        float64        `json:"fat_goal"`
	FatActual      float64        `json:"fat_actual"`
	MealCount      int            `json:"meal_count"`
	WaterIntakeMl  int            `json:"water_intake_ml"`
	Events         []EventSummary `json:"events"`
	QualityScore   float64        `json:"quality_score"`
}

type GoalDefaults struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

type BasicStats struct {
	TotalDays       int     `json:"total_days"`
	GoalDays        int     `json:"goal_days"`
	PerfectDays     int     `json:"perfect_days"`
	MonthlyProgress int     `json:"monthly_progress"`
	StreakDays      int     `json:"streak_days"`
	AvgCalories     float64 `json:"avg_calories"`
	AvgProtein      float64 `json:"avg_protein"`
	AvgCarbs        float64 `json:"avg_carbs"`
	AvgFat          float64 `json:"avg_fat"`
	AvgWaterMl      float64 `json:"avg_water_ml"`
}

type MacroBreakdown struct {
	Average          float64 `json:"average"`
	Min              float64 `json:"min"`
	Max              float64 `json:"max"`
	Total            float64 `json:"total"`
	GoalAverage      float64 `json:"goal_average"`
	AdherencePercent int     `json:"adherence_percent"`
}

type NutritionBreakdown struct {
	Calories MacroBreakdown `json:"calories"`
	Protein  MacroBreakdown `json:"protein"`
	Carbs    MacroBreakdown `json:"carbs"`
	Fat      MacroBreakdown `json:"fat"`
	Water    MacroBreakdown `json:"water"`
}

type MacroTrends struct {
	Calories string `json:"calories"` // increasing|decreasing|stable
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
	Overall  string `json:"overall"` // improving|declining|stable
}

type WeekSummary struct {
	Label           string   `json:"label"`
	GoalDays        int      `json:"goal_days"`
	PerfectDays     int      `json:"perfect_days"`
	AverageProgress float64  `json:"average_progress"`
	AvgCalories     float64  `json:"avg_calories"`
	AvgProtein      float64  `json:"avg_protein"`
	AvgCarbs        float64  `json:"avg_carbs"`
	AvgFat          float64  `json:"avg_fat"`
	Highlights      []string `json:"highlights"`
	Challenges      []string `json:"challenges"`
}

type WeeklyAnalysis struct {
	BestWeek        WeekSummary `json:"best_week"`
	ChallengingWeek WeekSummary `json:"challenging_week"`
}

type MonthComparison struct {
	CaloriesDiff float64 `json:"calories_diff"`
	ProteinDiff  float64 `json:"protein_diff"`
	CarbsDiff    float64 `json:"carbs_diff"`
	FatDiff      float64 `json:"fat_diff"`
	WaterDiff    float64 `json:"water_diff"`
	ProgressDiff int     `json:"progress_diff"`
	StreakDiff   int     `json:"streak_diff"`
}

type MonthlyReport struct {
	Year       int                `json:"year"`
	Month      int                `json:"month"`
	Basic      BasicStats         `json:"basic_stats"`
	Breakdown  NutritionBreakdown `json:"nutrition_breakdown"`
	Trends     MacroTrends        `json:"trends"`
	Weekly     WeeklyAnalysis     `json:"weekly_analysis"`
	Comparison MonthComparison    `json:"comparison"`
	Message    string             `json:"message"`
}

// ---------- entry point ----------

// ComputeMonthlyReport builds the full report for one calendar month plus
// the delta against the preceding month. The report is always fully
// populated: months without data come back with zero-valued statistics.
func (s *StatisticsService) ComputeMonthlyReport(ctx context.Context, userID uint, year, month int) (*MonthlyReport, error) {
	now := time.Now()
	curFrom := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	curTo := curFrom.AddDate(0, 1, -1)
	prevFrom := curFrom.AddDate(0, -1, 0) // wraps the year when month == 1
	prevTo := curFrom.AddDate(0, 0, -1)

	defaults, err := s.loadDefaults(ctx, userID)
	if err != nil {
		log.Printf("statistics: load defaults for user %d: %v", userID, err)
		return nil, ErrStatisticsFailed
	}

	curDays, err := s.loadDayRecords(ctx, userID, curFrom, curTo, defaults)
	if err != nil {
		log.Printf("statistics: load %d-%02d for user %d: %v", year, month, userID, err)
		return nil, ErrStatisticsFailed
	}
	prevDays, err := s.loadDayRecords(ctx, userID, prevFrom, prevTo, defaults)
	if err != nil {
		log.Printf("statistics: load previous month for user %d: %v", userID, err)
		return nil, ErrStatisticsFailed
	}

	basic := calculateBasicStats(curDays, now)
	comparison := compareMonths(basic, calculateBasicStats(prevDays, now))

	return &MonthlyReport{
		Year:       year,
		Month:      month,
		Basic:      basic,
		Breakdown:  calculateNutritionBreakdown(curDays),
		Trends:     analyzeTrends(curDays),
		Weekly:     analyzeWeeks(curDays),
		Comparison: comparison,
		Message:    motivationalMessage(basic.MonthlyProgress, basic.StreakDays, comparison.ProgressDiff),
	}, nil
}

// CurrentStreak reports the consecutive on-goal days ending today, scoped
// to the current month like the report's streak figure. The meal write path
// uses it to fire streak milestone pushes.
func (s *StatisticsService) CurrentStreak(ctx context.Context, userID uint) (int, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, -1)

	defaults, err := s.loadDefaults(ctx, userID)
	if err != nil {
		log.Printf("statistics: load defaults for user %d: %v", userID, err)
		return 0, ErrStatisticsFailed
	}
	days, err := s.loadDayRecords(ctx, userID, from, to, defaults)
	if err != nil {
		log.Printf("statistics: load current month for user %d: %v", userID, err)
		return 0, ErrStatisticsFailed
	}
	return streakDays(days, now), nil
}

func (s *StatisticsService) loadDefaults(ctx context.Context, userID uint) (GoalDefaults, error) {
	d := GoalDefaults{
		Calories: defaultCaloriesGoal,
		Protein:  defaultProteinGoal,
		Carbs:    defaultCarbsGoal,
		Fat:      defaultFatGoal,
	}
	u, err := s.data.UserProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return d, nil
		}
		return d, err
	}
	if u.DefaultCalories > 0 {
		d.Calories = u.DefaultCalories
	}
	if u.DefaultProtein > 0 {
		d.Protein = u.DefaultProtein
	}
	if u.DefaultCarbs > 0 {
		d.Carbs = u.DefaultCarbs
	}
	if u.DefaultFat > 0 {
		d.Fat = u.DefaultFat
	}
	return d, nil
}

func (s *StatisticsService) loadDayRecords(ctx context.Context, userID uint, from, to time.Time, defaults GoalDefaults) ([]DayRecord, error) {
	meals, err := s.data.MealsByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	goals, err := s.data.GoalsByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	water, err := s.data.WaterByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	events, err := s.data.EventsByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return buildDayRecords(meals, goals, water, events, from, to, defaults), nil
}

// ---------- daily record builder ----------

// buildDayRecords merges the four row sets into one DayRecord per calendar
// day in [from, to], ascending. Multiple meal rows on a date are summed;
// missing goal rows fall back to the defaults; days without any rows still
// appear with zero actuals.
func buildDayRecords(
	meals []models.Meal,
	goals []models.DailyGoal,
	water []models.WaterIntake,
	events []models.CalendarEvent,
	from, to time.Time,
	defaults GoalDefaults,
) []DayRecord {

	mealsByDay := map[string][]models.Meal{}
	for _, m := range meals {
		k := m.AteAt.Format("2006-01-02")
		mealsByDay[k] = append(mealsByDay[k], m)
	}
	goalByDay := map[string]models.DailyGoal{}
	for _, g := range goals {
		goalByDay[g.Date.Format("2006-01-02")] = g
	}
	waterByDay := map[string]int{}
	for _, w := range water {
		waterByDay[w.Date.Format("2006-01-02")] += w.AmountMl
	}
	eventsByDay := map[string][]models.CalendarEvent{}
	for _, e := range events {
		k := e.Date.Format("2006-01-02")
		eventsByDay[k] = append(eventsByDay[k], e)
	}

	var out []DayRecord
	for d := dayStart(from); !d.After(to); d = d.AddDate(0, 0, 1) {
		k := d.Format("2006-01-02")
		rec := DayRecord{
			Date:         d,
			CaloriesGoal: defaults.Calories,
			ProteinGoal:  defaults.Protein,
			CarbsGoal:    defaults.Carbs,
			FatGoal:      defaults.Fat,
		}
		if g, ok := goalByDay[k]; ok {
			if g.Calories > 0 {
				rec.CaloriesGoal = g.Calories
			}
			if g.Protein > 0 {
				rec.ProteinGoal = g.Protein
			}
			if g.Carbs > 0 {
				rec.CarbsGoal = g.Carbs
			}
			if g.Fat > 0 {
				rec.FatGoal = g.Fat
			}
		}
		for _, m := range mealsByDay[k] {
			rec.CaloriesActual += m.Calories
			rec.ProteinActual += m.Protein
			rec.CarbsActual += m.Carbs
			rec.FatActual += m.Fat
			if isMainMealPeriod(m.Period) {
				rec.MealCount++
			}
		}
		rec.WaterIntakeMl = waterByDay[k]
		for _, e := range eventsByDay[k] {
			rec.Events = append(rec.Events, EventSummary{
				ID:          e.ID,
				Title:       e.Title,
				Type:        e.Type,
				Description: e.Description,
				CreatedAt:   e.CreatedAt,
			})
		}
		rec.QualityScore = qualityScore(rec)
		out = append(out, rec)
	}
	return out
}

// NormalizeMealPeriod maps the spellings older clients send ("Late Night",
// "late-night") onto the canonical period names. Normalization happens once
// here, at the row boundary, so no downstream consumer needs fallback chains.
func NormalizeMealPeriod(period string) string {
	p := strings.ToLower(strings.TrimSpace(period))
	p = strings.ReplaceAll(p, " ", "_")
	p = strings.ReplaceAll(p, "-", "_")
	switch p {
	case "breakfast", "lunch", "dinner", "snack", "late_night":
		return p
	case "snacks":
		return "snack"
	default:
		return p
	}
}

// Snack entries count toward nutrition totals but not toward the
// meals-per-day figure the client displays.
func isMainMealPeriod(period string) bool {
	switch NormalizeMealPeriod(period) {
	case "breakfast", "lunch", "dinner", "late_night":
		return true
	}
	return false
}

// ---------- quality scorer ----------

// qualityScore grades one day 1..10 from calorie, protein and water
// adherence. Over- and under-consumption are penalized symmetrically; each
// ratio is capped so one extreme macro cannot drive the score negative.
// A day with no logged calories scores 0.
func qualityScore(d DayRecord) float64 {
	if d.CaloriesActual == 0 {
		return 0
	}
	calRatio := cappedRatio(d.CaloriesActual, d.CaloriesGoal, 1.5)
	protRatio := cappedRatio(d.ProteinActual, d.ProteinGoal, 1.2)
	waterRatio := math.Min(float64(d.WaterIntakeMl)/waterDailyGoalMl, 1.0)

	penalty := math.Abs(calRatio-1)*2.0 +
		math.Abs(protRatio-1)*1.5 +
		math.Abs(waterRatio-1)*1.0

	score := 10 - penalty
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return math.Round(score*10) / 10
}

func cappedRatio(actual, goal, limit float64) float64 {
	if goal <= 0 {
		return 1
	}
	r := actual / goal
	if r > limit {
		r = limit
	}
	return r
}

// ---------- basic stats ----------

func calculateBasicStats(days []DayRecord, now time.Time) BasicStats {
	st := BasicStats{TotalDays: len(days)}

	var cal, prot, carbs, fat, water float64
	dataDays := 0
	for _, d := range days {
		if meetsCalorieGoal(d) {
			st.GoalDays++
		}
		if d.QualityScore >= 9 {
			st.PerfectDays++
		}
		if d.CaloriesActual > 0 {
			dataDays++
			cal += d.CaloriesActual
			prot += d.ProteinActual
			carbs += d.CarbsActual
			fat += d.FatActual
			water += float64(d.WaterIntakeMl)
		}
	}
	if st.TotalDays > 0 {
		st.MonthlyProgress = int(math.Round(100 * float64(st.GoalDays) / float64(st.TotalDays)))
	}
	// Averages run over data-bearing days only, so empty days don't dilute them.
	if dataDays > 0 {
		st.AvgCalories = round2(cal / float64(dataDays))
		st.AvgProtein = round2(prot / float64(dataDays))
		st.AvgCarbs = round2(carbs / float64(dataDays))
		st.AvgFat = round2(fat / float64(dataDays))
		st.AvgWaterMl = round2(water / float64(dataDays))
	}
	st.StreakDays = streakDays(days, now)
	return st
}

func meetsCalorieGoal(d DayRecord) bool {
	return d.CaloriesActual > 0 && d.CaloriesGoal > 0 &&
		d.CaloriesActual/d.CaloriesGoal >= 0.9
}

// streakDays counts consecutive qualifying days walking backward from the
// most recent day on or before today. Days after today are skipped rather
// than breaking the streak (the window can reach into the future when the
// report covers the current month).
func streakDays(days []DayRecord, now time.Time) int {
	today := dayStart(now)
	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		if days[i].Date.After(today) {
			continue
		}
		if !meetsCalorieGoal(days[i]) {
			break
		}
		streak++
	}
	return streak
}

// ---------- nutrition breakdown ----------

func calculateNutritionBreakdown(days []DayRecord) NutritionBreakdown {
	return NutritionBreakdown{
		Calories: macroBreakdown(days,
			func(d DayRecord) float64 { return d.CaloriesActual },
			func(d DayRecord) float64 { return d.CaloriesGoal }),
		Protein: macroBreakdown(days,
			func(d DayRecord) float64 { return d.ProteinActual },
			func(d DayRecord) float64 { return d.ProteinGoal }),
		Carbs: macroBreakdown(days,
			func(d DayRecord) float64 { return d.CarbsActual },
			func(d DayRecord) float64 { return d.CarbsGoal }),
		Fat: macroBreakdown(days,
			func(d DayRecord) float64 { return d.FatActual },
			func(d DayRecord) float64 { return d.FatGoal }),
		// Water runs against the fixed 2 L daily goal, not a per-user field.
		Water: macroBreakdown(days,
			func(d DayRecord) float64 { return float64(d.WaterIntakeMl) },
			func(d DayRecord) float64 { return waterDailyGoalMl }),
	}
}

func macroBreakdown(days []DayRecord, actual, goal func(DayRecord) float64) MacroBreakdown {
	mb := MacroBreakdown{}
	n := 0
	min := math.MaxFloat64
	var goalSum float64
	for _, d := range days {
		if d.CaloriesActual == 0 {
			continue // data-bearing days only
		}
		v := actual(d)
		n++
		mb.Total += v
		if v < min {
			min = v
		}
		if v > mb.Max {
			mb.Max = v
		}
		goalSum += goal(d)
	}
	if n == 0 {
		return mb
	}
	if min < 0 {
		min = 0
	}
	mb.Min = round2(min)
	mb.Max = round2(mb.Max)
	mb.Average = round2(mb.Total / float64(n))
	mb.Total = round2(mb.Total)
	mb.GoalAverage = round2(goalSum / float64(n))
	if mb.GoalAverage > 0 {
		mb.AdherencePercent = int(math.Round(100 * mb.Average / mb.GoalAverage))
	}
	return mb
}

// ---------- trend analyzer ----------

// analyzeTrends splits the data-bearing days at the midpoint and compares
// half means per macro. Fewer than 7 data-bearing days is too noisy to
// call either way, so everything reports stable.
func analyzeTrends(days []DayRecord) MacroTrends {
	tr := MacroTrends{
		Calories: "stable", Protein: "stable", Carbs: "stable",
		Fat: "stable", Overall: "stable",
	}
	var active []DayRecord
	for _, d := range days {
		if d.CaloriesActual > 0 {
			active = append(active, d)
		}
	}
	if len(active) < 7 {
		return tr
	}

	mid := len(active) / 2
	first, second := active[:mid], active[mid:]

	tr.Calories = classifyTrend(
		meanOf(first, func(d DayRecord) float64 { return d.CaloriesActual }),
		meanOf(second, func(d DayRecord) float64 { return d.CaloriesActual }))
	tr.Protein = classifyTrend(
		meanOf(first, func(d DayRecord) float64 { return d.ProteinActual }),
		meanOf(second, func(d DayRecord) float64 { return d.ProteinActual }))
	tr.Carbs = classifyTrend(
		meanOf(first, func(d DayRecord) float64 { return d.CarbsActual }),
		meanOf(second, func(d DayRecord) float64 { return d.CarbsActual }))
	tr.Fat = classifyTrend(
		meanOf(first, func(d DayRecord) float64 { return d.FatActual }),
		meanOf(second, func(d DayRecord) float64 { return d.FatActual }))

	firstRatio := goalDayRatio(first)
	secondRatio := goalDayRatio(second)
	switch {
	case secondRatio > firstRatio+0.1:
		tr.Overall = "improving"
	case secondRatio < firstRatio-0.1:
		tr.Overall = "declining"
	}
	return tr
}

// Threshold is 10% of the first-half mean.
func classifyTrend(first, second float64) string {
	threshold := 0.1 * first
	switch {
	case second > first+threshold:
		return "increasing"
	case second < first-threshold:
		return "decreasing"
	default:
		return "stable"
	}
}

func meanOf(days []DayRecord, f func(DayRecord) float64) float64 {
	if len(days) == 0 {
		return 0
	}
	var sum float64
	for _, d := range days {
		sum += f(d)
	}
	return sum / float64(len(days))
}

func goalDayRatio(days []DayRecord) float64 {
	if len(days) == 0 {
		return 0
	}
	met := 0
	for _, d := range days {
		if meetsCalorieGoal(d) {
			met++
		}
	}
	return float64(met) / float64(len(days))
}

// ---------- weekly analyzer ----------

const noDataWeekLabel = "no data available"

// analyzeWeeks partitions the month into consecutive 7-day windows (the
// last may be shorter), scores each, and picks the best and worst by
// average calorie progress. Windows with no data-bearing days are skipped;
// a month with none at all reports the no-data sentinel for both.
func analyzeWeeks(days []DayRecord) WeeklyAnalysis {
	sentinel := WeekSummary{Label: noDataWeekLabel}
	best, worst := sentinel, sentinel
	found := false

	for start := 0; start < len(days); start += 7 {
		end := start + 7
		if end > len(days) {
			end = len(days)
		}
		w := summarizeWeek(days[start:end])
		if w == nil {
			continue
		}
		if !found {
			best, worst = *w, *w
			found = true
			continue
		}
		if w.AverageProgress > best.AverageProgress {
			best = *w
		}
		if w.AverageProgress < worst.AverageProgress {
			worst = *w
		}
	}
	return WeeklyAnalysis{BestWeek: best, ChallengingWeek: worst}
}

// summarizeWeek returns nil when the window has no data-bearing day.
func summarizeWeek(week []DayRecord) *WeekSummary {
	active := 0
	for _, d := range week {
		if d.CaloriesActual > 0 {
			active++
		}
	}
	if active == 0 {
		return nil
	}

	w := &WeekSummary{
		Label: fmt.Sprintf("%s - %s",
			week[0].Date.Format("Jan 2"),
			week[len(week)-1].Date.Format("Jan 2")),
	}

	var progressSum, cal, prot, carbs, fat float64
	under, over := 0, 0
	for _, d := range week {
		if meetsCalorieGoal(d) {
			w.GoalDays++
		}
		if d.QualityScore >= 9 {
			w.PerfectDays++
		}
		p := 0.0
		if d.CaloriesGoal > 0 {
			p = 100 * d.CaloriesActual / d.CaloriesGoal
		}
		if p > 100 {
			p = 100 // cap each day before averaging
		}
		progressSum += p

		if d.CaloriesActual == 0 {
			continue
		}
		cal += d.CaloriesActual
		prot += d.ProteinActual
		carbs += d.CarbsActual
		fat += d.FatActual
		if d.CaloriesGoal > 0 {
			if d.CaloriesActual < 0.7*d.CaloriesGoal {
				under++
			}
			if d.CaloriesActual > 1.1*d.CaloriesGoal {
				over++
			}
		}
	}
	w.AverageProgress = round2(progressSum / float64(len(week)))
	w.AvgCalories = round2(cal / float64(active))
	w.AvgProtein = round2(prot / float64(active))
	w.AvgCarbs = round2(carbs / float64(active))
	w.AvgFat = round2(fat / float64(active))

	switch {
	case w.GoalDays >= 6:
		w.Highlights = append(w.Highlights, "hit the calorie goal nearly every day")
	case w.GoalDays >= 4:
		w.Highlights = append(w.Highlights, "hit the calorie goal most days")
	}
	if w.PerfectDays >= 3 {
		w.Highlights = append(w.Highlights, fmt.Sprintf("%d near-perfect days", w.PerfectDays))
	}
	if under >= 2 {
		w.Challenges = append(w.Challenges, fmt.Sprintf("%d days well under the calorie goal", under))
	}
	if over >= 2 {
		w.Challenges = append(w.Challenges, fmt.Sprintf("%d days over 110%% of the calorie goal", over))
	}
	return w
}

// ---------- month comparison ----------

// compareMonths returns raw current-minus-previous deltas; no smoothing.
func compareMonths(cur, prev BasicStats) MonthComparison {
	return MonthComparison{
		CaloriesDiff: round2(cur.AvgCalories - prev.AvgCalories),
		ProteinDiff:  round2(cur.AvgProtein - prev.AvgProtein),
		CarbsDiff:    round2(cur.AvgCarbs - prev.AvgCarbs),
		FatDiff:      round2(cur.AvgFat - prev.AvgFat),
		WaterDiff:    round2(cur.AvgWaterMl - prev.AvgWaterMl),
		ProgressDiff: cur.MonthlyProgress - prev.MonthlyProgress,
		StreakDiff:   cur.StreakDays - prev.StreakDays,
	}
}

// ---------- motivational message ----------

// First matching rule wins. No randomness; the client localizes if needed.
func motivationalMessage(monthlyProgress, streakDays, progressDiff int) string {
	switch {
	case monthlyProgress >= 90:
		return "Outstanding month! You hit your goals almost every day."
	case monthlyProgress >= 75:
		return "Great consistency this month. Keep it up!"
	case monthlyProgress >= 50:
		return "Solid progress. A few more on-target days and this becomes a habit."
	case progressDiff > 10:
		return "Big improvement over last month. The trend is on your side."
	case streakDays >= 3:
		return fmt.Sprintf("You're on a %d-day streak. Don't break the chain!", streakDays)
	default:
		return "Every logged meal counts. Start with one on-target day this week."
	}
}

// ---------- gorm-backed data source ----------

type GormStatsSource struct{ db *gorm.DB }

func NewGormStatsSource(db *gorm.DB) *GormStatsSource { return &GormStatsSource{db: db} }

func (g *GormStatsSource) MealsByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND ate_at BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("ate_at ASC").
		Find(&meals).Error
	return meals, err
}

func (g *GormStatsSource) GoalsByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.DailyGoal, error) {
	var goals []models.DailyGoal
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&goals).Error
	return goals, err
}

func (g *GormStatsSource) WaterByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.WaterIntake, error) {
	var rows []models.WaterIntake
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (g *GormStatsSource) EventsByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.CalendarEvent, error) {
	var rows []models.CalendarEvent
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC, created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (g *GormStatsSource) UserProfile(ctx context.Context, userID uint) (*models.User, error) {
	var u models.User
	if err := g.db.WithContext(ctx).First(&u, userID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ---------- internals ----------

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
