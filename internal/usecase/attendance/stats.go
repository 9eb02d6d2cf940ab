package attendance

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	domain "github.com/izzypositivetech-001/Attendifybackend/internal/domain/attendance"
	"github.com/izzypositivetech-001/Attendifybackend/internal/dto"
	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
	"github.com/izzypositivetech-001/Attendifybackend/internal/timezone"
)

type StatsInput struct {
	StartDate  string // 2006-01-02, defaults to today
	EndDate    string // 2006-01-02, defaults to today
	Department string
}

type StatsOutput struct {
	StatusStats     []dto.StatusCountDTO
	DailyStats      []dto.DailyCountDTO
	DepartmentStats []dto.DepartmentCountDTO
	TotalEmployees  int64
	PresentToday    int64
}

type AttendanceStats struct {
	repo domain.Repository
	tz   string
}

func NewAttendanceStats(repo domain.Repository, tz string) *AttendanceStats {
	return &AttendanceStats{repo: repo, tz: tz}
}

func (uc *AttendanceStats) Execute(
	ctx context.Context,
	in StatsInput,
) (*StatsOutput, error) {

	loc := timezone.Location(uc.tz)
	now := timezone.NowIn(uc.tz)

	start := timezone.DayOf(now)
	if in.StartDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", in.StartDate, loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		start = parsed
	}

	end := timezone.EndOfDay(now)
	if in.EndDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", in.EndDate, loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		end = timezone.EndOfDay(parsed)
	}

	f := domain.StatsFilter{
		Start:      start,
		End:        end,
		Department: in.Department,
	}

	todayStart, todayEnd := timezone.DayBounds(now)

	// The five aggregations are independent; run them concurrently over
	// the shared connection pool.
	out := &StatsOutput{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		out.StatusStats, err = uc.repo.StatusCounts(gctx, f)
		return err
	})

	g.Go(func() error {
		var err error
		out.DailyStats, err = uc.repo.DailyCounts(gctx, f)
		return err
	})

	g.Go(func() error {
		var err error
		out.DepartmentStats, err = uc.repo.DepartmentCounts(gctx, f)
		return err
	})

	g.Go(func() error {
		var err error
		out.TotalEmployees, err = uc.repo.CountActiveEmployees(gctx, in.Department)
		return err
	})

	g.Go(func() error {
		var err error
		out.PresentToday, err = uc.repo.CountCheckedInBetween(gctx, todayStart, todayEnd)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
