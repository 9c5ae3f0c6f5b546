package service

import (
	"context"
	"time"

	"team-scheduler/core/cache"
	"team-scheduler/core/constants"
	coreEntity "team-scheduler/core/entity"
	"team-scheduler/core/errors"
	"team-scheduler/core/queue"
	"team-scheduler/core/storage"
	appointmentEntity "team-scheduler/modules/appointment/entity"
	appointmentMapper "team-scheduler/modules/appointment/mapper"
	appointmentRepo "team-scheduler/modules/appointment/repository"
	"team-scheduler/modules/calendar/dto"
	memberService "team-scheduler/modules/member/service"
	taskEntity "team-scheduler/modules/task/entity"
	taskMapper "team-scheduler/modules/task/mapper"
	taskRepo "team-scheduler/modules/task/repository"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type CalendarService interface {
	GetDayView(ctx context.Context, memberID int64, date time.Time) (*dto.DayView, *errors.AppError)
	GetMonthSummary(ctx context.Context, memberID int64, date time.Time) (dto.MonthSummary, *errors.AppError)
	ExportMonth(ctx context.Context, memberID int64, date time.Time) (*dto.ExportResponse, *errors.AppError)
	InvalidateMonth(ctx context.Context, memberID int64, at time.Time)
	WarmMonth(ctx context.Context, memberID int64, month string) error
}

type calendarService struct {
	appointments appointmentRepo.AppointmentRepositoryInterface
	tasks        taskRepo.TaskRepositoryInterface
	members      memberService.MemberServiceInterface
	cache        cache.Cache
	jobs         queue.Enqueuer
	uploader     storage.Uploader
	flight       singleflight.Group
	now          func() time.Time
}

// NewCalendarService wires the aggregator. A nil cache or job queue disables
// that feature; a nil uploader makes exports unavailable.
func NewCalendarService(
	appointments appointmentRepo.AppointmentRepositoryInterface,
	tasks taskRepo.TaskRepositoryInterface,
	members memberService.MemberServiceInterface,
	summaryCache cache.Cache,
	jobs queue.Enqueuer,
	uploader storage.Uploader,
) CalendarService {
	if summaryCache == nil {
		summaryCache = cache.Noop{}
	}
	if jobs == nil {
		jobs = queue.Noop{}
	}
	return &calendarService{
		appointments: appointments,
		tasks:        tasks,
		members:      members,
		cache:        summaryCache,
		jobs:         jobs,
		uploader:     uploader,
		now:          time.Now,
	}
}

// GetDayView lists the member's approved and pending appointments overlapping
// the day, and tasks whose start or deadline falls on it. The four queries
// run concurrently and any failure fails the view.
func (s *calendarService) GetDayView(ctx context.Context, memberID int64, date time.Time) (*dto.DayView, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	day := coreEntity.DayWindow(date)
	view := &dto.DayView{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.appointments.FindMany(gctx, appointmentEntity.AppointmentFilter{
			MemberID: memberID, Status: coreEntity.StatusApproved, Overlaps: &day,
		})
		view.Appointments = appointmentMapper.ToAppointmentResponses(items)
		return err
	})
	g.Go(func() error {
		items, err := s.tasks.FindMany(gctx, taskEntity.TaskFilter{
			AssignedToID: memberID, Status: coreEntity.StatusApproved, AnchoredIn: &day,
		})
		view.Tasks = taskMapper.ToTaskResponses(items)
		return err
	})
	g.Go(func() error {
		items, err := s.appointments.FindMany(gctx, appointmentEntity.AppointmentFilter{
			MemberID: memberID, Status: coreEntity.StatusPending, Overlaps: &day,
		})
		view.PendingAppointments = appointmentMapper.ToAppointmentResponses(items)
		return err
	})
	g.Go(func() error {
		items, err := s.tasks.FindMany(gctx, taskEntity.TaskFilter{
			AssignedToID: memberID, Status: coreEntity.StatusPending, AnchoredIn: &day,
		})
		view.PendingTasks = taskMapper.ToTaskResponses(items)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load day view", err)
	}
	return view, nil
}

// computeMonth reads the approved appointments starting in the month and the
// approved tasks with either anchor in it.
func (s *calendarService) computeMonth(ctx context.Context, memberID int64, date time.Time) (dto.MonthSummary, error) {
	month := coreEntity.MonthWindow(date)

	var (
		appointments []appointmentEntity.Appointment
		tasks        []taskEntity.Task
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		appointments, err = s.appointments.FindMany(gctx, appointmentEntity.AppointmentFilter{
			MemberID: memberID, Status: coreEntity.StatusApproved, StartsIn: &month,
		})
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.tasks.FindMany(gctx, taskEntity.TaskFilter{
			AssignedToID: memberID, Status: coreEntity.StatusApproved, AnchoredIn: &month,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return BuildMonthSummary(appointments, tasks), nil
}

// BuildMonthSummary buckets appointments by the date of StartAt and tasks by
// the date of StartAt, else DeadlineAt. A task selected through its deadline
// but starting in another month is counted under its start date. Tasks with
// neither timestamp are skipped.
func BuildMonthSummary(appointments []appointmentEntity.Appointment, tasks []taskEntity.Task) dto.MonthSummary {
	summary := dto.MonthSummary{}
	for i := range appointments {
		key := appointments[i].StartAt.Format(constants.DateLayout)
		count := summary[key]
		count.Appointments++
		summary[key] = count
	}
	for i := range tasks {
		anchor := tasks[i].Anchor()
		if anchor == nil {
			continue
		}
		key := anchor.Format(constants.DateLayout)
		count := summary[key]
		count.Tasks++
		summary[key] = count
	}
	return summary
}
