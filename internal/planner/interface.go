package planner

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	StudySchedule(ctx context.Context, input StudyScheduleInput) (ScheduleOutput, error)
	ExamPrep(ctx context.Context, input ExamPrepInput) (ScheduleOutput, error)
}
