package response

import (
	"time"

	"cargo-consolidation/internal/domain/capacity"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/usecase/queries"
)

type ProgressResponse struct {
	TotalVolume string `json:"total_volume"`
	GoalVolume  string `json:"goal_volume"`
	Percent     string `json:"percent"`
}

func FromProgressView(v *queries.ProgressView) (*ProgressResponse, error) {
	return mapInto[ProgressResponse](v)
}

func fromProgress(p capacity.Progress) ProgressResponse {
	return ProgressResponse{
		TotalVolume: DecimalString(p.TotalVolume),
		GoalVolume:  DecimalString(p.GoalVolume),
		Percent:     DecimalString(p.Percent),
	}
}

type CapacitySnapshotResponse struct {
	ID          int64     `json:"id"`
	TotalVolume string    `json:"total_volume"`
	GoalVolume  string    `json:"goal_volume"`
	Percent     string    `json:"percent"`
	RecordedAt  time.Time `json:"recorded_at"`
}

func FromCapacityHistory(items []*queries.CapacitySnapshotView) ([]*CapacitySnapshotResponse, error) {
	return mapList[CapacitySnapshotResponse](items)
}

type BatchResponse struct {
	ID            int64      `json:"id"`
	TargetVolume  string     `json:"target_volume"`
	CurrentVolume string     `json:"current_volume"`
	BookingCount  int        `json:"booking_count"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	ReadyAt       *time.Time `json:"ready_at,omitempty"`
	DispatchedAt  *time.Time `json:"dispatched_at,omitempty"`
}

func FromBatchView(v *queries.BatchView) (*BatchResponse, error) {
	return mapInto[BatchResponse](v)
}

func FromBatchList(items []*queries.BatchView) ([]*BatchResponse, error) {
	return mapList[BatchResponse](items)
}

type MilestoneResponse struct {
	Percent   int    `json:"percent"`
	Threshold string `json:"threshold"`
	Notified  bool   `json:"notified"`
	Error     string `json:"error,omitempty"`
}

type MilestoneReportResponse struct {
	ProgressResponse
	Reached []MilestoneResponse `json:"reached"`
}

func FromMilestoneReport(r *commands.MilestoneReport) *MilestoneReportResponse {
	res := &MilestoneReportResponse{
		ProgressResponse: fromProgress(r.Progress),
		Reached:          make([]MilestoneResponse, 0, len(r.Reached)),
	}
	for _, m := range r.Reached {
		res.Reached = append(res.Reached, MilestoneResponse{
			Percent:   m.Percent,
			Threshold: DecimalString(m.Threshold),
			Notified:  m.Notified,
			Error:     m.Error,
		})
	}
	return res
}

type DispatchReportResponse struct {
	ProgressResponse
	Ready     bool     `json:"ready"`
	Remaining string   `json:"remaining_volume"`
	BatchID   *int64   `json:"batch_id,omitempty"`
	Notified  []string `json:"notified"`
	Message   string   `json:"message"`
}

func FromDispatchReport(r *commands.DispatchReport) *DispatchReportResponse {
	res := &DispatchReportResponse{
		ProgressResponse: fromProgress(r.Progress),
		Ready:            r.Ready,
		Remaining:        DecimalString(r.Remaining),
		BatchID:          r.BatchID,
		Notified:         make([]string, 0, len(r.Notified)),
		Message:          r.Message,
	}
	for _, ch := range r.Notified {
		res.Notified = append(res.Notified, ch.String())
	}
	return res
}

type BatchReadinessResponse struct {
	BatchID       int64  `json:"batch_id"`
	CurrentVolume string `json:"current_volume"`
	TargetVolume  string `json:"target_volume"`
	Ready         bool   `json:"ready"`
	Line          string `json:"line"`
}

func FromBatchReadiness(items []commands.BatchReadiness) ([]*BatchReadinessResponse, error) {
	return mapList[BatchReadinessResponse](items)
}
