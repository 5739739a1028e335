package port

import "textsum/internal/domain"

type SummaryStore interface {
	PutSummary(rec domain.SummaryRecord) error

	GetSummary(id string) (domain.SummaryRecord, error)

	GetSummaryByPath(path string) (domain.SummaryRecord, error)

	DeleteSummary(id string) error

	ListSummaries() ([]domain.SummaryRecord, error)

	Close() error
}
