package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the lifecycle state of a print job.
type JobStatus string

const (
	// JobStatusPending indicates a freshly submitted job awaiting the shop.
	JobStatusPending JobStatus = "PENDING"
	// JobStatusProcessing indicates the shop has started printing.
	JobStatusProcessing JobStatus = "PROCESSING"
	// JobStatusCompleted indicates the job is done and ready for pickup.
	JobStatusCompleted JobStatus = "COMPLETED"
)

// String returns the string representation of the JobStatus.
func (s JobStatus) String() string {
	return string(s)
}

// IsValid checks if the JobStatus is a valid value.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusPending, JobStatusProcessing, JobStatusCompleted:
		return true
	default:
		return false
	}
}

// rank orders statuses along the only legal direction of travel.
func (s JobStatus) rank() int {
	switch s {
	case JobStatusPending:
		return 0
	case JobStatusProcessing:
		return 1
	case JobStatusCompleted:
		return 2
	default:
		return -1
	}
}

// CanTransitionTo reports whether moving from s to next is a legal, strictly
// forward transition. No reverse transition exists in the system.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}

	return next.rank() > s.rank()
}

// PrintType is the color mode requested for a job.
type PrintType string

const (
	// PrintTypeBlackWhite requests monochrome printing.
	PrintTypeBlackWhite PrintType = "BLACK_WHITE"
	// PrintTypeColor requests color printing.
	PrintTypeColor PrintType = "COLOR"
)

// IsValid checks if the PrintType is a valid value.
func (t PrintType) IsValid() bool {
	return t == PrintTypeBlackWhite || t == PrintTypeColor
}

// PrintSide selects single- or double-sided printing.
type PrintSide string

const (
	// PrintSideSingle prints on one side of each sheet.
	PrintSideSingle PrintSide = "SINGLE_SIDED"
	// PrintSideDouble prints on both sides of each sheet.
	PrintSideDouble PrintSide = "DOUBLE_SIDED"
)

// IsValid checks if the PrintSide is a valid value.
func (s PrintSide) IsValid() bool {
	return s == PrintSideSingle || s == PrintSideDouble
}

// PrintJob is a customer's print request bundle: uploaded files plus
// preferences and the computed cost. Jobs are owned by a shop and are never
// deleted; their status only moves forward.
type PrintJob struct {
	ID            uuid.UUID   `json:"id"`
	ShopOwnerID   uuid.UUID   `json:"shopOwnerId"`
	TokenNumber   string      `json:"tokenNumber"`
	Status        JobStatus   `json:"status"`
	CustomerName  string      `json:"customerName,omitempty"`
	CustomerEmail string      `json:"customerEmail,omitempty"`
	CustomerPhone string      `json:"customerPhone,omitempty"`
	NoofCopies    int         `json:"noofCopies"`
	PrintType     PrintType   `json:"printType"`
	PaperType     string      `json:"paperType"`
	PrintSide     PrintSide   `json:"printSide"`
	SpecificPages string      `json:"specificPages,omitempty"`
	TotalPages    int         `json:"totalPages"`
	TotalCost     float64     `json:"totalCost"`
	Version       int64       `json:"version"`
	CreatedAt     time.Time   `json:"createdAt"`
	Files         []PrintFile `json:"files"`
}

// PrintFile is an immutable reference to one uploaded document of a job.
// FileURL points at the stored object, not its content.
type PrintFile struct {
	ID          uuid.UUID `json:"id"`
	PrintJobID  uuid.UUID `json:"printJobId"`
	FileName    string    `json:"fileName"`
	FileURL     string    `json:"fileUrl"`
	ContentType string    `json:"contentType,omitempty"`
	Size        int64     `json:"size,omitempty"`
}
