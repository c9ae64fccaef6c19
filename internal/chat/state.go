package chat

import (
	"fmt"

	"salesdesk/internal/domain"
)

// Selection is the per-conversation funnel state: which flow the user is in,
// which stage they have reached, and the filters accumulated so far. Filters
// only accumulate in funnel order (year before month before customer); any
// out-of-order mutation is a programming error surfaced as ErrStageOrder,
// never silently repaired.
type Selection struct {
	flow     domain.Flow
	stage    domain.Stage
	year     int
	month    int
	customer *domain.Customer
	page     int
	document int64
}

// NewSelection returns an idle selection with no filters.
func NewSelection() *Selection {
	return &Selection{stage: domain.StageIdle}
}

func (s *Selection) Flow() domain.Flow          { return s.flow }
func (s *Selection) Stage() domain.Stage        { return s.stage }
func (s *Selection) Year() int                  { return s.year }
func (s *Selection) Month() int                 { return s.month }
func (s *Selection) Customer() *domain.Customer { return s.customer }
func (s *Selection) Page() int                  { return s.page }
func (s *Selection) DocumentID() int64          { return s.document }

// Start enters a flow from any stage. Re-entering a flow mid-flow is
// equivalent to cancel followed by start: all filters are cleared.
func (s *Selection) Start(flow domain.Flow) {
	*s = Selection{flow: flow, stage: domain.StageAwaitingYear}
}

// AwaitPhone puts the conversation into the registration stage. Any in-flight
// selection is discarded.
func (s *Selection) AwaitPhone() {
	*s = Selection{stage: domain.StageAwaitingPhone}
}

// ChooseYear records the year filter and advances to month selection.
func (s *Selection) ChooseYear(year int) error {
	if s.stage != domain.StageAwaitingYear {
		return fmt.Errorf("%w: year chosen at stage %s", domain.ErrStageOrder, s.stage)
	}
	s.year = year
	s.stage = domain.StageAwaitingMonth
	return nil
}

// ChooseMonth records the month filter and advances to the next stage: the
// customer step for flows that have one, the result list otherwise.
func (s *Selection) ChooseMonth(month int) error {
	if s.stage != domain.StageAwaitingMonth {
		return fmt.Errorf("%w: month chosen at stage %s", domain.ErrStageOrder, s.stage)
	}
	s.month = month
	s.page = 0
	if s.flow.NeedsCustomerStage() {
		s.stage = domain.StageAwaitingCustomer
	} else {
		s.stage = domain.StageAwaitingDocument
	}
	return nil
}

// ChooseCustomer records the customer filter and advances to the result list.
func (s *Selection) ChooseCustomer(customer *domain.Customer) error {
	if s.stage != domain.StageAwaitingCustomer {
		return fmt.Errorf("%w: customer chosen at stage %s", domain.ErrStageOrder, s.stage)
	}
	s.customer = customer
	s.page = 0
	s.stage = domain.StageAwaitingDocument
	return nil
}

// ChooseDocument records which document the user opened from the result
// list. The stage does not change; back from here returns to the list.
func (s *Selection) ChooseDocument(documentID int64) error {
	if s.stage != domain.StageAwaitingDocument {
		return fmt.Errorf("%w: document chosen at stage %s", domain.ErrStageOrder, s.stage)
	}
	s.document = documentID
	return nil
}

// SetPage moves within the current list. Page navigation never changes the
// stage and never touches the other filters.
func (s *Selection) SetPage(index int) error {
	if s.stage != domain.StageAwaitingCustomer && s.stage != domain.StageAwaitingDocument {
		return fmt.Errorf("%w: page set at stage %s", domain.ErrStageOrder, s.stage)
	}
	if index < 0 {
		index = 0
	}
	s.page = index
	return nil
}

// Back steps one stage towards the start of the funnel, discarding only the
// filter that was set when the stage now being left was entered. Backing out
// of year selection leaves the flow entirely.
func (s *Selection) Back() domain.Stage {
	switch s.stage {
	case domain.StageAwaitingMonth:
		s.year = 0
		s.stage = domain.StageAwaitingYear
	case domain.StageAwaitingCustomer:
		s.month = 0
		s.page = 0
		s.stage = domain.StageAwaitingMonth
	case domain.StageAwaitingDocument:
		// From an opened document the first back returns to the list.
		if s.document != 0 {
			s.document = 0
			return s.stage
		}
		s.page = 0
		if s.flow.NeedsCustomerStage() {
			s.customer = nil
			s.stage = domain.StageAwaitingCustomer
		} else {
			s.month = 0
			s.stage = domain.StageAwaitingMonth
		}
	default:
		*s = Selection{stage: domain.StageIdle}
	}
	return s.stage
}

// Cancel clears everything and returns to idle. Reachable from every stage.
func (s *Selection) Cancel() {
	*s = Selection{stage: domain.StageIdle}
}
