package waste

import (
	"FreshTrack-Backend/domain"
	"FreshTrack-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultSummaryWindowDays = 30

type (
	WasteService interface {
		LogDisposal(ctx context.Context, req domain.LogDisposalRequest, userID string) (domain.LogDisposalResponse, error)
		GetWasteLog(ctx context.Context, userID string, page, limit int) ([]domain.WasteLogEntryResponse, int64, error)
		GetWasteSummary(ctx context.Context, userID string, windowDays int) (domain.WasteSummaryResponse, error)

		CreateWasteGoal(ctx context.Context, req domain.CreateWasteGoalRequest, userID string) (domain.GoalProgress, error)
		GetWasteGoals(ctx context.Context, userID string) ([]domain.GoalProgress, error)
		DeactivateGoal(ctx context.Context, id string, userID string) error
	}

	wasteService struct {
		wasteRepository WasteRepository
	}
)

func NewWasteService(wasteRepository WasteRepository) WasteService {
	return &wasteService{wasteRepository: wasteRepository}
}

func (s *wasteService) LogDisposal(ctx context.Context, req domain.LogDisposalRequest, userID string) (domain.LogDisposalResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.LogDisposalResponse{}, domain.ErrParseUUID
	}

	switch req.DisposalType {
	case entities.DisposalWasted, entities.DisposalConsumed, entities.DisposalDonated, entities.DisposalComposted:
	default:
		return domain.LogDisposalResponse{}, domain.ErrInvalidDisposalType
	}

	disposalDate := time.Now()
	if req.DisposalDate != "" {
		disposalDate, err = time.ParseInLocation("2006-01-02", req.DisposalDate, time.Local)
		if err != nil {
			return domain.LogDisposalResponse{}, domain.ErrInvalidExpiryDate
		}
	}

	entry := &entities.WasteLogEntry{
		ID:            uuid.New(),
		UserID:        userUUID,
		ItemName:      req.ItemName,
		Category:      req.Category,
		DisposalType:  req.DisposalType,
		Quantity:      req.Quantity,
		UnitMeasure:   req.UnitMeasure,
		DisposalDate:  disposalDate,
		Reason:        req.Reason,
		EstimatedCost: req.EstimatedCost,
		CarbonValue:   s.carbonValue(ctx, req.Category, req.Quantity),
	}

	if req.FoodItemID != "" {
		itemUUID, err := uuid.Parse(req.FoodItemID)
		if err != nil {
			return domain.LogDisposalResponse{}, domain.ErrParseUUID
		}
		entry.FoodItemID = &itemUUID
	}

	if err := s.wasteRepository.CreateWasteLogEntry(ctx, entry); err != nil {
		return domain.LogDisposalResponse{}, err
	}

	if err := s.updateGoals(ctx, userID, entry); err != nil {
		return domain.LogDisposalResponse{}, err
	}

	return domain.LogDisposalResponse{
		ID:           entry.ID.String(),
		DisposalType: entry.DisposalType,
		Quantity:     entry.Quantity,
		CarbonValue:  entry.CarbonValue,
	}, nil
}

func (s *wasteService) GetWasteLog(ctx context.Context, userID string, page, limit int) ([]domain.WasteLogEntryResponse, int64, error) {
	entries, count, err := s.wasteRepository.GetWasteLog(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.WasteLogEntryResponse, 0, len(entries))
	for _, entry := range entries {
		item := domain.WasteLogEntryResponse{
			ID:            entry.ID.String(),
			ItemName:      entry.ItemName,
			Category:      entry.Category,
			DisposalType:  entry.DisposalType,
			Quantity:      entry.Quantity,
			UnitMeasure:   entry.UnitMeasure,
			DisposalDate:  entry.DisposalDate,
			Reason:        entry.Reason,
			EstimatedCost: entry.EstimatedCost,
			CarbonValue:   entry.CarbonValue,
		}
		if entry.FoodItemID != nil {
			item.FoodItemID = entry.FoodItemID.String()
		}
		response = append(response, item)
	}

	return response, count, nil
}

// GetWasteSummary folds the trailing windowDays of log entries into the
// analytics payload. The daily series always has exactly windowDays
// points, zero-filled for days with no entries, ending today.
func (s *wasteService) GetWasteSummary(ctx context.Context, userID string, windowDays int) (domain.WasteSummaryResponse, error) {
	if windowDays <= 0 {
		windowDays = DefaultSummaryWindowDays
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowStart := today.AddDate(0, 0, -(windowDays - 1))

	entries, err := s.wasteRepository.GetEntriesSince(ctx, userID, windowStart)
	if err != nil {
		return domain.WasteSummaryResponse{}, err
	}

	summary := domain.WasteSummaryResponse{
		WindowDays:      windowDays,
		WasteByCategory: make(map[string]float64),
		WasteOverTime:   make([]domain.DailyWastePoint, 0, windowDays),
	}

	daily := make(map[string]*domain.DailyWastePoint, windowDays)
	for i := 0; i < windowDays; i++ {
		day := windowStart.AddDate(0, 0, i)
		point := domain.DailyWastePoint{Date: day.Format("2006-01-02")}
		summary.WasteOverTime = append(summary.WasteOverTime, point)
		daily[point.Date] = &summary.WasteOverTime[len(summary.WasteOverTime)-1]
	}

	for _, entry := range entries {
		switch entry.DisposalType {
		case entities.DisposalWasted:
			summary.TotalWasted += entry.Quantity
			summary.WasteByCategory[entry.Category] += entry.Quantity
		case entities.DisposalConsumed:
			summary.TotalConsumed += entry.Quantity
		case entities.DisposalDonated:
			summary.TotalDonated += entry.Quantity
		case entities.DisposalComposted:
			summary.TotalComposted += entry.Quantity
		}

		summary.TotalCarbon += entry.CarbonValue
		summary.TotalCost += entry.EstimatedCost

		if point, ok := daily[entry.DisposalDate.Format("2006-01-02")]; ok {
			switch entry.DisposalType {
			case entities.DisposalWasted:
				point.Wasted += entry.Quantity
			case entities.DisposalConsumed:
				point.Consumed += entry.Quantity
			}
		}
	}

	goals, err := s.GetWasteGoals(ctx, userID)
	if err != nil {
		return domain.WasteSummaryResponse{}, err
	}
	summary.Goals = goals

	return summary, nil
}

func (s *wasteService) CreateWasteGoal(ctx context.Context, req domain.CreateWasteGoalRequest, userID string) (domain.GoalProgress, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GoalProgress{}, domain.ErrParseUUID
	}

	if req.Target <= 0 {
		return domain.GoalProgress{}, domain.ErrInvalidGoalTarget
	}

	goal := &entities.WasteGoal{
		ID:       uuid.New(),
		UserID:   userUUID,
		GoalType: req.GoalType,
		Target:   req.Target,
		IsActive: true,
	}

	if err := s.wasteRepository.CreateWasteGoal(ctx, goal); err != nil {
		return domain.GoalProgress{}, err
	}

	return toGoalProgress(goal), nil
}

func (s *wasteService) GetWasteGoals(ctx context.Context, userID string) ([]domain.GoalProgress, error) {
	goals, err := s.wasteRepository.GetWasteGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		response = append(response, toGoalProgress(goal))
	}

	return response, nil
}

func (s *wasteService) DeactivateGoal(ctx context.Context, id string, userID string) error {
	goal, err := s.wasteRepository.GetWasteGoalByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrWasteGoalNotFound
		}
		return err
	}

	if goal.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.wasteRepository.DeactivateGoal(ctx, id)
}

// updateGoals applies a disposal event to the user's active goals.
// Waste-reduction and carbon-reduction goals track quantity and carbon
// diverted from the bin, so they only advance on non-wasted disposals;
// cost-savings goals advance on the value of consumed or donated food.
func (s *wasteService) updateGoals(ctx context.Context, userID string, entry *entities.WasteLogEntry) error {
	if entry.DisposalType == entities.DisposalWasted {
		return nil
	}

	if err := s.incrementGoals(ctx, userID, entities.GoalWasteReduction, entry.Quantity); err != nil {
		return err
	}

	if err := s.incrementGoals(ctx, userID, entities.GoalCarbonReduction, entry.CarbonValue); err != nil {
		return err
	}

	if entry.DisposalType == entities.DisposalConsumed || entry.DisposalType == entities.DisposalDonated {
		if err := s.incrementGoals(ctx, userID, entities.GoalCostSavings, entry.EstimatedCost); err != nil {
			return err
		}
	}

	return nil
}

func (s *wasteService) incrementGoals(ctx context.Context, userID string, goalType string, delta float64) error {
	if delta <= 0 {
		return nil
	}

	goals, err := s.wasteRepository.GetActiveGoalsByType(ctx, userID, goalType)
	if err != nil {
		return err
	}

	for _, goal := range goals {
		if err := s.wasteRepository.IncrementGoalCurrent(ctx, goal.ID.String(), delta); err != nil {
			return err
		}
	}

	return nil
}

func (s *wasteService) carbonValue(ctx context.Context, category string, quantity float64) float64 {
	factor, err := s.wasteRepository.GetCarbonFactor(ctx, category)
	if err != nil {
		// Unknown category contributes nothing rather than failing the log.
		return 0
	}
	return factor.KgCO2e * quantity
}

func toGoalProgress(goal *entities.WasteGoal) domain.GoalProgress {
	progress := domain.GoalProgress{
		ID:       goal.ID.String(),
		GoalType: goal.GoalType,
		Target:   goal.Target,
		Current:  goal.Current,
		IsActive: goal.IsActive,
	}

	if goal.Target > 0 {
		percentage := goal.Current / goal.Target * 100
		if percentage > 100 {
			percentage = 100
		}
		progress.Percentage = percentage
	}

	return progress
}
