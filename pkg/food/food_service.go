package food

import (
	"FreshTrack-Backend/domain"
	"FreshTrack-Backend/entities"
	"FreshTrack-Backend/internal/utils/storage"
	"FreshTrack-Backend/pkg/expiry"
	"FreshTrack-Backend/pkg/realtime"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assumed average value of a food item kept out of the bin, used for the
// dashboard savings estimate.
const estimatedValuePerItem = 4.5

type (
	// NotificationCleaner removes the outstanding expiry reminders of an
	// item once the item leaves the active inventory. Satisfied by the
	// notification repository.
	NotificationCleaner interface {
		DeleteUnreadExpiryByFoodItem(ctx context.Context, foodItemID string) error
	}

	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error
		TrashFoodItem(ctx context.Context, id string, userID string) error
		RestoreFoodItem(ctx context.Context, id string, userID string) error
		DeleteFoodItem(ctx context.Context, id string, userID string) error
		GetFoodItems(ctx context.Context, userID string, status string, page, limit int) ([]domain.FoodItemResponse, int64, error)
		GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error)
		GetTrashedItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		notifications  NotificationCleaner
		s3             storage.AwsS3
		hub            *realtime.Hub
	}
)

func NewFoodService(foodRepository FoodRepository, notifications NotificationCleaner, s3 storage.AwsS3, hub *realtime.Hub) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		notifications:  notifications,
		s3:             s3,
		hub:            hub,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	// Parsed in the server zone so stored dates live in the same frame
	// as the midnight-based range queries.
	expiryDate, err := time.ParseInLocation("2006-01-02", req.ExpiryDate, time.Local)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	if req.Quantity <= 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrParseUUID
	}

	now := time.Now()
	foodItem := &entities.FoodItem{
		ID:            uuid.New(),
		UserID:        userUUID,
		Name:          req.Name,
		Category:      req.Category,
		Quantity:      req.Quantity,
		UnitMeasure:   req.UnitMeasure,
		ExpiryDate:    expiryDate,
		AddedDate:     now,
		Status:        expiry.Classify(expiryDate, now),
		Barcode:       req.Barcode,
		Notes:         req.Notes,
		AddedManually: req.Barcode == "",
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	s.hub.Publish(realtime.TableFoodItems, userID)

	return toFoodItemResponse(foodItem, now), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error {
	foodItem, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		foodItem.Name = req.Name
	}
	if req.Category != "" {
		foodItem.Category = req.Category
	}
	if req.Quantity > 0 {
		foodItem.Quantity = req.Quantity
	}
	if req.UnitMeasure != "" {
		foodItem.UnitMeasure = req.UnitMeasure
	}
	if req.Barcode != "" {
		foodItem.Barcode = req.Barcode
	}
	if req.Notes != "" {
		foodItem.Notes = req.Notes
	}

	if req.ExpiryDate != "" {
		expiryDate, err := time.ParseInLocation("2006-01-02", req.ExpiryDate, time.Local)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		foodItem.ExpiryDate = expiryDate
		foodItem.Status = expiry.Classify(expiryDate, time.Now())
	}

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return err
	}

	s.hub.Publish(realtime.TableFoodItems, userID)
	return nil
}

// TrashFoodItem moves an item to the recoverable trash list and removes
// its outstanding expiry reminders so they do not go stale.
func (s *foodService) TrashFoodItem(ctx context.Context, id string, userID string) error {
	foodItem, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.foodRepository.SetTrashed(ctx, foodItem.ID.String(), true); err != nil {
		return err
	}

	if err := s.notifications.DeleteUnreadExpiryByFoodItem(ctx, foodItem.ID.String()); err != nil {
		return err
	}

	s.hub.Publish(realtime.TableFoodItems, userID)
	s.hub.Publish(realtime.TableNotifications, userID)
	return nil
}

func (s *foodService) RestoreFoodItem(ctx context.Context, id string, userID string) error {
	foodItem, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if !foodItem.Trashed {
		return domain.ErrFoodItemNotTrashed
	}

	if err := s.foodRepository.SetTrashed(ctx, foodItem.ID.String(), false); err != nil {
		return err
	}

	s.hub.Publish(realtime.TableFoodItems, userID)
	return nil
}

// DeleteFoodItem removes an item permanently. Only trashed items can be
// deleted; active items go through the trash first.
func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	foodItem, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if !foodItem.Trashed {
		return domain.ErrFoodItemNotTrashed
	}

	if foodItem.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	if err := s.notifications.DeleteUnreadExpiryByFoodItem(ctx, foodItem.ID.String()); err != nil {
		return err
	}

	if err := s.foodRepository.DeleteFoodItem(ctx, id); err != nil {
		return err
	}

	s.hub.Publish(realtime.TableFoodItems, userID)
	return nil
}

func (s *foodService) GetFoodItems(ctx context.Context, userID string, status string, page, limit int) ([]domain.FoodItemResponse, int64, error) {
	foodItems, count, err := s.foodRepository.GetFoodItems(ctx, userID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		s.refreshStatus(ctx, item, now)
		response = append(response, toFoodItemResponse(item, now))
	}

	return response, count, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	now := time.Now()
	s.refreshStatus(ctx, foodItem, now)
	return toFoodItemResponse(foodItem, now), nil
}

func (s *foodService) GetTrashedItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetTrashedItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, toFoodItemResponse(item, now))
	}

	return response, nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error {
	foodItem, err := s.getOwnedItem(ctx, req.FoodItemID, userID)
	if err != nil {
		return err
	}

	fileName := fmt.Sprintf("food-item-%s", foodItem.ID.String())
	var objectKey string
	var uploadErr error

	if foodItem.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
	}

	if uploadErr != nil {
		return uploadErr
	}

	foodItem.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return err
	}

	s.hub.Publish(realtime.TableFoodItems, userID)
	return nil
}

func (s *foodService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	foodItems, err := s.foodRepository.GetAllFoodItems(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	now := time.Now()
	stats := domain.DashboardStatsResponse{TotalItems: len(foodItems)}

	for _, item := range foodItems {
		switch expiry.Classify(item.ExpiryDate, now) {
		case expiry.StatusSafe:
			stats.SafeItems++
		case expiry.StatusWarning:
			stats.WarningItems++
		case expiry.StatusDanger:
			stats.DangerItems++
		case expiry.StatusExpired:
			stats.ExpiredItems++
		}
	}

	savedItems := stats.SafeItems + stats.WarningItems + stats.DangerItems
	stats.EstimatedSavings = float64(savedItems) * estimatedValuePerItem

	return stats, nil
}

func (s *foodService) getOwnedItem(ctx context.Context, id string, userID string) (*entities.FoodItem, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}

	if foodItem.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}

	return foodItem, nil
}

// refreshStatus re-derives the stored status from the expiry date. The
// stored column only exists so listings can filter on it; it decays as
// days pass, so reads repair it opportunistically.
func (s *foodService) refreshStatus(ctx context.Context, item *entities.FoodItem, now time.Time) {
	status := expiry.Classify(item.ExpiryDate, now)
	if status == item.Status {
		return
	}
	item.Status = status
	_ = s.foodRepository.UpdateFoodItem(ctx, item)
}

func toFoodItemResponse(item *entities.FoodItem, now time.Time) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:            item.ID.String(),
		Name:          item.Name,
		Category:      item.Category,
		Quantity:      item.Quantity,
		UnitMeasure:   item.UnitMeasure,
		ExpiryDate:    item.ExpiryDate,
		AddedDate:     item.AddedDate,
		Status:        expiry.Classify(item.ExpiryDate, now),
		DaysRemaining: expiry.DaysRemaining(item.ExpiryDate, now),
		Barcode:       item.Barcode,
		Notes:         item.Notes,
		ImageURL:      item.ImageURL,
		CreatedAt:     item.CreatedAt,
	}
}
