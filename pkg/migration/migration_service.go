package migration

import (
	"FreshTrack-Backend/domain"
	"FreshTrack-Backend/entities"
	"FreshTrack-Backend/pkg/expiry"
	"FreshTrack-Backend/pkg/food"
	"FreshTrack-Backend/pkg/realtime"
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	// MigrationService moves a device's locally cached items into the
	// store on first authenticated session.
	MigrationService interface {
		ImportLocalItems(ctx context.Context, req domain.ImportLocalItemsRequest, userID string) (domain.ImportLocalItemsResponse, error)
	}

	migrationService struct {
		foodRepository food.FoodRepository
		hub            *realtime.Hub
	}
)

func NewMigrationService(foodRepository food.FoodRepository, hub *realtime.Hub) MigrationService {
	return &migrationService{
		foodRepository: foodRepository,
		hub:            hub,
	}
}

// ImportLocalItems validates and upserts the cached batch. Entries whose
// id is not a well-formed UUID are skipped, never the whole batch; an id
// colliding with the user's own row is overwritten (last write wins),
// while one colliding with a row owned by someone else is skipped.
// ClearLocal is true on every successful import — including one where
// every entry was skipped — and only a store failure leaves the client's
// cache in place for a retry on the next session.
func (s *migrationService) ImportLocalItems(ctx context.Context, req domain.ImportLocalItemsRequest, userID string) (domain.ImportLocalItemsResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ImportLocalItemsResponse{}, domain.ErrParseUUID
	}

	now := time.Now()
	items := make([]*entities.FoodItem, 0, len(req.Items))
	skipped := make([]string, 0)

	for _, local := range req.Items {
		itemUUID, err := uuid.Parse(local.ID)
		if err != nil {
			log.Warnf("local import for user %s: skipping item %q: invalid id", userID, local.ID)
			skipped = append(skipped, local.ID)
			continue
		}

		expiryDate, err := time.ParseInLocation("2006-01-02", local.ExpiryDate, time.Local)
		if err != nil {
			log.Warnf("local import for user %s: skipping item %q: invalid expiry date", userID, local.ID)
			skipped = append(skipped, local.ID)
			continue
		}

		addedDate := now
		if local.AddedDate != "" {
			if parsed, err := time.ParseInLocation("2006-01-02", local.AddedDate, time.Local); err == nil {
				addedDate = parsed
			}
		}

		quantity := local.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		items = append(items, &entities.FoodItem{
			ID:            itemUUID,
			UserID:        userUUID,
			Name:          local.Name,
			Category:      local.Category,
			Quantity:      quantity,
			UnitMeasure:   local.UnitMeasure,
			ExpiryDate:    expiryDate,
			AddedDate:     addedDate,
			Status:        expiry.Classify(expiryDate, now),
			Barcode:       local.Barcode,
			Notes:         local.Notes,
			AddedManually: true,
		})
	}

	items, skipped, err = s.dropForeignOwned(ctx, items, skipped, userUUID)
	if err != nil {
		return domain.ImportLocalItemsResponse{}, err
	}

	if err := s.foodRepository.UpsertFoodItems(ctx, items); err != nil {
		return domain.ImportLocalItemsResponse{}, err
	}

	if len(items) > 0 {
		s.hub.Publish(realtime.TableFoodItems, userID)
	}

	return domain.ImportLocalItemsResponse{
		Imported:   len(items),
		Skipped:    skipped,
		ClearLocal: true,
	}, nil
}

// dropForeignOwned removes batch entries whose id already belongs to a
// different user. All mutations are scoped by owner, and ids here are
// client-supplied, so a collision with someone else's row must not turn
// the upsert into a takeover.
func (s *migrationService) dropForeignOwned(ctx context.Context, items []*entities.FoodItem, skipped []string, userUUID uuid.UUID) ([]*entities.FoodItem, []string, error) {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID.String())
	}

	existing, err := s.foodRepository.GetFoodItemsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	owners := make(map[string]uuid.UUID, len(existing))
	for _, item := range existing {
		owners[item.ID.String()] = item.UserID
	}

	kept := items[:0]
	for _, item := range items {
		if owner, ok := owners[item.ID.String()]; ok && owner != userUUID {
			log.Warnf("local import for user %s: skipping item %q: id belongs to another user", userUUID, item.ID)
			skipped = append(skipped, item.ID.String())
			continue
		}
		kept = append(kept, item)
	}

	return kept, skipped, nil
}
