package domain

var (
	MessageSuccessImportLocalItems = "local items imported successfully"
	MessageFailedImportLocalItems  = "failed to import local items"
)

type (
	LocalItemRequest struct {
		ID          string  `json:"id" validate:"required"`
		Name        string  `json:"name" validate:"required"`
		Category    string  `json:"category" validate:"omitempty"`
		Quantity    float64 `json:"quantity" validate:"omitempty,gt=0"`
		UnitMeasure string  `json:"unit_measure" validate:"omitempty"`
		ExpiryDate  string  `json:"expiry_date" validate:"required"`
		AddedDate   string  `json:"added_date" validate:"omitempty"`
		Barcode     string  `json:"barcode" validate:"omitempty"`
		Notes       string  `json:"notes" validate:"omitempty"`
	}

	ImportLocalItemsRequest struct {
		Items []LocalItemRequest `json:"items" validate:"dive"`
	}

	// ClearLocal tells the client it is safe to drop its local cache.
	// It is true on every successful import, including an import where
	// every entry was rejected.
	ImportLocalItemsResponse struct {
		Imported   int      `json:"imported"`
		Skipped    []string `json:"skipped"` // ids that failed validation
		ClearLocal bool     `json:"clear_local"`
	}
)
