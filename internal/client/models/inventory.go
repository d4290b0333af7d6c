package models

type Category string

const (
	CategoryLEDFixtures Category = "LED_FIXTURES"
	CategoryPoles       Category = "POLES"
	CategoryCables      Category = "CABLES"
	CategoryHardware    Category = "HARDWARE"
	CategorySolar       Category = "SOLAR"
)

type StockLevel string

const (
	StockSufficient StockLevel = "SUFFICIENT"
	// StockLow is only ever present in seeded data; StockStatus never yields it.
	StockLow      StockLevel = "LOW"
	StockCritical StockLevel = "CRITICAL"
)

// Direction of a stock movement.
type Direction string

const (
	StockIn  Direction = "IN"
	StockOut Direction = "OUT"
)

func ParseDirection(s string) (Direction, error) {
	return parseEnum(s, []Direction{StockIn, StockOut}, "direction")
}

type InventoryItem struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     Category   `json:"category"`
	Quantity     int        `json:"quantity"`
	ReorderPoint int        `json:"reorderPoint"`
	Unit         string     `json:"unit"`
	Status       StockLevel `json:"status"`
}

func (i InventoryItem) Key() string { return i.ID }

// StockStatus is the level for a quantity against its reorder point.
func StockStatus(quantity, reorderPoint int) StockLevel {
	if quantity < reorderPoint {
		return StockCritical
	}
	return StockSufficient
}

// Adjust applies a movement of amount units and recomputes the status.
func (i InventoryItem) Adjust(dir Direction, amount int) InventoryItem {
	if dir == StockOut {
		amount = -amount
	}
	i.Quantity += amount
	i.Status = StockStatus(i.Quantity, i.ReorderPoint)
	return i
}
