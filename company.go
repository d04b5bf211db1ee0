package investor

// Company identifies a listed company. Ticker is the primary key; merging a
// company with a ticker already in the store replaces its name and sector.
type Company struct {
	Ticker string `gorm:"primaryKey;size:16" json:"ticker"`
	Name   string `json:"name"`
	Sector string `json:"sector,omitempty"`

	// Deleting a company drags its financial row along.
	Financial *Financial `gorm:"foreignKey:Ticker;references:Ticker;constraint:OnDelete:CASCADE" json:"-"`
}

// Financial carries the reported figures of one company, one row per ticker.
// Every figure is optional: an empty CSV cell or a JSON null loads as the
// unknown Amount, which is how a company ends up excluded from the ratios
// that need that figure.
type Financial struct {
	Ticker          string `gorm:"primaryKey;size:16" json:"ticker"`
	EBITDA          Amount `gorm:"type:numeric" json:"ebitda"`
	Sales           Amount `gorm:"type:numeric" json:"sales"`
	NetProfit       Amount `gorm:"type:numeric" json:"net_profit"`
	MarketPrice     Amount `gorm:"type:numeric" json:"market_price"`
	NetDebt         Amount `gorm:"type:numeric" json:"net_debt"`
	Assets          Amount `gorm:"type:numeric" json:"assets"`
	Equity          Amount `gorm:"type:numeric" json:"equity"`
	CashEquivalents Amount `gorm:"type:numeric" json:"cash_equivalents"`
	Liabilities     Amount `gorm:"type:numeric" json:"liabilities"`
}

// TableName keeps the historical singular table name, so stores written by
// earlier versions of the program keep working.
func (Financial) TableName() string { return "financial" }
