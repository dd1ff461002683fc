package domain

// PricingLabel — тристабильная метка ценового позиционирования.
type PricingLabel string

const (
	LabelUnderpriced PricingLabel = "Underpriced"
	LabelFair        PricingLabel = "Fair"
	LabelOverpriced  PricingLabel = "Overpriced"
)
