package domain

import "time"

// Product is a sellable inventory item referencing exactly one container.
// SKU is globally unique, and SellingPrice never exceeds NegotiablePrice for
// a persisted product.
type Product struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	SKU               string    `json:"sku" bson:"sku"`
	Name              string    `json:"name" bson:"name"`
	Nomenclature      string    `json:"nomenclature" bson:"nomenclature"`
	Quantity          float64   `json:"quantity" bson:"quantity"`
	ActualPrice       float64   `json:"actualPrice" bson:"actual_price"`
	NegotiablePrice   float64   `json:"negotiablePrice" bson:"negotiable_price"`
	SellingPrice      float64   `json:"sellingPrice" bson:"selling_price"`
	ContainerID       string    `json:"containerId" bson:"container_id"`
	ImageURL          *string   `json:"imageUrl" bson:"image_url"`
	ContainerQuantity float64   `json:"containerQuantity" bson:"container_quantity"`
	CreatedAt         time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updated_at"`
	CreatedBy         string    `json:"createdBy" bson:"created_by"`
}

// NegotiableMarkup is applied to the selling price when the bulk flow derives
// the negotiable price.
const NegotiableMarkup = 1.2
