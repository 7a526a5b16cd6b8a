package domain

import "time"

// StatusCreated is the status every new container starts in. Status is
// otherwise free-form and owned by the edit flows.
const StatusCreated = "Created"

// Container is a shipment batch that groups products and carries supplier,
// status and logistics metadata. ContainerCode is globally unique.
type Container struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	Supplier      string     `json:"supplier" bson:"supplier"`
	ContainerCode string     `json:"containerCode" bson:"container_code"`
	Status        string     `json:"status" bson:"status"`
	Location      string     `json:"location,omitempty" bson:"location,omitempty"`
	ArrivalDate   *time.Time `json:"arrivalDate" bson:"arrival_date"`
	CreatedAt     time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" bson:"updated_at"`
	CreatedBy     string     `json:"createdBy" bson:"created_by"`
}
