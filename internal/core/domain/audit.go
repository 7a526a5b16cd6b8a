package domain

import "time"

// AuditEntry records one mutating operation for the audit trail. Entries are
// written asynchronously and are never load-bearing for request handling.
type AuditEntry struct {
	Kind      string    `json:"kind" bson:"kind"`     // container | product | user
	EntityID  string    `json:"entity_id" bson:"entity_id"`
	Action    string    `json:"action" bson:"action"` // created | deleted | bulk_created
	ActorUID  string    `json:"actor_uid" bson:"actor_uid"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
