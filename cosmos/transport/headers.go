package transport

// Wire-level header names shared by transport implementations and by the
// object model's session-token handling.
const (
	HeaderDate          = "x-ms-date"
	HeaderVersion       = "x-ms-version"
	HeaderSessionToken  = "x-ms-session-token"
	HeaderMaxItemCount  = "x-ms-max-item-count"
	HeaderPartitionKey  = "x-ms-documentdb-partitionkey"
	HeaderIsQuery       = "x-ms-documentdb-isquery"
	HeaderIsUpsert      = "x-ms-documentdb-is-upsert"
	HeaderRequestCharge = "x-ms-request-charge"
	HeaderActivityID    = "x-ms-activity-id"
)

// Feed envelope keys: listing and query responses wrap their results in a
// single-key JSON object named after the resource kind.
const (
	FeedKeyDatabases  = "Databases"
	FeedKeyContainers = "DocumentCollections"
	FeedKeyDocuments  = "Documents"
	FeedKeyUsers      = "Users"
)
