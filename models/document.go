package models

// Document is a schema-flexible record. Assets, asset requests and packages
// carry whatever fields the client sent, so they are persisted verbatim
// instead of being forced through a fixed struct.
type Document = map[string]any

// Collection names. Affiliations, assignments and payments have no route
// yet; the constants exist so every collection the application owns is
// named in one place.
const (
	CollectionUsers        = "users"
	CollectionAssets       = "assets"
	CollectionRequests     = "requests"
	CollectionPackages     = "packages"
	CollectionPayments     = "payments"
	CollectionAffiliations = "employeeAffiliations"
	CollectionAssignments  = "assignedAssets"
)

// Server-stamped fields on an asset request.
const (
	FieldHREmail       = "hrEmail"
	FieldRequestDate   = "requestDate"
	FieldApprovalDate  = "approvalDate"
	FieldRequestStatus = "requestStatus"
)

// StatusPending is the status every new asset request starts in.
const StatusPending = "pending"
