package portfoliosdk

// ============================================================================
// Error envelopes
// ============================================================================

// ErrorResponse is the standard error body returned by the service.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g. "client_not_found")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned when request validation fails. Details
// maps each violated field to its message; every violated field is listed.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Clients
// ============================================================================

// CreateClientRequest registers a new client. Status defaults to active
// when omitted.
type CreateClientRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status *bool  `json:"status,omitempty"`
}

// UpdateClientRequest is a partial update; omitted fields stay unchanged.
type UpdateClientRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Status *bool   `json:"status,omitempty"`
}

// ClientInfo is the wire representation of a client.
type ClientInfo struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Status    bool   `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type ListClientsResponse struct {
	Clients []ClientInfo `json:"clients"`
}

// ============================================================================
// Assets
// ============================================================================

// AssetInfo is the wire representation of an asset. Value is a decimal
// string to avoid float rounding on the wire.
type AssetInfo struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Value     string `json:"value"`
	CreatedAt string `json:"createdAt"`
}

type ListAssetsResponse struct {
	Assets []AssetInfo `json:"assets"`
}

// ============================================================================
// Allocations
// ============================================================================

type CreateAllocationRequest struct {
	ClientID int64 `json:"clientId"`
	AssetID  int64 `json:"assetId"`
	Quantity int64 `json:"quantity"`
}

// UpdateAllocationRequest is a partial update; an omitted quantity means
// "no change".
type UpdateAllocationRequest struct {
	Quantity *int64 `json:"quantity,omitempty"`
}

// AllocationInfo is the wire representation of an allocation row.
type AllocationInfo struct {
	ID        int64  `json:"id"`
	ClientID  int64  `json:"clientId"`
	AssetID   int64  `json:"assetId"`
	Quantity  int64  `json:"quantity"`
	CreatedAt string `json:"createdAt"`
}

// ClientSummary is the denormalized client snapshot attached to a listed
// allocation.
type ClientSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AssetSummary is the denormalized asset snapshot attached to a listed
// allocation.
type AssetSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AllocationDetail is an allocation joined with its client and asset
// snapshots, as returned when listing a client's allocations.
type AllocationDetail struct {
	AllocationInfo

	Client ClientSummary `json:"client"`
	Asset  AssetSummary  `json:"asset"`
}

type ListAllocationsResponse struct {
	Allocations []AllocationDetail `json:"allocations"`
}

// ============================================================================
// Reconciliation
// ============================================================================

// ReconcileAsset is a desired asset keyed by name.
type ReconcileAsset struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ReconcileClient is a desired client keyed by email.
type ReconcileClient struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status *bool  `json:"status,omitempty"`
}

// ReconcileAllocation is a desired allocation; the referenced client and
// asset are named by natural key and resolved server-side.
type ReconcileAllocation struct {
	ClientEmail string `json:"clientEmail"`
	AssetName   string `json:"assetName"`
	Quantity    int64  `json:"quantity"`
}

// ReconcileRequest is a declarative desired-state dataset. Assets and
// clients are applied before allocations; entries are applied in order.
type ReconcileRequest struct {
	Assets      []ReconcileAsset      `json:"assets,omitempty"`
	Clients     []ReconcileClient     `json:"clients,omitempty"`
	Allocations []ReconcileAllocation `json:"allocations,omitempty"`
}

// ReconcileResponse summarizes a reconciliation run.
type ReconcileResponse struct {
	Created  int      `json:"created"`
	Updated  int      `json:"updated"`
	Failed   int      `json:"failed"`
	Failures []string `json:"failures,omitempty"`
}

// ============================================================================
// Health
// ============================================================================

type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
