package models

// Unified laundry order lifecycle. Forward-only, single successor per
// status, except pending which branches to rejected.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusPickedUp  = "picked_up"
	StatusInProcess = "in_process"
	StatusWashed    = "washed"
	StatusIroned    = "ironed"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
)

// statusFlow maps each status to its single legal successor on the
// employee path. delivered and rejected are terminal and have no entry.
var statusFlow = map[string]string{
	StatusAccepted:  StatusPickedUp,
	StatusPickedUp:  StatusInProcess,
	StatusInProcess: StatusWashed,
	StatusWashed:    StatusIroned,
	StatusIroned:    StatusReady,
	StatusReady:     StatusDelivered,
}

// advanceTargets is the set of statuses an employee may pass to the
// status-update endpoint. accept/reject have dedicated endpoints.
var advanceTargets = map[string]bool{
	StatusPickedUp:  true,
	StatusInProcess: true,
	StatusWashed:    true,
	StatusIroned:    true,
	StatusReady:     true,
	StatusDelivered: true,
}

// legacyStatuses is the vocabulary the admin panel has always sent to the
// direct-override endpoint. "in_progress" predates the unified enum and is
// mapped onto in_process.
var legacyStatuses = map[string]string{
	"pending":     StatusPending,
	"picked_up":   StatusPickedUp,
	"in_progress": StatusInProcess,
	"ready":       StatusReady,
	"delivered":   StatusDelivered,
}

// NextStatus returns the single legal successor of cur, if any.
func NextStatus(cur string) (string, bool) {
	next, ok := statusFlow[cur]
	return next, ok
}

// IsAdvanceTarget reports whether s is a valid target for the employee
// status-update operation.
func IsAdvanceTarget(s string) bool {
	return advanceTargets[s]
}

// ResolveLegacyStatus maps an admin-panel status onto the unified enum.
func ResolveLegacyStatus(s string) (string, bool) {
	unified, ok := legacyStatuses[s]
	return unified, ok
}
