package domain

import "fmt"

// DocumentRole identifies which side of the comparison a document belongs to.
type DocumentRole string

const (
	RoleInvoice       DocumentRole = "invoice"
	RolePurchaseOrder DocumentRole = "purchase_order"
)

// Roles lists both document roles in comparison order (invoice first).
var Roles = []DocumentRole{RoleInvoice, RolePurchaseOrder}

// ParseRole converts a string into a DocumentRole.
func ParseRole(s string) (DocumentRole, error) {
	switch DocumentRole(s) {
	case RoleInvoice:
		return RoleInvoice, nil
	case RolePurchaseOrder:
		return RolePurchaseOrder, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// DocumentFormat represents the supported upload formats.
type DocumentFormat string

const (
	FormatPDF DocumentFormat = "pdf"
	FormatCSV DocumentFormat = "csv"
)

// SupportedExtensions maps file extensions (without dot) to DocumentFormat.
var SupportedExtensions = map[string]DocumentFormat{
	"pdf": FormatPDF,
	"csv": FormatCSV,
}

// RolePhase represents the per-role workflow state.
type RolePhase string

const (
	PhaseEmpty        RolePhase = "empty"
	PhaseFileStored   RolePhase = "file_stored"
	PhaseContentReady RolePhase = "content_ready"
)
