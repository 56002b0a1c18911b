package pos

import "strconv"

// Response status values of the normalized response shape.
const (
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

// NormalizedResponse is the uniform response mapping every gateway
// produces for the orchestration layer, regardless of originating bank.
type NormalizedResponse struct {
	Status              string `json:"status"`
	OrderID             string `json:"order_id"`
	AuthCode            string `json:"auth_code"`
	RefRetNum           string `json:"ref_ret_num"`
	ProcReturnCode      string `json:"proc_return_code"`
	ErrorCode           string `json:"error_code,omitempty"`
	ErrorMessage        string `json:"error_message,omitempty"`
	TransactionSecurity string `json:"transaction_security,omitempty"`
	MDStatus            string `json:"md_status,omitempty"`
}

// Str reads a string field out of a decoded response map, tolerating
// missing keys and non-string scalar values.
func Str(data map[string]any, key string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return toString(v)
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; integral values render without
		// a fraction.
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
