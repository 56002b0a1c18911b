package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
)

// AuditEntry is one recorded gateway audit event: a hash verification
// outcome or a bank business failure.
type AuditEntry struct {
	Timestamp    time.Time `json:"timestamp"`
	Gateway      string    `json:"gateway"`
	OrderID      string    `json:"order_id,omitempty"`
	RequestID    string    `json:"request_id"`
	Kind         string    `json:"kind"`
	HashOK       *bool     `json:"hash_ok,omitempty"`
	ProvidedHash string    `json:"provided_hash,omitempty"`
	ComputedHash string    `json:"computed_hash,omitempty"`
	Error        ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// Audit entry kinds.
const (
	KindHashVerification = "hash_verification"
	KindBankFailure      = "bank_failure"
)

// Logger handles OpenSearch audit and system-log operations. It
// implements pos.AuditSink.
type Logger struct {
	client *Client
}

// NewLogger creates a new OpenSearch logger
func NewLogger(client *Client) *Logger {
	return &Logger{
		client: client,
	}
}

// HashVerification records a 3-D callback hash verification outcome. A
// mismatch is an expected outcome, recorded rather than raised.
func (l *Logger) HashVerification(ctx context.Context, gateway, orderID string, ok bool, provided, computed string) {
	entry := AuditEntry{
		Gateway:      gateway,
		OrderID:      orderID,
		Kind:         KindHashVerification,
		HashOK:       &ok,
		ProvidedHash: provided,
		ComputedHash: computed,
	}
	if err := l.LogAuditEntry(ctx, entry); err != nil {
		// Shipping failures must never affect the payment call.
		log.Printf("opensearch audit shipment failed: %v", err)
	}
}

// LogAuditEntry indexes an audit entry into the gateway's audit index.
func (l *Logger) LogAuditEntry(ctx context.Context, entry AuditEntry) error {
	if !l.client.IsEnabled() {
		return nil // Logging disabled
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.RequestID == "" {
		entry.RequestID = uuid.New().String()
	}

	indexName := l.client.GetAuditIndexName(entry.Gateway)

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index: indexName,
		Body:  bytes.NewReader(entryJSON),
	}
	res, err := req.Do(ctx, l.client.GetClient())
	if err != nil {
		return fmt.Errorf("failed to index audit entry: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("opensearch error: %s", res.String())
	}
	return nil
}

// LogSystemEvent indexes a system log entry into the shared system index.
func (l *Logger) LogSystemEvent(ctx context.Context, log any) error {
	if !l.client.IsEnabled() {
		return nil // Logging disabled
	}

	indexName := "gopos-system-logs"

	logJSON, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("failed to marshal system log: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index: indexName,
		Body:  bytes.NewReader(logJSON),
	}
	res, err := req.Do(ctx, l.client.GetClient())
	if err != nil {
		return fmt.Errorf("failed to index system log: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("opensearch system log error: %s", res.String())
	}
	return nil
}
