package syncclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
)

// Client pushes validation batches to the upstream reconciliation endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type syncRecord struct {
	ID             string    `json:"id"`
	RegistrationID string    `json:"registration_id"`
	MealSessionID  string    `json:"meal_session_id"`
	ValidatedAt    time.Time `json:"validated_at"`
	ValidatedBy    string    `json:"validated_by"`
}

type syncResponse struct {
	Acknowledged []string `json:"acknowledged"`
}

// Push sends a batch upstream and returns the ids the server acknowledged.
func (c *Client) Push(records []*domain.MealValidation) ([]string, error) {
	batch := make([]syncRecord, 0, len(records))
	for _, r := range records {
		batch = append(batch, syncRecord{
			ID:             r.ID,
			RegistrationID: r.RegistrationID,
			MealSessionID:  r.MealSessionID,
			ValidatedAt:    r.ValidatedAt,
			ValidatedBy:    r.ValidatedBy,
		})
	}

	body, err := json.Marshal(struct {
		Records []syncRecord `json:"records"`
	}{Records: batch})
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Post(
		fmt.Sprintf("%s/api/validations/reconcile", c.baseURL),
		"application/json",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reconcile endpoint returned status %d", resp.StatusCode)
	}

	var parsed syncResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	return parsed.Acknowledged, nil
}
