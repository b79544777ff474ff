// Package notification delivers budget alert emails through the Resend
// HTTP API. Delivery is best effort: a failed send is logged, never
// propagated, so an expense write cannot fail on a mail outage.
package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultAPIURL = "https://api.resend.com/emails"

type Mailer struct {
	apiKey     string
	apiURL     string
	from       string
	appURL     string
	enabled    bool
	httpClient *http.Client
}

func NewMailer() *Mailer {
	apiKey := os.Getenv("RESEND_API_KEY")
	apiURL := os.Getenv("RESEND_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	from := os.Getenv("ALERT_FROM_EMAIL")
	if from == "" {
		from = "alerts@openhorizon.app"
	}
	return &Mailer{
		apiKey:  apiKey,
		apiURL:  apiURL,
		from:    from,
		appURL:  os.Getenv("APP_URL"),
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// BudgetAlertParams describes one budget alert notification.
type BudgetAlertParams struct {
	ProjectName     string
	ProjectID       uint
	BudgetTotal     float64
	BudgetSpent     float64
	BudgetRemaining float64
	Percentage      float64
	Threshold       float64
	Recipients      []string
}

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendBudgetAlert emails every configured recipient.
func (m *Mailer) SendBudgetAlert(params BudgetAlertParams) {
	if len(params.Recipients) == 0 {
		return
	}
	if !m.enabled {
		log.Printf("email disabled, skipping budget alert for project %d (%.0f%% spent)", params.ProjectID, params.Percentage)
		return
	}

	subject := fmt.Sprintf("Budget Alert: %s (%.0f%% spent)", params.ProjectName, params.Percentage)

	statusText := "Budget Threshold Reached"
	if params.Percentage >= 100 {
		statusText = "Budget Exceeded"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Budget Alert: %s</h2>", params.ProjectName)
	fmt.Fprintf(&b, "<p><strong>%s</strong>: your project has reached %.0f%% of the allocated budget (%.0f%% threshold).</p>",
		statusText, params.Percentage, params.Threshold)
	fmt.Fprintf(&b, "<ul>")
	fmt.Fprintf(&b, "<li>Total budget: &euro;%.2f</li>", params.BudgetTotal)
	fmt.Fprintf(&b, "<li>Spent: &euro;%.2f</li>", params.BudgetSpent)
	fmt.Fprintf(&b, "<li>Remaining: &euro;%.2f</li>", params.BudgetRemaining)
	fmt.Fprintf(&b, "</ul>")
	if m.appURL != "" {
		fmt.Fprintf(&b, `<p><a href="%s/pipeline/projects/%d">View project budget</a></p>`, m.appURL, params.ProjectID)
	}

	payload := emailPayload{
		From:    m.from,
		To:      params.Recipients,
		Subject: subject,
		HTML:    b.String(),
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequest(http.MethodPost, m.apiURL, bytes.NewBuffer(body))
	if err != nil {
		log.Printf("failed to build alert email request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		log.Printf("failed to send budget alert email: %v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		log.Printf("budget alert email rejected with status %d", resp.StatusCode)
	}
}
