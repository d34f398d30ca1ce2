package codility

import "time"

// User represents the account profile
type User struct {
	ID        int64  `json:"id,omitempty"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Company   string `json:"company,omitempty"`
}

// Credits holds the account credit balance
type Credits struct {
	Available int `json:"available"`
	Used      int `json:"used,omitempty"`
}

// LoginEvent represents one account login record
type LoginEvent struct {
	Date      time.Time `json:"date"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
}

type loginsResponse struct {
	Logins []LoginEvent `json:"logins"`
}

// CodeLiveTemplate represents a CodeLive interview template
type CodeLiveTemplate struct {
	ID        string     `json:"id"`
	Name      string     `json:"name,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type codeLiveTemplatesResponse struct {
	Templates []CodeLiveTemplate `json:"templates"`
}

// CodeLiveSession represents a live interview session
type CodeLiveSession struct {
	ID         string     `json:"id"`
	TemplateID string     `json:"template_id,omitempty"`
	URL        string     `json:"url,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

// Whiteboard represents a whiteboard attached to a CodeLive session
type Whiteboard struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id,omitempty"`
	URL       string `json:"url,omitempty"`
}

// EmailTemplate represents a saved candidate email template
type EmailTemplate struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Default bool   `json:"default,omitempty"`
}

type emailTemplatesResponse struct {
	Templates []EmailTemplate `json:"templates"`
}

type createEmailTemplateRequest struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SessionCandidate carries the candidate identity attached to a session
type SessionCandidate struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Session represents a candidate test session
type Session struct {
	ID        string            `json:"id"`
	TestID    string            `json:"test_id,omitempty"`
	Status    string            `json:"status,omitempty"`
	StartTime *time.Time        `json:"start_time,omitempty"`
	EndTime   *time.Time        `json:"end_time,omitempty"`
	Result    *int              `json:"result,omitempty"`
	MaxResult int               `json:"max_result,omitempty"`
	ResultURL string            `json:"result_url,omitempty"`
	Candidate *SessionCandidate `json:"candidate,omitempty"`
}

// Completed reports whether the session has finished
func (s *Session) Completed() bool {
	return s.EndTime != nil && !s.EndTime.IsZero()
}

// Score returns the achieved result, or zero when the session has none yet
func (s *Session) Score() int {
	if s.Result == nil {
		return 0
	}
	return *s.Result
}

type sessionsResponse struct {
	Sessions []Session `json:"sessions"`
}

// SimilarityMatch represents one suspected overlap with another session
type SimilarityMatch struct {
	SessionID string  `json:"session_id"`
	Task      string  `json:"task,omitempty"`
	Score     float64 `json:"score,omitempty"`
}

// Similarity holds the similarity-check outcome for a session
type Similarity struct {
	SessionID string            `json:"session_id,omitempty"`
	Status    string            `json:"status,omitempty"`
	Detected  bool              `json:"detected,omitempty"`
	Matches   []SimilarityMatch `json:"matches,omitempty"`
}

// EmailResult confirms an email delivery request
type EmailResult struct {
	Status     string `json:"status"`
	TemplateID string `json:"template_id,omitempty"`
}

// EmbedConfig holds the embeddable candidate report configuration
type EmbedConfig struct {
	URL       string     `json:"url"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Test represents a Codility test definition
type Test struct {
	ID        string     `json:"id"`
	Title     string     `json:"title,omitempty"`
	Name      string     `json:"name,omitempty"`
	Status    string     `json:"status,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// DisplayName returns the best available name for the test
func (t *Test) DisplayName() string {
	if t.Title != "" {
		return t.Title
	}
	if t.Name != "" {
		return t.Name
	}
	return "<unnamed>"
}

type testsResponse struct {
	Tests []Test `json:"tests"`
}

// Candidate describes one candidate to invite to a test
type Candidate struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// InvitationResult confirms candidate invitations
type InvitationResult struct {
	Status  string `json:"status,omitempty"`
	Invited int    `json:"invited,omitempty"`
}
