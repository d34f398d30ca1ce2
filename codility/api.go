package codility

import (
	"context"
)

// API defines the full surface of the Codility client, one method per
// documented endpoint.
type API interface {
	// TestConnection verifies the client can reach the API with its credential
	TestConnection(ctx context.Context) error

	// Account endpoints
	GetUserDetails(ctx context.Context) (*User, error)
	GetAvailableCredits(ctx context.Context) (*Credits, error)
	ListUserLogins(ctx context.Context) ([]LoginEvent, error)

	// CodeLive endpoints
	ListCodeLiveTemplates(ctx context.Context) ([]CodeLiveTemplate, error)
	CreateCodeLiveSession(ctx context.Context, templateID string, candidateInfo map[string]any) (*CodeLiveSession, error)
	CreateWhiteboard(ctx context.Context, sessionID string) (*Whiteboard, error)

	// Email template endpoints
	ListEmailTemplates(ctx context.Context) ([]EmailTemplate, error)
	GetDefaultEmailTemplate(ctx context.Context) (*EmailTemplate, error)
	CreateEmailTemplate(ctx context.Context, name, subject, body string) (*EmailTemplate, error)

	// Session endpoints
	ListSessions(ctx context.Context) ([]Session, error)
	GetSessionData(ctx context.Context, sessionID string) (*Session, error)
	GetPDFReport(ctx context.Context, sessionID string) ([]byte, error)
	GetSimilarityResults(ctx context.Context, sessionID string) (*Similarity, error)
	EmailCandidates(ctx context.Context, sessionID, templateID string) (*EmailResult, error)
	CancelSession(ctx context.Context, sessionID string) error
	EmbedCandidateReport(ctx context.Context, sessionID string) (*EmbedConfig, error)

	// Test endpoints
	ListTests(ctx context.Context) ([]Test, error)
	GetTestDetails(ctx context.Context, testID string) (*Test, error)
	ListTestSessions(ctx context.Context, testID string) ([]Session, error)
	AddCandidates(ctx context.Context, testID string, candidates []Candidate) (*InvitationResult, error)
}

var _ API = (*Client)(nil)
