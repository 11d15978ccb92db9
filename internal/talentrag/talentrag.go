package talentrag

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultAPIURL = "http://localhost:8000/api"
	userAgent     = "talentrag/talentrag-cli"
)

// MatchAnalysis is the scoring result produced by the backend for one
// resume / job-description pair. It is created once per session and never
// modified by the client afterwards.
type MatchAnalysis struct {
	MatchScore int      `json:"match_score" mapstructure:"match_score"`
	Strengths  []string `json:"strengths"`
	Gaps       []string `json:"gaps"`
	Insights   string   `json:"insights,omitempty"`
}

// Source is a citation pointing at a retrieved document fragment. The
// payload is forwarded from the backend as-is.
type Source struct {
	ChunkIndex int     `json:"chunk_index" mapstructure:"chunk_index"`
	Score      float64 `json:"score"`
	Preview    string  `json:"preview"`
}

// UploadResult binds the server-issued session identifier to its analysis.
type UploadResult struct {
	Session  string        `json:"session"`
	Analysis MatchAnalysis `json:"analysis"`
}

// ChatRecord is one transcript entry as the backend stores it. Question is
// set for "user" records, Answer and Sources for "assistant" ones.
type ChatRecord struct {
	Role     string   `json:"role"`
	Question string   `json:"question,omitempty"`
	Answer   string   `json:"answer,omitempty"`
	Sources  []Source `json:"sources,omitempty"`
}

// AskResponse is the backend answer to a single question.
type AskResponse struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources,omitempty"`
}

type Client struct {
	// ctx used for http requests without their own deadline
	ctx        context.Context
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

// New creates a client for the TalentRAG backend. An empty token means
// anonymous requests: no Authorization header is attached. The client-level
// timeout stays above the upload deadline so per-call contexts, not the
// transport, bound long-running requests.
func New(ctx context.Context, logger *zap.Logger, apiURL, token string) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return &Client{
		ctx:    ctx,
		token:  token,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}
