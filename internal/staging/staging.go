package staging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hmatsuda/stagesync/internal/git"
	"github.com/hmatsuda/stagesync/internal/store"
)

// Logger defines an interface for logging best-effort operation failures.
type Logger interface {
	Warn(msg string, args ...any)
}

// nopLogger discards all log messages.
type nopLogger struct{}

func (nopLogger) Warn(string, ...any) {}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for best-effort operation warnings.
func WithLogger(l Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithCommonParams sets the common parameters for operations.
func WithCommonParams(cp CommonParams) Option {
	return func(s *Service) { s.cp = cp }
}

// WithOutput sets the writer for progress messages.
func WithOutput(w io.Writer) Option {
	return func(s *Service) { s.out = w }
}

// WithNow overrides the clock used when synthesizing temporary branch names.
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// CommonParams holds fields shared by Clone, SyncBack, and CollectState.
type CommonParams struct {
	WorkRoot         string
	StagingRoot      string
	Remote           string
	TempBranchPrefix string
}

// Service orchestrates staging-copy operations over a git client and the
// mapping store.
type Service struct {
	git    git.Client
	store  *store.Store
	cp     CommonParams
	logger Logger
	out    io.Writer
	now    func() time.Time
}

// NewService creates a Service with a discarding logger and output.
func NewService(g git.Client, st *store.Store, opts ...Option) *Service {
	s := &Service{
		git:    g,
		store:  st,
		logger: nopLogger{},
		out:    io.Discard,
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// printf writes a progress message for the user.
func (s *Service) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// bestEffort logs a warning if a best-effort operation fails.
// Does nothing if err is nil.
func (s *Service) bestEffort(op string, err error) {
	if err == nil {
		return
	}
	s.logger.Warn("best-effort operation failed", "op", op, "error", err)
}

// Status represents the health of a mapping record.
type Status int

const (
	// StatusOK indicates both the staging copy and the work repository exist.
	StatusOK Status = iota
	// StatusStagingMissing indicates the staging directory has been removed;
	// the record is orphaned until overwritten by a new clone.
	StatusStagingMissing
	// StatusWorkMissing indicates the work repository no longer exists.
	StatusWorkMissing
)

var statusStrings = [...]string{
	StatusOK:             "ok",
	StatusStagingMissing: "staging_missing",
	StatusWorkMissing:    "work_missing",
}

// String returns the string representation of the Status.
func (s Status) String() string {
	if int(s) < len(statusStrings) {
		return statusStrings[s]
	}
	return "unknown"
}

// MarshalJSON returns the JSON encoding of the Status.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON parses a JSON string into a Status.
func (s *Status) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	for i, v := range statusStrings {
		if v == str {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status: %s", str)
}

// IsHealthy reports whether both sides of the mapping still exist.
func (s Status) IsHealthy() bool {
	return s == StatusOK
}

// Label returns a human-readable label for unhealthy statuses.
// Returns an empty string for StatusOK or unknown status values.
func (s Status) Label() string {
	switch s {
	case StatusOK:
		return ""
	case StatusStagingMissing:
		return "staging directory missing"
	case StatusWorkMissing:
		return "work repository missing"
	default:
		return ""
	}
}

// State is a mapping record combined with its health for display.
type State struct {
	Name           string `json:"name"`
	WorkName       string `json:"work_name"`
	WorkPath       string `json:"work_path"`
	StagingPath    string `json:"staging_path"`
	BaseBranch     string `json:"base_branch"`
	Remote         string `json:"remote"`
	LastTempBranch string `json:"last_temp_branch,omitempty"`
	Status         Status `json:"status"`
}

// CloneResult holds the outcome of a Clone operation.
type CloneResult struct {
	StagingName string
	StagingPath string
	WorkPath    string
	BaseBranch  string
	TempBranch  string
	Remote      string
	Replaced    bool // true if an existing staging directory was removed first
}

// SyncResult holds the outcome of a SyncBack operation.
type SyncResult struct {
	StagingName  string
	WorkPath     string
	TargetBranch string
	TempBranch   string
	HardReset    bool
	// TempBranchDeleted reports whether the guaranteed cleanup of the
	// temporary remote branch succeeded.
	TempBranchDeleted bool
}
