package failure

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/goodnatureofminers/kingofthehill-client/internal/model"
)

const (
	// DefaultMaxMessageLen bounds generic messages shown to the user.
	DefaultMaxMessageLen = 100

	unknownErrorMessage = "An unknown error occurred."
)

// Rule matches an error signature to a category. Substrings are compared
// case-insensitively against the full error text.
type Rule struct {
	Category   model.ErrorCategory
	Message    string
	Codes      []int
	HTTPStatus []int
	Substrings []string
	Sentinels  []error
}

// DefaultRules returns the signature table in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category:   model.CategoryNetworkBusy,
			Message:    "Network is busy. Please wait a moment, retrying automatically.",
			Codes:      []int{-32005, 429},
			HTTPStatus: []int{http.StatusTooManyRequests},
			Substrings: []string{"too many requests", "rate limit", "request limit exceeded"},
		},
		{
			Category:   model.CategoryConnection,
			Message:    "Connection issue. Please try again.",
			Substrings: []string{"missing response", "connection reset by peer", "unexpected eof"},
		},
		{
			Category:   model.CategoryWrongNetwork,
			Message:    "Wrong network. Please switch your wallet to the configured network.",
			Substrings: []string{"network changed", "invalid chain id", "chain id mismatch"},
		},
		{
			Category:   model.CategoryRejected,
			Message:    "Transaction rejected by user.",
			Codes:      []int{4001},
			Substrings: []string{"user rejected", "user denied"},
		},
		{
			Category:   model.CategoryInsufficientFunds,
			Message:    "Insufficient funds to complete the transaction.",
			Substrings: []string{"insufficient funds"},
		},
	}
}

// Classifier maps errors to ErrorState values. It is pure and safe for concurrent use.
type Classifier struct {
	rules         []Rule
	maxMessageLen int
}

// NewClassifier builds a Classifier. Rules are evaluated in order; the first match wins.
func NewClassifier(rules []Rule, maxMessageLen int) *Classifier {
	if maxMessageLen <= 0 {
		maxMessageLen = DefaultMaxMessageLen
	}
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		subs := make([]string, len(r.Substrings))
		for j, s := range r.Substrings {
			subs[j] = strings.ToLower(s)
		}
		r.Substrings = subs
		normalized[i] = r
	}
	return &Classifier{rules: normalized, maxMessageLen: maxMessageLen}
}

// NewDefaultClassifier uses DefaultRules and DefaultMaxMessageLen.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultRules(), DefaultMaxMessageLen)
}

// Classify returns the state for err. A nil error yields the zero state.
func (c *Classifier) Classify(err error) model.ErrorState {
	if err == nil {
		return model.ErrorState{}
	}

	var fe *Error
	if errors.As(err, &fe) {
		return fe.State()
	}

	text := strings.ToLower(err.Error())
	code, hasCode := errorCode(err)
	status, hasStatus := httpStatus(err)
	for _, r := range c.rules {
		if r.matches(err, text, code, hasCode, status, hasStatus) {
			return model.ErrorState{Category: r.Category, Message: r.Message}
		}
	}

	return model.ErrorState{Category: model.CategoryGeneric, Message: c.truncate(err.Error())}
}

func (c *Classifier) truncate(msg string) string {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return unknownErrorMessage
	}
	if utf8.RuneCountInString(msg) <= c.maxMessageLen {
		return msg
	}
	runes := []rune(msg)
	return string(runes[:c.maxMessageLen]) + "..."
}

func (r Rule) matches(err error, text string, code int, hasCode bool, status int, hasStatus bool) bool {
	for _, s := range r.Sentinels {
		if errors.Is(err, s) {
			return true
		}
	}
	if hasCode {
		for _, c := range r.Codes {
			if c == code {
				return true
			}
		}
	}
	if hasStatus {
		for _, s := range r.HTTPStatus {
			if s == status {
				return true
			}
		}
	}
	for _, s := range r.Substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

func errorCode(err error) (int, bool) {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.ErrorCode(), true
	}
	return 0, false
}

func httpStatus(err error) (int, bool) {
	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}
	return 0, false
}
