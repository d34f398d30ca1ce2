// Package filter provides expression-based filtering of candidate sessions
// using the expr language.
//
// Expressions are evaluated against one session at a time and must return a
// boolean. Session fields are exposed under their API names, for example:
//
//	completed and result >= 50
//	contains(email, "@example.com") and daysSince(end_time) < 30
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/codexport/codility"
)

// Filter represents a compiled session filter expression
type Filter struct {
	program *vm.Program
	expr    string
}

// Compile compiles a filter expression
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(sessionEnv(codility.Session{})),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		program: program,
		expr:    expression,
	}, nil
}

// Evaluate runs the filter against one session
func (f *Filter) Evaluate(session codility.Session) (bool, error) {
	output, err := expr.Run(f.program, sessionEnv(session))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q did not evaluate to a boolean", f.expr)
	}
	return result, nil
}

// String returns the original expression
func (f *Filter) String() string {
	return f.expr
}

// sessionEnv builds the evaluation environment for a session. Field names
// follow the API's JSON naming; times are flattened to zero values when the
// session has none.
func sessionEnv(session codility.Session) map[string]any {
	var startTime, endTime time.Time
	if session.StartTime != nil {
		startTime = *session.StartTime
	}
	if session.EndTime != nil {
		endTime = *session.EndTime
	}

	var firstName, lastName, email string
	if session.Candidate != nil {
		firstName = session.Candidate.FirstName
		lastName = session.Candidate.LastName
		email = session.Candidate.Email
	}

	return map[string]any{
		// Session data
		"id":         session.ID,
		"test_id":    session.TestID,
		"status":     session.Status,
		"start_time": startTime,
		"end_time":   endTime,
		"result":     session.Score(),
		"max_result": session.MaxResult,
		"completed":  session.Completed(),

		// Candidate data
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,

		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"now": time.Now,

		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
