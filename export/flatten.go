package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/s0up4200/codexport/codility"
)

// Record is one flattened CSV row keyed by column name.
type Record map[string]string

// Flatten merges session data and similarity results into a single flat
// record. Session fields are prefixed with "session_", similarity fields
// with "similarity_", and the candidate identity is lifted into dedicated
// first_name/last_name/email columns. Nested structures stay JSON-encoded.
func Flatten(session *codility.Session, similarity *codility.Similarity) (Record, error) {
	record := Record{}

	sessionFields, err := toMap(session)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten session: %w", err)
	}
	delete(sessionFields, "candidate")
	for key, value := range sessionFields {
		rendered, err := renderValue(value)
		if err != nil {
			return nil, err
		}
		record["session_"+key] = rendered
	}

	similarityFields, err := toMap(similarity)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten similarity results: %w", err)
	}
	for key, value := range similarityFields {
		rendered, err := renderValue(value)
		if err != nil {
			return nil, err
		}
		record["similarity_"+key] = rendered
	}

	record["first_name"] = ""
	record["last_name"] = ""
	record["email"] = ""
	if session.Candidate != nil {
		record["first_name"] = session.Candidate.FirstName
		record["last_name"] = session.Candidate.LastName
		record["email"] = session.Candidate.Email
	}

	return record, nil
}

// toMap round-trips a typed value through JSON into a generic map so every
// field can become a column
func toMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// renderValue stringifies a decoded JSON value. Objects and arrays are kept
// as JSON text.
func renderValue(v any) (string, error) {
	switch value := v.(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	case bool:
		return strconv.FormatBool(value), nil
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), nil
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("failed to encode nested value: %w", err)
		}
		return string(data), nil
	}
}

// Columns returns the sorted union of column names across all records
func Columns(records []Record) []string {
	seen := map[string]struct{}{}
	for _, record := range records {
		for key := range record {
			seen[key] = struct{}{}
		}
	}

	columns := make([]string, 0, len(seen))
	for key := range seen {
		columns = append(columns, key)
	}
	sort.Strings(columns)
	return columns
}
