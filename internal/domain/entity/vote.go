package entity

import (
	"bytes"
	"encoding/json"
)

// Keys accepted in a vote patch body. The camelCase form is an alias kept
// for clients of the earlier API.
const (
	VoteKey      = "inc_votes"
	VoteKeyAlias = "incVotes"
)

// VotePatch is a validated request to add Delta to an entity's votes.
// Delta may be negative or zero.
type VotePatch struct {
	Delta int64
}

// ParseVotePatch validates a decoded JSON object as a vote patch.
// It returns ErrUnrecognizedKey unless the object carries exactly one of
// VoteKey or VoteKeyAlias and nothing else, and ErrInvalidInput unless the
// value is a JSON integer.
func ParseVotePatch(fields map[string]json.RawMessage) (VotePatch, error) {
	if len(fields) != 1 {
		return VotePatch{}, ErrUnrecognizedKey
	}

	raw, ok := fields[VoteKey]
	if !ok {
		raw, ok = fields[VoteKeyAlias]
	}
	if !ok {
		return VotePatch{}, ErrUnrecognizedKey
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return VotePatch{}, &ValidationError{Field: VoteKey, Message: "must be an integer", Err: ErrInvalidInput}
	}
	n, ok := v.(json.Number)
	if !ok {
		return VotePatch{}, &ValidationError{Field: VoteKey, Message: "must be an integer", Err: ErrInvalidInput}
	}
	delta, err := n.Int64()
	if err != nil {
		return VotePatch{}, &ValidationError{Field: VoteKey, Message: "must be an integer", Err: ErrInvalidInput}
	}
	return VotePatch{Delta: delta}, nil
}
