package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayDataHirePayload(t *testing.T) {
	data, err := EncodePayload(HirePayload{JobTitle: "Backend Engineer", Message: "We liked your work"})
	require.NoError(t, err)

	n := Notification{Type: NotificationTypeHire, Data: data}
	assert.Equal(t, "Job Title: Backend Engineer\nMessage: We liked your work", n.DisplayData())
}

func TestDisplayDataHirePayloadWithoutMessage(t *testing.T) {
	n := Notification{Type: NotificationTypeHire, Data: `{"job_title":"Intern"}`}
	assert.Equal(t, "Job Title: Intern", n.DisplayData())
}

func TestDisplayDataPassesThroughFreeText(t *testing.T) {
	// Rows written before payloads became structured hold plain text.
	n := Notification{Type: NotificationTypeHire, Data: "We want to hire you!"}
	assert.Equal(t, "We want to hire you!", n.DisplayData())
}

func TestParsedData(t *testing.T) {
	n := Notification{Data: `{"job_title":"Intern","message":"Summer role"}`}
	parsed, ok := n.ParsedData()
	require.True(t, ok)
	fields, ok := parsed.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Intern", fields["job_title"])

	empty := Notification{}
	parsed, ok = empty.ParsedData()
	assert.False(t, ok)
	assert.Nil(t, parsed)

	raw := Notification{Data: "not json"}
	parsed, ok = raw.ParsedData()
	assert.False(t, ok)
	assert.Equal(t, "not json", parsed)
}
