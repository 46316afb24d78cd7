package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApprovalStatusValid(t *testing.T) {
	valid := []ApprovalStatus{
		ApprovalStatusPending,
		ApprovalStatusApproved,
		ApprovalStatusRejected,
		ApprovalStatusFlagged,
	}
	for _, s := range valid {
		assert.True(t, s.Valid(), "expected %s to be valid", s)
	}

	assert.False(t, ApprovalStatus("").Valid())
	assert.False(t, ApprovalStatus("approved").Valid(), "status values are upper-case")
	assert.False(t, ApprovalStatus("DELETED").Valid())
}
