package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserTopic(t *testing.T) {
	assert.Equal(t, "user-E-42", UserTopic("E-42"))
	assert.Equal(t, "user-asha_corp.example", UserTopic("asha@corp.example"))
	assert.Equal(t, "user-a_b", UserTopic("a b"))
}
