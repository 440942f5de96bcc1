package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAvailable(t *testing.T) {
	truthy := []any{"Yes", "yes ", "Y", true, "available", " TRUE "}
	for _, v := range truthy {
		assert.True(t, IsAvailable(v), "%#v", v)
	}

	falsy := []any{"", "no", false, nil, 0, 1, "unavailable", "n"}
	for _, v := range falsy {
		assert.False(t, IsAvailable(v), "%#v", v)
	}
}

func TestIsAvailable_BoolPointer(t *testing.T) {
	yes := true
	no := false

	assert.True(t, IsAvailable(&yes))
	assert.False(t, IsAvailable(&no))
	assert.False(t, IsAvailable((*bool)(nil)))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "Lunch", NormalizeCategory("lunch"))
	assert.Equal(t, "Dinner", NormalizeCategory(" Dinner "))
	assert.Equal(t, CategoryOther, NormalizeCategory(""))
	assert.Equal(t, CategoryOther, NormalizeCategory("Desserts"))
}

func TestResolveUserKey(t *testing.T) {
	principal := Principal{ID: "uid-1", Email: "asha@corp.example"}

	assert.Equal(t, "E-42", ResolveUserKey(&UserProfile{EmployeeID: "E-42"}, principal))
	assert.Equal(t, "asha@corp.example", ResolveUserKey(&UserProfile{}, principal))
	assert.Equal(t, "asha@corp.example", ResolveUserKey(nil, principal))
	assert.Equal(t, "uid-1", ResolveUserKey(nil, Principal{ID: "uid-1"}))
}

func TestNewActor_DefaultsToEmployee(t *testing.T) {
	principal := Principal{ID: "uid-1"}

	assert.Equal(t, RoleEmployee, NewActor(principal, nil).Role)
	assert.Equal(t, RoleEmployee, NewActor(principal, &UserProfile{}).Role)
	assert.Equal(t, RoleVendor, NewActor(principal, &UserProfile{Role: "Vendor"}).Role)
}
