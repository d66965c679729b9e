//go:build !integration

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Persistence is covered in user_repository_integration_test.go. The
// assertion here keeps the repository honest against the contract the
// auth services are wired to.
func TestUserRepository_ImplementsInterface(t *testing.T) {
	var iface UserRepositoryInterface = &UserRepository{}
	require.NotNil(t, iface)
	assert.IsType(t, &UserRepository{}, iface)
}
