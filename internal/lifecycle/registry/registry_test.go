package registry

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "custodian/pkg/domain"
	"custodian/pkg/platform/sentinel"
)

type stubModule struct {
	name string
}

func (m stubModule) Name() string { return m.name }
func (m stubModule) Export(ctx context.Context, userID id.UserID) (json.RawMessage, error) {
	return nil, nil
}
func (m stubModule) Erase(ctx context.Context, userID id.UserID) error      { return nil }
func (m stubModule) Restrict(ctx context.Context, userID id.UserID) error   { return nil }
func (m stubModule) Unrestrict(ctx context.Context, userID id.UserID) error { return nil }

func TestRegisterRejectsDuplicateName(t *testing.T) {
	r := New()

	require.NoError(t, r.Register(stubModule{name: "consent"}))
	err := r.Register(stubModule{name: "consent"})

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrAlreadyRegistered)
	assert.Equal(t, 1, r.Len())
}

func TestRegisterRejectsNilAndUnnamed(t *testing.T) {
	r := New()

	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(stubModule{name: ""}))
	assert.Equal(t, 0, r.Len())
}

func TestModulesPreserveRegistrationOrder(t *testing.T) {
	r := New()
	for _, name := range []string{"consent", "profile", "billing"} {
		require.NoError(t, r.Register(stubModule{name: name}))
	}

	modules := r.Modules()
	require.Len(t, modules, 3)
	assert.Equal(t, "consent", modules[0].Name())
	assert.Equal(t, "profile", modules[1].Name())
	assert.Equal(t, "billing", modules[2].Name())
}
