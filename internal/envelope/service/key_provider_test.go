package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets/localsecrets"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
	apperrors "github.com/allisson/sealbox/internal/errors"
)

const testMasterKeyHex = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

// MockKMSKeeper is a mock implementation of KMSKeeper for testing.
type MockKMSKeeper struct {
	mock.Mock
}

func (m *MockKMSKeeper) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	args := m.Called(ctx, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKMSKeeper) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKMSKeeper) Close() error {
	return m.Called().Error(0)
}

func TestStaticMasterKeyProvider(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		provider := NewStaticMasterKeyProvider(testMasterKeyHex)

		mk, err := provider.MasterKey()
		require.NoError(t, err)
		assert.Equal(t, envelopeDomain.MasterKeyVersion, mk.Version)
		assert.Equal(t, testMasterKeyHex, envelopeDomain.ToHex(mk.Key))
	})

	t.Run("uppercase and surrounding whitespace", func(t *testing.T) {
		provider := NewStaticMasterKeyProvider("  " + strings.ToUpper(testMasterKeyHex) + "\n")

		mk, err := provider.MasterKey()
		require.NoError(t, err)
		assert.Equal(t, testMasterKeyHex, envelopeDomain.ToHex(mk.Key))
	})

	t.Run("repeated calls return identical independent copies", func(t *testing.T) {
		provider := NewStaticMasterKeyProvider(testMasterKeyHex)

		first, err := provider.MasterKey()
		require.NoError(t, err)
		second, err := provider.MasterKey()
		require.NoError(t, err)
		assert.Equal(t, first.Key, second.Key)

		first.Zero()
		third, err := provider.MasterKey()
		require.NoError(t, err)
		assert.Equal(t, testMasterKeyHex, envelopeDomain.ToHex(third.Key))
	})

	tests := []struct {
		name    string
		hexKey  string
		wantErr error
	}{
		{name: "missing", hexKey: "", wantErr: envelopeDomain.ErrMasterKeyNotSet},
		{name: "blank", hexKey: "   ", wantErr: envelopeDomain.ErrMasterKeyNotSet},
		{name: "not hex", hexKey: strings.Repeat("zz", 32), wantErr: envelopeDomain.ErrMasterKeyEncoding},
		{name: "odd length", hexKey: testMasterKeyHex[:63], wantErr: envelopeDomain.ErrMasterKeyEncoding},
		{name: "too short", hexKey: testMasterKeyHex[:32], wantErr: envelopeDomain.ErrMasterKeyLength},
		{name: "too long", hexKey: testMasterKeyHex + "00", wantErr: envelopeDomain.ErrMasterKeyLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewStaticMasterKeyProvider(tt.hexKey)

			// the error is enforced on every call
			for i := 0; i < 2; i++ {
				mk, err := provider.MasterKey()
				assert.Nil(t, mk)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, apperrors.ErrConfiguration)
			}
		})
	}
}

func TestKMSMasterKeyProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("decrypts with localsecrets keeper", func(t *testing.T) {
		secretKey, err := localsecrets.NewRandomKey()
		require.NoError(t, err)
		keeper := localsecrets.NewKeeper(secretKey)
		defer func() {
			assert.NoError(t, keeper.Close())
		}()

		plainKey, err := envelopeDomain.FromHex(testMasterKeyHex)
		require.NoError(t, err)
		ciphertext, err := keeper.Encrypt(ctx, plainKey)
		require.NoError(t, err)

		provider := NewKMSMasterKeyProvider(ctx, keeper, envelopeDomain.ToHex(ciphertext))
		mk, err := provider.MasterKey()
		require.NoError(t, err)
		assert.Equal(t, plainKey, mk.Key)
		assert.Equal(t, envelopeDomain.MasterKeyVersion, mk.Version)
	})

	t.Run("missing ciphertext", func(t *testing.T) {
		keeper := &MockKMSKeeper{}
		provider := NewKMSMasterKeyProvider(ctx, keeper, "")

		_, err := provider.MasterKey()
		assert.ErrorIs(t, err, envelopeDomain.ErrMasterKeyNotSet)
		keeper.AssertNotCalled(t, "Decrypt", mock.Anything, mock.Anything)
	})

	t.Run("ciphertext not hex", func(t *testing.T) {
		keeper := &MockKMSKeeper{}
		provider := NewKMSMasterKeyProvider(ctx, keeper, "not-hex")

		_, err := provider.MasterKey()
		assert.ErrorIs(t, err, envelopeDomain.ErrMasterKeyEncoding)
	})

	t.Run("kms decrypt failure", func(t *testing.T) {
		keeper := &MockKMSKeeper{}
		keeper.On("Decrypt", ctx, []byte{0xca, 0xfe}).Return(nil, errors.New("access denied")).Once()

		provider := NewKMSMasterKeyProvider(ctx, keeper, "cafe")
		_, err := provider.MasterKey()
		assert.ErrorIs(t, err, envelopeDomain.ErrMasterKeyDecryption)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
		assert.Contains(t, err.Error(), "access denied")
		keeper.AssertExpectations(t)
	})

	t.Run("decrypted key has wrong length", func(t *testing.T) {
		keeper := &MockKMSKeeper{}
		keeper.On("Decrypt", ctx, []byte{0xca, 0xfe}).Return(make([]byte, 16), nil).Once()

		provider := NewKMSMasterKeyProvider(ctx, keeper, "cafe")
		_, err := provider.MasterKey()
		assert.ErrorIs(t, err, envelopeDomain.ErrMasterKeyLength)
		keeper.AssertExpectations(t)
	})
}

func TestParseMasterKey(t *testing.T) {
	key, err := ParseMasterKey(testMasterKeyHex)
	require.NoError(t, err)
	assert.Len(t, key, envelopeDomain.MasterKeySize)

	_, err = ParseMasterKey("abcd")
	assert.ErrorIs(t, err, envelopeDomain.ErrMasterKeyLength)
	assert.Contains(t, err.Error(), "got 2")
}
