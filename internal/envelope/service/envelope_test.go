package service

import (
	"encoding/json"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
	apperrors "github.com/allisson/sealbox/internal/errors"
)

const otherMasterKeyHex = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func newTestEnvelope(t *testing.T, masterKeyHex string, alg envelopeDomain.Algorithm) *Envelope {
	t.Helper()
	return NewEnvelope(NewStaticMasterKeyProvider(masterKeyHex), NewAEADManager(), NewCryptoRandom(), alg)
}

func mustEncrypt(t *testing.T, e *Envelope, partyID string, payload any) *envelopeDomain.SecureRecord {
	t.Helper()
	record, err := e.Encrypt(partyID, payload)
	require.NoError(t, err)
	require.NotNil(t, record)
	return record
}

// flipByte returns hexValue with the byte at index i XORed with 0x01.
func flipByte(t *testing.T, hexValue string, i int) string {
	t.Helper()
	b, err := envelopeDomain.FromHex(hexValue)
	require.NoError(t, err)
	b[i] ^= 0x01
	return envelopeDomain.ToHex(b)
}

// sealForeignRecord builds a cryptographically valid record around an arbitrary
// plaintext and DEK, as a foreign producer could.
func sealForeignRecord(t *testing.T, masterKeyHex string, dek, plaintext []byte) *envelopeDomain.SecureRecord {
	t.Helper()
	manager := NewAEADManager()

	masterKey, err := ParseMasterKey(masterKeyHex)
	require.NoError(t, err)

	payloadNonce := randomBytes(t, envelopeDomain.NonceSize)
	payloadKey := dek
	if len(payloadKey) != envelopeDomain.DEKSize {
		payloadKey = randomBytes(t, envelopeDomain.DEKSize)
	}
	payloadCipher, err := manager.CreateCipher(payloadKey, envelopeDomain.AESGCM)
	require.NoError(t, err)
	payloadCt, payloadTag, err := payloadCipher.Seal(payloadNonce, plaintext)
	require.NoError(t, err)

	wrapNonce := randomBytes(t, envelopeDomain.NonceSize)
	wrapCipher, err := manager.CreateCipher(masterKey, envelopeDomain.AESGCM)
	require.NoError(t, err)
	wrappedDek, wrapTag, err := wrapCipher.Seal(wrapNonce, dek)
	require.NoError(t, err)

	return &envelopeDomain.SecureRecord{
		ID:                uuid.Must(uuid.NewV7()).String(),
		PartyID:           "foreign",
		CreatedAt:         time.Now().UTC(),
		PayloadNonce:      envelopeDomain.ToHex(payloadNonce),
		PayloadCiphertext: envelopeDomain.ToHex(payloadCt),
		PayloadTag:        envelopeDomain.ToHex(payloadTag),
		DekWrapNonce:      envelopeDomain.ToHex(wrapNonce),
		WrappedDek:        envelopeDomain.ToHex(wrappedDek),
		DekWrapTag:        envelopeDomain.ToHex(wrapTag),
		Algorithm:         envelopeDomain.AESGCM,
		MasterKeyVersion:  1,
	}
}

func TestEnvelope_EncryptDecrypt_Scenario(t *testing.T) {
	e := newTestEnvelope(t, testMasterKeyHex, envelopeDomain.AESGCM)

	record := mustEncrypt(t, e, "party_1", map[string]int{"amount": 100})

	assert.Equal(t, "party_1", record.PartyID)
	assert.Len(t, record.PayloadNonce, 24)
	assert.Len(t, record.PayloadTag, 32)

	payload, err := e.Decrypt(record)
	require.NoError(t, err)
	assert.Equal(t, `{"amount":100}`, string(payload))
}

func TestEnvelope_RoundTrip(t *testing.T) {
	payloads := []struct {
		name     string
		payload  any
		expected string
	}{
		{name: "object", payload: map[string]any{"amount": 100, "currency": "EUR"}, expected: `{"amount":100,"currency":"EUR"}`},
		{name: "raw json keeps key order", payload: json.RawMessage(`{"z":1,"a":{"y":[1,2,3]},"m":null}`), expected: `{"z":1,"a":{"y":[1,2,3]},"m":null}`},
		{name: "string", payload: "hello", expected: `"hello"`},
		{name: "number", payload: 42.5, expected: `42.5`},
		{name: "boolean", payload: false, expected: `false`},
		{name: "null", payload: nil, expected: `null`},
		{name: "array", payload: []int{1, 2, 3}, expected: `[1,2,3]`},
		{name: "unicode", payload: map[string]string{"name": "José ✓"}, expected: `{"name":"José ✓"}`},
		{name: "empty object", payload: struct{}{}, expected: `{}`},
		{name: "large", payload: strings.Repeat("x", 64*1024), expected: `"` + strings.Repeat("x", 64*1024) + `"`},
	}

	for _, alg := range []envelopeDomain.Algorithm{envelopeDomain.AESGCM, envelopeDomain.ChaCha20} {
		e := newTestEnvelope(t, testMasterKeyHex, alg)

		for _, tt := range payloads {
			t.Run(string(alg)+"/"+tt.name, func(t *testing.T) {
				record := mustEncrypt(t, e, "party", tt.payload)
				assert.Equal(t, alg, record.Algorithm)

				payload, err := e.Decrypt(record)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, string(payload))
				assert.Len(t, record.PayloadCiphertext, 2*len(tt.expected))
			})
		}
	}
}

func TestEnvelope_RecordShape(t *testing.T) {
	e := newTestEnvelope(t, testMasterKeyHex, envelopeDomain.AESGCM)
	before := time.Now().UTC()
	record := mustEncrypt(t, e, "party_1", map[string]int{"amount": 100})

	id, err := uuid.Parse(record.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	assert.Equal(t, time.UTC, record.CreatedAt.Location())
	assert.False(t, record.CreatedAt.Before(before.Add(-time.Second)))

	assert.Len(t, record.PayloadNonce, 2*envelopeDomain.NonceSize)
	assert.Len(t, record.PayloadTag, 2*envelopeDomain.TagSize)
	assert.Len(t, record.DekWrapNonce, 2*envelopeDomain.NonceSize)
	assert.Len(t, record.WrappedDek, 2*envelopeDomain.DEKSize)
	assert.Len(t, record.DekWrapTag, 2*envelopeDomain.TagSize)
	assert.Equal(t, envelopeDomain.AESGCM, record.Algorithm)
	assert.Equal(t, uint(1), record.MasterKeyVersion)

	for _, field := range []string{
		record.PayloadNonce,
		record.PayloadCiphertext,
		record.PayloadTag,
		record.DekWrapNonce,
		record.WrappedDek,
		record.DekWrapTag,
	} {
		assert.Equal(t, strings.ToLower(field), field, "hex fields must be lowercase")
	}

	encoded, err := json.Marshal(record)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(encoded, &wire))

	keys := make([]string, 0, len(wire))
	for k := range wire {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{
		"id", "partyId", "createdAt",
		"payload_nonce", "payload_ct", "payload_tag",
		"dek_wrap_nonce", "dek_wrapped", "dek_wrap_tag",
		"alg", "mk_version",
	}, keys)
	assert.Equal(t, "AES-256-GCM", wire["alg"])
	assert.Equal(t, float64(1), wire["mk_version"])

	_, err = time.Parse(time.RFC3339Nano, wire["createdAt"].(string))
	assert.NoError(t, err)
}

func TestEnvelope_Uniqueness(t *testing.T) {
	e := newTestEnvelope(t, testMasterKeyHex, envelopeDomain.AESGCM)

	r1 := mustEncrypt(t, e, "p", map[string]int{"a": 1})
	r2 := mustEncrypt(t, e, "p", map[string]int{"a": 1})

	assert.NotEqual(t, r1.ID, r2.ID)
	assert.NotEqual(t, r1.PayloadNonce, r2.PayloadNonce)
	assert.NotEqual(t, r1.DekWrapNonce, r2.DekWrapNonce)
	assert.NotEqual(t, r1.PayloadNonce, r1.DekWrapNonce)
	assert.NotEqual(t, r1.WrappedDek, r2.WrappedDek)
	assert.NotEqual(t, r1.PayloadCiphertext, r2.PayloadCiphertext)
}

func TestEnvelope_DeterministicRandomSource(t *testing.T) {
	e := NewEnvelope(
		NewStaticMasterKeyProvider(testMasterKeyHex),
		NewAEADManager(),
		&sequenceRandom{},
		envelopeDomain.AESGCM,
	)

	record := mustEncrypt(t, e, "p", map[string]int{"a": 1})

	// DEK consumes bytes 0..31, then the payload nonce and the wrap nonce
	assert.Equal(t, "202122232425262728292a2b", record.PayloadNonce)
	assert.Equal(t, "2c2d2e2f3031323334353637", record.DekWrapNonce)

	payload, err := e.Decrypt(record)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(payload))
}

func TestEnvelope_TamperDetection(t *testing.T) {
	e := newTestEnvelope(t, testMasterKeyHex, envelopeDomain.AESGCM)
	record := mustEncrypt(t, e, "party_1", map[string]any{"amount": 100, "memo": "rent"})

	fields := []struct {
		name     string
		get      func(r *envelopeDomain.SecureRecord) *string
		layerErr error
	}{
		{"payload_ct", func(r *envelopeDomain.SecureRecord) *string { return &r.PayloadCiphertext }, envelopeDomain.ErrPayloadDecryptionFailed},
		{"payload_tag", func(r *envelopeDomain.SecureRecord) *string { return &r.PayloadTag }, envelopeDomain.ErrPayloadDecryptionFailed},
		{"payload_nonce", func(r *envelopeDomain.SecureRecord) *string { return &r.PayloadNonce }, envelopeDomain.ErrPayloadDecryptionFailed},
		{"dek_wrapped", func(r *envelopeDomain.SecureRecord) *string { return &r.WrappedDek }, envelopeDomain.ErrDekUnwrapFailed},
		{"dek_wrap_tag", func(r *envelopeDomain.SecureRecord) *string { return &r.DekWrapTag }, envelopeDomain.ErrDekUnwrapFailed},
		{"dek_wrap_nonce", func(r *envelopeDomain.SecureRecord) *string { return &r.DekWrapNonce }, envelopeDomain.ErrDekUnwrapFailed},
	}

	for _, f := range fields {
		t.Run(f.name, func(t *testing.T) {
			original := *f.get(record)
			for i := 0; i < len(original)/2; i++ {
				tampered := *record
				*f.get(&tampered) = flipByte(t, original, i)

				payload, err := e.Decrypt(&tampered)
				require.ErrorIs(t, err, envelopeDomain.ErrAuthentication, "byte %d", i)
				require.ErrorIs(t, err, f.layerErr, "byte %d", i)
				require.Nil(t, payload)
			}
		})
	}

	t.Run("original still decrypts", func(t *testing.T) {
		payload, err := e.Decrypt(record)
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":100,"memo":"rent"}`, string(payload))
	})

	t.Run("metadata is not authenticated", func(t *testing.T) {
		tampered := *record
		tampered.PartyID = "someone-else"
		tampered.ID = uuid.NewString()

		_, err := e.Decrypt(&tampered)
		assert.NoError(t, err)
	})
}

func TestEnvelope_TamperDetection_ChaCha20(t *testing.T) {
	e := newTestEnvelope(t, testMasterKeyHex, envelopeDomain.ChaCha20)
	record := mustEncrypt(t, e, "p", map[string]int{"a": 1})

	tampered := *record
	tampered.PayloadCiphertext = flipByte(t, record.PayloadCiphertext, 0)
	_, err := e.Decrypt(&tampered)
	assert.ErrorIs(t, err, envelopeDomain.ErrPayloadDecryptionFailed)

	tampered = *record
	tampered.WrappedDek = flipByte(t, record.WrappedDek, 31)
	_, err = e.Decrypt(&tampered)
	assert.ErrorIs(t, err, envelopeDomain.ErrDekUnwrapFailed)
}

func TestEnvelope_MalformedInput(t *testing.T) {
	e := newTestEnvelope(t, testMasterKeyHex, envelopeDomain.AESGCM)
	record := mustEncrypt(t, e, "p", map[string]int{"a": 1})

	t.Run("non hex characters", func(t *testing.T) {
		setters := map[string]func(r *envelopeDomain.SecureRecord){
			"payload_nonce":  func(r *envelopeDomain.SecureRecord) { r.PayloadNonce = "zz" + r.PayloadNonce[2:] },
			"payload_ct":     func(r *envelopeDomain.SecureRecord) { r.PayloadCiphertext = "zzzzzz" },
			"payload_tag":    func(r *envelopeDomain.SecureRecord) { r.PayloadTag = "g" + r.PayloadTag[1:] },
			"dek_wrap_nonce": func(r *envelopeDomain.SecureRecord) { r.DekWrapNonce = strings.Repeat("-", 24) },
			"dek_wrapped":    func(r *envelopeDomain.SecureRecord) { r.WrappedDek = r.WrappedDek[:63] },
			"dek_wrap_tag":   func(r *envelopeDomain.SecureRecord) { r.DekWrapTag = "0x" + r.DekWrapTag[2:] },
		}

		for name, set := range setters {
			t.Run(name, func(t *testing.T) {
				tampered := *record
				set(&tampered)

				_, err := e.Decrypt(&tampered)
				assert.ErrorIs(t, err, envelopeDomain.ErrInvalidEncoding)
				assert.Contains(t, err.Error(), name)
			})
		}
	})

	t.Run("truncated nonce", func(t *testing.T) {
		tampered := *record
		tampered.PayloadNonce = "aa"

		_, err := e.Decrypt(&tampered)
		assert.ErrorIs(t, err, envelopeDomain.ErrInvalidLength)
		assert.Contains(t, err.Error(), "payload_nonce")
	})

	t.Run("wrong length fields", func(t *testing.T) {
		setters := map[string]func(r *envelopeDomain.SecureRecord){
			"payload_tag":    func(r *envelopeDomain.SecureRecord) { r.PayloadTag = r.PayloadTag[:30] },
			"dek_wrap_nonce": func(r *envelopeDomain.SecureRecord) { r.DekWrapNonce += "00" },
			"dek_wrap_tag":   func(r *envelopeDomain.SecureRecord) { r.DekWrapTag = "" },
		}

		for name, set := range setters {
			t.Run(name, func(t *testing.T) {
				tampered := *record
				set(&tampered)

				_, err := e.Decrypt(&tampered)
				assert.ErrorIs(t, err, envelopeDomain.ErrInvalidLength)
				assert.Contains(t, err.Error(), name)
			})
		}
	})

	t.Run("encoding is checked before length", func(t *testing.T) {
		tampered := *record
		tampered.PayloadNonce = "aa"
		tampered.DekWrapTag = "zz"

		_, err := e.Decrypt(&tampered)
		assert.ErrorIs(t, err, envelopeDomain.ErrInvalidEncoding)
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		tampered := *record
		tampered.Algorithm = "AES-128-CBC"

		_, err := e.Decrypt(&tampered)
		assert.ErrorIs(t, err, envelopeDomain.ErrUnsupportedAlgorithm)

		tampered.Algorithm = ""
		_, err = e.Decrypt(&tampered)
		assert.ErrorIs(t, err, envelopeDomain.ErrUnsupportedAlgorithm)
	})

	t.Run("nil record", func(t *testing.T) {
		_, err := e.Decrypt(nil)
		assert.ErrorIs(t, err, envelopeDomain.ErrInvalidRecord)
	})
}

func TestEnvelope_WrongMasterKey(t *testing.T) {
	encryptor := newTestEnvelope(t, testMasterKeyHex, envelopeDomain.AESGCM)
	decryptor := newTestEnvelope(t, otherMasterKeyHex, envelopeDomain.AESGCM)

	record := mustEncrypt(t, encryptor, "p", map[string]int{"a": 1})

	payload, err := decryptor.Decrypt(record)
	assert.ErrorIs(t, err, envelopeDomain.ErrAuthentication)
	assert.ErrorIs(t, err, envelopeDomain.ErrDekUnwrapFailed)
	assert.Nil(t, payload)
}

func TestEnvelope_DispatchesOnRecordAlgorithm(t *testing.T) {
	aesEnvelope := newTestEnvelope(t, testMasterKeyHex, envelopeDomain.AESGCM)
	chachaEnvelope := newTestEnvelope(t, testMasterKeyHex, envelopeDomain.ChaCha20)

	record := mustEncrypt(t, aesEnvelope, "p", []string{"x"})
	payload, err := chachaEnvelope.Decrypt(record)
	require.NoError(t, err)
	assert.Equal(t, `["x"]`, string(payload))

	record = mustEncrypt(t, chachaEnvelope, "p", []string{"y"})
	payload, err = aesEnvelope.Decrypt(record)
	require.NoError(t, err)
	assert.Equal(t, `["y"]`, string(payload))

	// relabelling the algorithm must not let the record verify
	relabelled := *record
	relabelled.Algorithm = envelopeDomain.AESGCM
	_, err = aesEnvelope.Decrypt(&relabelled)
	assert.ErrorIs(t, err, envelopeDomain.ErrAuthentication)
}

func TestEnvelope_ConfigurationErrors(t *testing.T) {
	valid := newTestEnvelope(t, testMasterKeyHex, envelopeDomain.AESGCM)
	record := mustEncrypt(t, valid, "p", map[string]int{"a": 1})

	tests := []struct {
		name    string
		hexKey  string
		wantErr error
	}{
		{name: "missing key", hexKey: "", wantErr: envelopeDomain.ErrMasterKeyNotSet},
		{name: "short key", hexKey: "abcd", wantErr: envelopeDomain.ErrMasterKeyLength},
		{name: "invalid hex", hexKey: strings.Repeat("x", 64), wantErr: envelopeDomain.ErrMasterKeyEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnvelope(t, tt.hexKey, envelopeDomain.AESGCM)

			_, err := e.Encrypt("p", map[string]int{"a": 1})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrConfiguration)

			_, err = e.Decrypt(record)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrConfiguration)
		})
	}
}

func TestEnvelope_SerializationErrors(t *testing.T) {
	e := newTestEnvelope(t, testMasterKeyHex, envelopeDomain.AESGCM)

	for name, payload := range map[string]any{
		"channel":  make(chan int),
		"function": func() {},
		"nan":      math.NaN(),
	} {
		t.Run(name, func(t *testing.T) {
			record, err := e.Encrypt("p", payload)
			assert.ErrorIs(t, err, envelopeDomain.ErrSerialization)
			assert.Nil(t, record)
		})
	}
}

func TestEnvelope_RandomSourceFailure(t *testing.T) {
	e := NewEnvelope(
		NewStaticMasterKeyProvider(testMasterKeyHex),
		NewAEADManager(),
		failingRandom{err: assert.AnError},
		envelopeDomain.AESGCM,
	)

	record, err := e.Encrypt("p", 1)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, record)
}

func TestEnvelope_ForeignRecords(t *testing.T) {
	e := newTestEnvelope(t, testMasterKeyHex, envelopeDomain.AESGCM)

	t.Run("plaintext is not json", func(t *testing.T) {
		record := sealForeignRecord(t, testMasterKeyHex, randomBytes(t, 32), []byte("not json {"))

		payload, err := e.Decrypt(record)
		assert.ErrorIs(t, err, envelopeDomain.ErrDeserialization)
		assert.Nil(t, payload)
	})

	t.Run("wrapped DEK has wrong size", func(t *testing.T) {
		record := sealForeignRecord(t, testMasterKeyHex, randomBytes(t, 16), []byte(`{}`))

		_, err := e.Decrypt(record)
		assert.ErrorIs(t, err, envelopeDomain.ErrInvalidLength)
	})

	t.Run("valid foreign record", func(t *testing.T) {
		record := sealForeignRecord(t, testMasterKeyHex, randomBytes(t, 32), []byte(`{"x":true}`))

		payload, err := e.Decrypt(record)
		require.NoError(t, err)
		assert.Equal(t, `{"x":true}`, string(payload))
	})
}

func TestEnvelope_DecryptInto(t *testing.T) {
	e := newTestEnvelope(t, testMasterKeyHex, envelopeDomain.AESGCM)

	type transfer struct {
		Amount int    `json:"amount"`
		To     string `json:"to"`
	}

	record := mustEncrypt(t, e, "party_1", transfer{Amount: 100, To: "bob"})

	var out transfer
	require.NoError(t, e.DecryptInto(record, &out))
	assert.Equal(t, transfer{Amount: 100, To: "bob"}, out)

	var wrongType []int
	err := e.DecryptInto(record, &wrongType)
	assert.ErrorIs(t, err, envelopeDomain.ErrDeserialization)

	tampered := *record
	tampered.PayloadTag = flipByte(t, record.PayloadTag, 0)
	err = e.DecryptInto(&tampered, &out)
	assert.ErrorIs(t, err, envelopeDomain.ErrAuthentication)
}

func TestEnvelope_Concurrent(t *testing.T) {
	e := newTestEnvelope(t, testMasterKeyHex, envelopeDomain.AESGCM)

	var (
		mu  sync.Mutex
		ids = make(map[string]struct{})
	)

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		g.Go(func() error {
			record, err := e.Encrypt("p", map[string]int{"n": i})
			if err != nil {
				return err
			}

			var out map[string]int
			if err := e.DecryptInto(record, &out); err != nil {
				return err
			}
			if out["n"] != i {
				return assert.AnError
			}

			mu.Lock()
			ids[record.ID] = struct{}{}
			mu.Unlock()
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Len(t, ids, 64)
}
