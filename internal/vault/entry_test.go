package vault

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SetsCreatedAndUpdated(t *testing.T) {
	e := New("work/github")
	assert.Equal(t, "work/github", e.Title)
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)
	assert.Equal(t, time.UTC, e.CreatedAt.Location())
}

func TestValidate_RequiresTitle(t *testing.T) {
	e := New("")
	assert.ErrorIs(t, e.Validate(), ErrTitleRequired)
}

func TestValidate_RejectsUpdatedBeforeCreated(t *testing.T) {
	e := New("x")
	e.UpdatedAt = e.CreatedAt.Add(-time.Second)
	assert.ErrorIs(t, e.Validate(), ErrInvalidTimestamps)
}

func TestTouch_AdvancesUpdatedAt(t *testing.T) {
	e := New("x")
	before := e.UpdatedAt
	time.Sleep(time.Millisecond)
	e.Touch()
	assert.True(t, e.UpdatedAt.After(before))
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	e := New("personal/email")
	e.Username = "alice"
	e.Password = "hunter2"
	e.CustomFields = map[string]string{"recovery_email": "alice@example.com"}

	data, err := Marshal(e)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, e.Title, got.Title)
	assert.Equal(t, e.Username, got.Username)
	assert.Equal(t, e.Password, got.Password)
	assert.Equal(t, e.CustomFields, got.CustomFields)
}

func TestMarshal_RejectsEmptyTitle(t *testing.T) {
	_, err := Marshal(Entry{})
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestOTPValidate_DigitsOutOfRange(t *testing.T) {
	o := OTP{Secret: []byte("x"), Digits: 5, PeriodSeconds: 30, Algorithm: AlgorithmSHA1}
	assert.ErrorIs(t, o.Validate(), ErrBadOTPSecret)
}

func TestOTPValidate_BadAlgorithm(t *testing.T) {
	o := OTP{Secret: []byte("x"), Digits: 6, PeriodSeconds: 30, Algorithm: "MD5"}
	assert.ErrorIs(t, o.Validate(), ErrBadOTPSecret)
}

func TestOTPValidate_Valid(t *testing.T) {
	o := OTP{Secret: []byte("x"), Digits: 8, PeriodSeconds: 30, Algorithm: AlgorithmSHA256}
	assert.NoError(t, o.Validate())
}

func TestEntryValidate_PropagatesOTPError(t *testing.T) {
	e := New("x")
	e.OTP = &OTP{Digits: 6, PeriodSeconds: 30, Algorithm: AlgorithmSHA1}
	assert.ErrorIs(t, e.Validate(), ErrBadOTPSecret)
}
