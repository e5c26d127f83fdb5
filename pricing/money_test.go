package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyConversions(t *testing.T) {
	assert.Equal(t, Money(1999), FromMajor(19.99))
	assert.Equal(t, Money(10), FromMajor(0.1))
	assert.Equal(t, 19.99, FromMajor(19.99).Major())
	assert.Equal(t, "1908.00", FromMajor(1908).String())
	assert.Equal(t, "-50.00", FromMajor(-50).String())
}

func TestMoneyPercentRounding(t *testing.T) {
	// 10% of 21.20 is 2.12 exactly.
	assert.Equal(t, FromMajor(2.12), FromMajor(21.20).Percent(10))
	// 15% of 0.99 is 0.1485, rounded to 15 cents.
	assert.Equal(t, Money(15), FromMajor(0.99).Percent(15))
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(FromMajor(1908))
	require.NoError(t, err)
	assert.Equal(t, "1908.00", string(raw))

	var m Money
	require.NoError(t, json.Unmarshal([]byte("200.5"), &m))
	assert.Equal(t, FromMajor(200.5), m)

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
}
