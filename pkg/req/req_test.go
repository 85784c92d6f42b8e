package req

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Bet int `json:"bet"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(`{"bet": 100}`))
	require.NoError(t, err)
	assert.Equal(t, 100, got.Bet)

	_, err = Decode[payload](strings.NewReader(`{"bet": 100, "balance": 1}`))
	assert.Error(t, err)

	_, err = Decode[payload](strings.NewReader(``))
	assert.EqualError(t, err, "empty request body")

	_, err = Decode[payload](strings.NewReader(`{"bet": "x"}`))
	assert.Error(t, err)
}
