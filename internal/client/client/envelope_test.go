package client

import (
	"testing"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeData_Shapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "object in data", body: `{"data":{"_id":"1"}}`, want: "1"},
		{name: "array in data", body: `{"data":[{"_id":"2"}]}`, want: "2"},
		{name: "bare object", body: `{"_id":"3","title":"x"}`, want: "3"},
		{name: "bare array", body: `[{"id":"4"}]`, want: "4"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := decodeData[models.Article]([]byte(tc.body))
			require.NoError(t, err)
			assert.Equal(t, tc.want, a.ID)
		})
	}
}

func TestDecodeData_SliceTarget(t *testing.T) {
	users, err := decodeData[[]models.User]([]byte(`{"data":[{"_id":"a"},{"_id":"b"}]}`))
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "b", users[1].ID)
}

func TestDecodeData_Empty(t *testing.T) {
	_, err := decodeData[models.Article]([]byte(``))
	require.ErrorIs(t, err, ErrEmptyData)

	_, err = decodeData[models.Article]([]byte(`{"data":null}`))
	require.ErrorIs(t, err, ErrEmptyData)
}

func TestDecodeData_Invalid(t *testing.T) {
	_, err := decodeData[models.Article]([]byte(`{"data":"nope"}`))
	require.Error(t, err)
}

func TestDecodeMessage(t *testing.T) {
	assert.Equal(t, "top", decodeMessage([]byte(`{"message":"top"}`)))
	assert.Equal(t, "inner", decodeMessage([]byte(`{"data":{"message":"inner"}}`)))
	assert.Equal(t, "listed", decodeMessage([]byte(`{"data":[{"message":"listed"}]}`)))
	assert.Empty(t, decodeMessage([]byte(`not json`)))
}
